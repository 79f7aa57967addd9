package cdc

import (
	"sync"
)

// Subscription receives events until it is closed or the manager stops.
type Subscription struct {
	id     uint64
	table  string
	events chan *Event

	m    *Manager
	once sync.Once
}

// Subscribe registers a subscriber for every table. buffer <= 0 uses the configured default.
func (m *Manager) Subscribe(buffer int) *Subscription {
	return m.SubscribeTable("", buffer)
}

// SubscribeTable registers a subscriber for a single table; an empty name means every table.
func (m *Manager) SubscribeTable(table string, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = m.subscriberBuffer
	}

	m.subscriberMux.Lock()
	defer m.subscriberMux.Unlock()

	m.nextID++
	sub := &Subscription{
		id:     m.nextID,
		table:  table,
		events: make(chan *Event, buffer),
		m:      m,
	}
	m.subscribers[sub.id] = sub
	return sub
}

// Events is closed when the subscription ends.
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.m.subscriberMux.Lock()
		defer s.m.subscriberMux.Unlock()
		if _, ok := s.m.subscribers[s.id]; ok {
			delete(s.m.subscribers, s.id)
			close(s.events)
		}
	})
}
