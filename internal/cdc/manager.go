// Package cdc fans out store change events to in-process subscribers.
//
// Writers call Emit, which never blocks: events go into a buffered channel drained by a single
// worker. The worker hands every event to every subscriber without blocking either; a
// subscriber whose buffer is full misses the event.
package cdc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"sync"
	"time"
)

const (
	defaultBufferSize       = 100000
	defaultSubscriberBuffer = 1024
)

type Config struct {
	// BufferSize is the capacity of the emit queue.
	BufferSize int
	// SubscriberBuffer is the default per-subscriber channel capacity.
	SubscriberBuffer int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.BufferSize < 0 {
		errGrp = append(errGrp, errors.Newf("invalid buffer size: %d", c.BufferSize))
	}
	if c.SubscriberBuffer < 0 {
		errGrp = append(errGrp, errors.Newf("invalid subscriber buffer: %d", c.SubscriberBuffer))
	}
	return errors.Join(errGrp...)
}

type Manager struct {
	emitChan         chan *Event
	subscriberBuffer int

	procCtx    context.Context
	procCancel context.CancelFunc
	done       chan struct{}
	startOnce  sync.Once

	subscribers   map[uint64]*Subscription
	nextID        uint64
	subscriberMux sync.Mutex
}

func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	bufferSize := cfg.BufferSize
	if bufferSize == 0 {
		bufferSize = defaultBufferSize
	}
	subBuffer := cfg.SubscriberBuffer
	if subBuffer == 0 {
		subBuffer = defaultSubscriberBuffer
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		emitChan:         make(chan *Event, bufferSize),
		subscriberBuffer: subBuffer,
		procCtx:          ctx,
		procCancel:       cancel,
		done:             make(chan struct{}),
		subscribers:      make(map[uint64]*Subscription),
	}, nil
}

// Start runs the fan-out worker.
func (m *Manager) Start() error {
	m.startOnce.Do(func() {
		go m.run()
	})
	return nil
}

// Stop halts the worker and closes every subscription. Events still queued are dropped.
func (m *Manager) Stop() error {
	if m.procCancel == nil {
		return nil
	}
	m.procCancel()

	// never started: nothing will close done for us
	m.startOnce.Do(func() {
		close(m.done)
	})
	<-m.done

	m.subscriberMux.Lock()
	for id, sub := range m.subscribers {
		close(sub.events)
		delete(m.subscribers, id)
	}
	m.subscriberMux.Unlock()
	return nil
}

func (m *Manager) Name() string {
	return "CDC Emitter"
}

// Emit queues an event for delivery. It never blocks: when the queue is full the event is
// dropped and logged.
func (m *Manager) Emit(e *Event) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EmittedAt.IsZero() {
		e.EmittedAt = time.Now()
	}

	select {
	case m.emitChan <- e:
	default:
		log.Warn().Str("table", e.Table).Str("operation", string(e.Operation)).
			Msg("cdc queue full, dropping event")
	}
}

func (m *Manager) run() {
	defer close(m.done)
	for {
		select {
		case <-m.procCtx.Done():
			return
		case e := <-m.emitChan:
			m.publish(e)
		}
	}
}

// publish hands e to every subscriber without blocking.
func (m *Manager) publish(e *Event) {
	m.subscriberMux.Lock()
	defer m.subscriberMux.Unlock()

	for _, sub := range m.subscribers {
		if sub.table != "" && sub.table != e.Table {
			continue
		}
		select {
		case sub.events <- e:
		default:
			log.Warn().Uint64("subscriber", sub.id).Str("event", e.ID.String()).
				Msg("cdc subscriber is slow, dropping event")
		}
	}
}
