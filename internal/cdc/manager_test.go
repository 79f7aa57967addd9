package cdc

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	req := require.New(t)
	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		m, err := New(&Config{BufferSize: -1, SubscriberBuffer: -1})
		req.Error(err)
		req.Nil(m)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		m, err := New(&Config{})
		req.NoError(err)
		req.Equal(defaultBufferSize, cap(m.emitChan))
		req.Equal(defaultSubscriberBuffer, m.subscriberBuffer)
	})

	t.Run("Name()", func(t *testing.T) {
		m := &Manager{}
		req.Equal("CDC Emitter", m.Name())
	})

	t.Run("Stop() on zero manager", func(t *testing.T) {
		m := &Manager{}
		req.NoError(m.Stop())
	})
}

func newStartedManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(&Config{BufferSize: 16, SubscriberBuffer: 4})
	require.NoError(t, err)
	require.NoError(t, m.Start())
	t.Cleanup(func() {
		require.NoError(t, m.Stop())
	})
	return m
}

func receive(t *testing.T, sub *Subscription) *Event {
	t.Helper()
	select {
	case e, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return nil
}

func TestManager_Emit(t *testing.T) {
	t.Parallel()

	t.Run("fills id and time", func(t *testing.T) {
		t.Parallel()
		m := newStartedManager(t)
		sub := m.Subscribe(0)
		defer sub.Close()

		m.Emit(&Event{Operation: OperationPut, Table: "users", Value: []byte("v1")})

		got := receive(t, sub)
		require.NotEqual(t, uuid.Nil, got.ID)
		require.False(t, got.EmittedAt.IsZero())
		require.Equal(t, OperationPut, got.Operation)
		require.Equal(t, "v1", string(got.Value))
	})

	t.Run("every subscriber sees the event", func(t *testing.T) {
		t.Parallel()
		m := newStartedManager(t)
		a := m.Subscribe(0)
		b := m.Subscribe(0)

		m.Emit(&Event{Operation: OperationCreateTable, Table: "users"})

		require.Equal(t, "users", receive(t, a).Table)
		require.Equal(t, "users", receive(t, b).Table)
	})

	t.Run("table subscription filters", func(t *testing.T) {
		t.Parallel()
		m := newStartedManager(t)
		sub := m.SubscribeTable("orders", 0)

		m.Emit(&Event{Operation: OperationPut, Table: "users"})
		m.Emit(&Event{Operation: OperationPut, Table: "orders"})

		require.Equal(t, "orders", receive(t, sub).Table)
		select {
		case e := <-sub.Events():
			t.Fatalf("unexpected event for table %s", e.Table)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("full queue drops instead of blocking", func(t *testing.T) {
		t.Parallel()
		m, err := New(&Config{BufferSize: 1})
		require.NoError(t, err)

		// not started: nothing drains the queue
		m.Emit(&Event{Table: "a"})
		m.Emit(&Event{Table: "b"})
		require.Len(t, m.emitChan, 1)
		require.NoError(t, m.Stop())
	})
}

func TestSubscription_Close(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m := newStartedManager(t)
	sub := m.Subscribe(0)
	sub.Close()
	sub.Close()

	_, ok := <-sub.Events()
	req.False(ok)

	m.subscriberMux.Lock()
	req.Empty(m.subscribers)
	m.subscriberMux.Unlock()
}

func TestManager_Stop(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	m, err := New(&Config{})
	req.NoError(err)
	req.NoError(m.Start())

	sub := m.Subscribe(0)
	req.NoError(m.Stop())

	_, ok := <-sub.Events()
	req.False(ok)

	// closing after the manager already closed it is a no-op
	sub.Close()
}
