package reaper

import (
	"context"
	"github.com/litetable/versiontable/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	req := require.New(t)
	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		got, err := New(&Config{})
		req.Error(err)
		req.Nil(got)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		got, err := New(&Config{
			Store:    NewMockpurger(ctrl),
			Interval: time.Second,
		})
		req.NoError(err)
		req.NotNil(got)
		req.Equal("Reaper", got.Name())
	})
}

func TestReaper_Reap(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		purged int
		err    error
	}{
		"purged cells":     {purged: 3},
		"nothing to purge": {purged: 0},
		"store failure":    {err: assert.AnError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockStore := NewMockpurger(ctrl)

			called := make(chan struct{})
			mockStore.
				EXPECT().
				PurgeExpired(gomock.Any()).
				DoAndReturn(func(ctx context.Context) (int, error) {
					close(called)
					return tc.purged, tc.err
				}).
				Times(1)

			// long interval: only the explicit request triggers a pass
			r, err := New(&Config{Store: mockStore, Interval: time.Hour})
			require.NoError(t, err)
			require.NoError(t, r.Start())

			r.Reap()
			select {
			case <-called:
			case <-time.After(2 * time.Second):
				t.Fatal("reap was not triggered")
			}
			require.NoError(t, r.Stop())
		})
	}
}

func TestReaper_Ticks(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockStore := NewMockpurger(ctrl)

	var passes atomic.Int32
	mockStore.
		EXPECT().
		PurgeExpired(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			passes.Add(1)
			return 0, nil
		}).
		MinTimes(2)

	r, err := New(&Config{Store: mockStore, Interval: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, r.Start())
	require.Error(t, r.Start(), "second start")

	require.Eventually(t, func() bool {
		return passes.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop())
}

// countingStore records how many cells the reaper purged through it.
type countingStore struct {
	*store.Store
	purged atomic.Int64
}

func (c *countingStore) PurgeExpired(ctx context.Context) (int, error) {
	n, err := c.Store.PurgeExpired(ctx)
	c.purged.Add(int64(n))
	return n, err
}

func TestReaper_PurgesStore(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	var nowNanos atomic.Int64
	nowNanos.Store(time.Now().UnixNano())
	s, err := store.New(&store.Config{Now: func() time.Time { return time.Unix(0, nowNanos.Load()) }})
	req.NoError(err)
	_, err = s.CreateTable("sessions", store.FamilySpec{Name: "s", TTL: time.Minute})
	req.NoError(err)
	req.NoError(s.Put("sessions", []byte("abc"), "s", []byte("user"), []byte("42")))
	req.NoError(s.Put("sessions", []byte("def"), "s", []byte("user"), []byte("43")))

	counting := &countingStore{Store: s}
	r, err := New(&Config{Store: counting, Interval: time.Hour})
	req.NoError(err)
	req.NoError(r.Start())
	defer func() {
		req.NoError(r.Stop())
	}()

	nowNanos.Add(int64(2 * time.Minute))
	r.Reap()

	req.Eventually(func() bool {
		return counting.purged.Load() == 2
	}, 2*time.Second, 5*time.Millisecond)

	res, err := s.Scan(context.Background(), "sessions", nil)
	req.NoError(err)
	req.Empty(res)
}
