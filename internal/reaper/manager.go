// Package reaper periodically purges cells that outlived their column family's TTL.
//
// Reads already hide expired cells; the reaper is what actually gives the memory back.
package reaper

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"sync"
	"time"
)

//go:generate mockgen -destination=purger_mock.go -package=reaper -source=manager.go

type purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

type Reaper struct {
	store    purger
	interval time.Duration

	// collector asks for an out-of-band pass; one pending request is enough
	collector chan struct{}

	procCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	mutex   sync.Mutex
}

type Config struct {
	Store    purger
	Interval time.Duration
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store cannot be nil"))
	}
	if c.Interval <= 0 {
		errGrp = append(errGrp, errors.New("interval must be greater than 0"))
	}
	return errors.Join(errGrp...)
}

// New creates a new Reaper.
func New(cfg *Config) (*Reaper, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Reaper{
		store:     cfg.Store,
		interval:  cfg.Interval,
		collector: make(chan struct{}, 1),
		procCtx:   ctx,
		cancel:    cancel,
	}, nil
}

func (r *Reaper) Start() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.started {
		return errors.New("reaper already started")
	}
	r.started = true

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.procCtx.Done():
				return
			case <-r.collector:
				r.reap()
			case <-ticker.C:
				r.reap()
			}
		}
	}()

	log.Info().Dur("interval", r.interval).Msg("reaper started")
	return nil
}

// Stop cancels the loop and waits for an in-flight pass to finish.
func (r *Reaper) Stop() error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	return nil
}

func (r *Reaper) Name() string {
	return "Reaper"
}
