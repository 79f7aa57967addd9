package reaper

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"time"
)

// Reap requests a purge pass ahead of the next tick. It never blocks; requests made while one
// is already pending are merged.
func (r *Reaper) Reap() {
	select {
	case r.collector <- struct{}{}:
	default:
	}
}

// reap runs one purge pass over every table.
func (r *Reaper) reap() {
	start := time.Now()
	purged, err := r.store.PurgeExpired(r.procCtx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error().Err(err).Int("purged", purged).Msg("reaper pass failed")
		return
	}

	if purged > 0 {
		log.Info().Int("purged", purged).Dur("took", time.Since(start)).Msg("expired cells purged")
		return
	}
	log.Debug().Dur("took", time.Since(start)).Msg("reaper pass found nothing to purge")
}
