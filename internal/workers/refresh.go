package workers

import (
	"context"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/logger"
)

// Refresher is the slice of the sync coordinator the periodic worker drives.
type Refresher interface {
	OnResume(ctx context.Context)
}

// PeriodicRefresh invokes the coordinator's resume path on a fixed interval,
// so a long-running headless client picks up cross-device edits even without
// visibility signals from a host UI. The coordinator's own rate limit decides
// whether a given tick actually refreshes anything.
type PeriodicRefresh struct {
	ctx      context.Context
	interval time.Duration
	target   Refresher
	logger   *logger.Logger
}

func NewPeriodicRefresh(ctx context.Context, interval time.Duration, target Refresher, log *logger.Logger) *PeriodicRefresh {
	return &PeriodicRefresh{
		ctx:      ctx,
		interval: interval,
		target:   target,
		logger:   log,
	}
}

// Run implements [Worker]. A non-positive interval disables the worker.
func (p *PeriodicRefresh) Run() {
	if p.interval <= 0 {
		return
	}

	p.logger.Info().Dur("interval", p.interval).Msg("periodic refresh worker started")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				p.target.OnResume(p.ctx)
			}
		}
	}()
}
