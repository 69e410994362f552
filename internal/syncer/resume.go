package syncer

import (
	"context"
	"time"
)

// OnHide records that the host application went to the background (tab
// hidden, process suspended). The duration spent hidden decides whether the
// next resume forces a refresh.
func (c *Coordinator) OnHide() {
	c.mu.Lock()
	c.hiddenAt = c.now()
	c.mu.Unlock()
}

// OnResume handles the host waking up: tab refocus, restore from a preserved
// in-memory instance, periodic foreground focus. Refreshes are rate-limited
// so focus/blur cycling cannot cause a storm, but a process that stayed
// hidden past the staleness threshold always refreshes — cross-device edits
// are likely after a long background period.
func (c *Coordinator) OnResume(ctx context.Context) {
	if !c.opts.RemoteSyncEnabled {
		return
	}

	now := c.now()

	c.mu.Lock()
	var hiddenFor time.Duration
	if !c.hiddenAt.IsZero() {
		hiddenFor = now.Sub(c.hiddenAt)
		c.hiddenAt = time.Time{}
	}

	force := hiddenFor > c.opts.StaleThreshold
	if !force && now.Sub(c.lastRefreshAt) <= c.opts.ResumeMinInterval {
		c.mu.Unlock()
		c.logger.Debug().Msg("resume refresh skipped by rate limit")
		return
	}
	c.lastRefreshAt = now
	c.mu.Unlock()

	c.logger.Info().
		Dur("hidden_for", hiddenFor).
		Bool("forced", force).
		Msg("refreshing shared domains after resume")

	c.refreshShared(ctx)

	c.mu.Lock()
	actorID := c.activeActorID
	degraded := c.phase == ActorLoading
	c.mu.Unlock()

	// a degraded actor load gets its retry here; a forced refresh re-checks
	// the actor's domains too since they are just as stale as the shared ones
	if actorID != "" && (force || degraded) {
		c.loadActor(ctx, actorID)
	}
}
