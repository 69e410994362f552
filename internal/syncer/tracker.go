package syncer

import (
	"context"
	"errors"
)

// onActorChange drives the actor state machine:
//
//	NoActor        --select-->  LoadingActor(id)
//	LoadingActor   --done, id still active-->     ActorReady(id)
//	LoadingActor   --done, id no longer active--> discard result
//	ActorReady(id) --switch to id'-->             LoadingActor(id')
//	any            --logout-->                    NoActor (local state retained)
func (c *Coordinator) onActorChange(actorID string) {
	c.mu.Lock()
	prev := c.activeActorID
	if prev == actorID {
		c.mu.Unlock()
		return
	}
	c.activeActorID = actorID
	if actorID == "" {
		c.phase = ActorNone
		c.loadingActorID = ""
	} else {
		c.phase = ActorLoading
		c.loadingActorID = actorID
	}
	c.mu.Unlock()

	// Pending pushes for actor-scoped domains are addressed to the previous
	// actor. They must never be redirected, and a shutdown flush must not
	// leak them either, so drop them now; the domains' next mutation under
	// the new actor re-queues fresh values.
	for _, d := range c.registry.ActorScoped() {
		if push, ok := c.pushes[d.Name]; ok {
			push.Cancel()
		}
	}

	if actorID == "" {
		c.logger.Info().Msg("actor logged out; retaining local state")
		return
	}

	go c.loadActor(c.baseCtx, actorID)
}

// loadActor arbitrates every actor-scoped domain for the given actor. The
// actor id is captured here, before any fetch starts; each arbitration
// compares it against the live active id when its response arrives, so a
// slow response for a stale actor can never be written into the current
// actor's local state.
func (c *Coordinator) loadActor(ctx context.Context, actorID string) {
	c.enterGuard()
	defer c.leaveGuard()

	captured := actorID
	stillValid := func() bool { return c.currentActor() == captured }

	degraded := false
	for _, d := range c.registry.ActorScoped() {
		err := c.arbitrate(ctx, d, captured, stillValid)
		switch {
		case errors.Is(err, errStaleLoad):
			// a newer switch owns the state machine now
			return
		case err != nil:
			// leave the actor in LoadingActor; the next switch or resume
			// retries
			degraded = true
			c.logger.Err(err).
				Str("domain", d.Name).
				Str("actor", captured).
				Msg("actor load failed; keeping local state")
		}
	}

	c.mu.Lock()
	if c.activeActorID == captured && !degraded {
		c.phase = ActorReady
		c.loadingActorID = ""
	}
	c.mu.Unlock()

	if c.invalidate != nil {
		c.invalidate()
	}
}
