package syncer

import (
	"context"
	"encoding/json"
	"errors"
)

// errStaleLoad marks an arbitration whose result arrived after the actor it
// was fetched for stopped being active. Not a failure: the result is
// discarded by design.
var errStaleLoad = errors.New("stale load result")

// arbitrate decides, for one domain, whether local or remote state is
// authoritative right now:
//
//  1. remote non-empty        → adopt remote ("cloud is source of truth")
//  2. remote empty, local not → recovery: push local, leave local untouched
//  3. both empty              → no-op
//
// A first-ever sync against a fresh remote (or a transient empty read) must
// never read as "the user deleted everything", hence rule 2. stillValid, when
// non-nil, is consulted after the fetch returns; a false answer discards the
// result without touching local state.
func (c *Coordinator) arbitrate(ctx context.Context, d Domain, actorID string, stillValid func() bool) error {
	var remote json.RawMessage
	err := c.retry.Do(ctx, "fetch "+d.Name, func(ctx context.Context) error {
		records, fetchErr := d.FetchAll(ctx, actorID)
		if fetchErr != nil {
			return fetchErr
		}
		remote = records
		return nil
	})
	if err != nil {
		// keep whatever local state exists
		return err
	}

	if stillValid != nil && !stillValid() {
		c.logger.Debug().
			Str("domain", d.Name).
			Str("actor", actorID).
			Msg("discarding load result for inactive actor")
		return errStaleLoad
	}

	if !d.IsEmpty(remote) {
		if err := d.Adopt(actorID, remote); err != nil {
			return err
		}
		c.logger.Debug().Str("domain", d.Name).Msg("adopted remote snapshot")
		return nil
	}

	local, err := d.Load(actorID)
	if err != nil {
		return err
	}
	if d.IsEmpty(local) {
		return nil
	}

	c.logger.Info().Str("domain", d.Name).Msg("remote empty, recovering from local snapshot")
	return c.retry.Do(ctx, "recover "+d.Name, func(ctx context.Context) error {
		return d.Upsert(ctx, actorID, local)
	})
}

// refreshShared arbitrates every shared domain, deferring pushes for the
// duration, and invalidates derived caches afterwards. Failures keep local
// state and are only logged.
func (c *Coordinator) refreshShared(ctx context.Context) {
	c.enterGuard()
	defer c.leaveGuard()

	for _, d := range c.registry.Shared() {
		if err := c.arbitrate(ctx, d, "", nil); err != nil {
			c.logger.Err(err).Str("domain", d.Name).Msg("shared load failed; keeping local state")
		}
	}

	if c.invalidate != nil {
		c.invalidate()
	}
}
