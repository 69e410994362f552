package syncer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/logger"
)

// ActorSource supplies the active actor identity and change notifications.
// Credential mechanics live behind it; the coordinator only ever sees ids.
type ActorSource interface {
	ActiveActorID() string
	Subscribe(fn func(actorID string)) func()
}

// Options are the coordinator tunables.
type Options struct {
	// RemoteSyncEnabled fully bypasses the coordinator when false: no domain
	// ever pushes or pulls, and Initialize marks the load complete at once.
	RemoteSyncEnabled bool

	DebounceDelay  time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration

	ResumeMinInterval time.Duration
	StaleThreshold    time.Duration
}

// ActorPhase is the tracker's view of the active actor.
type ActorPhase int

const (
	// ActorNone means no actor is selected.
	ActorNone ActorPhase = iota
	// ActorLoading means the actor's per-actor load is in flight or has
	// failed and awaits the next switch or resume.
	ActorLoading
	// ActorReady means the actor's domains are reconciled with remote.
	ActorReady
)

// State is a snapshot of the coordination flags, exposed for the host and for
// tests. It carries no domain data.
type State struct {
	InitialLoadInFlight bool
	SyncGuardActive     bool
	ActiveActorID       string
	LoadingActorID      string
	Phase               ActorPhase
	LastPushAt          map[string]time.Time
}

// Coordinator arbitrates between each domain's local store and the remote
// snapshot store. One instance per process; tests may run several, nothing is
// ambient.
type Coordinator struct {
	registry      *Registry
	actors        ActorSource
	retry         RetryPolicy
	opts          Options
	flushRegistry *FlushRegistry
	logger        *logger.Logger

	// invalidate drops derived query caches after remote data is adopted.
	invalidate func()

	// now is replaceable in tests.
	now func() time.Time

	baseCtx context.Context

	mu                  sync.Mutex
	initialLoadInFlight bool
	guardDepth          int
	activeActorID       string
	loadingActorID      string
	phase               ActorPhase
	lastPushAt          map[string]time.Time
	lastRefreshAt       time.Time
	hiddenAt            time.Time

	pushes map[string]*Debounced[pushRequest]
	unsubs []func()
}

// pushRequest is one coalesced unit of outbound work: the full local snapshot
// of a domain, addressed to the actor it was captured under.
type pushRequest struct {
	actorID string
	records json.RawMessage
}

// NewCoordinator wires a coordinator for the given domain registry and actor
// source. Call Initialize before anything else.
func NewCoordinator(registry *Registry, actors ActorSource, opts Options, log *logger.Logger) *Coordinator {
	return &Coordinator{
		registry:      registry,
		actors:        actors,
		retry:         NewRetryPolicy(opts.RetryAttempts, opts.RetryBaseDelay, log),
		opts:          opts,
		flushRegistry: NewFlushRegistry(),
		logger:        log,
		now:           time.Now,
		baseCtx:       context.Background(),
		lastPushAt:    make(map[string]time.Time),
		pushes:        make(map[string]*Debounced[pushRequest]),
		phase:         ActorNone,
	}
}

// SetCacheInvalidator registers the derived-query invalidation hook, run
// after every refresh that may have adopted remote data.
func (c *Coordinator) SetCacheInvalidator(fn func()) {
	c.invalidate = fn
}

// Initialize performs the startup arbitration for every shared domain and,
// when an actor is already selected, for that actor's domains, then starts
// watching local mutations and actor changes. It never returns an error: a
// dead remote leaves local state untouched and the client interactive, with
// failures visible only in the log.
func (c *Coordinator) Initialize(ctx context.Context) {
	if !c.opts.RemoteSyncEnabled {
		c.logger.Info().Msg("remote sync disabled; running local-only")
		return
	}

	c.baseCtx = context.WithoutCancel(ctx)

	c.mu.Lock()
	c.initialLoadInFlight = true
	c.activeActorID = c.actors.ActiveActorID()
	if c.activeActorID != "" {
		c.phase = ActorLoading
		c.loadingActorID = c.activeActorID
	}
	c.mu.Unlock()

	for _, d := range c.registry.All() {
		c.installPush(d)
	}
	c.unsubs = append(c.unsubs, c.actors.Subscribe(c.onActorChange))

	c.refreshShared(ctx)
	if actorID := c.currentActor(); actorID != "" {
		c.loadActor(ctx, actorID)
	}

	c.mu.Lock()
	c.initialLoadInFlight = false
	c.lastRefreshAt = c.now()
	c.mu.Unlock()

	c.logger.Info().Msg("initial load complete")
}

// OnShutdown stops watching and flushes every pending debounced push,
// best-effort. Call before process exit.
func (c *Coordinator) OnShutdown() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil

	c.flushRegistry.FlushAll()
	c.logger.Info().Msg("pending pushes flushed")
}

// CurrentState returns a copy of the coordination flags.
func (c *Coordinator) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	lastPush := make(map[string]time.Time, len(c.lastPushAt))
	for k, v := range c.lastPushAt {
		lastPush[k] = v
	}

	return State{
		InitialLoadInFlight: c.initialLoadInFlight,
		SyncGuardActive:     c.guardDepth > 0,
		ActiveActorID:       c.activeActorID,
		LoadingActorID:      c.loadingActorID,
		Phase:               c.phase,
		LastPushAt:          lastPush,
	}
}

// installPush builds the domain's debounced push pipeline and subscribes it
// to the local store's change notifications.
func (c *Coordinator) installPush(d Domain) {
	push := NewDebounced(func(req pushRequest) {
		c.push(d, req)
	}, c.opts.DebounceDelay, c.flushRegistry)
	c.pushes[d.Name] = push

	unsub := d.Watch(func(actorID string) {
		records, err := d.Load(actorID)
		if err != nil {
			c.logger.Err(err).Str("domain", d.Name).Msg("read local snapshot for push")
			return
		}
		push.Call(pushRequest{actorID: actorID, records: records})
	})
	c.unsubs = append(c.unsubs, unsub)
}

// push is the debounced delivery callback: the gate checks run here, at
// execution time, so a deferred push keeps its latest coalesced value.
func (c *Coordinator) push(d Domain, req pushRequest) {
	c.mu.Lock()
	gated := c.initialLoadInFlight || c.guardDepth > 0
	live := c.activeActorID
	c.mu.Unlock()

	if gated {
		// defer, don't drop: re-queue the value through the debounce so a
		// newer mutation can still supersede it
		c.pushes[d.Name].Call(req)
		return
	}

	if d.Scope == ScopeActorScoped && req.actorID != live {
		c.logger.Debug().
			Str("domain", d.Name).
			Str("actor", req.actorID).
			Msg("dropping push addressed to inactive actor")
		return
	}

	if d.Guarded && d.IsEmpty(req.records) {
		c.logger.Warn().
			Str("domain", d.Name).
			Msg("refusing to overwrite remote history with an empty snapshot")
		return
	}

	err := c.retry.Do(c.baseCtx, "push "+d.Name, func(ctx context.Context) error {
		return d.Upsert(ctx, req.actorID, req.records)
	})
	if err != nil {
		// local state stays as it is; the next mutation re-enters the
		// debounce pipeline and retries naturally
		c.logger.Err(err).Str("domain", d.Name).Msg("push failed after retries")
		return
	}

	c.mu.Lock()
	c.lastPushAt[d.Name] = c.now()
	c.mu.Unlock()
}

func (c *Coordinator) currentActor() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeActorID
}

func (c *Coordinator) enterGuard() {
	c.mu.Lock()
	c.guardDepth++
	c.mu.Unlock()
}

func (c *Coordinator) leaveGuard() {
	c.mu.Lock()
	c.guardDepth--
	c.mu.Unlock()
}
