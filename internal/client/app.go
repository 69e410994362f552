package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/adapter"
	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/store"
	"github.com/hearthkeep/hearthkeep/internal/syncer"
	"github.com/hearthkeep/hearthkeep/internal/workers"
	"github.com/hearthkeep/hearthkeep/models"
)

// refreshInterval is how often a headless client re-checks the remote for
// cross-device edits. The coordinator's resume rate limit governs the actual
// request frequency.
const refreshInterval = 5 * time.Minute

var _ Client = (*App)(nil)

// App is the assembled client: local stores, actor session, remote adapter
// and the sync coordinator, ready to run.
type App struct {
	cfg         *config.ClientConfig
	logger      *logger.Logger
	stores      *store.ClientStores
	session     *store.ActorSession
	cache       *store.QueryCache
	coordinator *syncer.Coordinator
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	stores, err := store.NewClientStores(cfg.State, log)
	if err != nil {
		return nil, fmt.Errorf("create local stores: %w", err)
	}

	session, err := store.NewActorSession(cfg.State.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("restore actor session: %w", err)
	}

	cache := store.NewQueryCache()

	var remote adapter.RemoteStore = unreachableRemote{}
	if cfg.RemoteSyncEnabled() {
		remote, err = adapter.NewHTTPRemoteStore(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create remote store: %w", err)
		}
	}

	registry, err := BuildRegistry(stores, remote)
	if err != nil {
		return nil, fmt.Errorf("build domain registry: %w", err)
	}

	coordinator := syncer.NewCoordinator(registry, session, syncer.Options{
		RemoteSyncEnabled: cfg.RemoteSyncEnabled(),
		DebounceDelay:     cfg.Sync.DebounceDelay,
		RetryAttempts:     cfg.Sync.RetryAttempts,
		RetryBaseDelay:    cfg.Sync.RetryBaseDelay,
		ResumeMinInterval: cfg.Sync.ResumeMinInterval,
		StaleThreshold:    cfg.Sync.StaleThreshold,
	}, log)
	coordinator.SetCacheInvalidator(cache.Invalidate)

	// derived queries also go stale on purely local edits
	stores.Expenses.Subscribe(func([]models.Expense) { cache.Invalidate() })

	return &App{
		cfg:         cfg,
		logger:      log,
		stores:      stores,
		session:     session,
		cache:       cache,
		coordinator: coordinator,
	}, nil
}

// Stores exposes the local domain stores to the embedding application.
func (a *App) Stores() *store.ClientStores { return a.stores }

// Session exposes the actor session.
func (a *App) Session() *store.ActorSession { return a.session }

// Coordinator exposes the sync coordinator for visibility hooks (OnHide,
// OnResume) and state inspection.
func (a *App) Coordinator() *syncer.Coordinator { return a.coordinator }

// Run performs the initial load and blocks until the process receives a stop
// signal, then flushes pending pushes.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.coordinator.Initialize(ctx)

	if a.cfg.RemoteSyncEnabled() {
		workers.New(
			workers.NewPeriodicRefresh(ctx, refreshInterval, a.coordinator, a.logger),
		).Run()
	}

	<-ctx.Done()

	a.coordinator.OnShutdown()
	a.logger.Info().Msg("client stopped")

	return nil
}

// unreachableRemote stands in for the HTTP adapter in local-only mode. The
// coordinator never calls it when remote sync is disabled; any call reaching
// it is a wiring bug surfaced as ErrUnavailable.
type unreachableRemote struct{}

func (unreachableRemote) FetchAll(context.Context, string, string) (models.Snapshot, error) {
	return models.Snapshot{}, adapter.ErrUnavailable
}

func (unreachableRemote) Upsert(context.Context, models.Snapshot) error {
	return adapter.ErrUnavailable
}

func (unreachableRemote) Ping(context.Context) error {
	return adapter.ErrUnavailable
}
