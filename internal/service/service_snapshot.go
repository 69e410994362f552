package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/repository"
	"github.com/hearthkeep/hearthkeep/models"
)

// domainActorScoped maps every known domain to whether its snapshots are
// partitioned per actor. Shared domains store exactly one snapshot under an
// empty actor id.
var domainActorScoped = map[string]bool{
	models.DomainPortfolios:   false,
	models.DomainTransactions: false,
	models.DomainSymbolTags:   false,
	models.DomainExpenses:     false,
	models.DomainTasks:        true,
	models.DomainEvents:       true,
}

// snapshotService is the concrete implementation of [SnapshotService].
type snapshotService struct {
	snapshots repository.SnapshotRepository
	logger    *logger.Logger
}

// NewSnapshotService constructs a [SnapshotService] backed by the given
// repository.
func NewSnapshotService(snapshots repository.SnapshotRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		snapshots: snapshots,
		logger:    logger,
	}
}

// GetSnapshot implements [SnapshotService]. A domain that was never written
// returns an empty snapshot rather than an error: to a first-time client
// "never synced" and "no records" are the same thing.
func (s *snapshotService) GetSnapshot(ctx context.Context, domain string, actorID string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	if err := validateDomainActor(domain, actorID); err != nil {
		log.Warn().
			Str("func", "snapshotService.GetSnapshot").
			Str("domain", domain).
			Str("actor_id", actorID).
			Msg("rejected snapshot read")
		return models.Snapshot{}, err
	}

	snapshot, err := s.snapshots.GetSnapshot(ctx, domain, actorID)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return models.Snapshot{
			Domain:  domain,
			ActorID: actorID,
			Records: models.EmptyRecords,
		}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotService.GetSnapshot").
			Str("domain", domain).
			Msg("error getting snapshot from repository")
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

// UpsertSnapshot implements [SnapshotService]. The server stamps the stored
// time itself so that clocks on client devices cannot reorder writes.
func (s *snapshotService) UpsertSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	if err := validateDomainActor(snapshot.Domain, snapshot.ActorID); err != nil {
		log.Warn().
			Str("func", "snapshotService.UpsertSnapshot").
			Str("domain", snapshot.Domain).
			Str("actor_id", snapshot.ActorID).
			Msg("rejected snapshot write")
		return err
	}
	if len(snapshot.Records) == 0 {
		return ErrValidationNoRecords
	}

	snapshot.UpdatedAt = time.Now().UTC()

	saveErr := s.snapshots.UpsertSnapshot(ctx, snapshot)
	if saveErr != nil {
		log.Err(saveErr).
			Str("func", "snapshotService.UpsertSnapshot").
			Str("domain", snapshot.Domain).
			Msg("error saving snapshot to repository")
		return saveErr
	}

	return nil
}

func validateDomainActor(domain string, actorID string) error {
	actorScoped, known := domainActorScoped[domain]
	if !known {
		return fmt.Errorf("%w: %q", ErrValidationUnknownDomain, domain)
	}
	if actorScoped && actorID == "" {
		return ErrValidationActorRequired
	}
	if !actorScoped && actorID != "" {
		return ErrValidationActorNotAllowed
	}
	return nil
}
