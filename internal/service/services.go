package service

import (
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/repository"
)

type Services struct {
	SnapshotService SnapshotService
}

func NewServices(snapshots repository.SnapshotRepository, logger *logger.Logger) *Services {
	return &Services{
		SnapshotService: NewSnapshotService(snapshots, logger),
	}
}
