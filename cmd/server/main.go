package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/handler"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/repository"
	"github.com/hearthkeep/hearthkeep/internal/server"
	"github.com/hearthkeep/hearthkeep/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hearthkeep-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := connectDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(repository.NewSnapshotRepository(db, log), log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// connectDB picks the driver by DSN shape: anything that is not a Postgres
// URL is treated as a SQLite file path.
func connectDB(cfg *config.ServerConfig, log *logger.Logger) (*repository.DB, error) {
	ctx := context.Background()

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return repository.NewConnectPostgres(ctx, cfg, log)
	}
	return repository.NewConnectSQLite(ctx, cfg, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
