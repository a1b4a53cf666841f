package cmd

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/config"
	"github.com/thyeshengleng/collection-form/database"
	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/repositories"
	"github.com/thyeshengleng/collection-form/services"
)

// openServices opens the database and wires repositories and services for the configured backend.
// The caller closes the returned database.
func openServices(cfg config.Config) (*sql.DB, *repositories.Repositories, *services.Services, error) {
	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		return nil, nil, nil, err
	}

	records, err := newRecordRepository(cfg, db)
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	repos := repositories.NewRepositories(db, records)
	return db, repos, services.NewServices(repos), nil
}

func newRecordRepository(cfg config.Config, db *sql.DB) (repositories.RecordRepository, error) {
	logger.Log.Info("using record backend", zap.String("backend", cfg.Backend))

	switch cfg.Backend {
	case config.BackendSQL:
		return repositories.NewSQLRecordRepository(db), nil
	case config.BackendHTTP:
		logger.Log.Info("records are kept by a remote store", zap.String("url", cfg.WorkerURL))
		return repositories.NewCollectionRepository(repositories.NewKVCollection(cfg.WorkerURL, cfg.HTTPTimeout)), nil
	case config.BackendCSV:
		logger.Log.Info("records are kept in a csv file", zap.String("path", cfg.CSVPath))
		return repositories.NewCollectionRepository(repositories.NewCSVCollection(cfg.CSVPath)), nil
	case config.BackendMemory:
		logger.Log.Warn("records are kept in memory and lost on exit")
		return repositories.NewCollectionRepository(repositories.NewMemoryCollection()), nil
	default:
		return nil, fmt.Errorf("unknown record backend %q", cfg.Backend)
	}
}
