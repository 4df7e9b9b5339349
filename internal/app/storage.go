package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-CarRentalService/internal/config"
	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DBStatsRegisterer регистрирует метрики пула соединений
type DBStatsRegisterer interface {
	RegisterDBStats(db *sql.DB, dbName string) error
}

// OpenStore создает хранилище каталога по storage.driver.
// Возвращает функцию закрытия ресурсов хранилища
func OpenStore(cfg *config.Config, log Logger, stats DBStatsRegisterer) (fleetRepo.Store, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		log.Info("Using file storage: %s", cfg.Storage.FilePath)
		return fleetRepo.NewFileStore(cfg.Storage.FilePath), func() error { return nil }, nil

	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if stats != nil {
			if err := stats.RegisterDBStats(db, cfg.Database.DBName); err != nil {
				log.Warn("Failed to register database metrics: %v", err)
			}
		}

		return fleetRepo.NewPostgresStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown storage.driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}

// LoadCatalog загружает каталог из хранилища при старте процесса
func LoadCatalog(ctx context.Context, store fleetRepo.Store, log Logger) (*fleetRepo.Catalog, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog, err := fleetRepo.NewCatalogFromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to restore catalog: %w", err)
	}

	log.Info("Catalog loaded: %d cars, last id=%d", len(snapshot.Cars), snapshot.LastID)
	return catalog, nil
}

// SaveCatalog сохраняет каталог при корректном завершении.
// Снимок берется в разделяемой секции, чтобы не попасть посреди аренды.
// Отмена ctx не прерывает снимок: после остановки сервера это последний шанс записать сессию
func SaveCatalog(ctx context.Context, catalog *fleetRepo.Catalog, store fleetRepo.Store, log Logger) error {
	var snapshot *fleetRepo.Snapshot
	err := catalog.DoReadOnly(context.WithoutCancel(ctx), func(txCtx context.Context) error {
		var err error
		snapshot, err = catalog.Snapshot(txCtx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to snapshot catalog: %w", err)
	}

	if err := store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	log.Info("Catalog saved: %d cars, last id=%d", len(snapshot.Cars), snapshot.LastID)
	return nil
}
