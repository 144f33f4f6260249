package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Storages bundles the persistence components used by the service layer.
type Storages struct {
	SnapshotStorage SnapshotStorage
	UserRepository  UserRepository
	TaskRepository  TaskRepository
}

// NewStorages opens the snapshot backend selected by cfg.DB.Driver, loads the
// credential store from it and wires the repositories.
//
// A missing snapshot is fatal unless cfg.Files.CreateIfMissing is set, in
// which case an empty snapshot is written first. A malformed snapshot is
// always fatal.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	snapshotStorage, err := newSnapshotStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	storages, err := NewStoragesFrom(ctx, snapshotStorage, cfg.Files.CreateIfMissing, log)
	if err != nil {
		_ = snapshotStorage.Close()
		return nil, err
	}

	return storages, nil
}

// NewStoragesFrom wires the repositories on top of an existing
// [SnapshotStorage] and loads the credential store.
func NewStoragesFrom(ctx context.Context, snapshotStorage SnapshotStorage, createIfMissing bool, log *logger.Logger) (*Storages, error) {
	if createIfMissing {
		if err := ensureSnapshot(ctx, snapshotStorage, log); err != nil {
			return nil, err
		}
	}

	users := NewUserRepository(snapshotStorage, log)
	if err := users.Load(ctx); err != nil {
		return nil, err
	}

	return &Storages{
		SnapshotStorage: snapshotStorage,
		UserRepository:  users,
		TaskRepository:  NewTaskRepository(users, log),
	}, nil
}

// Close releases the snapshot backend.
func (s *Storages) Close() error {
	if s == nil || s.SnapshotStorage == nil {
		return nil
	}
	return s.SnapshotStorage.Close()
}

func newSnapshotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SnapshotStorage, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverFile, "":
		return NewFileSnapshotStorage(cfg.Files.SnapshotPath, log), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLSnapshotStorage(db, log), nil
}

// ensureSnapshot writes an empty snapshot when none exists yet.
func ensureSnapshot(ctx context.Context, snapshotStorage SnapshotStorage, log *logger.Logger) error {
	_, err := snapshotStorage.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	log.Warn().Msg("snapshot not found, creating an empty one")
	if err = snapshotStorage.Save(ctx, models.Snapshot{}); err != nil {
		return fmt.Errorf("error creating empty snapshot: %w", err)
	}

	return nil
}
