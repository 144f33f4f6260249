package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func fileStorageConfig(path string, createIfMissing bool) config.Storage {
	return config.Storage{
		DB:    config.DB{Driver: config.DriverFile},
		Files: config.Files{SnapshotPath: path, CreateIfMissing: createIfMissing},
	}
}

func TestNewStorages_File(t *testing.T) {
	ctx := context.Background()

	t.Run("missing snapshot is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")

		_, err := NewStorages(ctx, fileStorageConfig(path, false), logger.Nop())
		assert.ErrorIs(t, err, ErrSnapshotNotFound)

		_, statErr := os.Stat(path)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("missing snapshot is created on request", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "users.json")

		storages, err := NewStorages(ctx, fileStorageConfig(path, true), logger.Nop())
		require.NoError(t, err)
		defer storages.Close()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("malformed snapshot is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"alice":`), 0o600))

		_, err := NewStorages(ctx, fileStorageConfig(path, true), logger.Nop())
		assert.ErrorIs(t, err, ErrMalformedSnapshot)

		data, _ := os.ReadFile(path)
		assert.Equal(t, `{"alice":`, string(data), "malformed snapshot must not be overwritten")
	})

	t.Run("existing snapshot is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"alice": {"password": "hash", "tasks": [{"id": 4, "name": "A", "description": "", "status": "Pending"}]}
		}`), 0o600))

		storages, err := NewStorages(ctx, fileStorageConfig(path, false), logger.Nop())
		require.NoError(t, err)

		user, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash", user.PasswordHash)

		created, err := storages.TaskRepository.CreateTask(ctx, "alice", models.Task{Name: "B"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
	})
}

func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{
		DB:    config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "tasks.db")},
		Files: config.Files{CreateIfMissing: true},
	}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = storages.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	_, err = storages.TaskRepository.CreateTask(ctx, "alice", models.Task{Name: "A", Status: models.StatusPending})
	require.NoError(t, err)
	require.NoError(t, storages.Close())

	cfg.Files.CreateIfMissing = false
	reopened, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	tasks, err := reopened.TaskRepository.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Name)
}

func TestNewStorages_SQLiteMissingSnapshot(t *testing.T) {
	cfg := config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "tasks.db")},
	}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	cfg := config.Storage{DB: config.DB{Driver: "mongo"}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
