package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// fileSnapshotStorage keeps the snapshot in a single JSON file. The layout is
// a username → user object, compatible with users.json files written by
// earlier versions of the server.
//
// Save writes to a temporary file in the same directory and renames it over
// the target, so a crash mid-write never leaves a truncated snapshot behind.
type fileSnapshotStorage struct {
	path   string
	logger *logger.Logger
}

// NewFileSnapshotStorage constructs a [SnapshotStorage] backed by the file at
// path. The file is not touched until Load or Save is called.
func NewFileSnapshotStorage(path string, log *logger.Logger) SnapshotStorage {
	log.Debug().Str("path", path).Msg("creating file snapshot storage")
	return &fileSnapshotStorage{path: path, logger: log}
}

func (s *fileSnapshotStorage) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, s.path)
		}
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return snapshot, nil
}

func (s *fileSnapshotStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing snapshot file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error syncing snapshot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing snapshot file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("error setting snapshot file mode: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("error replacing snapshot file: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("path", s.path).Int("users", len(snapshot)).Msg("snapshot saved")
	return nil
}

func (s *fileSnapshotStorage) Close() error {
	return nil
}
