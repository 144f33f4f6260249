package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	snapshotsTable = "snapshots"
	snapshotRowID  = 1
)

// sqlSnapshotStorage keeps the snapshot as a JSON document in the single row
// of the snapshots table. Save upserts that row, so every write replaces the
// previous snapshot atomically.
type sqlSnapshotStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLSnapshotStorage constructs a [SnapshotStorage] on top of an open,
// migrated database connection.
func NewSQLSnapshotStorage(db *DB, log *logger.Logger) SnapshotStorage {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql snapshot storage")
	return &sqlSnapshotStorage{db: db, logger: log}
}

func (s *sqlSnapshotStorage) Load(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectSnapshotQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*sqlSnapshotStorage.Load").
			Str("pg_code", postgresError(err)).
			Stringer("class", s.db.errorClassificator.Classify(err)).
			Msg("error reading snapshot row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeSnapshot([]byte(data))
}

func (s *sqlSnapshotStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query, args, err := s.upsertSnapshotQuery(string(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sqlSnapshotStorage.Save").
			Str("pg_code", postgresError(err)).
			Stringer("class", s.db.errorClassificator.Classify(err)).
			Msg("error writing snapshot row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int("users", len(snapshot)).Msg("snapshot saved")
	return nil
}

func (s *sqlSnapshotStorage) Close() error {
	return s.db.Close()
}

func (s *sqlSnapshotStorage) selectSnapshotQuery() (string, []any, error) {
	return s.db.builder().
		Select("data").
		From(snapshotsTable).
		Where(sq.Eq{"id": snapshotRowID}).
		ToSql()
}

func (s *sqlSnapshotStorage) upsertSnapshotQuery(data string) (string, []any, error) {
	return s.db.builder().
		Insert(snapshotsTable).
		Columns("id", "data", "updated_at").
		Values(snapshotRowID, data, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
}
