package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestSQLStorage(t *testing.T, placeholder sq.PlaceholderFormat) (*sqlSnapshotStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		dialect:            "pgx",
		placeholder:        placeholder,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	return NewSQLSnapshotStorage(db, l).(*sqlSnapshotStorage), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLSnapshotStorage_Queries(t *testing.T) {
	pg, _ := newTestSQLStorage(t, sq.Dollar)
	lite, _ := newTestSQLStorage(t, sq.Question)

	query, args, err := pg.selectSnapshotQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT data FROM snapshots WHERE id = $1", query)
	assert.Equal(t, []any{snapshotRowID}, args)

	query, args, err = pg.upsertSnapshotQuery("{}")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO snapshots (id,data,updated_at) VALUES ($1,$2,CURRENT_TIMESTAMP) "+
		"ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at", query)
	assert.Equal(t, []any{snapshotRowID, "{}"}, args)

	query, _, err = lite.upsertSnapshotQuery("{}")
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,CURRENT_TIMESTAMP)")
}

func TestSQLSnapshotStorage_Load(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM snapshots WHERE id = $1")).
		WithArgs(snapshotRowID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow(`{"alice": {"password": "hash", "tasks": [{"id": 3, "name": "A", "status": "Pending"}]}}`))

	snapshot, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, snapshot, "alice")
	assert.Equal(t, "alice", snapshot["alice"].Username)
	assert.Equal(t, int64(4), snapshot["alice"].NextTaskID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSnapshotStorage_LoadNoRow(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectQuery("SELECT data FROM snapshots").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSQLSnapshotStorage_LoadMalformed(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectQuery("SELECT data FROM snapshots").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow("not json"))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestSQLSnapshotStorage_LoadQueryError(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectQuery("SELECT data FROM snapshots").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Equal(t, pgerrcode.UndefinedTable, postgresError(err))
}

func TestSQLSnapshotStorage_Save(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(snapshotRowID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Save(context.Background(), models.Snapshot{"alice": {PasswordHash: "hash", Tasks: []models.Task{}}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSnapshotStorage_SaveError(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)

	mock.ExpectExec("INSERT INTO snapshots").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := s.Save(context.Background(), models.Snapshot{})
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestSQLSnapshotStorage_Close(t *testing.T) {
	s, mock := newTestSQLStorage(t, sq.Dollar)
	mock.ExpectClose()

	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
