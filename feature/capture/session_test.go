package capture

import (
	"context"
	"testing"
	"time"

	"simulation-server/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLiteStore(t *testing.T) *GormSessionStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := NewGormSessionStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGormSessionStore_Lifecycle(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Begin(ctx, "older", base))
	require.NoError(t, store.Begin(ctx, "newer", base.Add(time.Hour)))
	require.NoError(t, store.Finish(ctx, "older", base.Add(2*time.Minute), 3))

	sessions, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "newer", sessions[0].ID)
	assert.Nil(t, sessions[0].StoppedAt)
	assert.Equal(t, "older", sessions[1].ID)
	assert.Equal(t, 3, sessions[1].ScreenshotCount)
	require.NotNil(t, sessions[1].StoppedAt)
	assert.True(t, sessions[1].StoppedAt.Equal(base.Add(2*time.Minute)))

	limited, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGormSessionStore_Columns(t *testing.T) {
	store := newSQLiteStore(t)

	missing, err := database.MissingColumns(store.db, SessionTable, SessionColumns)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestGormSessionStore_BeginError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormSessionStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `capture_sessions`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Begin(context.Background(), "s-1", time.Now())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSessionStore_RecentError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormSessionStore(db)

	mock.ExpectQuery("SELECT \\* FROM `capture_sessions`").WillReturnError(assert.AnError)

	_, err := store.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, assert.AnError)
}
