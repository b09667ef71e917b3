package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_sessions (id TEXT PRIMARY KEY, screenshot_count INTEGER, started_at DATETIME)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_sessions")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "integer", colMap["screenshot_count"])
	assert.Equal(t, "datetime", colMap["started_at"])

	// PRAGMA table_info returns nothing for an unknown table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE shots (id TEXT, name TEXT)").Error)

	missing, err := MissingColumns(db, "shots", []string{"id", "NAME", "captured_at"})
	require.NoError(t, err)
	assert.Equal(t, []string{"captured_at"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
