package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alwanly/sec-edgar-navigator/internal/models"
)

func TestNewSQLiteDB_CreatesDirectoryAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "filings.db")

	db, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, RunMigrations(db))
	assert.True(t, db.Migrator().HasTable(&models.FilingArtifact{}))
	assert.FileExists(t, path)
}

func TestNewSQLiteDB_InMemory(t *testing.T) {
	db, err := NewSQLiteDB("")
	require.NoError(t, err)
	defer Close(db)
	assert.NoError(t, RunMigrations(db))
}
