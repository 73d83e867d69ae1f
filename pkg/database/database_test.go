package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectCreatesSchema(t *testing.T) {
	db, err := Connect(Config{Path: ":memory:"}, nil)
	require.NoError(t, err)

	for _, table := range []string{"workspaces", "pages", "markdowns"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestConnectRequiresPath(t *testing.T) {
	_, err := Connect(Config{}, nil)
	require.Error(t, err)
}

func TestConnectCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ekan.db")

	db, err := Connect(Config{Path: path}, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("workspaces").Count(&count).Error)
	assert.Zero(t, count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := Connect(Config{Path: ":memory:"}, nil)
	require.NoError(t, err)

	// A page referencing a missing workspace must be rejected by the store
	// itself, not by application checks.
	err = db.Exec(
		"INSERT INTO pages (title, position, workspace_id) VALUES (?, ?, ?)",
		"orphan", 0, 999,
	).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db, err := Connect(Config{Path: ":memory:"}, nil)
	require.NoError(t, err)

	sentinel := assert.AnError
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("INSERT INTO workspaces (name) VALUES (?)", "doomed").Error; err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel, "the original failure must propagate unchanged")

	var count int64
	require.NoError(t, db.Table("workspaces").Count(&count).Error)
	assert.Zero(t, count, "the transaction must roll back")
}

func TestTransactionCommitsOnSuccess(t *testing.T) {
	db, err := Connect(Config{Path: ":memory:"}, nil)
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec("INSERT INTO workspaces (name) VALUES (?)", "kept").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("workspaces").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
