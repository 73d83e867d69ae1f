package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Fanaperana/ekan/pkg/database"
	"github.com/Fanaperana/ekan/pkg/models"
)

// newTestDB opens a fresh in-memory database with the full schema and
// foreign key enforcement, matching what the application connects to.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Path: ":memory:"}, nil)
	require.NoError(t, err)

	return db
}

// createWorkspace is a shorthand for tests that need a parent workspace.
func createWorkspace(t *testing.T, db *gorm.DB, name string) models.Workspace {
	t.Helper()

	ws := models.Workspace{Name: name}
	require.NoError(t, ws.Create(db))
	require.NotZero(t, ws.ID)
	return ws
}

// createPage is a shorthand for tests that need a page under a workspace.
func createPage(t *testing.T, db *gorm.DB, workspaceID uint, title string) models.Page {
	t.Helper()

	p := models.Page{Title: title, WorkspaceID: workspaceID}
	require.NoError(t, p.Create(db))
	require.NotZero(t, p.ID)
	return p
}
