package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fanaperana/ekan/pkg/models"
)

func TestWorkspaceCreateAndGet(t *testing.T) {
	db := newTestDB(t)

	ws := createWorkspace(t, db, "Notes")

	var got models.Workspace
	require.NoError(t, got.Get(db, ws.ID))
	assert.Equal(t, ws.ID, got.ID)
	assert.Equal(t, "Notes", got.Name)
}

func TestWorkspaceCreateRequiresName(t *testing.T) {
	db := newTestDB(t)

	ws := models.Workspace{}
	err := ws.Create(db)
	require.Error(t, err)

	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr), "empty name should be a validation error")

	// Nothing may have been written.
	workspaces, err := models.GetWorkspaces(db)
	require.NoError(t, err)
	assert.Empty(t, workspaces)
}

func TestWorkspaceGetMissing(t *testing.T) {
	db := newTestDB(t)

	var ws models.Workspace
	err := ws.Get(db, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestWorkspaceDeleteMissing(t *testing.T) {
	db := newTestDB(t)

	ws := models.Workspace{ID: 42}
	err := ws.Delete(db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestGetWorkspacesOrderedAndIdempotent(t *testing.T) {
	db := newTestDB(t)

	first := createWorkspace(t, db, "first")
	second := createWorkspace(t, db, "second")
	third := createWorkspace(t, db, "third")

	workspaces, err := models.GetWorkspaces(db)
	require.NoError(t, err)
	require.Len(t, workspaces, 3)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID},
		[]uint{workspaces[0].ID, workspaces[1].ID, workspaces[2].ID})

	// Reading again without intervening writes returns the same result.
	again, err := models.GetWorkspaces(db)
	require.NoError(t, err)
	assert.Equal(t, workspaces, again)
}

func TestWorkspaceDeleteCascades(t *testing.T) {
	db := newTestDB(t)

	ws := createWorkspace(t, db, "doomed")
	page := createPage(t, db, ws.ID, "page")

	md := models.Markdown{Content: "# hello", PageID: page.ID}
	require.NoError(t, md.Create(db))

	require.NoError(t, ws.Delete(db))

	// Every descendant is gone with the root row.
	var pageCount, mdCount int64
	require.NoError(t, db.Model(&models.Page{}).Count(&pageCount).Error)
	require.NoError(t, db.Model(&models.Markdown{}).Count(&mdCount).Error)
	assert.Zero(t, pageCount)
	assert.Zero(t, mdCount)
}
