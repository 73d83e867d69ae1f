package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fanaperana/ekan/pkg/models"
)

func TestPageCreateAssignsIncreasingPositions(t *testing.T) {
	db := newTestDB(t)
	ws := createWorkspace(t, db, "ws")

	seen := make(map[int]bool)
	prev := -1
	for i := 0; i < 5; i++ {
		p := createPage(t, db, ws.ID, fmt.Sprintf("page %d", i))
		assert.Equal(t, i, p.Position)
		assert.Greater(t, p.Position, prev, "positions must increase in creation order")
		assert.False(t, seen[p.Position], "positions must be unique within a workspace")
		seen[p.Position] = true
		prev = p.Position
	}
}

func TestPagePositionsIndependentPerWorkspace(t *testing.T) {
	db := newTestDB(t)
	one := createWorkspace(t, db, "one")
	two := createWorkspace(t, db, "two")

	a := createPage(t, db, one.ID, "a")
	b := createPage(t, db, two.ID, "b")

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 0, b.Position, "position scope is the workspace, not the table")
}

func TestPageCreateRequiresLiveWorkspace(t *testing.T) {
	db := newTestDB(t)

	p := models.Page{Title: "orphan", WorkspaceID: 99}
	err := p.Create(db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestPageCreateRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	ws := createWorkspace(t, db, "ws")

	p := models.Page{WorkspaceID: ws.ID}
	err := p.Create(db)
	require.Error(t, err)

	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestPageDeleteLeavesGap(t *testing.T) {
	db := newTestDB(t)
	ws := createWorkspace(t, db, "ws")

	createPage(t, db, ws.ID, "a")
	b := createPage(t, db, ws.ID, "b")
	createPage(t, db, ws.ID, "c")

	require.NoError(t, b.Delete(db))

	pages, err := models.GetPagesForWorkspace(db, ws.ID)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	// Siblings keep their positions; the next create appends after the max.
	assert.Equal(t, 0, pages[0].Position)
	assert.Equal(t, 2, pages[1].Position)

	d := createPage(t, db, ws.ID, "d")
	assert.Equal(t, 3, d.Position)
}

func TestPageNavigation(t *testing.T) {
	db := newTestDB(t)
	ws := createWorkspace(t, db, "ws")

	a := createPage(t, db, ws.ID, "a")
	b := createPage(t, db, ws.ID, "b")
	c := createPage(t, db, ws.ID, "c")

	next, err := models.NextPage(db, a.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, b.ID, next.ID)

	prev, err := models.PreviousPage(db, next.ID)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, a.ID, prev.ID, "previous of next must return the original page")

	// Boundaries return absent, not an error.
	last, err := models.NextPage(db, c.ID)
	require.NoError(t, err)
	assert.Nil(t, last)

	first, err := models.PreviousPage(db, a.ID)
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestPageNavigationMissingAnchor(t *testing.T) {
	db := newTestDB(t)

	_, err := models.NextPage(db, 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = models.PreviousPage(db, 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestPageNavigationInverseAlongSequence(t *testing.T) {
	db := newTestDB(t)
	ws := createWorkspace(t, db, "ws")

	var pages []models.Page
	for i := 0; i < 4; i++ {
		pages = append(pages, createPage(t, db, ws.ID, fmt.Sprintf("p%d", i)))
	}

	for _, p := range pages[:len(pages)-1] {
		next, err := models.NextPage(db, p.ID)
		require.NoError(t, err)
		require.NotNil(t, next)

		back, err := models.PreviousPage(db, next.ID)
		require.NoError(t, err)
		require.NotNil(t, back)
		assert.Equal(t, p.ID, back.ID)
	}
}

func TestDeletePageScenario(t *testing.T) {
	// Create workspace "W", pages "A" and "B", markdown "m1" on "A", then
	// delete "A": only "B" remains and "m1" is unreachable.
	db := newTestDB(t)
	ws := createWorkspace(t, db, "W")

	a := createPage(t, db, ws.ID, "A")
	b := createPage(t, db, ws.ID, "B")
	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, b.Position)

	m1 := models.Markdown{Content: "m1", PageID: a.ID}
	require.NoError(t, m1.Create(db))

	require.NoError(t, a.Delete(db))

	pages, err := models.GetPagesForWorkspace(db, ws.ID)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "B", pages[0].Title)

	var gone models.Markdown
	err = gone.Get(db, m1.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
