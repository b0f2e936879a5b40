package optimistic

import (
	"context"
	"errors"
	"testing"

	"markfy/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedBookmark() client.Bookmark {
	return client.Bookmark{
		ID:         "abc123",
		Title:      "Go Documentation",
		URL:        "https://go.dev/doc/",
		IsFavorite: false,
	}
}

// TestBegin_ToggleFavorite_VisibleBeforeResolution verifies the projection
// reflects the action synchronously, before any network call resolves
func TestBegin_ToggleFavorite_VisibleBeforeResolution(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())

	// Act
	snap, _ := c.Begin(ToggleFavorite())

	// Assert
	assert.True(t, snap.Bookmark.IsFavorite)
	assert.Equal(t, Pending, c.State())
}

// TestRollback_ToggleFavorite_RestoresPreActionValue verifies failure reverts
// the projection exactly
func TestRollback_ToggleFavorite_RestoresPreActionValue(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, token := c.Begin(ToggleFavorite())

	// Act
	ok := c.Rollback(token)

	// Assert
	assert.True(t, ok)
	assert.False(t, c.Projection().Bookmark.IsFavorite)
	assert.Equal(t, Idle, c.State())
}

// TestCommit_WithServerValue_AdoptsIt verifies the server's entity wins
func TestCommit_WithServerValue_AdoptsIt(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, token := c.Begin(ToggleFavorite())
	server := confirmedBookmark()
	server.IsFavorite = true
	server.UpdatedAt = "2025-03-01T12:00:00Z"

	// Act
	ok := c.Commit(token, &server)

	// Assert
	assert.True(t, ok)
	snap := c.Projection()
	assert.True(t, snap.Bookmark.IsFavorite)
	assert.Equal(t, "2025-03-01T12:00:00Z", snap.Bookmark.UpdatedAt)
	assert.Equal(t, Idle, c.State())
}

// TestCommit_WithoutServerValue_FoldsActionLocally verifies local folding
func TestCommit_WithoutServerValue_FoldsActionLocally(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, token := c.Begin(ToggleFavorite())

	// Act
	ok := c.Commit(token, nil)

	// Assert
	assert.True(t, ok)
	assert.True(t, c.Projection().Bookmark.IsFavorite)
}

// TestCommit_StaleToken_Discarded verifies a superseded resolution cannot
// overwrite newer optimistic state
func TestCommit_StaleToken_Discarded(t *testing.T) {
	// Arrange
	title1 := "First Edit"
	title2 := "Second Edit"
	c := NewController(confirmedBookmark())
	_, stale := c.Begin(Update(client.UpdateRequest{Title: &title1}))
	_, current := c.Begin(Update(client.UpdateRequest{Title: &title2}))

	// Act: the older request resolves after being superseded
	staleServer := confirmedBookmark()
	staleServer.Title = title1
	staleOK := c.Commit(stale, &staleServer)

	// Assert: the stale commit is ignored, the newer action is still pending
	assert.False(t, staleOK)
	assert.Equal(t, Pending, c.State())
	assert.Equal(t, "Second Edit", c.Projection().Bookmark.Title)

	// The current resolution still lands normally
	assert.True(t, c.Commit(current, nil))
	assert.Equal(t, "Second Edit", c.Projection().Bookmark.Title)
}

// TestRollback_StaleToken_Discarded verifies stale failures are also ignored
func TestRollback_StaleToken_Discarded(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, stale := c.Begin(ToggleFavorite())
	_, _ = c.Begin(ToggleFavorite())

	// Act
	ok := c.Rollback(stale)

	// Assert
	assert.False(t, ok)
	assert.Equal(t, Pending, c.State())
}

// TestBegin_Delete_MarksPendingDelete verifies delete projection semantics
func TestBegin_Delete_MarksPendingDelete(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())

	// Act
	snap, token := c.Begin(Delete())

	// Assert
	assert.True(t, snap.PendingDelete)
	assert.False(t, c.Deleted())

	require.True(t, c.Commit(token, nil))
	assert.True(t, c.Deleted())
}

// TestRollback_Delete_RestoresItem verifies a failed delete reappears
func TestRollback_Delete_RestoresItem(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, token := c.Begin(Delete())

	// Act
	c.Rollback(token)

	// Assert
	snap := c.Projection()
	assert.False(t, snap.PendingDelete)
	assert.False(t, c.Deleted())
}

// TestConfirm_Revalidation_IsSourceOfTruth verifies server state replaces the
// confirmed value while a pending action stays applied on top
func TestConfirm_Revalidation_IsSourceOfTruth(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	_, token := c.Begin(ToggleFavorite())

	revalidated := confirmedBookmark()
	revalidated.Title = "Renamed Elsewhere"

	// Act
	c.Confirm(revalidated)

	// Assert: pending toggle still projected on top of the new truth
	snap := c.Projection()
	assert.Equal(t, "Renamed Elsewhere", snap.Bookmark.Title)
	assert.True(t, snap.Bookmark.IsFavorite)

	c.Commit(token, nil)
	assert.True(t, c.Projection().Bookmark.IsFavorite)
}

// TestUpdate_PartialPatch_MergesOnlyProvidedFields verifies patch merging
func TestUpdate_PartialPatch_MergesOnlyProvidedFields(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	desc := "New description"

	// Act
	snap, _ := c.Begin(Update(client.UpdateRequest{Description: &desc}))

	// Assert
	assert.Equal(t, "New description", snap.Bookmark.Description)
	assert.Equal(t, "Go Documentation", snap.Bookmark.Title)
	assert.Equal(t, "https://go.dev/doc/", snap.Bookmark.URL)
}

// TestDo_MutateFails_RollsBackAndReturnsError verifies the round-trip helper
func TestDo_MutateFails_RollsBackAndReturnsError(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	boom := errors.New("network down")
	var sawPendingDuringMutate bool

	// Act
	err := c.Do(context.Background(), ToggleFavorite(), func(ctx context.Context) (*client.Bookmark, error) {
		sawPendingDuringMutate = c.Projection().Bookmark.IsFavorite
		return nil, boom
	})

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.True(t, sawPendingDuringMutate)
	assert.False(t, c.Projection().Bookmark.IsFavorite)
	assert.Equal(t, Idle, c.State())
}

// TestDo_MutateSucceeds_CommitsServerValue verifies the success path
func TestDo_MutateSucceeds_CommitsServerValue(t *testing.T) {
	// Arrange
	c := NewController(confirmedBookmark())
	server := confirmedBookmark()
	server.IsFavorite = true

	// Act
	err := c.Do(context.Background(), ToggleFavorite(), func(ctx context.Context) (*client.Bookmark, error) {
		return &server, nil
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, c.Projection().Bookmark.IsFavorite)
	assert.Equal(t, Idle, c.State())
}
