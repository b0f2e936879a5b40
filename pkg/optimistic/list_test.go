package optimistic

import (
	"context"
	"errors"
	"testing"

	"markfy/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMutator struct {
	toggleFunc func(ctx context.Context, id string) (*client.Bookmark, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeMutator) ToggleFavorite(ctx context.Context, id string) (*client.Bookmark, error) {
	return f.toggleFunc(ctx, id)
}

func (f *fakeMutator) DeleteLink(ctx context.Context, id string) error {
	return f.deleteFunc(ctx, id)
}

func listItems() []client.Bookmark {
	return []client.Bookmark{
		{ID: "a", Title: "Alpha", IsFavorite: false},
		{ID: "b", Title: "Beta", IsFavorite: true},
	}
}

// TestListToggleFavorite_Success_AdoptsServerItem verifies the happy path
func TestListToggleFavorite_Success_AdoptsServerItem(t *testing.T) {
	// Arrange
	api := &fakeMutator{
		toggleFunc: func(ctx context.Context, id string) (*client.Bookmark, error) {
			return &client.Bookmark{ID: "a", Title: "Alpha", IsFavorite: true, UpdatedAt: "2025-03-01T12:00:00Z"}, nil
		},
	}
	l := NewList(listItems(), api, nil)

	// Act
	err := l.ToggleFavorite(context.Background(), "a")

	// Assert
	require.NoError(t, err)
	items := l.Items()
	assert.True(t, items[0].IsFavorite)
	assert.Equal(t, "2025-03-01T12:00:00Z", items[0].UpdatedAt)
}

// TestListToggleFavorite_Failure_RevertsFlip verifies the rollback
func TestListToggleFavorite_Failure_RevertsFlip(t *testing.T) {
	// Arrange
	var flippedDuringCall bool
	var l *List
	api := &fakeMutator{
		toggleFunc: func(ctx context.Context, id string) (*client.Bookmark, error) {
			flippedDuringCall = l.Items()[0].IsFavorite
			return nil, errors.New("server error")
		},
	}
	l = NewList(listItems(), api, nil)

	// Act
	err := l.ToggleFavorite(context.Background(), "a")

	// Assert
	require.Error(t, err)
	assert.True(t, flippedDuringCall)
	assert.False(t, l.Items()[0].IsFavorite)
}

// TestListToggleFavorite_UnknownID_IsNoop verifies missing items are ignored
func TestListToggleFavorite_UnknownID_IsNoop(t *testing.T) {
	// Arrange
	api := &fakeMutator{
		toggleFunc: func(ctx context.Context, id string) (*client.Bookmark, error) {
			t.Fatal("server should not be called for an unknown id")
			return nil, nil
		},
	}
	l := NewList(listItems(), api, nil)

	// Act
	err := l.ToggleFavorite(context.Background(), "zzz")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, listItems(), l.Items())
}

// TestListDelete_Success_RemovesItemImmediately verifies optimistic removal
func TestListDelete_Success_RemovesItemImmediately(t *testing.T) {
	// Arrange
	var lenDuringCall int
	var l *List
	api := &fakeMutator{
		deleteFunc: func(ctx context.Context, id string) error {
			lenDuringCall = len(l.Items())
			return nil
		},
	}
	l = NewList(listItems(), api, nil)

	// Act
	err := l.Delete(context.Background(), "a")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, lenDuringCall)
	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

// TestListDelete_Failure_RefreshesFromServer verifies a failed delete restores
// the confirmed list wholesale
func TestListDelete_Failure_RefreshesFromServer(t *testing.T) {
	// Arrange
	boom := errors.New("server error")
	api := &fakeMutator{
		deleteFunc: func(ctx context.Context, id string) error {
			return boom
		},
	}
	refresh := func(ctx context.Context) ([]client.Bookmark, error) {
		return listItems(), nil
	}
	l := NewList(listItems(), api, refresh)

	// Act
	err := l.Delete(context.Background(), "a")

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.Len(t, l.Items(), 2)
}

// TestListRefresh_ReplacesProjection verifies refresh semantics
func TestListRefresh_ReplacesProjection(t *testing.T) {
	// Arrange
	refreshed := []client.Bookmark{{ID: "c", Title: "Gamma"}}
	l := NewList(listItems(), &fakeMutator{}, func(ctx context.Context) ([]client.Bookmark, error) {
		return refreshed, nil
	})

	// Act
	err := l.Refresh(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, refreshed, l.Items())
}

// TestListItems_ReturnsCopy verifies callers cannot mutate internal state
func TestListItems_ReturnsCopy(t *testing.T) {
	// Arrange
	l := NewList(listItems(), &fakeMutator{}, nil)

	// Act
	items := l.Items()
	items[0].Title = "Mutated"

	// Assert
	assert.Equal(t, "Alpha", l.Items()[0].Title)
}
