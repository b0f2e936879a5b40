package optimistic

import (
	"context"
	"sync"

	"markfy/pkg/client"
)

// Mutator is the slice of the API client the list needs. *client.Client
// satisfies it.
type Mutator interface {
	ToggleFavorite(ctx context.Context, id string) (*client.Bookmark, error)
	DeleteLink(ctx context.Context, id string) error
}

// RefreshFunc reloads the full confirmed list from the server.
type RefreshFunc func(ctx context.Context) ([]client.Bookmark, error)

// List is the list-level optimistic projection: toggles patch an item in
// place and deletes remove it, both before the server responds. A failed
// toggle reverts the item; a failed delete forces a full refresh, since the
// item was already removed from the projected slice.
type List struct {
	mu      sync.Mutex
	items   []client.Bookmark
	api     Mutator
	refresh RefreshFunc
}

// NewList creates a list projection seeded with server-confirmed items.
func NewList(items []client.Bookmark, api Mutator, refresh RefreshFunc) *List {
	return &List{
		items:   append([]client.Bookmark(nil), items...),
		api:     api,
		refresh: refresh,
	}
}

// Items returns a copy of the projected list.
func (l *List) Items() []client.Bookmark {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]client.Bookmark(nil), l.items...)
}

// ToggleFavorite flips the item's flag locally, then asks the server. On
// failure the flag reverts; on success the server's version of the item is
// adopted.
func (l *List) ToggleFavorite(ctx context.Context, id string) error {
	if !l.patchFavorite(id) {
		return nil
	}

	updated, err := l.api.ToggleFavorite(ctx, id)
	if err != nil {
		l.patchFavorite(id) // revert the flip
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i] = *updated
			break
		}
	}
	return nil
}

// Delete removes the item locally, then asks the server. On failure the
// confirmed list is reloaded wholesale, because the local removal cannot be
// undone reliably in place.
func (l *List) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	kept := l.items[:0:0]
	removed := false
	for _, b := range l.items {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	l.items = kept
	l.mu.Unlock()

	if !removed {
		return nil
	}

	if err := l.api.DeleteLink(ctx, id); err != nil {
		if refreshErr := l.Refresh(ctx); refreshErr != nil {
			return refreshErr
		}
		return err
	}
	return nil
}

// Refresh replaces the projection with the server-confirmed list.
func (l *List) Refresh(ctx context.Context) error {
	items, err := l.refresh(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]client.Bookmark(nil), items...)
	return nil
}

// patchFavorite flips the favorite flag of the item with the given id,
// reporting whether the item exists.
func (l *List) patchFavorite(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].IsFavorite = !l.items[i].IsFavorite
			return true
		}
	}
	return false
}
