package usecase

import (
	"context"

	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/query"
)

// FindResult is a page of bookmarks plus the filter-wide total.
type FindResult struct {
	Items []*domain.Bookmark
	Total int
}

// BookmarkRepository is the storage contract the service depends on.
//
// FindByID and FindByURL return (nil, nil) when no record matches; absence
// is not an error at this layer. ToggleFavorite, Update and Delete report a
// missing id as domain.ErrNotFound, and Create/Update report a violated url
// uniqueness constraint as domain.ErrDuplicateURL.
type BookmarkRepository interface {
	FindByQuery(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error)
	FindByID(ctx context.Context, id string) (*domain.Bookmark, error)
	FindByURL(ctx context.Context, url string) (*domain.Bookmark, error)
	Create(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error)
	Update(ctx context.Context, id string, in domain.UpdateInput) (*domain.Bookmark, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ToggleFavorite(ctx context.Context, id string) (*domain.Bookmark, error)
}
