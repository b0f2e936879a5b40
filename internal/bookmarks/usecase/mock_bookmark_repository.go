package usecase

import (
	"context"

	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/query"
)

// MockBookmarkRepository is a test mock for the BookmarkRepository interface.
type MockBookmarkRepository struct {
	FindByQueryFunc    func(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error)
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Bookmark, error)
	FindByURLFunc      func(ctx context.Context, url string) (*domain.Bookmark, error)
	CreateFunc         func(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error)
	UpdateFunc         func(ctx context.Context, id string, in domain.UpdateInput) (*domain.Bookmark, error)
	DeleteFunc         func(ctx context.Context, id string) error
	CountFunc          func(ctx context.Context) (int, error)
	ToggleFavoriteFunc func(ctx context.Context, id string) (*domain.Bookmark, error)
}

// Ensure MockBookmarkRepository implements BookmarkRepository
var _ BookmarkRepository = (*MockBookmarkRepository)(nil)

func (m *MockBookmarkRepository) FindByQuery(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error) {
	if m.FindByQueryFunc != nil {
		return m.FindByQueryFunc(ctx, q, opts...)
	}
	panic("MockBookmarkRepository.FindByQueryFunc not set")
}

func (m *MockBookmarkRepository) FindByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	panic("MockBookmarkRepository.FindByIDFunc not set")
}

func (m *MockBookmarkRepository) FindByURL(ctx context.Context, url string) (*domain.Bookmark, error) {
	if m.FindByURLFunc != nil {
		return m.FindByURLFunc(ctx, url)
	}
	panic("MockBookmarkRepository.FindByURLFunc not set")
}

func (m *MockBookmarkRepository) Create(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	panic("MockBookmarkRepository.CreateFunc not set")
}

func (m *MockBookmarkRepository) Update(ctx context.Context, id string, in domain.UpdateInput) (*domain.Bookmark, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	panic("MockBookmarkRepository.UpdateFunc not set")
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockBookmarkRepository.DeleteFunc not set")
}

func (m *MockBookmarkRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	panic("MockBookmarkRepository.CountFunc not set")
}

func (m *MockBookmarkRepository) ToggleFavorite(ctx context.Context, id string) (*domain.Bookmark, error) {
	if m.ToggleFavoriteFunc != nil {
		return m.ToggleFavoriteFunc(ctx, id)
	}
	panic("MockBookmarkRepository.ToggleFavoriteFunc not set")
}
