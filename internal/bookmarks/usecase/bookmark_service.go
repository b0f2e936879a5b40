package usecase

import (
	"context"
	"time"

	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/query"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BookmarkService implements the business rules on top of the repository:
// URL uniqueness, not-found translation, and response shaping.
type BookmarkService struct {
	repo   BookmarkRepository
	logger *zap.Logger
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(repo BookmarkRepository, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{
		repo:   repo,
		logger: logger,
	}
}

// LinkResponse is the API-shaped view of a bookmark. Timestamps are RFC3339
// UTC strings; an empty description is omitted.
type LinkResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	IsFavorite  bool   `json:"isFavorite"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// PaginatedLinks is a page of links with its pagination metadata.
type PaginatedLinks struct {
	Data       []LinkResponse    `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// GetLinks returns one page of bookmarks matching the query.
func (s *BookmarkService) GetLinks(ctx context.Context, q domain.Query) (*PaginatedLinks, error) {
	result, err := s.repo.FindByQuery(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.mapList(q, result), nil
}

// GetFavoriteLinks returns one page of favorite bookmarks, newest first.
// The favorites filter is applied at the store so the total counts real
// favorites, not just the favorites that landed on the current page.
func (s *BookmarkService) GetFavoriteLinks(ctx context.Context, q domain.Query) (*PaginatedLinks, error) {
	q.Sort = domain.SortNewest
	result, err := s.repo.FindByQuery(ctx, q, query.OnlyFavorites())
	if err != nil {
		return nil, err
	}
	return s.mapList(q, result), nil
}

// GetLinkByID returns the mapped bookmark, or (nil, nil) when it does not
// exist. The delivery layer decides whether absence becomes a 404.
func (s *BookmarkService) GetLinkByID(ctx context.Context, id string) (*LinkResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	resp := mapLink(b)
	return &resp, nil
}

// CreateLink validates the input, rejects duplicate URLs, and persists a new
// bookmark. The pre-check produces a friendly conflict before the storage
// unique index, which remains the authoritative guard against races.
func (s *BookmarkService) CreateLink(ctx context.Context, in domain.CreateInput) (*LinkResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByURL(ctx, in.URL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateURL
	}

	b, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("bookmark created",
		zap.String("id", b.ID),
		zap.String("url", b.URL),
	)

	resp := mapLink(b)
	return &resp, nil
}

// UpdateLink applies a partial update. When the url changes, uniqueness is
// re-checked against the new value.
func (s *BookmarkService) UpdateLink(ctx context.Context, id string, in domain.UpdateInput) (*LinkResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if in.URL != nil && *in.URL != existing.URL {
		duplicate, err := s.repo.FindByURL(ctx, *in.URL)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, domain.ErrDuplicateURL
		}
	}

	b, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	resp := mapLink(b)
	return &resp, nil
}

// DeleteLink removes a bookmark, failing with domain.ErrNotFound when the
// id does not exist.
func (s *BookmarkService) DeleteLink(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("bookmark deleted", zap.String("id", id))
	return nil
}

// ToggleFavorite flips the favorite flag and returns the updated bookmark.
func (s *BookmarkService) ToggleFavorite(ctx context.Context, id string) (*LinkResponse, error) {
	b, err := s.repo.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapLink(b)
	return &resp, nil
}

func (s *BookmarkService) mapList(q domain.Query, result *FindResult) *PaginatedLinks {
	return &PaginatedLinks{
		Data:       lo.Map(result.Items, func(b *domain.Bookmark, _ int) LinkResponse { return mapLink(b) }),
		Pagination: domain.NewPagination(q.Page, q.Limit, result.Total),
	}
}

func mapLink(b *domain.Bookmark) LinkResponse {
	return LinkResponse{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		IsFavorite:  b.IsFavorite,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
