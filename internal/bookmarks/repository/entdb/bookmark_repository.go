package entdb

import (
	"context"
	"fmt"

	"markfy/ent"
	"markfy/ent/bookmark"
	"markfy/ent/predicate"
	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/query"
	"markfy/internal/bookmarks/usecase"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Compile-time interface check
var _ usecase.BookmarkRepository = (*BookmarkRepository)(nil)

// toggleRetries bounds the conditional-update loop in ToggleFavorite.
const toggleRetries = 3

// BookmarkRepository implements usecase.BookmarkRepository with ent, with a
// read-through cache in front of FindByID.
type BookmarkRepository struct {
	client *ent.Client
	cache  BookmarkCache
	logger *zap.Logger
}

// NewBookmarkRepository creates a new ent-backed bookmark repository.
func NewBookmarkRepository(client *ent.Client, cache BookmarkCache, logger *zap.Logger) *BookmarkRepository {
	return &BookmarkRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// FindByQuery lists bookmarks per the query's plan and counts the matches.
// The list and count share one predicate set, so the total reflects the
// filter only, never the pagination window.
func (r *BookmarkRepository) FindByQuery(ctx context.Context, q domain.Query, opts ...query.Option) (*usecase.FindResult, error) {
	plan := query.Build(q, opts...)
	preds := predicates(plan)

	items, err := r.client.Bookmark.Query().
		Where(preds...).
		Order(orderOptions(plan.Order)...).
		Offset(plan.Offset).
		Limit(plan.Limit).
		All(ctx)
	if err != nil {
		return nil, err
	}

	total, err := r.client.Bookmark.Query().
		Where(preds...).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.FindResult{
		Items: lo.Map(items, func(b *ent.Bookmark, _ int) *domain.Bookmark {
			return entToDomain(b)
		}),
		Total: total,
	}, nil
}

// FindByID retrieves a bookmark by id, returning (nil, nil) on absence.
func (r *BookmarkRepository) FindByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	if cached, err := r.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	b, err := r.client.Bookmark.Query().
		Where(bookmark.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	result := entToDomain(b)
	_ = r.cache.Set(ctx, result)
	return result, nil
}

// FindByURL retrieves a bookmark by exact url match, (nil, nil) on absence.
func (r *BookmarkRepository) FindByURL(ctx context.Context, url string) (*domain.Bookmark, error) {
	b, err := r.client.Bookmark.Query().
		Where(bookmark.URLEQ(url)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entToDomain(b), nil
}

// Create persists a new bookmark. A violated url unique index surfaces as
// domain.ErrDuplicateURL.
func (r *BookmarkRepository) Create(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error) {
	b, err := r.client.Bookmark.Create().
		SetTitle(in.Title).
		SetURL(in.URL).
		SetDescription(in.Description).
		SetIsFavorite(in.IsFavorite).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.ErrDuplicateURL
		}
		return nil, err
	}
	return entToDomain(b), nil
}

// Update applies a partial update to an existing bookmark.
func (r *BookmarkRepository) Update(ctx context.Context, id string, in domain.UpdateInput) (*domain.Bookmark, error) {
	builder := r.client.Bookmark.UpdateOneID(id)
	if in.Title != nil {
		builder.SetTitle(*in.Title)
	}
	if in.URL != nil {
		builder.SetURL(*in.URL)
	}
	if in.Description != nil {
		builder.SetDescription(*in.Description)
	}
	if in.IsFavorite != nil {
		builder.SetIsFavorite(*in.IsFavorite)
	}

	b, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, domain.ErrDuplicateURL
		}
		return nil, err
	}

	_ = r.cache.Invalidate(ctx, id)
	return entToDomain(b), nil
}

// Delete removes a bookmark by id.
func (r *BookmarkRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Bookmark.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}

	_ = r.cache.Invalidate(ctx, id)
	return nil
}

// Count returns the total number of stored bookmarks.
func (r *BookmarkRepository) Count(ctx context.Context) (int, error) {
	return r.client.Bookmark.Query().Count(ctx)
}

// ToggleFavorite flips is_favorite with a conditional update: the write only
// lands when the flag still holds the value that was read, so two concurrent
// toggles cannot silently collapse into one. A lost race re-reads and retries
// a bounded number of times.
func (r *BookmarkRepository) ToggleFavorite(ctx context.Context, id string) (*domain.Bookmark, error) {
	for attempt := 0; attempt < toggleRetries; attempt++ {
		cur, err := r.client.Bookmark.Query().
			Where(bookmark.ID(id)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}

		n, err := r.client.Bookmark.Update().
			Where(bookmark.ID(id), bookmark.IsFavorite(cur.IsFavorite)).
			SetIsFavorite(!cur.IsFavorite).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Another writer got there first; re-read and try again.
			r.logger.Debug("toggle favorite raced, retrying", zap.String("id", id))
			continue
		}

		_ = r.cache.Invalidate(ctx, id)

		updated, err := r.client.Bookmark.Query().
			Where(bookmark.ID(id)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return entToDomain(updated), nil
	}

	return nil, fmt.Errorf("toggle favorite: lost update race %d times for id %s", toggleRetries, id)
}

func predicates(p query.Plan) []predicate.Bookmark {
	var preds []predicate.Bookmark
	if p.Search != "" {
		preds = append(preds, bookmark.Or(
			bookmark.TitleContainsFold(p.Search),
			bookmark.DescriptionContainsFold(p.Search),
			bookmark.URLContainsFold(p.Search),
		))
	}
	if p.FavoritesOnly {
		preds = append(preds, bookmark.IsFavorite(true))
	}
	return preds
}

func orderOptions(terms []query.Term) []bookmark.OrderOption {
	orders := make([]bookmark.OrderOption, 0, len(terms))
	for _, t := range terms {
		field := fieldName(t.Field)
		if t.Desc {
			orders = append(orders, ent.Desc(field))
		} else {
			orders = append(orders, ent.Asc(field))
		}
	}
	return orders
}

// fieldName whitelists orderable columns; the plan can only name fields the
// schema actually has.
func fieldName(f query.Field) string {
	switch f {
	case query.FieldTitle:
		return bookmark.FieldTitle
	case query.FieldIsFavorite:
		return bookmark.FieldIsFavorite
	case query.FieldID:
		return bookmark.FieldID
	default:
		return bookmark.FieldCreatedAt
	}
}

// entToDomain converts an ent Bookmark entity to a domain Bookmark.
func entToDomain(b *ent.Bookmark) *domain.Bookmark {
	return &domain.Bookmark{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		IsFavorite:  b.IsFavorite,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
