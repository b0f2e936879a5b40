// Package query translates a validated domain.Query into a storage-neutral
// execution plan: a filter, an ordering, and a pagination window. The plan is
// pure data; the repository maps it onto the data store. Building a plan does
// no I/O, and identical queries always produce identical plans.
package query

import (
	"strings"

	"markfy/internal/bookmarks/domain"
)

// Field names an orderable bookmark attribute.
type Field string

const (
	FieldID         Field = "id"
	FieldTitle      Field = "title"
	FieldIsFavorite Field = "is_favorite"
	FieldCreatedAt  Field = "created_at"
)

// Term is one ordering component.
type Term struct {
	Field Field
	Desc  bool
}

// Plan is the filter/order/pagination specification for one listing.
// Search and FavoritesOnly describe the filter and apply equally to the
// list call and the count call, so totals stay consistent with pages.
type Plan struct {
	Search        string
	FavoritesOnly bool
	Order         []Term
	Offset        int
	Limit         int
}

// Option adjusts plan construction.
type Option func(*Plan)

// OnlyFavorites restricts the filter to favorite bookmarks.
func OnlyFavorites() Option {
	return func(p *Plan) { p.FavoritesOnly = true }
}

// Build constructs the plan for a validated query.
//
// Every ordering ends with created_at desc, id asc so that pagination is
// deterministic even when the primary sort key ties.
func Build(q domain.Query, opts ...Option) Plan {
	p := Plan{
		Search: q.Search,
		Order:  orderFor(q.Sort),
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func orderFor(sort domain.Sort) []Term {
	var primary []Term
	switch sort {
	case domain.SortOldest:
		primary = []Term{{Field: FieldCreatedAt}}
	case domain.SortTitle:
		primary = []Term{{Field: FieldTitle}}
	case domain.SortFavorites:
		primary = []Term{{Field: FieldIsFavorite, Desc: true}}
	default: // newest
		primary = []Term{{Field: FieldCreatedAt, Desc: true}}
	}

	for _, tie := range []Term{{Field: FieldCreatedAt, Desc: true}, {Field: FieldID}} {
		if !hasField(primary, tie.Field) {
			primary = append(primary, tie)
		}
	}
	return primary
}

func hasField(terms []Term, f Field) bool {
	for _, t := range terms {
		if t.Field == f {
			return true
		}
	}
	return false
}

// Matches reports whether a bookmark satisfies the plan's filter. It mirrors
// the predicate the repository sends to the store (case-insensitive substring
// containment over title, description, and url) and lets tests cross-check
// the two against each other.
func (p Plan) Matches(b domain.Bookmark) bool {
	if p.FavoritesOnly && !b.IsFavorite {
		return false
	}
	if p.Search == "" {
		return true
	}
	needle := strings.ToLower(p.Search)
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Description), needle) ||
		strings.Contains(strings.ToLower(b.URL), needle)
}
