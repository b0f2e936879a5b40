package domain

import (
	"fmt"
	"strconv"
)

// Sort names a listing order.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortTitle     Sort = "title"
	SortFavorites Sort = "favorites"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds validated list parameters. Construct via ParseQuery so the
// rest of the pipeline never sees out-of-range values.
type Query struct {
	Page   int
	Limit  int
	Search string
	Sort   Sort
}

// ParseQuery validates raw query string values, applying defaults for
// absent ones. All issues are reported at once as a ValidationError.
func ParseQuery(page, limit, search, sort string) (Query, error) {
	q := Query{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		Search: search,
		Sort:   SortNewest,
	}
	var fields []FieldError

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			fields = append(fields, FieldError{Field: "page", Message: "page must be an integer >= 1"})
		} else {
			q.Page = n
		}
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxLimit {
			fields = append(fields, FieldError{Field: "limit", Message: fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit)})
		} else {
			q.Limit = n
		}
	}

	if sort != "" {
		switch Sort(sort) {
		case SortNewest, SortOldest, SortTitle, SortFavorites:
			q.Sort = Sort(sort)
		default:
			fields = append(fields, FieldError{Field: "sort", Message: "sort must be one of: newest, oldest, title, favorites"})
		}
	}

	if len(fields) > 0 {
		return Query{}, &ValidationError{Fields: fields}
	}
	return q, nil
}
