package domain

import "time"

// Bookmark is the persisted bookmark entity.
type Bookmark struct {
	ID          string
	Title       string
	URL         string
	Description string
	IsFavorite  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput carries the fields accepted when creating a bookmark.
type CreateInput struct {
	Title       string
	URL         string
	Description string
	IsFavorite  bool
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	URL         *string
	Description *string
	IsFavorite  *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdateInput) IsEmpty() bool {
	return in.Title == nil && in.URL == nil && in.Description == nil && in.IsFavorite == nil
}
