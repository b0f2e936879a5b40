package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Bookmark holds the schema definition for the Bookmark entity.
type Bookmark struct {
	ent.Schema
}

// Fields of the Bookmark.
func (Bookmark) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return gonanoid.Must() }).
			Immutable().
			NotEmpty().
			Comment("Opaque unique identifier, assigned once at creation"),
		field.String("title").
			NotEmpty().
			MaxLen(255).
			Comment("Display title of the bookmark"),
		field.String("url").
			Unique().
			NotEmpty().
			MaxLen(2048).
			Comment("Bookmarked URL, globally unique by exact match"),
		field.String("description").
			Optional().
			Default("").
			MaxLen(500).
			Comment("Optional free-form description, empty means absent"),
		field.Bool("is_favorite").
			Default(false).
			Comment("Whether the bookmark is marked as a favorite"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the bookmark was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the bookmark was last mutated"),
	}
}

// Edges of the Bookmark.
func (Bookmark) Edges() []ent.Edge {
	return nil
}

// Indexes of the Bookmark.
func (Bookmark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url").Unique(),
		index.Fields("created_at"),
		index.Fields("is_favorite", "created_at"),
	}
}
