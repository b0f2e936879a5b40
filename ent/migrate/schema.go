// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookmarksColumns holds the columns for the "bookmarks" table.
	BookmarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "url", Type: field.TypeString, Unique: true, Size: 2048},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500, Default: ""},
		{Name: "is_favorite", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BookmarksTable holds the schema information for the "bookmarks" table.
	BookmarksTable = &schema.Table{
		Name:       "bookmarks",
		Columns:    BookmarksColumns,
		PrimaryKey: []*schema.Column{BookmarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bookmark_url",
				Unique:  true,
				Columns: []*schema.Column{BookmarksColumns[2]},
			},
			{
				Name:    "bookmark_created_at",
				Unique:  false,
				Columns: []*schema.Column{BookmarksColumns[5]},
			},
			{
				Name:    "bookmark_is_favorite_created_at",
				Unique:  false,
				Columns: []*schema.Column{BookmarksColumns[4], BookmarksColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookmarksTable,
	}
)

func init() {
}
