// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bookmark is the predicate function for bookmark builders.
type Bookmark func(*sql.Selector)
