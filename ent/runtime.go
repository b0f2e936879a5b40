// Code generated by ent, DO NOT EDIT.

package ent

import (
	"markfy/ent/bookmark"
	"markfy/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookmarkFields := schema.Bookmark{}.Fields()
	_ = bookmarkFields
	// bookmarkDescTitle is the schema descriptor for title field.
	bookmarkDescTitle := bookmarkFields[1].Descriptor()
	// bookmark.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	bookmark.TitleValidator = func() func(string) error {
		validators := bookmarkDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookmarkDescURL is the schema descriptor for url field.
	bookmarkDescURL := bookmarkFields[2].Descriptor()
	// bookmark.URLValidator is a validator for the "url" field. It is called by the builders before save.
	bookmark.URLValidator = func() func(string) error {
		validators := bookmarkDescURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(url string) error {
			for _, fn := range fns {
				if err := fn(url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bookmarkDescDescription is the schema descriptor for description field.
	bookmarkDescDescription := bookmarkFields[3].Descriptor()
	// bookmark.DefaultDescription holds the default value on creation for the description field.
	bookmark.DefaultDescription = bookmarkDescDescription.Default.(string)
	// bookmark.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	bookmark.DescriptionValidator = bookmarkDescDescription.Validators[0].(func(string) error)
	// bookmarkDescIsFavorite is the schema descriptor for is_favorite field.
	bookmarkDescIsFavorite := bookmarkFields[4].Descriptor()
	// bookmark.DefaultIsFavorite holds the default value on creation for the is_favorite field.
	bookmark.DefaultIsFavorite = bookmarkDescIsFavorite.Default.(bool)
	// bookmarkDescCreatedAt is the schema descriptor for created_at field.
	bookmarkDescCreatedAt := bookmarkFields[5].Descriptor()
	// bookmark.DefaultCreatedAt holds the default value on creation for the created_at field.
	bookmark.DefaultCreatedAt = bookmarkDescCreatedAt.Default.(func() time.Time)
	// bookmarkDescUpdatedAt is the schema descriptor for updated_at field.
	bookmarkDescUpdatedAt := bookmarkFields[6].Descriptor()
	// bookmark.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bookmark.DefaultUpdatedAt = bookmarkDescUpdatedAt.Default.(func() time.Time)
	// bookmark.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bookmark.UpdateDefaultUpdatedAt = bookmarkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookmarkDescID is the schema descriptor for id field.
	bookmarkDescID := bookmarkFields[0].Descriptor()
	// bookmark.DefaultID holds the default value on creation for the id field.
	bookmark.DefaultID = bookmarkDescID.Default.(func() string)
	// bookmark.IDValidator is a validator for the "id" field. It is called by the builders before save.
	bookmark.IDValidator = bookmarkDescID.Validators[0].(func(string) error)
}
