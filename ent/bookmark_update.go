// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"markfy/ent/bookmark"
	"markfy/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BookmarkUpdate is the builder for updating Bookmark entities.
type BookmarkUpdate struct {
	config
	hooks    []Hook
	mutation *BookmarkMutation
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdate) Where(ps ...predicate.Bookmark) *BookmarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdate) SetTitle(v string) *BookmarkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableTitle(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *BookmarkUpdate) SetURL(v string) *BookmarkUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableURL(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BookmarkUpdate) SetDescription(v string) *BookmarkUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableDescription(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BookmarkUpdate) ClearDescription() *BookmarkUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *BookmarkUpdate) SetIsFavorite(v bool) *BookmarkUpdate {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableIsFavorite(v *bool) *BookmarkUpdate {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookmarkUpdate) SetUpdatedAt(v time.Time) *BookmarkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdate) Mutation() *BookmarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookmarkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookmarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookmarkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bookmark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := bookmark.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bookmark.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := bookmark.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Bookmark.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := bookmark.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Bookmark.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(bookmark.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bookmark.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bookmark.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(bookmark.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bookmark.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookmarkUpdateOne is the builder for updating a single Bookmark entity.
type BookmarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookmarkMutation
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdateOne) SetTitle(v string) *BookmarkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableTitle(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *BookmarkUpdateOne) SetURL(v string) *BookmarkUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableURL(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BookmarkUpdateOne) SetDescription(v string) *BookmarkUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableDescription(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BookmarkUpdateOne) ClearDescription() *BookmarkUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsFavorite sets the "is_favorite" field.
func (_u *BookmarkUpdateOne) SetIsFavorite(v bool) *BookmarkUpdateOne {
	_u.mutation.SetIsFavorite(v)
	return _u
}

// SetNillableIsFavorite sets the "is_favorite" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableIsFavorite(v *bool) *BookmarkUpdateOne {
	if v != nil {
		_u.SetIsFavorite(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookmarkUpdateOne) SetUpdatedAt(v time.Time) *BookmarkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdateOne) Mutation() *BookmarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdateOne) Where(ps ...predicate.Bookmark) *BookmarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookmarkUpdateOne) Select(field string, fields ...string) *BookmarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bookmark entity.
func (_u *BookmarkUpdateOne) Save(ctx context.Context) (*Bookmark, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdateOne) SaveX(ctx context.Context) *Bookmark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookmarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookmarkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bookmark.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := bookmark.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bookmark.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := bookmark.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Bookmark.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := bookmark.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Bookmark.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkUpdateOne) sqlSave(ctx context.Context) (_node *Bookmark, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bookmark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookmark.FieldID)
		for _, f := range fields {
			if !bookmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookmark.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(bookmark.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bookmark.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bookmark.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsFavorite(); ok {
		_spec.SetField(bookmark.FieldIsFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bookmark.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Bookmark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
