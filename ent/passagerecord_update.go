// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keremugurlu/readingen/ent/passagerecord"
	"github.com/keremugurlu/readingen/ent/predicate"
)

// PassageRecordUpdate is the builder for updating PassageRecord entities.
type PassageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PassageRecordMutation
}

// Where appends a list predicates to the PassageRecordUpdate builder.
func (_u *PassageRecordUpdate) Where(ps ...predicate.PassageRecord) *PassageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PassageRecordUpdate) SetTopic(v string) *PassageRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableTopic(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PassageRecordUpdate) SetDomain(v string) *PassageRecordUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableDomain(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PassageRecordUpdate) SetTitle(v string) *PassageRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableTitle(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRaw sets the "raw" field.
func (_u *PassageRecordUpdate) SetRaw(v string) *PassageRecordUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableRaw(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PassageRecordUpdate) SetLevel(v string) *PassageRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableLevel(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *PassageRecordUpdate) SetLength(v string) *PassageRecordUpdate {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableLength(v *string) *PassageRecordUpdate {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PassageRecordUpdate) SetScore(v int) *PassageRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableScore(v *int) *PassageRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PassageRecordUpdate) AddScore(v int) *PassageRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *PassageRecordUpdate) SetValid(v bool) *PassageRecordUpdate {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableValid(v *bool) *PassageRecordUpdate {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *PassageRecordUpdate) SetRetries(v int) *PassageRecordUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableRetries(v *int) *PassageRecordUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *PassageRecordUpdate) AddRetries(v int) *PassageRecordUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetNeedsRegeneration sets the "needs_regeneration" field.
func (_u *PassageRecordUpdate) SetNeedsRegeneration(v bool) *PassageRecordUpdate {
	_u.mutation.SetNeedsRegeneration(v)
	return _u
}

// SetNillableNeedsRegeneration sets the "needs_regeneration" field if the given value is not nil.
func (_u *PassageRecordUpdate) SetNillableNeedsRegeneration(v *bool) *PassageRecordUpdate {
	if v != nil {
		_u.SetNeedsRegeneration(*v)
	}
	return _u
}

// Mutation returns the PassageRecordMutation object of the builder.
func (_u *PassageRecordUpdate) Mutation() *PassageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PassageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(passagerecord.Table, passagerecord.Columns, sqlgraph.NewFieldSpec(passagerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(passagerecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(passagerecord.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(passagerecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(passagerecord.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(passagerecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(passagerecord.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(passagerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(passagerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(passagerecord.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(passagerecord.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(passagerecord.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsRegeneration(); ok {
		_spec.SetField(passagerecord.FieldNeedsRegeneration, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassageRecordUpdateOne is the builder for updating a single PassageRecord entity.
type PassageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassageRecordMutation
}

// SetTopic sets the "topic" field.
func (_u *PassageRecordUpdateOne) SetTopic(v string) *PassageRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableTopic(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PassageRecordUpdateOne) SetDomain(v string) *PassageRecordUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableDomain(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PassageRecordUpdateOne) SetTitle(v string) *PassageRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableTitle(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRaw sets the "raw" field.
func (_u *PassageRecordUpdateOne) SetRaw(v string) *PassageRecordUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableRaw(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PassageRecordUpdateOne) SetLevel(v string) *PassageRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableLevel(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *PassageRecordUpdateOne) SetLength(v string) *PassageRecordUpdateOne {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableLength(v *string) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PassageRecordUpdateOne) SetScore(v int) *PassageRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableScore(v *int) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PassageRecordUpdateOne) AddScore(v int) *PassageRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *PassageRecordUpdateOne) SetValid(v bool) *PassageRecordUpdateOne {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableValid(v *bool) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *PassageRecordUpdateOne) SetRetries(v int) *PassageRecordUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableRetries(v *int) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *PassageRecordUpdateOne) AddRetries(v int) *PassageRecordUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetNeedsRegeneration sets the "needs_regeneration" field.
func (_u *PassageRecordUpdateOne) SetNeedsRegeneration(v bool) *PassageRecordUpdateOne {
	_u.mutation.SetNeedsRegeneration(v)
	return _u
}

// SetNillableNeedsRegeneration sets the "needs_regeneration" field if the given value is not nil.
func (_u *PassageRecordUpdateOne) SetNillableNeedsRegeneration(v *bool) *PassageRecordUpdateOne {
	if v != nil {
		_u.SetNeedsRegeneration(*v)
	}
	return _u
}

// Mutation returns the PassageRecordMutation object of the builder.
func (_u *PassageRecordUpdateOne) Mutation() *PassageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PassageRecordUpdate builder.
func (_u *PassageRecordUpdateOne) Where(ps ...predicate.PassageRecord) *PassageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassageRecordUpdateOne) Select(field string, fields ...string) *PassageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PassageRecord entity.
func (_u *PassageRecordUpdateOne) Save(ctx context.Context) (*PassageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassageRecordUpdateOne) SaveX(ctx context.Context) *PassageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PassageRecordUpdateOne) sqlSave(ctx context.Context) (_node *PassageRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(passagerecord.Table, passagerecord.Columns, sqlgraph.NewFieldSpec(passagerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PassageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passagerecord.FieldID)
		for _, f := range fields {
			if !passagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passagerecord.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(passagerecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(passagerecord.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(passagerecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(passagerecord.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(passagerecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(passagerecord.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(passagerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(passagerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(passagerecord.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(passagerecord.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(passagerecord.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsRegeneration(); ok {
		_spec.SetField(passagerecord.FieldNeedsRegeneration, field.TypeBool, value)
	}
	_node = &PassageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
