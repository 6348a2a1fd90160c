// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/keremugurlu/readingen/ent/passagerecord"
)

// PassageRecordCreate is the builder for creating a PassageRecord entity.
type PassageRecordCreate struct {
	config
	mutation *PassageRecordMutation
	hooks    []Hook
}

// SetPassageID sets the "passage_id" field.
func (_c *PassageRecordCreate) SetPassageID(v uuid.UUID) *PassageRecordCreate {
	_c.mutation.SetPassageID(v)
	return _c
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillablePassageID(v *uuid.UUID) *PassageRecordCreate {
	if v != nil {
		_c.SetPassageID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PassageRecordCreate) SetCreatedAt(v time.Time) *PassageRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableCreatedAt(v *time.Time) *PassageRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PassageRecordCreate) SetTopic(v string) *PassageRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *PassageRecordCreate) SetDomain(v string) *PassageRecordCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableDomain(v *string) *PassageRecordCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PassageRecordCreate) SetTitle(v string) *PassageRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableTitle(v *string) *PassageRecordCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetRaw sets the "raw" field.
func (_c *PassageRecordCreate) SetRaw(v string) *PassageRecordCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *PassageRecordCreate) SetLevel(v string) *PassageRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableLevel(v *string) *PassageRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetLength sets the "length" field.
func (_c *PassageRecordCreate) SetLength(v string) *PassageRecordCreate {
	_c.mutation.SetLength(v)
	return _c
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableLength(v *string) *PassageRecordCreate {
	if v != nil {
		_c.SetLength(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PassageRecordCreate) SetScore(v int) *PassageRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableScore(v *int) *PassageRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetValid sets the "valid" field.
func (_c *PassageRecordCreate) SetValid(v bool) *PassageRecordCreate {
	_c.mutation.SetValid(v)
	return _c
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableValid(v *bool) *PassageRecordCreate {
	if v != nil {
		_c.SetValid(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *PassageRecordCreate) SetRetries(v int) *PassageRecordCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableRetries(v *int) *PassageRecordCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetNeedsRegeneration sets the "needs_regeneration" field.
func (_c *PassageRecordCreate) SetNeedsRegeneration(v bool) *PassageRecordCreate {
	_c.mutation.SetNeedsRegeneration(v)
	return _c
}

// SetNillableNeedsRegeneration sets the "needs_regeneration" field if the given value is not nil.
func (_c *PassageRecordCreate) SetNillableNeedsRegeneration(v *bool) *PassageRecordCreate {
	if v != nil {
		_c.SetNeedsRegeneration(*v)
	}
	return _c
}

// Mutation returns the PassageRecordMutation object of the builder.
func (_c *PassageRecordCreate) Mutation() *PassageRecordMutation {
	return _c.mutation
}

// Save creates the PassageRecord in the database.
func (_c *PassageRecordCreate) Save(ctx context.Context) (*PassageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PassageRecordCreate) SaveX(ctx context.Context) *PassageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PassageRecordCreate) defaults() {
	if _, ok := _c.mutation.PassageID(); !ok {
		v := passagerecord.DefaultPassageID()
		_c.mutation.SetPassageID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passagerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Domain(); !ok {
		v := passagerecord.DefaultDomain
		_c.mutation.SetDomain(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := passagerecord.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := passagerecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Length(); !ok {
		v := passagerecord.DefaultLength
		_c.mutation.SetLength(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := passagerecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Valid(); !ok {
		v := passagerecord.DefaultValid
		_c.mutation.SetValid(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := passagerecord.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.NeedsRegeneration(); !ok {
		v := passagerecord.DefaultNeedsRegeneration
		_c.mutation.SetNeedsRegeneration(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PassageRecordCreate) check() error {
	if _, ok := _c.mutation.PassageID(); !ok {
		return &ValidationError{Name: "passage_id", err: errors.New(`ent: missing required field "PassageRecord.passage_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PassageRecord.created_at"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PassageRecord.topic"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "PassageRecord.domain"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PassageRecord.title"`)}
	}
	if _, ok := _c.mutation.Raw(); !ok {
		return &ValidationError{Name: "raw", err: errors.New(`ent: missing required field "PassageRecord.raw"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "PassageRecord.level"`)}
	}
	if _, ok := _c.mutation.Length(); !ok {
		return &ValidationError{Name: "length", err: errors.New(`ent: missing required field "PassageRecord.length"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PassageRecord.score"`)}
	}
	if _, ok := _c.mutation.Valid(); !ok {
		return &ValidationError{Name: "valid", err: errors.New(`ent: missing required field "PassageRecord.valid"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "PassageRecord.retries"`)}
	}
	if _, ok := _c.mutation.NeedsRegeneration(); !ok {
		return &ValidationError{Name: "needs_regeneration", err: errors.New(`ent: missing required field "PassageRecord.needs_regeneration"`)}
	}
	return nil
}

func (_c *PassageRecordCreate) sqlSave(ctx context.Context) (*PassageRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PassageRecordCreate) createSpec() (*PassageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PassageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passagerecord.Table, sqlgraph.NewFieldSpec(passagerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PassageID(); ok {
		_spec.SetField(passagerecord.FieldPassageID, field.TypeUUID, value)
		_node.PassageID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passagerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(passagerecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(passagerecord.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(passagerecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(passagerecord.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(passagerecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Length(); ok {
		_spec.SetField(passagerecord.FieldLength, field.TypeString, value)
		_node.Length = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(passagerecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Valid(); ok {
		_spec.SetField(passagerecord.FieldValid, field.TypeBool, value)
		_node.Valid = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(passagerecord.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.NeedsRegeneration(); ok {
		_spec.SetField(passagerecord.FieldNeedsRegeneration, field.TypeBool, value)
		_node.NeedsRegeneration = value
	}
	return _node, _spec
}

// PassageRecordCreateBulk is the builder for creating many PassageRecord entities in bulk.
type PassageRecordCreateBulk struct {
	config
	err      error
	builders []*PassageRecordCreate
}

// Save creates the PassageRecord entities in the database.
func (_c *PassageRecordCreateBulk) Save(ctx context.Context) ([]*PassageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PassageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PassageRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PassageRecordCreateBulk) SaveX(ctx context.Context) []*PassageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
