// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/achievementevent"
)

// AchievementEventCreate is the builder for creating a AchievementEvent entity.
type AchievementEventCreate struct {
	config
	mutation *AchievementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AchievementEventCreate) SetSequence(i int64) *AchievementEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AchievementEventCreate) SetTimestamp(t time.Time) *AchievementEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AchievementEventCreate) SetNillableTimestamp(t *time.Time) *AchievementEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetAchievementID sets the "achievement_id" field.
func (aec *AchievementEventCreate) SetAchievementID(s string) *AchievementEventCreate {
	aec.mutation.SetAchievementID(s)
	return aec
}

// SetUserID sets the "user_id" field.
func (aec *AchievementEventCreate) SetUserID(s string) *AchievementEventCreate {
	aec.mutation.SetUserID(s)
	return aec
}

// SetName sets the "name" field.
func (aec *AchievementEventCreate) SetName(s string) *AchievementEventCreate {
	aec.mutation.SetName(s)
	return aec
}

// SetRarity sets the "rarity" field.
func (aec *AchievementEventCreate) SetRarity(s string) *AchievementEventCreate {
	aec.mutation.SetRarity(s)
	return aec
}

// SetXpReward sets the "xp_reward" field.
func (aec *AchievementEventCreate) SetXpReward(i int) *AchievementEventCreate {
	aec.mutation.SetXpReward(i)
	return aec
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (aec *AchievementEventCreate) SetNillableXpReward(i *int) *AchievementEventCreate {
	if i != nil {
		aec.SetXpReward(*i)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AchievementEventCreate) SetSessionID(s string) *AchievementEventCreate {
	aec.mutation.SetSessionID(s)
	return aec
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aec *AchievementEventCreate) SetNillableSessionID(s *string) *AchievementEventCreate {
	if s != nil {
		aec.SetSessionID(*s)
	}
	return aec
}

// Mutation returns the AchievementEventMutation object of the builder.
func (aec *AchievementEventCreate) Mutation() *AchievementEventMutation {
	return aec.mutation
}

// Save creates the AchievementEvent in the database.
func (aec *AchievementEventCreate) Save(ctx context.Context) (*AchievementEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AchievementEventCreate) SaveX(ctx context.Context) *AchievementEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AchievementEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AchievementEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AchievementEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := achievementevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
	if _, ok := aec.mutation.XpReward(); !ok {
		v := achievementevent.DefaultXpReward
		aec.mutation.SetXpReward(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AchievementEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AchievementEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AchievementEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AchievementEvent.achievement_id"`)}
	}
	if v, ok := aec.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AchievementEvent.user_id"`)}
	}
	if v, ok := aec.mutation.UserID(); ok {
		if err := achievementevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.user_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AchievementEvent.name"`)}
	}
	if v, ok := aec.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "AchievementEvent.rarity"`)}
	}
	if v, ok := aec.mutation.Rarity(); ok {
		if err := achievementevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.rarity": %w`, err)}
		}
	}
	if _, ok := aec.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "AchievementEvent.xp_reward"`)}
	}
	return nil
}

func (aec *AchievementEventCreate) sqlSave(ctx context.Context) (*AchievementEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AchievementEventCreate) createSpec() (*AchievementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(achievementevent.Table, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(achievementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(achievementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := aec.mutation.UserID(); ok {
		_spec.SetField(achievementevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := aec.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := aec.mutation.Rarity(); ok {
		_spec.SetField(achievementevent.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := aec.mutation.XpReward(); ok {
		_spec.SetField(achievementevent.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(achievementevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	return _node, _spec
}

// AchievementEventCreateBulk is the builder for creating many AchievementEvent entities in bulk.
type AchievementEventCreateBulk struct {
	config
	err      error
	builders []*AchievementEventCreate
}

// Save creates the AchievementEvent entities in the database.
func (aecb *AchievementEventCreateBulk) Save(ctx context.Context) ([]*AchievementEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AchievementEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AchievementEventCreateBulk) SaveX(ctx context.Context) []*AchievementEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AchievementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AchievementEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
