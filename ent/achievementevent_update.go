// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/achievementevent"
	"github.com/abhisek/idiomaster/ent/predicate"
)

// AchievementEventUpdate is the builder for updating AchievementEvent entities.
type AchievementEventUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementEventMutation
}

// Where appends a list predicates to the AchievementEventUpdate builder.
func (aeu *AchievementEventUpdate) Where(ps ...predicate.AchievementEvent) *AchievementEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetAchievementID sets the "achievement_id" field.
func (aeu *AchievementEventUpdate) SetAchievementID(s string) *AchievementEventUpdate {
	aeu.mutation.SetAchievementID(s)
	return aeu
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableAchievementID(s *string) *AchievementEventUpdate {
	if s != nil {
		aeu.SetAchievementID(*s)
	}
	return aeu
}

// SetUserID sets the "user_id" field.
func (aeu *AchievementEventUpdate) SetUserID(s string) *AchievementEventUpdate {
	aeu.mutation.SetUserID(s)
	return aeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableUserID(s *string) *AchievementEventUpdate {
	if s != nil {
		aeu.SetUserID(*s)
	}
	return aeu
}

// SetName sets the "name" field.
func (aeu *AchievementEventUpdate) SetName(s string) *AchievementEventUpdate {
	aeu.mutation.SetName(s)
	return aeu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableName(s *string) *AchievementEventUpdate {
	if s != nil {
		aeu.SetName(*s)
	}
	return aeu
}

// SetRarity sets the "rarity" field.
func (aeu *AchievementEventUpdate) SetRarity(s string) *AchievementEventUpdate {
	aeu.mutation.SetRarity(s)
	return aeu
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableRarity(s *string) *AchievementEventUpdate {
	if s != nil {
		aeu.SetRarity(*s)
	}
	return aeu
}

// SetXpReward sets the "xp_reward" field.
func (aeu *AchievementEventUpdate) SetXpReward(i int) *AchievementEventUpdate {
	aeu.mutation.ResetXpReward()
	aeu.mutation.SetXpReward(i)
	return aeu
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableXpReward(i *int) *AchievementEventUpdate {
	if i != nil {
		aeu.SetXpReward(*i)
	}
	return aeu
}

// AddXpReward adds i to the "xp_reward" field.
func (aeu *AchievementEventUpdate) AddXpReward(i int) *AchievementEventUpdate {
	aeu.mutation.AddXpReward(i)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AchievementEventUpdate) SetSessionID(s string) *AchievementEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AchievementEventUpdate) SetNillableSessionID(s *string) *AchievementEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// ClearSessionID clears the value of the "session_id" field.
func (aeu *AchievementEventUpdate) ClearSessionID() *AchievementEventUpdate {
	aeu.mutation.ClearSessionID()
	return aeu
}

// Mutation returns the AchievementEventMutation object of the builder.
func (aeu *AchievementEventUpdate) Mutation() *AchievementEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AchievementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AchievementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AchievementEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AchievementEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AchievementEventUpdate) check() error {
	if v, ok := aeu.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.UserID(); ok {
		if err := achievementevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Rarity(); ok {
		if err := achievementevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.rarity": %w`, err)}
		}
	}
	return nil
}

func (aeu *AchievementEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementevent.Table, achievementevent.Columns, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.UserID(); ok {
		_spec.SetField(achievementevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Rarity(); ok {
		_spec.SetField(achievementevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := aeu.mutation.XpReward(); ok {
		_spec.SetField(achievementevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedXpReward(); ok {
		_spec.AddField(achievementevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(achievementevent.FieldSessionID, field.TypeString, value)
	}
	if aeu.mutation.SessionIDCleared() {
		_spec.ClearField(achievementevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AchievementEventUpdateOne is the builder for updating a single AchievementEvent entity.
type AchievementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementEventMutation
}

// SetAchievementID sets the "achievement_id" field.
func (aeuo *AchievementEventUpdateOne) SetAchievementID(s string) *AchievementEventUpdateOne {
	aeuo.mutation.SetAchievementID(s)
	return aeuo
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableAchievementID(s *string) *AchievementEventUpdateOne {
	if s != nil {
		aeuo.SetAchievementID(*s)
	}
	return aeuo
}

// SetUserID sets the "user_id" field.
func (aeuo *AchievementEventUpdateOne) SetUserID(s string) *AchievementEventUpdateOne {
	aeuo.mutation.SetUserID(s)
	return aeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableUserID(s *string) *AchievementEventUpdateOne {
	if s != nil {
		aeuo.SetUserID(*s)
	}
	return aeuo
}

// SetName sets the "name" field.
func (aeuo *AchievementEventUpdateOne) SetName(s string) *AchievementEventUpdateOne {
	aeuo.mutation.SetName(s)
	return aeuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableName(s *string) *AchievementEventUpdateOne {
	if s != nil {
		aeuo.SetName(*s)
	}
	return aeuo
}

// SetRarity sets the "rarity" field.
func (aeuo *AchievementEventUpdateOne) SetRarity(s string) *AchievementEventUpdateOne {
	aeuo.mutation.SetRarity(s)
	return aeuo
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableRarity(s *string) *AchievementEventUpdateOne {
	if s != nil {
		aeuo.SetRarity(*s)
	}
	return aeuo
}

// SetXpReward sets the "xp_reward" field.
func (aeuo *AchievementEventUpdateOne) SetXpReward(i int) *AchievementEventUpdateOne {
	aeuo.mutation.ResetXpReward()
	aeuo.mutation.SetXpReward(i)
	return aeuo
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableXpReward(i *int) *AchievementEventUpdateOne {
	if i != nil {
		aeuo.SetXpReward(*i)
	}
	return aeuo
}

// AddXpReward adds i to the "xp_reward" field.
func (aeuo *AchievementEventUpdateOne) AddXpReward(i int) *AchievementEventUpdateOne {
	aeuo.mutation.AddXpReward(i)
	return aeuo
}

// SetSessionID sets the "session_id" field.
func (aeuo *AchievementEventUpdateOne) SetSessionID(s string) *AchievementEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AchievementEventUpdateOne) SetNillableSessionID(s *string) *AchievementEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// ClearSessionID clears the value of the "session_id" field.
func (aeuo *AchievementEventUpdateOne) ClearSessionID() *AchievementEventUpdateOne {
	aeuo.mutation.ClearSessionID()
	return aeuo
}

// Mutation returns the AchievementEventMutation object of the builder.
func (aeuo *AchievementEventUpdateOne) Mutation() *AchievementEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AchievementEventUpdate builder.
func (aeuo *AchievementEventUpdateOne) Where(ps ...predicate.AchievementEvent) *AchievementEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AchievementEventUpdateOne) Select(field string, fields ...string) *AchievementEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AchievementEvent entity.
func (aeuo *AchievementEventUpdateOne) Save(ctx context.Context) (*AchievementEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AchievementEventUpdateOne) SaveX(ctx context.Context) *AchievementEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AchievementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AchievementEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AchievementEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.UserID(); ok {
		if err := achievementevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Rarity(); ok {
		if err := achievementevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.rarity": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AchievementEventUpdateOne) sqlSave(ctx context.Context) (_node *AchievementEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementevent.Table, achievementevent.Columns, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AchievementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievementevent.FieldID)
		for _, f := range fields {
			if !achievementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievementevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.UserID(); ok {
		_spec.SetField(achievementevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Rarity(); ok {
		_spec.SetField(achievementevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.XpReward(); ok {
		_spec.SetField(achievementevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedXpReward(); ok {
		_spec.AddField(achievementevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(achievementevent.FieldSessionID, field.TypeString, value)
	}
	if aeuo.mutation.SessionIDCleared() {
		_spec.ClearField(achievementevent.FieldSessionID, field.TypeString)
	}
	_node = &AchievementEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
