// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SessionEventCreate) SetSequence(i int64) *SessionEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetTimestamp sets the "timestamp" field.
func (sec *SessionEventCreate) SetTimestamp(t time.Time) *SessionEventCreate {
	sec.mutation.SetTimestamp(t)
	return sec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableTimestamp(t *time.Time) *SessionEventCreate {
	if t != nil {
		sec.SetTimestamp(*t)
	}
	return sec
}

// SetSessionID sets the "session_id" field.
func (sec *SessionEventCreate) SetSessionID(s string) *SessionEventCreate {
	sec.mutation.SetSessionID(s)
	return sec
}

// SetUserID sets the "user_id" field.
func (sec *SessionEventCreate) SetUserID(s string) *SessionEventCreate {
	sec.mutation.SetUserID(s)
	return sec
}

// SetAction sets the "action" field.
func (sec *SessionEventCreate) SetAction(s string) *SessionEventCreate {
	sec.mutation.SetAction(s)
	return sec
}

// SetQuizType sets the "quiz_type" field.
func (sec *SessionEventCreate) SetQuizType(s string) *SessionEventCreate {
	sec.mutation.SetQuizType(s)
	return sec
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableQuizType(s *string) *SessionEventCreate {
	if s != nil {
		sec.SetQuizType(*s)
	}
	return sec
}

// SetQuestions sets the "questions" field.
func (sec *SessionEventCreate) SetQuestions(i int) *SessionEventCreate {
	sec.mutation.SetQuestions(i)
	return sec
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableQuestions(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetQuestions(*i)
	}
	return sec
}

// SetCorrect sets the "correct" field.
func (sec *SessionEventCreate) SetCorrect(i int) *SessionEventCreate {
	sec.mutation.SetCorrect(i)
	return sec
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableCorrect(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetCorrect(*i)
	}
	return sec
}

// SetDurationSecs sets the "duration_secs" field.
func (sec *SessionEventCreate) SetDurationSecs(i int) *SessionEventCreate {
	sec.mutation.SetDurationSecs(i)
	return sec
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableDurationSecs(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetDurationSecs(*i)
	}
	return sec
}

// SetTimedOut sets the "timed_out" field.
func (sec *SessionEventCreate) SetTimedOut(b bool) *SessionEventCreate {
	sec.mutation.SetTimedOut(b)
	return sec
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableTimedOut(b *bool) *SessionEventCreate {
	if b != nil {
		sec.SetTimedOut(*b)
	}
	return sec
}

// Mutation returns the SessionEventMutation object of the builder.
func (sec *SessionEventCreate) Mutation() *SessionEventMutation {
	return sec.mutation
}

// Save creates the SessionEvent in the database.
func (sec *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SessionEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SessionEventCreate) defaults() {
	if _, ok := sec.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		sec.mutation.SetTimestamp(v)
	}
	if _, ok := sec.mutation.QuizType(); !ok {
		v := sessionevent.DefaultQuizType
		sec.mutation.SetQuizType(v)
	}
	if _, ok := sec.mutation.Questions(); !ok {
		v := sessionevent.DefaultQuestions
		sec.mutation.SetQuestions(v)
	}
	if _, ok := sec.mutation.Correct(); !ok {
		v := sessionevent.DefaultCorrect
		sec.mutation.SetCorrect(v)
	}
	if _, ok := sec.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		sec.mutation.SetDurationSecs(v)
	}
	if _, ok := sec.mutation.TimedOut(); !ok {
		v := sessionevent.DefaultTimedOut
		sec.mutation.SetTimedOut(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SessionEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := sec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := sec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := sec.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionEvent.user_id"`)}
	}
	if v, ok := sec.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := sec.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := sec.mutation.QuizType(); !ok {
		return &ValidationError{Name: "quiz_type", err: errors.New(`ent: missing required field "SessionEvent.quiz_type"`)}
	}
	if _, ok := sec.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "SessionEvent.questions"`)}
	}
	if _, ok := sec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionEvent.correct"`)}
	}
	if _, ok := sec.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	if _, ok := sec.mutation.TimedOut(); !ok {
		return &ValidationError{Name: "timed_out", err: errors.New(`ent: missing required field "SessionEvent.timed_out"`)}
	}
	return nil
}

func (sec *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := sec.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := sec.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sec.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := sec.mutation.QuizType(); ok {
		_spec.SetField(sessionevent.FieldQuizType, field.TypeString, value)
		_node.QuizType = value
	}
	if value, ok := sec.mutation.Questions(); ok {
		_spec.SetField(sessionevent.FieldQuestions, field.TypeInt, value)
		_node.Questions = value
	}
	if value, ok := sec.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := sec.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := sec.mutation.TimedOut(); ok {
		_spec.SetField(sessionevent.FieldTimedOut, field.TypeBool, value)
		_node.TimedOut = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (secb *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SessionEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
