// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

// QuizResultEventCreate is the builder for creating a QuizResultEvent entity.
type QuizResultEventCreate struct {
	config
	mutation *QuizResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (qrec *QuizResultEventCreate) SetSequence(i int64) *QuizResultEventCreate {
	qrec.mutation.SetSequence(i)
	return qrec
}

// SetTimestamp sets the "timestamp" field.
func (qrec *QuizResultEventCreate) SetTimestamp(t time.Time) *QuizResultEventCreate {
	qrec.mutation.SetTimestamp(t)
	return qrec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (qrec *QuizResultEventCreate) SetNillableTimestamp(t *time.Time) *QuizResultEventCreate {
	if t != nil {
		qrec.SetTimestamp(*t)
	}
	return qrec
}

// SetSessionID sets the "session_id" field.
func (qrec *QuizResultEventCreate) SetSessionID(s string) *QuizResultEventCreate {
	qrec.mutation.SetSessionID(s)
	return qrec
}

// SetUserID sets the "user_id" field.
func (qrec *QuizResultEventCreate) SetUserID(s string) *QuizResultEventCreate {
	qrec.mutation.SetUserID(s)
	return qrec
}

// SetQuizType sets the "quiz_type" field.
func (qrec *QuizResultEventCreate) SetQuizType(s string) *QuizResultEventCreate {
	qrec.mutation.SetQuizType(s)
	return qrec
}

// SetDifficulty sets the "difficulty" field.
func (qrec *QuizResultEventCreate) SetDifficulty(s string) *QuizResultEventCreate {
	qrec.mutation.SetDifficulty(s)
	return qrec
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qrec *QuizResultEventCreate) SetNillableDifficulty(s *string) *QuizResultEventCreate {
	if s != nil {
		qrec.SetDifficulty(*s)
	}
	return qrec
}

// SetCorrect sets the "correct" field.
func (qrec *QuizResultEventCreate) SetCorrect(i int) *QuizResultEventCreate {
	qrec.mutation.SetCorrect(i)
	return qrec
}

// SetTotal sets the "total" field.
func (qrec *QuizResultEventCreate) SetTotal(i int) *QuizResultEventCreate {
	qrec.mutation.SetTotal(i)
	return qrec
}

// SetPercentage sets the "percentage" field.
func (qrec *QuizResultEventCreate) SetPercentage(i int) *QuizResultEventCreate {
	qrec.mutation.SetPercentage(i)
	return qrec
}

// SetPoints sets the "points" field.
func (qrec *QuizResultEventCreate) SetPoints(i int) *QuizResultEventCreate {
	qrec.mutation.SetPoints(i)
	return qrec
}

// SetGrade sets the "grade" field.
func (qrec *QuizResultEventCreate) SetGrade(s string) *QuizResultEventCreate {
	qrec.mutation.SetGrade(s)
	return qrec
}

// SetPassed sets the "passed" field.
func (qrec *QuizResultEventCreate) SetPassed(b bool) *QuizResultEventCreate {
	qrec.mutation.SetPassed(b)
	return qrec
}

// SetXpEarned sets the "xp_earned" field.
func (qrec *QuizResultEventCreate) SetXpEarned(i int) *QuizResultEventCreate {
	qrec.mutation.SetXpEarned(i)
	return qrec
}

// SetDurationSecs sets the "duration_secs" field.
func (qrec *QuizResultEventCreate) SetDurationSecs(i int) *QuizResultEventCreate {
	qrec.mutation.SetDurationSecs(i)
	return qrec
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (qrec *QuizResultEventCreate) SetNillableDurationSecs(i *int) *QuizResultEventCreate {
	if i != nil {
		qrec.SetDurationSecs(*i)
	}
	return qrec
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (qrec *QuizResultEventCreate) Mutation() *QuizResultEventMutation {
	return qrec.mutation
}

// Save creates the QuizResultEvent in the database.
func (qrec *QuizResultEventCreate) Save(ctx context.Context) (*QuizResultEvent, error) {
	qrec.defaults()
	return withHooks(ctx, qrec.sqlSave, qrec.mutation, qrec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qrec *QuizResultEventCreate) SaveX(ctx context.Context) *QuizResultEvent {
	v, err := qrec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrec *QuizResultEventCreate) Exec(ctx context.Context) error {
	_, err := qrec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrec *QuizResultEventCreate) ExecX(ctx context.Context) {
	if err := qrec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qrec *QuizResultEventCreate) defaults() {
	if _, ok := qrec.mutation.Timestamp(); !ok {
		v := quizresultevent.DefaultTimestamp()
		qrec.mutation.SetTimestamp(v)
	}
	if _, ok := qrec.mutation.Difficulty(); !ok {
		v := quizresultevent.DefaultDifficulty
		qrec.mutation.SetDifficulty(v)
	}
	if _, ok := qrec.mutation.DurationSecs(); !ok {
		v := quizresultevent.DefaultDurationSecs
		qrec.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qrec *QuizResultEventCreate) check() error {
	if _, ok := qrec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizResultEvent.sequence"`)}
	}
	if _, ok := qrec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResultEvent.timestamp"`)}
	}
	if _, ok := qrec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizResultEvent.session_id"`)}
	}
	if v, ok := qrec.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if _, ok := qrec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizResultEvent.user_id"`)}
	}
	if v, ok := qrec.mutation.UserID(); ok {
		if err := quizresultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.user_id": %w`, err)}
		}
	}
	if _, ok := qrec.mutation.QuizType(); !ok {
		return &ValidationError{Name: "quiz_type", err: errors.New(`ent: missing required field "QuizResultEvent.quiz_type"`)}
	}
	if v, ok := qrec.mutation.QuizType(); ok {
		if err := quizresultevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.quiz_type": %w`, err)}
		}
	}
	if _, ok := qrec.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizResultEvent.difficulty"`)}
	}
	if _, ok := qrec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizResultEvent.correct"`)}
	}
	if _, ok := qrec.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizResultEvent.total"`)}
	}
	if _, ok := qrec.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "QuizResultEvent.percentage"`)}
	}
	if _, ok := qrec.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "QuizResultEvent.points"`)}
	}
	if _, ok := qrec.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "QuizResultEvent.grade"`)}
	}
	if v, ok := qrec.mutation.Grade(); ok {
		if err := quizresultevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.grade": %w`, err)}
		}
	}
	if _, ok := qrec.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizResultEvent.passed"`)}
	}
	if _, ok := qrec.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "QuizResultEvent.xp_earned"`)}
	}
	if _, ok := qrec.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "QuizResultEvent.duration_secs"`)}
	}
	return nil
}

func (qrec *QuizResultEventCreate) sqlSave(ctx context.Context) (*QuizResultEvent, error) {
	if err := qrec.check(); err != nil {
		return nil, err
	}
	_node, _spec := qrec.createSpec()
	if err := sqlgraph.CreateNode(ctx, qrec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	qrec.mutation.id = &_node.ID
	qrec.mutation.done = true
	return _node, nil
}

func (qrec *QuizResultEventCreate) createSpec() (*QuizResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResultEvent{config: qrec.config}
		_spec = sqlgraph.NewCreateSpec(quizresultevent.Table, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	)
	if value, ok := qrec.mutation.Sequence(); ok {
		_spec.SetField(quizresultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := qrec.mutation.Timestamp(); ok {
		_spec.SetField(quizresultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := qrec.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := qrec.mutation.UserID(); ok {
		_spec.SetField(quizresultevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := qrec.mutation.QuizType(); ok {
		_spec.SetField(quizresultevent.FieldQuizType, field.TypeString, value)
		_node.QuizType = value
	}
	if value, ok := qrec.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := qrec.mutation.Correct(); ok {
		_spec.SetField(quizresultevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := qrec.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := qrec.mutation.Percentage(); ok {
		_spec.SetField(quizresultevent.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := qrec.mutation.Points(); ok {
		_spec.SetField(quizresultevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := qrec.mutation.Grade(); ok {
		_spec.SetField(quizresultevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := qrec.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := qrec.mutation.XpEarned(); ok {
		_spec.SetField(quizresultevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := qrec.mutation.DurationSecs(); ok {
		_spec.SetField(quizresultevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// QuizResultEventCreateBulk is the builder for creating many QuizResultEvent entities in bulk.
type QuizResultEventCreateBulk struct {
	config
	err      error
	builders []*QuizResultEventCreate
}

// Save creates the QuizResultEvent entities in the database.
func (qrecb *QuizResultEventCreateBulk) Save(ctx context.Context) ([]*QuizResultEvent, error) {
	if qrecb.err != nil {
		return nil, qrecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qrecb.builders))
	nodes := make([]*QuizResultEvent, len(qrecb.builders))
	mutators := make([]Mutator, len(qrecb.builders))
	for i := range qrecb.builders {
		func(i int, root context.Context) {
			builder := qrecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultEventMutation)
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
					_, err = mutators[i+1].Mutate(root, qrecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qrecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qrecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qrecb *QuizResultEventCreateBulk) SaveX(ctx context.Context) []*QuizResultEvent {
	v, err := qrecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrecb *QuizResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := qrecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrecb *QuizResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := qrecb.Exec(ctx); err != nil {
		panic(err)
	}
}
