// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/predicate"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

// QuizResultEventUpdate is the builder for updating QuizResultEvent entities.
type QuizResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (qreu *QuizResultEventUpdate) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdate {
	qreu.mutation.Where(ps...)
	return qreu
}

// SetSessionID sets the "session_id" field.
func (qreu *QuizResultEventUpdate) SetSessionID(s string) *QuizResultEventUpdate {
	qreu.mutation.SetSessionID(s)
	return qreu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableSessionID(s *string) *QuizResultEventUpdate {
	if s != nil {
		qreu.SetSessionID(*s)
	}
	return qreu
}

// SetUserID sets the "user_id" field.
func (qreu *QuizResultEventUpdate) SetUserID(s string) *QuizResultEventUpdate {
	qreu.mutation.SetUserID(s)
	return qreu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableUserID(s *string) *QuizResultEventUpdate {
	if s != nil {
		qreu.SetUserID(*s)
	}
	return qreu
}

// SetQuizType sets the "quiz_type" field.
func (qreu *QuizResultEventUpdate) SetQuizType(s string) *QuizResultEventUpdate {
	qreu.mutation.SetQuizType(s)
	return qreu
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableQuizType(s *string) *QuizResultEventUpdate {
	if s != nil {
		qreu.SetQuizType(*s)
	}
	return qreu
}

// SetDifficulty sets the "difficulty" field.
func (qreu *QuizResultEventUpdate) SetDifficulty(s string) *QuizResultEventUpdate {
	qreu.mutation.SetDifficulty(s)
	return qreu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableDifficulty(s *string) *QuizResultEventUpdate {
	if s != nil {
		qreu.SetDifficulty(*s)
	}
	return qreu
}

// SetCorrect sets the "correct" field.
func (qreu *QuizResultEventUpdate) SetCorrect(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetCorrect()
	qreu.mutation.SetCorrect(i)
	return qreu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableCorrect(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetCorrect(*i)
	}
	return qreu
}

// AddCorrect adds i to the "correct" field.
func (qreu *QuizResultEventUpdate) AddCorrect(i int) *QuizResultEventUpdate {
	qreu.mutation.AddCorrect(i)
	return qreu
}

// SetTotal sets the "total" field.
func (qreu *QuizResultEventUpdate) SetTotal(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetTotal()
	qreu.mutation.SetTotal(i)
	return qreu
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableTotal(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetTotal(*i)
	}
	return qreu
}

// AddTotal adds i to the "total" field.
func (qreu *QuizResultEventUpdate) AddTotal(i int) *QuizResultEventUpdate {
	qreu.mutation.AddTotal(i)
	return qreu
}

// SetPercentage sets the "percentage" field.
func (qreu *QuizResultEventUpdate) SetPercentage(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetPercentage()
	qreu.mutation.SetPercentage(i)
	return qreu
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillablePercentage(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetPercentage(*i)
	}
	return qreu
}

// AddPercentage adds i to the "percentage" field.
func (qreu *QuizResultEventUpdate) AddPercentage(i int) *QuizResultEventUpdate {
	qreu.mutation.AddPercentage(i)
	return qreu
}

// SetPoints sets the "points" field.
func (qreu *QuizResultEventUpdate) SetPoints(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetPoints()
	qreu.mutation.SetPoints(i)
	return qreu
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillablePoints(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetPoints(*i)
	}
	return qreu
}

// AddPoints adds i to the "points" field.
func (qreu *QuizResultEventUpdate) AddPoints(i int) *QuizResultEventUpdate {
	qreu.mutation.AddPoints(i)
	return qreu
}

// SetGrade sets the "grade" field.
func (qreu *QuizResultEventUpdate) SetGrade(s string) *QuizResultEventUpdate {
	qreu.mutation.SetGrade(s)
	return qreu
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableGrade(s *string) *QuizResultEventUpdate {
	if s != nil {
		qreu.SetGrade(*s)
	}
	return qreu
}

// SetPassed sets the "passed" field.
func (qreu *QuizResultEventUpdate) SetPassed(b bool) *QuizResultEventUpdate {
	qreu.mutation.SetPassed(b)
	return qreu
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillablePassed(b *bool) *QuizResultEventUpdate {
	if b != nil {
		qreu.SetPassed(*b)
	}
	return qreu
}

// SetXpEarned sets the "xp_earned" field.
func (qreu *QuizResultEventUpdate) SetXpEarned(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetXpEarned()
	qreu.mutation.SetXpEarned(i)
	return qreu
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableXpEarned(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetXpEarned(*i)
	}
	return qreu
}

// AddXpEarned adds i to the "xp_earned" field.
func (qreu *QuizResultEventUpdate) AddXpEarned(i int) *QuizResultEventUpdate {
	qreu.mutation.AddXpEarned(i)
	return qreu
}

// SetDurationSecs sets the "duration_secs" field.
func (qreu *QuizResultEventUpdate) SetDurationSecs(i int) *QuizResultEventUpdate {
	qreu.mutation.ResetDurationSecs()
	qreu.mutation.SetDurationSecs(i)
	return qreu
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (qreu *QuizResultEventUpdate) SetNillableDurationSecs(i *int) *QuizResultEventUpdate {
	if i != nil {
		qreu.SetDurationSecs(*i)
	}
	return qreu
}

// AddDurationSecs adds i to the "duration_secs" field.
func (qreu *QuizResultEventUpdate) AddDurationSecs(i int) *QuizResultEventUpdate {
	qreu.mutation.AddDurationSecs(i)
	return qreu
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (qreu *QuizResultEventUpdate) Mutation() *QuizResultEventMutation {
	return qreu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qreu *QuizResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qreu.sqlSave, qreu.mutation, qreu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qreu *QuizResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := qreu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qreu *QuizResultEventUpdate) Exec(ctx context.Context) error {
	_, err := qreu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qreu *QuizResultEventUpdate) ExecX(ctx context.Context) {
	if err := qreu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qreu *QuizResultEventUpdate) check() error {
	if v, ok := qreu.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := qreu.mutation.UserID(); ok {
		if err := quizresultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.user_id": %w`, err)}
		}
	}
	if v, ok := qreu.mutation.QuizType(); ok {
		if err := quizresultevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := qreu.mutation.Grade(); ok {
		if err := quizresultevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (qreu *QuizResultEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qreu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	if ps := qreu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qreu.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := qreu.mutation.UserID(); ok {
		_spec.SetField(quizresultevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := qreu.mutation.QuizType(); ok {
		_spec.SetField(quizresultevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := qreu.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := qreu.mutation.Correct(); ok {
		_spec.SetField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedCorrect(); ok {
		_spec.AddField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.Percentage(); ok {
		_spec.SetField(quizresultevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresultevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.Points(); ok {
		_spec.SetField(quizresultevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedPoints(); ok {
		_spec.AddField(quizresultevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.Grade(); ok {
		_spec.SetField(quizresultevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := qreu.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := qreu.mutation.XpEarned(); ok {
		_spec.SetField(quizresultevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedXpEarned(); ok {
		_spec.AddField(quizresultevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.DurationSecs(); ok {
		_spec.SetField(quizresultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := qreu.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizresultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qreu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qreu.mutation.done = true
	return n, nil
}

// QuizResultEventUpdateOne is the builder for updating a single QuizResultEvent entity.
type QuizResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// SetSessionID sets the "session_id" field.
func (qreuo *QuizResultEventUpdateOne) SetSessionID(s string) *QuizResultEventUpdateOne {
	qreuo.mutation.SetSessionID(s)
	return qreuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableSessionID(s *string) *QuizResultEventUpdateOne {
	if s != nil {
		qreuo.SetSessionID(*s)
	}
	return qreuo
}

// SetUserID sets the "user_id" field.
func (qreuo *QuizResultEventUpdateOne) SetUserID(s string) *QuizResultEventUpdateOne {
	qreuo.mutation.SetUserID(s)
	return qreuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableUserID(s *string) *QuizResultEventUpdateOne {
	if s != nil {
		qreuo.SetUserID(*s)
	}
	return qreuo
}

// SetQuizType sets the "quiz_type" field.
func (qreuo *QuizResultEventUpdateOne) SetQuizType(s string) *QuizResultEventUpdateOne {
	qreuo.mutation.SetQuizType(s)
	return qreuo
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableQuizType(s *string) *QuizResultEventUpdateOne {
	if s != nil {
		qreuo.SetQuizType(*s)
	}
	return qreuo
}

// SetDifficulty sets the "difficulty" field.
func (qreuo *QuizResultEventUpdateOne) SetDifficulty(s string) *QuizResultEventUpdateOne {
	qreuo.mutation.SetDifficulty(s)
	return qreuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableDifficulty(s *string) *QuizResultEventUpdateOne {
	if s != nil {
		qreuo.SetDifficulty(*s)
	}
	return qreuo
}

// SetCorrect sets the "correct" field.
func (qreuo *QuizResultEventUpdateOne) SetCorrect(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetCorrect()
	qreuo.mutation.SetCorrect(i)
	return qreuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableCorrect(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetCorrect(*i)
	}
	return qreuo
}

// AddCorrect adds i to the "correct" field.
func (qreuo *QuizResultEventUpdateOne) AddCorrect(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddCorrect(i)
	return qreuo
}

// SetTotal sets the "total" field.
func (qreuo *QuizResultEventUpdateOne) SetTotal(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetTotal()
	qreuo.mutation.SetTotal(i)
	return qreuo
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableTotal(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetTotal(*i)
	}
	return qreuo
}

// AddTotal adds i to the "total" field.
func (qreuo *QuizResultEventUpdateOne) AddTotal(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddTotal(i)
	return qreuo
}

// SetPercentage sets the "percentage" field.
func (qreuo *QuizResultEventUpdateOne) SetPercentage(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetPercentage()
	qreuo.mutation.SetPercentage(i)
	return qreuo
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillablePercentage(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetPercentage(*i)
	}
	return qreuo
}

// AddPercentage adds i to the "percentage" field.
func (qreuo *QuizResultEventUpdateOne) AddPercentage(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddPercentage(i)
	return qreuo
}

// SetPoints sets the "points" field.
func (qreuo *QuizResultEventUpdateOne) SetPoints(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetPoints()
	qreuo.mutation.SetPoints(i)
	return qreuo
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillablePoints(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetPoints(*i)
	}
	return qreuo
}

// AddPoints adds i to the "points" field.
func (qreuo *QuizResultEventUpdateOne) AddPoints(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddPoints(i)
	return qreuo
}

// SetGrade sets the "grade" field.
func (qreuo *QuizResultEventUpdateOne) SetGrade(s string) *QuizResultEventUpdateOne {
	qreuo.mutation.SetGrade(s)
	return qreuo
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableGrade(s *string) *QuizResultEventUpdateOne {
	if s != nil {
		qreuo.SetGrade(*s)
	}
	return qreuo
}

// SetPassed sets the "passed" field.
func (qreuo *QuizResultEventUpdateOne) SetPassed(b bool) *QuizResultEventUpdateOne {
	qreuo.mutation.SetPassed(b)
	return qreuo
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillablePassed(b *bool) *QuizResultEventUpdateOne {
	if b != nil {
		qreuo.SetPassed(*b)
	}
	return qreuo
}

// SetXpEarned sets the "xp_earned" field.
func (qreuo *QuizResultEventUpdateOne) SetXpEarned(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetXpEarned()
	qreuo.mutation.SetXpEarned(i)
	return qreuo
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableXpEarned(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetXpEarned(*i)
	}
	return qreuo
}

// AddXpEarned adds i to the "xp_earned" field.
func (qreuo *QuizResultEventUpdateOne) AddXpEarned(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddXpEarned(i)
	return qreuo
}

// SetDurationSecs sets the "duration_secs" field.
func (qreuo *QuizResultEventUpdateOne) SetDurationSecs(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.ResetDurationSecs()
	qreuo.mutation.SetDurationSecs(i)
	return qreuo
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (qreuo *QuizResultEventUpdateOne) SetNillableDurationSecs(i *int) *QuizResultEventUpdateOne {
	if i != nil {
		qreuo.SetDurationSecs(*i)
	}
	return qreuo
}

// AddDurationSecs adds i to the "duration_secs" field.
func (qreuo *QuizResultEventUpdateOne) AddDurationSecs(i int) *QuizResultEventUpdateOne {
	qreuo.mutation.AddDurationSecs(i)
	return qreuo
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (qreuo *QuizResultEventUpdateOne) Mutation() *QuizResultEventMutation {
	return qreuo.mutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (qreuo *QuizResultEventUpdateOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdateOne {
	qreuo.mutation.Where(ps...)
	return qreuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qreuo *QuizResultEventUpdateOne) Select(field string, fields ...string) *QuizResultEventUpdateOne {
	qreuo.fields = append([]string{field}, fields...)
	return qreuo
}

// Save executes the query and returns the updated QuizResultEvent entity.
func (qreuo *QuizResultEventUpdateOne) Save(ctx context.Context) (*QuizResultEvent, error) {
	return withHooks(ctx, qreuo.sqlSave, qreuo.mutation, qreuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qreuo *QuizResultEventUpdateOne) SaveX(ctx context.Context) *QuizResultEvent {
	node, err := qreuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qreuo *QuizResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := qreuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qreuo *QuizResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := qreuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qreuo *QuizResultEventUpdateOne) check() error {
	if v, ok := qreuo.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := qreuo.mutation.UserID(); ok {
		if err := quizresultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.user_id": %w`, err)}
		}
	}
	if v, ok := qreuo.mutation.QuizType(); ok {
		if err := quizresultevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := qreuo.mutation.Grade(); ok {
		if err := quizresultevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (qreuo *QuizResultEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizResultEvent, err error) {
	if err := qreuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	id, ok := qreuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qreuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresultevent.FieldID)
		for _, f := range fields {
			if !quizresultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qreuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qreuo.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := qreuo.mutation.UserID(); ok {
		_spec.SetField(quizresultevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := qreuo.mutation.QuizType(); ok {
		_spec.SetField(quizresultevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := qreuo.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := qreuo.mutation.Correct(); ok {
		_spec.SetField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedCorrect(); ok {
		_spec.AddField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.Percentage(); ok {
		_spec.SetField(quizresultevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresultevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.Points(); ok {
		_spec.SetField(quizresultevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedPoints(); ok {
		_spec.AddField(quizresultevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.Grade(); ok {
		_spec.SetField(quizresultevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := qreuo.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := qreuo.mutation.XpEarned(); ok {
		_spec.SetField(quizresultevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedXpEarned(); ok {
		_spec.AddField(quizresultevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.DurationSecs(); ok {
		_spec.SetField(quizresultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := qreuo.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizresultevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &QuizResultEvent{config: qreuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qreuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qreuo.mutation.done = true
	return _node, nil
}
