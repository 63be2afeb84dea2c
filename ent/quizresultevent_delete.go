// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/idiomaster/ent/predicate"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

// QuizResultEventDelete is the builder for deleting a QuizResultEvent entity.
type QuizResultEventDelete struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventDelete builder.
func (qred *QuizResultEventDelete) Where(ps ...predicate.QuizResultEvent) *QuizResultEventDelete {
	qred.mutation.Where(ps...)
	return qred
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qred *QuizResultEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qred.sqlExec, qred.mutation, qred.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qred *QuizResultEventDelete) ExecX(ctx context.Context) int {
	n, err := qred.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qred *QuizResultEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizresultevent.Table, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	if ps := qred.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qred.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qred.mutation.done = true
	return affected, err
}

// QuizResultEventDeleteOne is the builder for deleting a single QuizResultEvent entity.
type QuizResultEventDeleteOne struct {
	qred *QuizResultEventDelete
}

// Where appends a list predicates to the QuizResultEventDelete builder.
func (qredo *QuizResultEventDeleteOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventDeleteOne {
	qredo.qred.mutation.Where(ps...)
	return qredo
}

// Exec executes the deletion query.
func (qredo *QuizResultEventDeleteOne) Exec(ctx context.Context) error {
	n, err := qredo.qred.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizresultevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qredo *QuizResultEventDeleteOne) ExecX(ctx context.Context) {
	if err := qredo.Exec(ctx); err != nil {
		panic(err)
	}
}
