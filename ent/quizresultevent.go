// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

// QuizResultEvent is the model entity for the QuizResultEvent schema.
type QuizResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuizType holds the value of the "quiz_type" field.
	QuizType string `json:"quiz_type,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage int `json:"percentage,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case quizresultevent.FieldID, quizresultevent.FieldSequence, quizresultevent.FieldCorrect, quizresultevent.FieldTotal, quizresultevent.FieldPercentage, quizresultevent.FieldPoints, quizresultevent.FieldXpEarned, quizresultevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case quizresultevent.FieldSessionID, quizresultevent.FieldUserID, quizresultevent.FieldQuizType, quizresultevent.FieldDifficulty, quizresultevent.FieldGrade:
			values[i] = new(sql.NullString)
		case quizresultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResultEvent fields.
func (qre *QuizResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			qre.ID = int(value.Int64)
		case quizresultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				qre.Sequence = value.Int64
			}
		case quizresultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				qre.Timestamp = value.Time
			}
		case quizresultevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				qre.SessionID = value.String
			}
		case quizresultevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				qre.UserID = value.String
			}
		case quizresultevent.FieldQuizType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_type", values[i])
			} else if value.Valid {
				qre.QuizType = value.String
			}
		case quizresultevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				qre.Difficulty = value.String
			}
		case quizresultevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				qre.Correct = int(value.Int64)
			}
		case quizresultevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				qre.Total = int(value.Int64)
			}
		case quizresultevent.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				qre.Percentage = int(value.Int64)
			}
		case quizresultevent.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				qre.Points = int(value.Int64)
			}
		case quizresultevent.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				qre.Grade = value.String
			}
		case quizresultevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				qre.Passed = value.Bool
			}
		case quizresultevent.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				qre.XpEarned = int(value.Int64)
			}
		case quizresultevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				qre.DurationSecs = int(value.Int64)
			}
		default:
			qre.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResultEvent.
// This includes values selected through modifiers, order, etc.
func (qre *QuizResultEvent) Value(name string) (ent.Value, error) {
	return qre.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResultEvent.
// Note that you need to call QuizResultEvent.Unwrap() before calling this method if this QuizResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (qre *QuizResultEvent) Update() *QuizResultEventUpdateOne {
	return NewQuizResultEventClient(qre.config).UpdateOne(qre)
}

// Unwrap unwraps the QuizResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qre *QuizResultEvent) Unwrap() *QuizResultEvent {
	_tx, ok := qre.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResultEvent is not a transactional entity")
	}
	qre.config.driver = _tx.drv
	return qre
}

// String implements the fmt.Stringer.
func (qre *QuizResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qre.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", qre.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(qre.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(qre.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(qre.UserID)
	builder.WriteString(", ")
	builder.WriteString("quiz_type=")
	builder.WriteString(qre.QuizType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(qre.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", qre.Correct))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", qre.Total))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", qre.Percentage))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", qre.Points))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(qre.Grade)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", qre.Passed))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", qre.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", qre.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResultEvents is a parsable slice of QuizResultEvent.
type QuizResultEvents []*QuizResultEvent
