// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/guruji/ent/mistake"
)

// Mistake is the model entity for the Mistake schema.
type Mistake struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Chapter holds the value of the "chapter" field.
	Chapter string `json:"chapter,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// conceptual, calculation, careless, formula (classifier output)
	MistakeType string `json:"mistake_type,omitempty"`
	// One-line statement of what the learner gets wrong
	Misconception string `json:"misconception,omitempty"`
	// Raw text the learner sent when reporting
	ReportedText string `json:"reported_text,omitempty"`
	// TimesDrilled holds the value of the "times_drilled" field.
	TimesDrilled int `json:"times_drilled,omitempty"`
	// TimesCorrect holds the value of the "times_correct" field.
	TimesCorrect int `json:"times_correct,omitempty"`
	// MasteryScore holds the value of the "mastery_score" field.
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// IsMastered holds the value of the "is_mastered" field.
	IsMastered bool `json:"is_mastered,omitempty"`
	// EasinessFactor holds the value of the "easiness_factor" field.
	EasinessFactor float64 `json:"easiness_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// RepetitionCount holds the value of the "repetition_count" field.
	RepetitionCount int `json:"repetition_count,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	// MasteredAt holds the value of the "mastered_at" field.
	MasteredAt *time.Time `json:"mastered_at,omitempty"`
	// LastDrilledAt holds the value of the "last_drilled_at" field.
	LastDrilledAt *time.Time `json:"last_drilled_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mistake) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mistake.FieldIsMastered:
			values[i] = new(sql.NullBool)
		case mistake.FieldMasteryScore, mistake.FieldEasinessFactor:
			values[i] = new(sql.NullFloat64)
		case mistake.FieldTimesDrilled, mistake.FieldTimesCorrect, mistake.FieldIntervalDays, mistake.FieldRepetitionCount:
			values[i] = new(sql.NullInt64)
		case mistake.FieldID, mistake.FieldUserID, mistake.FieldSubject, mistake.FieldChapter, mistake.FieldTopic, mistake.FieldMistakeType, mistake.FieldMisconception, mistake.FieldReportedText:
			values[i] = new(sql.NullString)
		case mistake.FieldNextReviewAt, mistake.FieldMasteredAt, mistake.FieldLastDrilledAt, mistake.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mistake fields.
func (_m *Mistake) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mistake.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mistake.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case mistake.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case mistake.FieldChapter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter", values[i])
			} else if value.Valid {
				_m.Chapter = value.String
			}
		case mistake.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case mistake.FieldMistakeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_type", values[i])
			} else if value.Valid {
				_m.MistakeType = value.String
			}
		case mistake.FieldMisconception:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misconception", values[i])
			} else if value.Valid {
				_m.Misconception = value.String
			}
		case mistake.FieldReportedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reported_text", values[i])
			} else if value.Valid {
				_m.ReportedText = value.String
			}
		case mistake.FieldTimesDrilled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_drilled", values[i])
			} else if value.Valid {
				_m.TimesDrilled = int(value.Int64)
			}
		case mistake.FieldTimesCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_correct", values[i])
			} else if value.Valid {
				_m.TimesCorrect = int(value.Int64)
			}
		case mistake.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case mistake.FieldIsMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_mastered", values[i])
			} else if value.Valid {
				_m.IsMastered = value.Bool
			}
		case mistake.FieldEasinessFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field easiness_factor", values[i])
			} else if value.Valid {
				_m.EasinessFactor = value.Float64
			}
		case mistake.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case mistake.FieldRepetitionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition_count", values[i])
			} else if value.Valid {
				_m.RepetitionCount = int(value.Int64)
			}
		case mistake.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = value.Time
			}
		case mistake.FieldMasteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_at", values[i])
			} else if value.Valid {
				_m.MasteredAt = new(time.Time)
				*_m.MasteredAt = value.Time
			}
		case mistake.FieldLastDrilledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_drilled_at", values[i])
			} else if value.Valid {
				_m.LastDrilledAt = new(time.Time)
				*_m.LastDrilledAt = value.Time
			}
		case mistake.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mistake.
// This includes values selected through modifiers, order, etc.
func (_m *Mistake) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Mistake.
// Note that you need to call Mistake.Unwrap() before calling this method if this Mistake
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mistake) Update() *MistakeUpdateOne {
	return NewMistakeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mistake entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mistake) Unwrap() *Mistake {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mistake is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mistake) String() string {
	var builder strings.Builder
	builder.WriteString("Mistake(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("chapter=")
	builder.WriteString(_m.Chapter)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("mistake_type=")
	builder.WriteString(_m.MistakeType)
	builder.WriteString(", ")
	builder.WriteString("misconception=")
	builder.WriteString(_m.Misconception)
	builder.WriteString(", ")
	builder.WriteString("reported_text=")
	builder.WriteString(_m.ReportedText)
	builder.WriteString(", ")
	builder.WriteString("times_drilled=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesDrilled))
	builder.WriteString(", ")
	builder.WriteString("times_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesCorrect))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("is_mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsMastered))
	builder.WriteString(", ")
	builder.WriteString("easiness_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EasinessFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetition_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepetitionCount))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(_m.NextReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.MasteredAt; v != nil {
		builder.WriteString("mastered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastDrilledAt; v != nil {
		builder.WriteString("last_drilled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Mistakes is a parsable slice of Mistake.
type Mistakes []*Mistake
