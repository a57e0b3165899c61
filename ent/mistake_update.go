// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/guruji/ent/mistake"
	"github.com/abhisek/guruji/ent/predicate"
)

// MistakeUpdate is the builder for updating Mistake entities.
type MistakeUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeMutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdate) Where(ps ...predicate.Mistake) *MistakeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MistakeUpdate) SetSubject(v string) *MistakeUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableSubject(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *MistakeUpdate) SetChapter(v string) *MistakeUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableChapter(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// ClearChapter clears the value of the "chapter" field.
func (_u *MistakeUpdate) ClearChapter() *MistakeUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MistakeUpdate) SetTopic(v string) *MistakeUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableTopic(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *MistakeUpdate) ClearTopic() *MistakeUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetMistakeType sets the "mistake_type" field.
func (_u *MistakeUpdate) SetMistakeType(v string) *MistakeUpdate {
	_u.mutation.SetMistakeType(v)
	return _u
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMistakeType(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetMistakeType(*v)
	}
	return _u
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (_u *MistakeUpdate) ClearMistakeType() *MistakeUpdate {
	_u.mutation.ClearMistakeType()
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *MistakeUpdate) SetMisconception(v string) *MistakeUpdate {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMisconception(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// ClearMisconception clears the value of the "misconception" field.
func (_u *MistakeUpdate) ClearMisconception() *MistakeUpdate {
	_u.mutation.ClearMisconception()
	return _u
}

// SetReportedText sets the "reported_text" field.
func (_u *MistakeUpdate) SetReportedText(v string) *MistakeUpdate {
	_u.mutation.SetReportedText(v)
	return _u
}

// SetNillableReportedText sets the "reported_text" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableReportedText(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetReportedText(*v)
	}
	return _u
}

// ClearReportedText clears the value of the "reported_text" field.
func (_u *MistakeUpdate) ClearReportedText() *MistakeUpdate {
	_u.mutation.ClearReportedText()
	return _u
}

// SetTimesDrilled sets the "times_drilled" field.
func (_u *MistakeUpdate) SetTimesDrilled(v int) *MistakeUpdate {
	_u.mutation.ResetTimesDrilled()
	_u.mutation.SetTimesDrilled(v)
	return _u
}

// SetNillableTimesDrilled sets the "times_drilled" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableTimesDrilled(v *int) *MistakeUpdate {
	if v != nil {
		_u.SetTimesDrilled(*v)
	}
	return _u
}

// AddTimesDrilled adds value to the "times_drilled" field.
func (_u *MistakeUpdate) AddTimesDrilled(v int) *MistakeUpdate {
	_u.mutation.AddTimesDrilled(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *MistakeUpdate) SetTimesCorrect(v int) *MistakeUpdate {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableTimesCorrect(v *int) *MistakeUpdate {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *MistakeUpdate) AddTimesCorrect(v int) *MistakeUpdate {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *MistakeUpdate) SetMasteryScore(v float64) *MistakeUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMasteryScore(v *float64) *MistakeUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *MistakeUpdate) AddMasteryScore(v float64) *MistakeUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetIsMastered sets the "is_mastered" field.
func (_u *MistakeUpdate) SetIsMastered(v bool) *MistakeUpdate {
	_u.mutation.SetIsMastered(v)
	return _u
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableIsMastered(v *bool) *MistakeUpdate {
	if v != nil {
		_u.SetIsMastered(*v)
	}
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *MistakeUpdate) SetEasinessFactor(v float64) *MistakeUpdate {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableEasinessFactor(v *float64) *MistakeUpdate {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *MistakeUpdate) AddEasinessFactor(v float64) *MistakeUpdate {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MistakeUpdate) SetIntervalDays(v int) *MistakeUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableIntervalDays(v *int) *MistakeUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MistakeUpdate) AddIntervalDays(v int) *MistakeUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitionCount sets the "repetition_count" field.
func (_u *MistakeUpdate) SetRepetitionCount(v int) *MistakeUpdate {
	_u.mutation.ResetRepetitionCount()
	_u.mutation.SetRepetitionCount(v)
	return _u
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableRepetitionCount(v *int) *MistakeUpdate {
	if v != nil {
		_u.SetRepetitionCount(*v)
	}
	return _u
}

// AddRepetitionCount adds value to the "repetition_count" field.
func (_u *MistakeUpdate) AddRepetitionCount(v int) *MistakeUpdate {
	_u.mutation.AddRepetitionCount(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MistakeUpdate) SetNextReviewAt(v time.Time) *MistakeUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableNextReviewAt(v *time.Time) *MistakeUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *MistakeUpdate) SetMasteredAt(v time.Time) *MistakeUpdate {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMasteredAt(v *time.Time) *MistakeUpdate {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *MistakeUpdate) ClearMasteredAt() *MistakeUpdate {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (_u *MistakeUpdate) SetLastDrilledAt(v time.Time) *MistakeUpdate {
	_u.mutation.SetLastDrilledAt(v)
	return _u
}

// SetNillableLastDrilledAt sets the "last_drilled_at" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableLastDrilledAt(v *time.Time) *MistakeUpdate {
	if v != nil {
		_u.SetLastDrilledAt(*v)
	}
	return _u
}

// ClearLastDrilledAt clears the value of the "last_drilled_at" field.
func (_u *MistakeUpdate) ClearLastDrilledAt() *MistakeUpdate {
	_u.mutation.ClearLastDrilledAt()
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdate) Mutation() *MistakeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MistakeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(mistake.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(mistake.FieldChapter, field.TypeString, value)
	}
	if _u.mutation.ChapterCleared() {
		_spec.ClearField(mistake.FieldChapter, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(mistake.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(mistake.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.MistakeType(); ok {
		_spec.SetField(mistake.FieldMistakeType, field.TypeString, value)
	}
	if _u.mutation.MistakeTypeCleared() {
		_spec.ClearField(mistake.FieldMistakeType, field.TypeString)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(mistake.FieldMisconception, field.TypeString, value)
	}
	if _u.mutation.MisconceptionCleared() {
		_spec.ClearField(mistake.FieldMisconception, field.TypeString)
	}
	if value, ok := _u.mutation.ReportedText(); ok {
		_spec.SetField(mistake.FieldReportedText, field.TypeString, value)
	}
	if _u.mutation.ReportedTextCleared() {
		_spec.ClearField(mistake.FieldReportedText, field.TypeString)
	}
	if value, ok := _u.mutation.TimesDrilled(); ok {
		_spec.SetField(mistake.FieldTimesDrilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesDrilled(); ok {
		_spec.AddField(mistake.FieldTimesDrilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(mistake.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(mistake.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(mistake.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(mistake.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsMastered(); ok {
		_spec.SetField(mistake.FieldIsMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(mistake.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(mistake.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(mistake.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(mistake.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepetitionCount(); ok {
		_spec.SetField(mistake.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(mistake.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(mistake.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(mistake.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(mistake.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDrilledAt(); ok {
		_spec.SetField(mistake.FieldLastDrilledAt, field.TypeTime, value)
	}
	if _u.mutation.LastDrilledAtCleared() {
		_spec.ClearField(mistake.FieldLastDrilledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeUpdateOne is the builder for updating a single Mistake entity.
type MistakeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeMutation
}

// SetSubject sets the "subject" field.
func (_u *MistakeUpdateOne) SetSubject(v string) *MistakeUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableSubject(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *MistakeUpdateOne) SetChapter(v string) *MistakeUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableChapter(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// ClearChapter clears the value of the "chapter" field.
func (_u *MistakeUpdateOne) ClearChapter() *MistakeUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MistakeUpdateOne) SetTopic(v string) *MistakeUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableTopic(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *MistakeUpdateOne) ClearTopic() *MistakeUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetMistakeType sets the "mistake_type" field.
func (_u *MistakeUpdateOne) SetMistakeType(v string) *MistakeUpdateOne {
	_u.mutation.SetMistakeType(v)
	return _u
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMistakeType(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetMistakeType(*v)
	}
	return _u
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (_u *MistakeUpdateOne) ClearMistakeType() *MistakeUpdateOne {
	_u.mutation.ClearMistakeType()
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *MistakeUpdateOne) SetMisconception(v string) *MistakeUpdateOne {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMisconception(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// ClearMisconception clears the value of the "misconception" field.
func (_u *MistakeUpdateOne) ClearMisconception() *MistakeUpdateOne {
	_u.mutation.ClearMisconception()
	return _u
}

// SetReportedText sets the "reported_text" field.
func (_u *MistakeUpdateOne) SetReportedText(v string) *MistakeUpdateOne {
	_u.mutation.SetReportedText(v)
	return _u
}

// SetNillableReportedText sets the "reported_text" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableReportedText(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetReportedText(*v)
	}
	return _u
}

// ClearReportedText clears the value of the "reported_text" field.
func (_u *MistakeUpdateOne) ClearReportedText() *MistakeUpdateOne {
	_u.mutation.ClearReportedText()
	return _u
}

// SetTimesDrilled sets the "times_drilled" field.
func (_u *MistakeUpdateOne) SetTimesDrilled(v int) *MistakeUpdateOne {
	_u.mutation.ResetTimesDrilled()
	_u.mutation.SetTimesDrilled(v)
	return _u
}

// SetNillableTimesDrilled sets the "times_drilled" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableTimesDrilled(v *int) *MistakeUpdateOne {
	if v != nil {
		_u.SetTimesDrilled(*v)
	}
	return _u
}

// AddTimesDrilled adds value to the "times_drilled" field.
func (_u *MistakeUpdateOne) AddTimesDrilled(v int) *MistakeUpdateOne {
	_u.mutation.AddTimesDrilled(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *MistakeUpdateOne) SetTimesCorrect(v int) *MistakeUpdateOne {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableTimesCorrect(v *int) *MistakeUpdateOne {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *MistakeUpdateOne) AddTimesCorrect(v int) *MistakeUpdateOne {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *MistakeUpdateOne) SetMasteryScore(v float64) *MistakeUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMasteryScore(v *float64) *MistakeUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *MistakeUpdateOne) AddMasteryScore(v float64) *MistakeUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetIsMastered sets the "is_mastered" field.
func (_u *MistakeUpdateOne) SetIsMastered(v bool) *MistakeUpdateOne {
	_u.mutation.SetIsMastered(v)
	return _u
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableIsMastered(v *bool) *MistakeUpdateOne {
	if v != nil {
		_u.SetIsMastered(*v)
	}
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *MistakeUpdateOne) SetEasinessFactor(v float64) *MistakeUpdateOne {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableEasinessFactor(v *float64) *MistakeUpdateOne {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *MistakeUpdateOne) AddEasinessFactor(v float64) *MistakeUpdateOne {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MistakeUpdateOne) SetIntervalDays(v int) *MistakeUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableIntervalDays(v *int) *MistakeUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MistakeUpdateOne) AddIntervalDays(v int) *MistakeUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitionCount sets the "repetition_count" field.
func (_u *MistakeUpdateOne) SetRepetitionCount(v int) *MistakeUpdateOne {
	_u.mutation.ResetRepetitionCount()
	_u.mutation.SetRepetitionCount(v)
	return _u
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableRepetitionCount(v *int) *MistakeUpdateOne {
	if v != nil {
		_u.SetRepetitionCount(*v)
	}
	return _u
}

// AddRepetitionCount adds value to the "repetition_count" field.
func (_u *MistakeUpdateOne) AddRepetitionCount(v int) *MistakeUpdateOne {
	_u.mutation.AddRepetitionCount(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MistakeUpdateOne) SetNextReviewAt(v time.Time) *MistakeUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableNextReviewAt(v *time.Time) *MistakeUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *MistakeUpdateOne) SetMasteredAt(v time.Time) *MistakeUpdateOne {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMasteredAt(v *time.Time) *MistakeUpdateOne {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *MistakeUpdateOne) ClearMasteredAt() *MistakeUpdateOne {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (_u *MistakeUpdateOne) SetLastDrilledAt(v time.Time) *MistakeUpdateOne {
	_u.mutation.SetLastDrilledAt(v)
	return _u
}

// SetNillableLastDrilledAt sets the "last_drilled_at" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableLastDrilledAt(v *time.Time) *MistakeUpdateOne {
	if v != nil {
		_u.SetLastDrilledAt(*v)
	}
	return _u
}

// ClearLastDrilledAt clears the value of the "last_drilled_at" field.
func (_u *MistakeUpdateOne) ClearLastDrilledAt() *MistakeUpdateOne {
	_u.mutation.ClearLastDrilledAt()
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdateOne) Mutation() *MistakeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdateOne) Where(ps ...predicate.Mistake) *MistakeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeUpdateOne) Select(field string, fields ...string) *MistakeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mistake entity.
func (_u *MistakeUpdateOne) Save(ctx context.Context) (*Mistake, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdateOne) SaveX(ctx context.Context) *Mistake {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MistakeUpdateOne) sqlSave(ctx context.Context) (_node *Mistake, err error) {
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mistake.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistake.FieldID)
		for _, f := range fields {
			if !mistake.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistake.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(mistake.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(mistake.FieldChapter, field.TypeString, value)
	}
	if _u.mutation.ChapterCleared() {
		_spec.ClearField(mistake.FieldChapter, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(mistake.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(mistake.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.MistakeType(); ok {
		_spec.SetField(mistake.FieldMistakeType, field.TypeString, value)
	}
	if _u.mutation.MistakeTypeCleared() {
		_spec.ClearField(mistake.FieldMistakeType, field.TypeString)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(mistake.FieldMisconception, field.TypeString, value)
	}
	if _u.mutation.MisconceptionCleared() {
		_spec.ClearField(mistake.FieldMisconception, field.TypeString)
	}
	if value, ok := _u.mutation.ReportedText(); ok {
		_spec.SetField(mistake.FieldReportedText, field.TypeString, value)
	}
	if _u.mutation.ReportedTextCleared() {
		_spec.ClearField(mistake.FieldReportedText, field.TypeString)
	}
	if value, ok := _u.mutation.TimesDrilled(); ok {
		_spec.SetField(mistake.FieldTimesDrilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesDrilled(); ok {
		_spec.AddField(mistake.FieldTimesDrilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(mistake.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(mistake.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(mistake.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(mistake.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsMastered(); ok {
		_spec.SetField(mistake.FieldIsMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(mistake.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(mistake.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(mistake.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(mistake.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepetitionCount(); ok {
		_spec.SetField(mistake.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(mistake.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(mistake.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(mistake.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(mistake.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDrilledAt(); ok {
		_spec.SetField(mistake.FieldLastDrilledAt, field.TypeTime, value)
	}
	if _u.mutation.LastDrilledAtCleared() {
		_spec.ClearField(mistake.FieldLastDrilledAt, field.TypeTime)
	}
	_node = &Mistake{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
