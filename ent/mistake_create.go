// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/guruji/ent/mistake"
)

// MistakeCreate is the builder for creating a Mistake entity.
type MistakeCreate struct {
	config
	mutation *MistakeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *MistakeCreate) SetUserID(v string) *MistakeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MistakeCreate) SetSubject(v string) *MistakeCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableSubject(v *string) *MistakeCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *MistakeCreate) SetChapter(v string) *MistakeCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableChapter(v *string) *MistakeCreate {
	if v != nil {
		_c.SetChapter(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *MistakeCreate) SetTopic(v string) *MistakeCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableTopic(v *string) *MistakeCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetMistakeType sets the "mistake_type" field.
func (_c *MistakeCreate) SetMistakeType(v string) *MistakeCreate {
	_c.mutation.SetMistakeType(v)
	return _c
}

// SetNillableMistakeType sets the "mistake_type" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableMistakeType(v *string) *MistakeCreate {
	if v != nil {
		_c.SetMistakeType(*v)
	}
	return _c
}

// SetMisconception sets the "misconception" field.
func (_c *MistakeCreate) SetMisconception(v string) *MistakeCreate {
	_c.mutation.SetMisconception(v)
	return _c
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableMisconception(v *string) *MistakeCreate {
	if v != nil {
		_c.SetMisconception(*v)
	}
	return _c
}

// SetReportedText sets the "reported_text" field.
func (_c *MistakeCreate) SetReportedText(v string) *MistakeCreate {
	_c.mutation.SetReportedText(v)
	return _c
}

// SetNillableReportedText sets the "reported_text" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableReportedText(v *string) *MistakeCreate {
	if v != nil {
		_c.SetReportedText(*v)
	}
	return _c
}

// SetTimesDrilled sets the "times_drilled" field.
func (_c *MistakeCreate) SetTimesDrilled(v int) *MistakeCreate {
	_c.mutation.SetTimesDrilled(v)
	return _c
}

// SetNillableTimesDrilled sets the "times_drilled" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableTimesDrilled(v *int) *MistakeCreate {
	if v != nil {
		_c.SetTimesDrilled(*v)
	}
	return _c
}

// SetTimesCorrect sets the "times_correct" field.
func (_c *MistakeCreate) SetTimesCorrect(v int) *MistakeCreate {
	_c.mutation.SetTimesCorrect(v)
	return _c
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableTimesCorrect(v *int) *MistakeCreate {
	if v != nil {
		_c.SetTimesCorrect(*v)
	}
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *MistakeCreate) SetMasteryScore(v float64) *MistakeCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableMasteryScore(v *float64) *MistakeCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetIsMastered sets the "is_mastered" field.
func (_c *MistakeCreate) SetIsMastered(v bool) *MistakeCreate {
	_c.mutation.SetIsMastered(v)
	return _c
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableIsMastered(v *bool) *MistakeCreate {
	if v != nil {
		_c.SetIsMastered(*v)
	}
	return _c
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_c *MistakeCreate) SetEasinessFactor(v float64) *MistakeCreate {
	_c.mutation.SetEasinessFactor(v)
	return _c
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableEasinessFactor(v *float64) *MistakeCreate {
	if v != nil {
		_c.SetEasinessFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *MistakeCreate) SetIntervalDays(v int) *MistakeCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableIntervalDays(v *int) *MistakeCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitionCount sets the "repetition_count" field.
func (_c *MistakeCreate) SetRepetitionCount(v int) *MistakeCreate {
	_c.mutation.SetRepetitionCount(v)
	return _c
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableRepetitionCount(v *int) *MistakeCreate {
	if v != nil {
		_c.SetRepetitionCount(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MistakeCreate) SetNextReviewAt(v time.Time) *MistakeCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableNextReviewAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetMasteredAt sets the "mastered_at" field.
func (_c *MistakeCreate) SetMasteredAt(v time.Time) *MistakeCreate {
	_c.mutation.SetMasteredAt(v)
	return _c
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableMasteredAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetMasteredAt(*v)
	}
	return _c
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (_c *MistakeCreate) SetLastDrilledAt(v time.Time) *MistakeCreate {
	_c.mutation.SetLastDrilledAt(v)
	return _c
}

// SetNillableLastDrilledAt sets the "last_drilled_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableLastDrilledAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetLastDrilledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MistakeCreate) SetCreatedAt(v time.Time) *MistakeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableCreatedAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MistakeCreate) SetID(v string) *MistakeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableID(v *string) *MistakeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MistakeMutation object of the builder.
func (_c *MistakeCreate) Mutation() *MistakeMutation {
	return _c.mutation
}

// Save creates the Mistake in the database.
func (_c *MistakeCreate) Save(ctx context.Context) (*Mistake, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeCreate) SaveX(ctx context.Context) *Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := mistake.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.TimesDrilled(); !ok {
		v := mistake.DefaultTimesDrilled
		_c.mutation.SetTimesDrilled(v)
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		v := mistake.DefaultTimesCorrect
		_c.mutation.SetTimesCorrect(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := mistake.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.IsMastered(); !ok {
		v := mistake.DefaultIsMastered
		_c.mutation.SetIsMastered(v)
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		v := mistake.DefaultEasinessFactor
		_c.mutation.SetEasinessFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := mistake.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.RepetitionCount(); !ok {
		v := mistake.DefaultRepetitionCount
		_c.mutation.SetRepetitionCount(v)
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		v := mistake.DefaultNextReviewAt()
		_c.mutation.SetNextReviewAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mistake.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mistake.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Mistake.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := mistake.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Mistake.subject"`)}
	}
	if _, ok := _c.mutation.TimesDrilled(); !ok {
		return &ValidationError{Name: "times_drilled", err: errors.New(`ent: missing required field "Mistake.times_drilled"`)}
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		return &ValidationError{Name: "times_correct", err: errors.New(`ent: missing required field "Mistake.times_correct"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "Mistake.mastery_score"`)}
	}
	if _, ok := _c.mutation.IsMastered(); !ok {
		return &ValidationError{Name: "is_mastered", err: errors.New(`ent: missing required field "Mistake.is_mastered"`)}
	}
	if _, ok := _c.mutation.EasinessFactor(); !ok {
		return &ValidationError{Name: "easiness_factor", err: errors.New(`ent: missing required field "Mistake.easiness_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Mistake.interval_days"`)}
	}
	if _, ok := _c.mutation.RepetitionCount(); !ok {
		return &ValidationError{Name: "repetition_count", err: errors.New(`ent: missing required field "Mistake.repetition_count"`)}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "Mistake.next_review_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mistake.created_at"`)}
	}
	return nil
}

func (_c *MistakeCreate) sqlSave(ctx context.Context) (*Mistake, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Mistake.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MistakeCreate) createSpec() (*Mistake, *sqlgraph.CreateSpec) {
	var (
		_node = &Mistake{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistake.Table, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mistake.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(mistake.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(mistake.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(mistake.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.MistakeType(); ok {
		_spec.SetField(mistake.FieldMistakeType, field.TypeString, value)
		_node.MistakeType = value
	}
	if value, ok := _c.mutation.Misconception(); ok {
		_spec.SetField(mistake.FieldMisconception, field.TypeString, value)
		_node.Misconception = value
	}
	if value, ok := _c.mutation.ReportedText(); ok {
		_spec.SetField(mistake.FieldReportedText, field.TypeString, value)
		_node.ReportedText = value
	}
	if value, ok := _c.mutation.TimesDrilled(); ok {
		_spec.SetField(mistake.FieldTimesDrilled, field.TypeInt, value)
		_node.TimesDrilled = value
	}
	if value, ok := _c.mutation.TimesCorrect(); ok {
		_spec.SetField(mistake.FieldTimesCorrect, field.TypeInt, value)
		_node.TimesCorrect = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(mistake.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.IsMastered(); ok {
		_spec.SetField(mistake.FieldIsMastered, field.TypeBool, value)
		_node.IsMastered = value
	}
	if value, ok := _c.mutation.EasinessFactor(); ok {
		_spec.SetField(mistake.FieldEasinessFactor, field.TypeFloat64, value)
		_node.EasinessFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(mistake.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.RepetitionCount(); ok {
		_spec.SetField(mistake.FieldRepetitionCount, field.TypeInt, value)
		_node.RepetitionCount = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(mistake.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.MasteredAt(); ok {
		_spec.SetField(mistake.FieldMasteredAt, field.TypeTime, value)
		_node.MasteredAt = &value
	}
	if value, ok := _c.mutation.LastDrilledAt(); ok {
		_spec.SetField(mistake.FieldLastDrilledAt, field.TypeTime, value)
		_node.LastDrilledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mistake.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mistake.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MistakeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MistakeCreate) OnConflict(opts ...sql.ConflictOption) *MistakeUpsertOne {
	_c.conflict = opts
	return &MistakeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mistake.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MistakeCreate) OnConflictColumns(columns ...string) *MistakeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MistakeUpsertOne{
		create: _c,
	}
}

type (
	// MistakeUpsertOne is the builder for "upsert"-ing
	//  one Mistake node.
	MistakeUpsertOne struct {
		create *MistakeCreate
	}

	// MistakeUpsert is the "OnConflict" setter.
	MistakeUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubject sets the "subject" field.
func (u *MistakeUpsert) SetSubject(v string) *MistakeUpsert {
	u.Set(mistake.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateSubject() *MistakeUpsert {
	u.SetExcluded(mistake.FieldSubject)
	return u
}

// SetChapter sets the "chapter" field.
func (u *MistakeUpsert) SetChapter(v string) *MistakeUpsert {
	u.Set(mistake.FieldChapter, v)
	return u
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateChapter() *MistakeUpsert {
	u.SetExcluded(mistake.FieldChapter)
	return u
}

// ClearChapter clears the value of the "chapter" field.
func (u *MistakeUpsert) ClearChapter() *MistakeUpsert {
	u.SetNull(mistake.FieldChapter)
	return u
}

// SetTopic sets the "topic" field.
func (u *MistakeUpsert) SetTopic(v string) *MistakeUpsert {
	u.Set(mistake.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateTopic() *MistakeUpsert {
	u.SetExcluded(mistake.FieldTopic)
	return u
}

// ClearTopic clears the value of the "topic" field.
func (u *MistakeUpsert) ClearTopic() *MistakeUpsert {
	u.SetNull(mistake.FieldTopic)
	return u
}

// SetMistakeType sets the "mistake_type" field.
func (u *MistakeUpsert) SetMistakeType(v string) *MistakeUpsert {
	u.Set(mistake.FieldMistakeType, v)
	return u
}

// UpdateMistakeType sets the "mistake_type" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateMistakeType() *MistakeUpsert {
	u.SetExcluded(mistake.FieldMistakeType)
	return u
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (u *MistakeUpsert) ClearMistakeType() *MistakeUpsert {
	u.SetNull(mistake.FieldMistakeType)
	return u
}

// SetMisconception sets the "misconception" field.
func (u *MistakeUpsert) SetMisconception(v string) *MistakeUpsert {
	u.Set(mistake.FieldMisconception, v)
	return u
}

// UpdateMisconception sets the "misconception" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateMisconception() *MistakeUpsert {
	u.SetExcluded(mistake.FieldMisconception)
	return u
}

// ClearMisconception clears the value of the "misconception" field.
func (u *MistakeUpsert) ClearMisconception() *MistakeUpsert {
	u.SetNull(mistake.FieldMisconception)
	return u
}

// SetReportedText sets the "reported_text" field.
func (u *MistakeUpsert) SetReportedText(v string) *MistakeUpsert {
	u.Set(mistake.FieldReportedText, v)
	return u
}

// UpdateReportedText sets the "reported_text" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateReportedText() *MistakeUpsert {
	u.SetExcluded(mistake.FieldReportedText)
	return u
}

// ClearReportedText clears the value of the "reported_text" field.
func (u *MistakeUpsert) ClearReportedText() *MistakeUpsert {
	u.SetNull(mistake.FieldReportedText)
	return u
}

// SetTimesDrilled sets the "times_drilled" field.
func (u *MistakeUpsert) SetTimesDrilled(v int) *MistakeUpsert {
	u.Set(mistake.FieldTimesDrilled, v)
	return u
}

// UpdateTimesDrilled sets the "times_drilled" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateTimesDrilled() *MistakeUpsert {
	u.SetExcluded(mistake.FieldTimesDrilled)
	return u
}

// AddTimesDrilled adds v to the "times_drilled" field.
func (u *MistakeUpsert) AddTimesDrilled(v int) *MistakeUpsert {
	u.Add(mistake.FieldTimesDrilled, v)
	return u
}

// SetTimesCorrect sets the "times_correct" field.
func (u *MistakeUpsert) SetTimesCorrect(v int) *MistakeUpsert {
	u.Set(mistake.FieldTimesCorrect, v)
	return u
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateTimesCorrect() *MistakeUpsert {
	u.SetExcluded(mistake.FieldTimesCorrect)
	return u
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *MistakeUpsert) AddTimesCorrect(v int) *MistakeUpsert {
	u.Add(mistake.FieldTimesCorrect, v)
	return u
}

// SetMasteryScore sets the "mastery_score" field.
func (u *MistakeUpsert) SetMasteryScore(v float64) *MistakeUpsert {
	u.Set(mistake.FieldMasteryScore, v)
	return u
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateMasteryScore() *MistakeUpsert {
	u.SetExcluded(mistake.FieldMasteryScore)
	return u
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *MistakeUpsert) AddMasteryScore(v float64) *MistakeUpsert {
	u.Add(mistake.FieldMasteryScore, v)
	return u
}

// SetIsMastered sets the "is_mastered" field.
func (u *MistakeUpsert) SetIsMastered(v bool) *MistakeUpsert {
	u.Set(mistake.FieldIsMastered, v)
	return u
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateIsMastered() *MistakeUpsert {
	u.SetExcluded(mistake.FieldIsMastered)
	return u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (u *MistakeUpsert) SetEasinessFactor(v float64) *MistakeUpsert {
	u.Set(mistake.FieldEasinessFactor, v)
	return u
}

// UpdateEasinessFactor sets the "easiness_factor" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateEasinessFactor() *MistakeUpsert {
	u.SetExcluded(mistake.FieldEasinessFactor)
	return u
}

// AddEasinessFactor adds v to the "easiness_factor" field.
func (u *MistakeUpsert) AddEasinessFactor(v float64) *MistakeUpsert {
	u.Add(mistake.FieldEasinessFactor, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *MistakeUpsert) SetIntervalDays(v int) *MistakeUpsert {
	u.Set(mistake.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateIntervalDays() *MistakeUpsert {
	u.SetExcluded(mistake.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *MistakeUpsert) AddIntervalDays(v int) *MistakeUpsert {
	u.Add(mistake.FieldIntervalDays, v)
	return u
}

// SetRepetitionCount sets the "repetition_count" field.
func (u *MistakeUpsert) SetRepetitionCount(v int) *MistakeUpsert {
	u.Set(mistake.FieldRepetitionCount, v)
	return u
}

// UpdateRepetitionCount sets the "repetition_count" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateRepetitionCount() *MistakeUpsert {
	u.SetExcluded(mistake.FieldRepetitionCount)
	return u
}

// AddRepetitionCount adds v to the "repetition_count" field.
func (u *MistakeUpsert) AddRepetitionCount(v int) *MistakeUpsert {
	u.Add(mistake.FieldRepetitionCount, v)
	return u
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MistakeUpsert) SetNextReviewAt(v time.Time) *MistakeUpsert {
	u.Set(mistake.FieldNextReviewAt, v)
	return u
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateNextReviewAt() *MistakeUpsert {
	u.SetExcluded(mistake.FieldNextReviewAt)
	return u
}

// SetMasteredAt sets the "mastered_at" field.
func (u *MistakeUpsert) SetMasteredAt(v time.Time) *MistakeUpsert {
	u.Set(mistake.FieldMasteredAt, v)
	return u
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateMasteredAt() *MistakeUpsert {
	u.SetExcluded(mistake.FieldMasteredAt)
	return u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *MistakeUpsert) ClearMasteredAt() *MistakeUpsert {
	u.SetNull(mistake.FieldMasteredAt)
	return u
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (u *MistakeUpsert) SetLastDrilledAt(v time.Time) *MistakeUpsert {
	u.Set(mistake.FieldLastDrilledAt, v)
	return u
}

// UpdateLastDrilledAt sets the "last_drilled_at" field to the value that was provided on create.
func (u *MistakeUpsert) UpdateLastDrilledAt() *MistakeUpsert {
	u.SetExcluded(mistake.FieldLastDrilledAt)
	return u
}

// ClearLastDrilledAt clears the value of the "last_drilled_at" field.
func (u *MistakeUpsert) ClearLastDrilledAt() *MistakeUpsert {
	u.SetNull(mistake.FieldLastDrilledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mistake.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mistake.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MistakeUpsertOne) UpdateNewValues() *MistakeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mistake.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(mistake.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mistake.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mistake.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MistakeUpsertOne) Ignore() *MistakeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MistakeUpsertOne) DoNothing() *MistakeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MistakeCreate.OnConflict
// documentation for more info.
func (u *MistakeUpsertOne) Update(set func(*MistakeUpsert)) *MistakeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MistakeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *MistakeUpsertOne) SetSubject(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateSubject() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateSubject()
	})
}

// SetChapter sets the "chapter" field.
func (u *MistakeUpsertOne) SetChapter(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetChapter(v)
	})
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateChapter() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateChapter()
	})
}

// ClearChapter clears the value of the "chapter" field.
func (u *MistakeUpsertOne) ClearChapter() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearChapter()
	})
}

// SetTopic sets the "topic" field.
func (u *MistakeUpsertOne) SetTopic(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateTopic() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *MistakeUpsertOne) ClearTopic() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearTopic()
	})
}

// SetMistakeType sets the "mistake_type" field.
func (u *MistakeUpsertOne) SetMistakeType(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMistakeType(v)
	})
}

// UpdateMistakeType sets the "mistake_type" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateMistakeType() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMistakeType()
	})
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (u *MistakeUpsertOne) ClearMistakeType() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMistakeType()
	})
}

// SetMisconception sets the "misconception" field.
func (u *MistakeUpsertOne) SetMisconception(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMisconception(v)
	})
}

// UpdateMisconception sets the "misconception" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateMisconception() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMisconception()
	})
}

// ClearMisconception clears the value of the "misconception" field.
func (u *MistakeUpsertOne) ClearMisconception() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMisconception()
	})
}

// SetReportedText sets the "reported_text" field.
func (u *MistakeUpsertOne) SetReportedText(v string) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetReportedText(v)
	})
}

// UpdateReportedText sets the "reported_text" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateReportedText() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateReportedText()
	})
}

// ClearReportedText clears the value of the "reported_text" field.
func (u *MistakeUpsertOne) ClearReportedText() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearReportedText()
	})
}

// SetTimesDrilled sets the "times_drilled" field.
func (u *MistakeUpsertOne) SetTimesDrilled(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTimesDrilled(v)
	})
}

// AddTimesDrilled adds v to the "times_drilled" field.
func (u *MistakeUpsertOne) AddTimesDrilled(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddTimesDrilled(v)
	})
}

// UpdateTimesDrilled sets the "times_drilled" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateTimesDrilled() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTimesDrilled()
	})
}

// SetTimesCorrect sets the "times_correct" field.
func (u *MistakeUpsertOne) SetTimesCorrect(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTimesCorrect(v)
	})
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *MistakeUpsertOne) AddTimesCorrect(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddTimesCorrect(v)
	})
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateTimesCorrect() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTimesCorrect()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *MistakeUpsertOne) SetMasteryScore(v float64) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *MistakeUpsertOne) AddMasteryScore(v float64) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateMasteryScore() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetIsMastered sets the "is_mastered" field.
func (u *MistakeUpsertOne) SetIsMastered(v bool) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetIsMastered(v)
	})
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateIsMastered() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateIsMastered()
	})
}

// SetEasinessFactor sets the "easiness_factor" field.
func (u *MistakeUpsertOne) SetEasinessFactor(v float64) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetEasinessFactor(v)
	})
}

// AddEasinessFactor adds v to the "easiness_factor" field.
func (u *MistakeUpsertOne) AddEasinessFactor(v float64) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddEasinessFactor(v)
	})
}

// UpdateEasinessFactor sets the "easiness_factor" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateEasinessFactor() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateEasinessFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *MistakeUpsertOne) SetIntervalDays(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *MistakeUpsertOne) AddIntervalDays(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateIntervalDays() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitionCount sets the "repetition_count" field.
func (u *MistakeUpsertOne) SetRepetitionCount(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetRepetitionCount(v)
	})
}

// AddRepetitionCount adds v to the "repetition_count" field.
func (u *MistakeUpsertOne) AddRepetitionCount(v int) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.AddRepetitionCount(v)
	})
}

// UpdateRepetitionCount sets the "repetition_count" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateRepetitionCount() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateRepetitionCount()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MistakeUpsertOne) SetNextReviewAt(v time.Time) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateNextReviewAt() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateNextReviewAt()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *MistakeUpsertOne) SetMasteredAt(v time.Time) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateMasteredAt() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *MistakeUpsertOne) ClearMasteredAt() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMasteredAt()
	})
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (u *MistakeUpsertOne) SetLastDrilledAt(v time.Time) *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.SetLastDrilledAt(v)
	})
}

// UpdateLastDrilledAt sets the "last_drilled_at" field to the value that was provided on create.
func (u *MistakeUpsertOne) UpdateLastDrilledAt() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateLastDrilledAt()
	})
}

// ClearLastDrilledAt clears the value of the "last_drilled_at" field.
func (u *MistakeUpsertOne) ClearLastDrilledAt() *MistakeUpsertOne {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearLastDrilledAt()
	})
}

// Exec executes the query.
func (u *MistakeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MistakeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MistakeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MistakeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MistakeUpsertOne.ID is not supported by MySQL driver. Use MistakeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MistakeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MistakeCreateBulk is the builder for creating many Mistake entities in bulk.
type MistakeCreateBulk struct {
	config
	err      error
	builders []*MistakeCreate
	conflict []sql.ConflictOption
}

// Save creates the Mistake entities in the database.
func (_c *MistakeCreateBulk) Save(ctx context.Context) ([]*Mistake, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mistake, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *MistakeCreateBulk) SaveX(ctx context.Context) []*Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mistake.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MistakeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MistakeCreateBulk) OnConflict(opts ...sql.ConflictOption) *MistakeUpsertBulk {
	_c.conflict = opts
	return &MistakeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mistake.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MistakeCreateBulk) OnConflictColumns(columns ...string) *MistakeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MistakeUpsertBulk{
		create: _c,
	}
}

// MistakeUpsertBulk is the builder for "upsert"-ing
// a bulk of Mistake nodes.
type MistakeUpsertBulk struct {
	create *MistakeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mistake.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mistake.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MistakeUpsertBulk) UpdateNewValues() *MistakeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mistake.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(mistake.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mistake.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mistake.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MistakeUpsertBulk) Ignore() *MistakeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MistakeUpsertBulk) DoNothing() *MistakeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MistakeCreateBulk.OnConflict
// documentation for more info.
func (u *MistakeUpsertBulk) Update(set func(*MistakeUpsert)) *MistakeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MistakeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *MistakeUpsertBulk) SetSubject(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateSubject() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateSubject()
	})
}

// SetChapter sets the "chapter" field.
func (u *MistakeUpsertBulk) SetChapter(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetChapter(v)
	})
}

// UpdateChapter sets the "chapter" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateChapter() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateChapter()
	})
}

// ClearChapter clears the value of the "chapter" field.
func (u *MistakeUpsertBulk) ClearChapter() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearChapter()
	})
}

// SetTopic sets the "topic" field.
func (u *MistakeUpsertBulk) SetTopic(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateTopic() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *MistakeUpsertBulk) ClearTopic() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearTopic()
	})
}

// SetMistakeType sets the "mistake_type" field.
func (u *MistakeUpsertBulk) SetMistakeType(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMistakeType(v)
	})
}

// UpdateMistakeType sets the "mistake_type" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateMistakeType() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMistakeType()
	})
}

// ClearMistakeType clears the value of the "mistake_type" field.
func (u *MistakeUpsertBulk) ClearMistakeType() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMistakeType()
	})
}

// SetMisconception sets the "misconception" field.
func (u *MistakeUpsertBulk) SetMisconception(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMisconception(v)
	})
}

// UpdateMisconception sets the "misconception" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateMisconception() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMisconception()
	})
}

// ClearMisconception clears the value of the "misconception" field.
func (u *MistakeUpsertBulk) ClearMisconception() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMisconception()
	})
}

// SetReportedText sets the "reported_text" field.
func (u *MistakeUpsertBulk) SetReportedText(v string) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetReportedText(v)
	})
}

// UpdateReportedText sets the "reported_text" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateReportedText() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateReportedText()
	})
}

// ClearReportedText clears the value of the "reported_text" field.
func (u *MistakeUpsertBulk) ClearReportedText() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearReportedText()
	})
}

// SetTimesDrilled sets the "times_drilled" field.
func (u *MistakeUpsertBulk) SetTimesDrilled(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTimesDrilled(v)
	})
}

// AddTimesDrilled adds v to the "times_drilled" field.
func (u *MistakeUpsertBulk) AddTimesDrilled(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddTimesDrilled(v)
	})
}

// UpdateTimesDrilled sets the "times_drilled" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateTimesDrilled() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTimesDrilled()
	})
}

// SetTimesCorrect sets the "times_correct" field.
func (u *MistakeUpsertBulk) SetTimesCorrect(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetTimesCorrect(v)
	})
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *MistakeUpsertBulk) AddTimesCorrect(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddTimesCorrect(v)
	})
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateTimesCorrect() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateTimesCorrect()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *MistakeUpsertBulk) SetMasteryScore(v float64) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *MistakeUpsertBulk) AddMasteryScore(v float64) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateMasteryScore() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetIsMastered sets the "is_mastered" field.
func (u *MistakeUpsertBulk) SetIsMastered(v bool) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetIsMastered(v)
	})
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateIsMastered() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateIsMastered()
	})
}

// SetEasinessFactor sets the "easiness_factor" field.
func (u *MistakeUpsertBulk) SetEasinessFactor(v float64) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetEasinessFactor(v)
	})
}

// AddEasinessFactor adds v to the "easiness_factor" field.
func (u *MistakeUpsertBulk) AddEasinessFactor(v float64) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddEasinessFactor(v)
	})
}

// UpdateEasinessFactor sets the "easiness_factor" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateEasinessFactor() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateEasinessFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *MistakeUpsertBulk) SetIntervalDays(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *MistakeUpsertBulk) AddIntervalDays(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateIntervalDays() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitionCount sets the "repetition_count" field.
func (u *MistakeUpsertBulk) SetRepetitionCount(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetRepetitionCount(v)
	})
}

// AddRepetitionCount adds v to the "repetition_count" field.
func (u *MistakeUpsertBulk) AddRepetitionCount(v int) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.AddRepetitionCount(v)
	})
}

// UpdateRepetitionCount sets the "repetition_count" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateRepetitionCount() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateRepetitionCount()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MistakeUpsertBulk) SetNextReviewAt(v time.Time) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateNextReviewAt() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateNextReviewAt()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *MistakeUpsertBulk) SetMasteredAt(v time.Time) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateMasteredAt() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *MistakeUpsertBulk) ClearMasteredAt() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearMasteredAt()
	})
}

// SetLastDrilledAt sets the "last_drilled_at" field.
func (u *MistakeUpsertBulk) SetLastDrilledAt(v time.Time) *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.SetLastDrilledAt(v)
	})
}

// UpdateLastDrilledAt sets the "last_drilled_at" field to the value that was provided on create.
func (u *MistakeUpsertBulk) UpdateLastDrilledAt() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.UpdateLastDrilledAt()
	})
}

// ClearLastDrilledAt clears the value of the "last_drilled_at" field.
func (u *MistakeUpsertBulk) ClearLastDrilledAt() *MistakeUpsertBulk {
	return u.Update(func(s *MistakeUpsert) {
		s.ClearLastDrilledAt()
	})
}

// Exec executes the query.
func (u *MistakeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MistakeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MistakeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MistakeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
