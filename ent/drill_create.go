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
	"github.com/abhisek/guruji/ent/drill"
)

// DrillCreate is the builder for creating a Drill entity.
type DrillCreate struct {
	config
	mutation *DrillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMistakeID sets the "mistake_id" field.
func (_c *DrillCreate) SetMistakeID(v string) *DrillCreate {
	_c.mutation.SetMistakeID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *DrillCreate) SetQuestionText(v string) *DrillCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *DrillCreate) SetOptionA(v string) *DrillCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *DrillCreate) SetOptionB(v string) *DrillCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *DrillCreate) SetOptionC(v string) *DrillCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *DrillCreate) SetOptionD(v string) *DrillCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *DrillCreate) SetCorrectOption(v string) *DrillCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *DrillCreate) SetSolution(v string) *DrillCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetHint1 sets the "hint_1" field.
func (_c *DrillCreate) SetHint1(v string) *DrillCreate {
	_c.mutation.SetHint1(v)
	return _c
}

// SetNillableHint1 sets the "hint_1" field if the given value is not nil.
func (_c *DrillCreate) SetNillableHint1(v *string) *DrillCreate {
	if v != nil {
		_c.SetHint1(*v)
	}
	return _c
}

// SetHint2 sets the "hint_2" field.
func (_c *DrillCreate) SetHint2(v string) *DrillCreate {
	_c.mutation.SetHint2(v)
	return _c
}

// SetNillableHint2 sets the "hint_2" field if the given value is not nil.
func (_c *DrillCreate) SetNillableHint2(v *string) *DrillCreate {
	if v != nil {
		_c.SetHint2(*v)
	}
	return _c
}

// SetHint3 sets the "hint_3" field.
func (_c *DrillCreate) SetHint3(v string) *DrillCreate {
	_c.mutation.SetHint3(v)
	return _c
}

// SetNillableHint3 sets the "hint_3" field if the given value is not nil.
func (_c *DrillCreate) SetNillableHint3(v *string) *DrillCreate {
	if v != nil {
		_c.SetHint3(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DrillCreate) SetDifficulty(v int) *DrillCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *DrillCreate) SetNillableDifficulty(v *int) *DrillCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *DrillCreate) SetOrderIndex(v int) *DrillCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *DrillCreate) SetNillableOrderIndex(v *int) *DrillCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetIsUsed sets the "is_used" field.
func (_c *DrillCreate) SetIsUsed(v bool) *DrillCreate {
	_c.mutation.SetIsUsed(v)
	return _c
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_c *DrillCreate) SetNillableIsUsed(v *bool) *DrillCreate {
	if v != nil {
		_c.SetIsUsed(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *DrillCreate) SetUsedAt(v time.Time) *DrillCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *DrillCreate) SetNillableUsedAt(v *time.Time) *DrillCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DrillCreate) SetCreatedAt(v time.Time) *DrillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DrillCreate) SetNillableCreatedAt(v *time.Time) *DrillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the DrillMutation object of the builder.
func (_c *DrillCreate) Mutation() *DrillMutation {
	return _c.mutation
}

// Save creates the Drill in the database.
func (_c *DrillCreate) Save(ctx context.Context) (*Drill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillCreate) SaveX(ctx context.Context) *Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := drill.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := drill.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.IsUsed(); !ok {
		v := drill.DefaultIsUsed
		_c.mutation.SetIsUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := drill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillCreate) check() error {
	if _, ok := _c.mutation.MistakeID(); !ok {
		return &ValidationError{Name: "mistake_id", err: errors.New(`ent: missing required field "Drill.mistake_id"`)}
	}
	if v, ok := _c.mutation.MistakeID(); ok {
		if err := drill.MistakeIDValidator(v); err != nil {
			return &ValidationError{Name: "mistake_id", err: fmt.Errorf(`ent: validator failed for field "Drill.mistake_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Drill.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := drill.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Drill.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "Drill.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := drill.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Drill.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "Drill.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := drill.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Drill.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "Drill.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := drill.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Drill.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "Drill.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := drill.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Drill.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "Drill.correct_option"`)}
	}
	if v, ok := _c.mutation.CorrectOption(); ok {
		if err := drill.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Drill.correct_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "Drill.solution"`)}
	}
	if v, ok := _c.mutation.Solution(); ok {
		if err := drill.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Drill.solution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Drill.difficulty"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Drill.order_index"`)}
	}
	if _, ok := _c.mutation.IsUsed(); !ok {
		return &ValidationError{Name: "is_used", err: errors.New(`ent: missing required field "Drill.is_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Drill.created_at"`)}
	}
	return nil
}

func (_c *DrillCreate) sqlSave(ctx context.Context) (*Drill, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillCreate) createSpec() (*Drill, *sqlgraph.CreateSpec) {
	var (
		_node = &Drill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drill.Table, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.MistakeID(); ok {
		_spec.SetField(drill.FieldMistakeID, field.TypeString, value)
		_node.MistakeID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(drill.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(drill.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(drill.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(drill.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(drill.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(drill.FieldCorrectOption, field.TypeString, value)
		_node.CorrectOption = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(drill.FieldSolution, field.TypeString, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Hint1(); ok {
		_spec.SetField(drill.FieldHint1, field.TypeString, value)
		_node.Hint1 = value
	}
	if value, ok := _c.mutation.Hint2(); ok {
		_spec.SetField(drill.FieldHint2, field.TypeString, value)
		_node.Hint2 = value
	}
	if value, ok := _c.mutation.Hint3(); ok {
		_spec.SetField(drill.FieldHint3, field.TypeString, value)
		_node.Hint3 = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(drill.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.IsUsed(); ok {
		_spec.SetField(drill.FieldIsUsed, field.TypeBool, value)
		_node.IsUsed = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(drill.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(drill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Drill.Create().
//		SetMistakeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrillUpsert) {
//			SetMistakeID(v+v).
//		}).
//		Exec(ctx)
func (_c *DrillCreate) OnConflict(opts ...sql.ConflictOption) *DrillUpsertOne {
	_c.conflict = opts
	return &DrillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Drill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrillCreate) OnConflictColumns(columns ...string) *DrillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrillUpsertOne{
		create: _c,
	}
}

type (
	// DrillUpsertOne is the builder for "upsert"-ing
	//  one Drill node.
	DrillUpsertOne struct {
		create *DrillCreate
	}

	// DrillUpsert is the "OnConflict" setter.
	DrillUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionText sets the "question_text" field.
func (u *DrillUpsert) SetQuestionText(v string) *DrillUpsert {
	u.Set(drill.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *DrillUpsert) UpdateQuestionText() *DrillUpsert {
	u.SetExcluded(drill.FieldQuestionText)
	return u
}

// SetOptionA sets the "option_a" field.
func (u *DrillUpsert) SetOptionA(v string) *DrillUpsert {
	u.Set(drill.FieldOptionA, v)
	return u
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *DrillUpsert) UpdateOptionA() *DrillUpsert {
	u.SetExcluded(drill.FieldOptionA)
	return u
}

// SetOptionB sets the "option_b" field.
func (u *DrillUpsert) SetOptionB(v string) *DrillUpsert {
	u.Set(drill.FieldOptionB, v)
	return u
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *DrillUpsert) UpdateOptionB() *DrillUpsert {
	u.SetExcluded(drill.FieldOptionB)
	return u
}

// SetOptionC sets the "option_c" field.
func (u *DrillUpsert) SetOptionC(v string) *DrillUpsert {
	u.Set(drill.FieldOptionC, v)
	return u
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *DrillUpsert) UpdateOptionC() *DrillUpsert {
	u.SetExcluded(drill.FieldOptionC)
	return u
}

// SetOptionD sets the "option_d" field.
func (u *DrillUpsert) SetOptionD(v string) *DrillUpsert {
	u.Set(drill.FieldOptionD, v)
	return u
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *DrillUpsert) UpdateOptionD() *DrillUpsert {
	u.SetExcluded(drill.FieldOptionD)
	return u
}

// SetCorrectOption sets the "correct_option" field.
func (u *DrillUpsert) SetCorrectOption(v string) *DrillUpsert {
	u.Set(drill.FieldCorrectOption, v)
	return u
}

// UpdateCorrectOption sets the "correct_option" field to the value that was provided on create.
func (u *DrillUpsert) UpdateCorrectOption() *DrillUpsert {
	u.SetExcluded(drill.FieldCorrectOption)
	return u
}

// SetSolution sets the "solution" field.
func (u *DrillUpsert) SetSolution(v string) *DrillUpsert {
	u.Set(drill.FieldSolution, v)
	return u
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DrillUpsert) UpdateSolution() *DrillUpsert {
	u.SetExcluded(drill.FieldSolution)
	return u
}

// SetHint1 sets the "hint_1" field.
func (u *DrillUpsert) SetHint1(v string) *DrillUpsert {
	u.Set(drill.FieldHint1, v)
	return u
}

// UpdateHint1 sets the "hint_1" field to the value that was provided on create.
func (u *DrillUpsert) UpdateHint1() *DrillUpsert {
	u.SetExcluded(drill.FieldHint1)
	return u
}

// ClearHint1 clears the value of the "hint_1" field.
func (u *DrillUpsert) ClearHint1() *DrillUpsert {
	u.SetNull(drill.FieldHint1)
	return u
}

// SetHint2 sets the "hint_2" field.
func (u *DrillUpsert) SetHint2(v string) *DrillUpsert {
	u.Set(drill.FieldHint2, v)
	return u
}

// UpdateHint2 sets the "hint_2" field to the value that was provided on create.
func (u *DrillUpsert) UpdateHint2() *DrillUpsert {
	u.SetExcluded(drill.FieldHint2)
	return u
}

// ClearHint2 clears the value of the "hint_2" field.
func (u *DrillUpsert) ClearHint2() *DrillUpsert {
	u.SetNull(drill.FieldHint2)
	return u
}

// SetHint3 sets the "hint_3" field.
func (u *DrillUpsert) SetHint3(v string) *DrillUpsert {
	u.Set(drill.FieldHint3, v)
	return u
}

// UpdateHint3 sets the "hint_3" field to the value that was provided on create.
func (u *DrillUpsert) UpdateHint3() *DrillUpsert {
	u.SetExcluded(drill.FieldHint3)
	return u
}

// ClearHint3 clears the value of the "hint_3" field.
func (u *DrillUpsert) ClearHint3() *DrillUpsert {
	u.SetNull(drill.FieldHint3)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *DrillUpsert) SetDifficulty(v int) *DrillUpsert {
	u.Set(drill.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *DrillUpsert) UpdateDifficulty() *DrillUpsert {
	u.SetExcluded(drill.FieldDifficulty)
	return u
}

// AddDifficulty adds v to the "difficulty" field.
func (u *DrillUpsert) AddDifficulty(v int) *DrillUpsert {
	u.Add(drill.FieldDifficulty, v)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *DrillUpsert) SetOrderIndex(v int) *DrillUpsert {
	u.Set(drill.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *DrillUpsert) UpdateOrderIndex() *DrillUpsert {
	u.SetExcluded(drill.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *DrillUpsert) AddOrderIndex(v int) *DrillUpsert {
	u.Add(drill.FieldOrderIndex, v)
	return u
}

// SetIsUsed sets the "is_used" field.
func (u *DrillUpsert) SetIsUsed(v bool) *DrillUpsert {
	u.Set(drill.FieldIsUsed, v)
	return u
}

// UpdateIsUsed sets the "is_used" field to the value that was provided on create.
func (u *DrillUpsert) UpdateIsUsed() *DrillUpsert {
	u.SetExcluded(drill.FieldIsUsed)
	return u
}

// SetUsedAt sets the "used_at" field.
func (u *DrillUpsert) SetUsedAt(v time.Time) *DrillUpsert {
	u.Set(drill.FieldUsedAt, v)
	return u
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *DrillUpsert) UpdateUsedAt() *DrillUpsert {
	u.SetExcluded(drill.FieldUsedAt)
	return u
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *DrillUpsert) ClearUsedAt() *DrillUpsert {
	u.SetNull(drill.FieldUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Drill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DrillUpsertOne) UpdateNewValues() *DrillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.MistakeID(); exists {
			s.SetIgnore(drill.FieldMistakeID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(drill.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Drill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DrillUpsertOne) Ignore() *DrillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrillUpsertOne) DoNothing() *DrillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrillCreate.OnConflict
// documentation for more info.
func (u *DrillUpsertOne) Update(set func(*DrillUpsert)) *DrillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrillUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *DrillUpsertOne) SetQuestionText(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateQuestionText() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *DrillUpsertOne) SetOptionA(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateOptionA() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *DrillUpsertOne) SetOptionB(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateOptionB() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *DrillUpsertOne) SetOptionC(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateOptionC() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *DrillUpsertOne) SetOptionD(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateOptionD() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectOption sets the "correct_option" field.
func (u *DrillUpsertOne) SetCorrectOption(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetCorrectOption(v)
	})
}

// UpdateCorrectOption sets the "correct_option" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateCorrectOption() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateCorrectOption()
	})
}

// SetSolution sets the "solution" field.
func (u *DrillUpsertOne) SetSolution(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetSolution(v)
	})
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateSolution() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateSolution()
	})
}

// SetHint1 sets the "hint_1" field.
func (u *DrillUpsertOne) SetHint1(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint1(v)
	})
}

// UpdateHint1 sets the "hint_1" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateHint1() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint1()
	})
}

// ClearHint1 clears the value of the "hint_1" field.
func (u *DrillUpsertOne) ClearHint1() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint1()
	})
}

// SetHint2 sets the "hint_2" field.
func (u *DrillUpsertOne) SetHint2(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint2(v)
	})
}

// UpdateHint2 sets the "hint_2" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateHint2() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint2()
	})
}

// ClearHint2 clears the value of the "hint_2" field.
func (u *DrillUpsertOne) ClearHint2() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint2()
	})
}

// SetHint3 sets the "hint_3" field.
func (u *DrillUpsertOne) SetHint3(v string) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint3(v)
	})
}

// UpdateHint3 sets the "hint_3" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateHint3() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint3()
	})
}

// ClearHint3 clears the value of the "hint_3" field.
func (u *DrillUpsertOne) ClearHint3() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint3()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *DrillUpsertOne) SetDifficulty(v int) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *DrillUpsertOne) AddDifficulty(v int) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateDifficulty() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateDifficulty()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *DrillUpsertOne) SetOrderIndex(v int) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *DrillUpsertOne) AddOrderIndex(v int) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateOrderIndex() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsUsed sets the "is_used" field.
func (u *DrillUpsertOne) SetIsUsed(v bool) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetIsUsed(v)
	})
}

// UpdateIsUsed sets the "is_used" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateIsUsed() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateIsUsed()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *DrillUpsertOne) SetUsedAt(v time.Time) *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *DrillUpsertOne) UpdateUsedAt() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *DrillUpsertOne) ClearUsedAt() *DrillUpsertOne {
	return u.Update(func(s *DrillUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *DrillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DrillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DrillUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DrillUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DrillCreateBulk is the builder for creating many Drill entities in bulk.
type DrillCreateBulk struct {
	config
	err      error
	builders []*DrillCreate
	conflict []sql.ConflictOption
}

// Save creates the Drill entities in the database.
func (_c *DrillCreateBulk) Save(ctx context.Context) ([]*Drill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillMutation)
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrillCreateBulk) SaveX(ctx context.Context) []*Drill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Drill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrillUpsert) {
//			SetMistakeID(v+v).
//		}).
//		Exec(ctx)
func (_c *DrillCreateBulk) OnConflict(opts ...sql.ConflictOption) *DrillUpsertBulk {
	_c.conflict = opts
	return &DrillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Drill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrillCreateBulk) OnConflictColumns(columns ...string) *DrillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrillUpsertBulk{
		create: _c,
	}
}

// DrillUpsertBulk is the builder for "upsert"-ing
// a bulk of Drill nodes.
type DrillUpsertBulk struct {
	create *DrillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Drill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DrillUpsertBulk) UpdateNewValues() *DrillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.MistakeID(); exists {
				s.SetIgnore(drill.FieldMistakeID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(drill.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Drill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DrillUpsertBulk) Ignore() *DrillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrillUpsertBulk) DoNothing() *DrillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrillCreateBulk.OnConflict
// documentation for more info.
func (u *DrillUpsertBulk) Update(set func(*DrillUpsert)) *DrillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrillUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *DrillUpsertBulk) SetQuestionText(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateQuestionText() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *DrillUpsertBulk) SetOptionA(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateOptionA() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *DrillUpsertBulk) SetOptionB(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateOptionB() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *DrillUpsertBulk) SetOptionC(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateOptionC() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *DrillUpsertBulk) SetOptionD(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateOptionD() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectOption sets the "correct_option" field.
func (u *DrillUpsertBulk) SetCorrectOption(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetCorrectOption(v)
	})
}

// UpdateCorrectOption sets the "correct_option" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateCorrectOption() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateCorrectOption()
	})
}

// SetSolution sets the "solution" field.
func (u *DrillUpsertBulk) SetSolution(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetSolution(v)
	})
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateSolution() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateSolution()
	})
}

// SetHint1 sets the "hint_1" field.
func (u *DrillUpsertBulk) SetHint1(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint1(v)
	})
}

// UpdateHint1 sets the "hint_1" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateHint1() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint1()
	})
}

// ClearHint1 clears the value of the "hint_1" field.
func (u *DrillUpsertBulk) ClearHint1() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint1()
	})
}

// SetHint2 sets the "hint_2" field.
func (u *DrillUpsertBulk) SetHint2(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint2(v)
	})
}

// UpdateHint2 sets the "hint_2" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateHint2() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint2()
	})
}

// ClearHint2 clears the value of the "hint_2" field.
func (u *DrillUpsertBulk) ClearHint2() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint2()
	})
}

// SetHint3 sets the "hint_3" field.
func (u *DrillUpsertBulk) SetHint3(v string) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetHint3(v)
	})
}

// UpdateHint3 sets the "hint_3" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateHint3() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateHint3()
	})
}

// ClearHint3 clears the value of the "hint_3" field.
func (u *DrillUpsertBulk) ClearHint3() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.ClearHint3()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *DrillUpsertBulk) SetDifficulty(v int) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *DrillUpsertBulk) AddDifficulty(v int) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateDifficulty() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateDifficulty()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *DrillUpsertBulk) SetOrderIndex(v int) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *DrillUpsertBulk) AddOrderIndex(v int) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateOrderIndex() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetIsUsed sets the "is_used" field.
func (u *DrillUpsertBulk) SetIsUsed(v bool) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetIsUsed(v)
	})
}

// UpdateIsUsed sets the "is_used" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateIsUsed() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateIsUsed()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *DrillUpsertBulk) SetUsedAt(v time.Time) *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *DrillUpsertBulk) UpdateUsedAt() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *DrillUpsertBulk) ClearUsedAt() *DrillUpsertBulk {
	return u.Update(func(s *DrillUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *DrillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DrillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DrillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
