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
	"github.com/abhisek/guruji/ent/predicate"
)

// DrillUpdate is the builder for updating Drill entities.
type DrillUpdate struct {
	config
	hooks    []Hook
	mutation *DrillMutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdate) Where(ps ...predicate.Drill) *DrillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *DrillUpdate) SetQuestionText(v string) *DrillUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableQuestionText(v *string) *DrillUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *DrillUpdate) SetOptionA(v string) *DrillUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOptionA(v *string) *DrillUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *DrillUpdate) SetOptionB(v string) *DrillUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOptionB(v *string) *DrillUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *DrillUpdate) SetOptionC(v string) *DrillUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOptionC(v *string) *DrillUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *DrillUpdate) SetOptionD(v string) *DrillUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOptionD(v *string) *DrillUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *DrillUpdate) SetCorrectOption(v string) *DrillUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableCorrectOption(v *string) *DrillUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DrillUpdate) SetSolution(v string) *DrillUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableSolution(v *string) *DrillUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// SetHint1 sets the "hint_1" field.
func (_u *DrillUpdate) SetHint1(v string) *DrillUpdate {
	_u.mutation.SetHint1(v)
	return _u
}

// SetNillableHint1 sets the "hint_1" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableHint1(v *string) *DrillUpdate {
	if v != nil {
		_u.SetHint1(*v)
	}
	return _u
}

// ClearHint1 clears the value of the "hint_1" field.
func (_u *DrillUpdate) ClearHint1() *DrillUpdate {
	_u.mutation.ClearHint1()
	return _u
}

// SetHint2 sets the "hint_2" field.
func (_u *DrillUpdate) SetHint2(v string) *DrillUpdate {
	_u.mutation.SetHint2(v)
	return _u
}

// SetNillableHint2 sets the "hint_2" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableHint2(v *string) *DrillUpdate {
	if v != nil {
		_u.SetHint2(*v)
	}
	return _u
}

// ClearHint2 clears the value of the "hint_2" field.
func (_u *DrillUpdate) ClearHint2() *DrillUpdate {
	_u.mutation.ClearHint2()
	return _u
}

// SetHint3 sets the "hint_3" field.
func (_u *DrillUpdate) SetHint3(v string) *DrillUpdate {
	_u.mutation.SetHint3(v)
	return _u
}

// SetNillableHint3 sets the "hint_3" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableHint3(v *string) *DrillUpdate {
	if v != nil {
		_u.SetHint3(*v)
	}
	return _u
}

// ClearHint3 clears the value of the "hint_3" field.
func (_u *DrillUpdate) ClearHint3() *DrillUpdate {
	_u.mutation.ClearHint3()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillUpdate) SetDifficulty(v int) *DrillUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableDifficulty(v *int) *DrillUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DrillUpdate) AddDifficulty(v int) *DrillUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *DrillUpdate) SetOrderIndex(v int) *DrillUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableOrderIndex(v *int) *DrillUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *DrillUpdate) AddOrderIndex(v int) *DrillUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *DrillUpdate) SetIsUsed(v bool) *DrillUpdate {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableIsUsed(v *bool) *DrillUpdate {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *DrillUpdate) SetUsedAt(v time.Time) *DrillUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *DrillUpdate) SetNillableUsedAt(v *time.Time) *DrillUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *DrillUpdate) ClearUsedAt() *DrillUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdate) Mutation() *DrillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := drill.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Drill.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := drill.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Drill.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := drill.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Drill.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := drill.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Drill.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := drill.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Drill.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := drill.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Drill.correct_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Solution(); ok {
		if err := drill.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Drill.solution": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(drill.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(drill.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(drill.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(drill.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(drill.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(drill.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(drill.FieldSolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint1(); ok {
		_spec.SetField(drill.FieldHint1, field.TypeString, value)
	}
	if _u.mutation.Hint1Cleared() {
		_spec.ClearField(drill.FieldHint1, field.TypeString)
	}
	if value, ok := _u.mutation.Hint2(); ok {
		_spec.SetField(drill.FieldHint2, field.TypeString, value)
	}
	if _u.mutation.Hint2Cleared() {
		_spec.ClearField(drill.FieldHint2, field.TypeString)
	}
	if value, ok := _u.mutation.Hint3(); ok {
		_spec.SetField(drill.FieldHint3, field.TypeString, value)
	}
	if _u.mutation.Hint3Cleared() {
		_spec.ClearField(drill.FieldHint3, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(drill.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(drill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(drill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(drill.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(drill.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(drill.FieldUsedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillUpdateOne is the builder for updating a single Drill entity.
type DrillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillMutation
}

// SetQuestionText sets the "question_text" field.
func (_u *DrillUpdateOne) SetQuestionText(v string) *DrillUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableQuestionText(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *DrillUpdateOne) SetOptionA(v string) *DrillUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOptionA(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *DrillUpdateOne) SetOptionB(v string) *DrillUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOptionB(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *DrillUpdateOne) SetOptionC(v string) *DrillUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOptionC(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *DrillUpdateOne) SetOptionD(v string) *DrillUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOptionD(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *DrillUpdateOne) SetCorrectOption(v string) *DrillUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableCorrectOption(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DrillUpdateOne) SetSolution(v string) *DrillUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableSolution(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// SetHint1 sets the "hint_1" field.
func (_u *DrillUpdateOne) SetHint1(v string) *DrillUpdateOne {
	_u.mutation.SetHint1(v)
	return _u
}

// SetNillableHint1 sets the "hint_1" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableHint1(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetHint1(*v)
	}
	return _u
}

// ClearHint1 clears the value of the "hint_1" field.
func (_u *DrillUpdateOne) ClearHint1() *DrillUpdateOne {
	_u.mutation.ClearHint1()
	return _u
}

// SetHint2 sets the "hint_2" field.
func (_u *DrillUpdateOne) SetHint2(v string) *DrillUpdateOne {
	_u.mutation.SetHint2(v)
	return _u
}

// SetNillableHint2 sets the "hint_2" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableHint2(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetHint2(*v)
	}
	return _u
}

// ClearHint2 clears the value of the "hint_2" field.
func (_u *DrillUpdateOne) ClearHint2() *DrillUpdateOne {
	_u.mutation.ClearHint2()
	return _u
}

// SetHint3 sets the "hint_3" field.
func (_u *DrillUpdateOne) SetHint3(v string) *DrillUpdateOne {
	_u.mutation.SetHint3(v)
	return _u
}

// SetNillableHint3 sets the "hint_3" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableHint3(v *string) *DrillUpdateOne {
	if v != nil {
		_u.SetHint3(*v)
	}
	return _u
}

// ClearHint3 clears the value of the "hint_3" field.
func (_u *DrillUpdateOne) ClearHint3() *DrillUpdateOne {
	_u.mutation.ClearHint3()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillUpdateOne) SetDifficulty(v int) *DrillUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableDifficulty(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DrillUpdateOne) AddDifficulty(v int) *DrillUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *DrillUpdateOne) SetOrderIndex(v int) *DrillUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableOrderIndex(v *int) *DrillUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *DrillUpdateOne) AddOrderIndex(v int) *DrillUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *DrillUpdateOne) SetIsUsed(v bool) *DrillUpdateOne {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableIsUsed(v *bool) *DrillUpdateOne {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *DrillUpdateOne) SetUsedAt(v time.Time) *DrillUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *DrillUpdateOne) SetNillableUsedAt(v *time.Time) *DrillUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *DrillUpdateOne) ClearUsedAt() *DrillUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// Mutation returns the DrillMutation object of the builder.
func (_u *DrillUpdateOne) Mutation() *DrillMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillUpdate builder.
func (_u *DrillUpdateOne) Where(ps ...predicate.Drill) *DrillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillUpdateOne) Select(field string, fields ...string) *DrillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drill entity.
func (_u *DrillUpdateOne) Save(ctx context.Context) (*Drill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillUpdateOne) SaveX(ctx context.Context) *Drill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := drill.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Drill.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := drill.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Drill.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := drill.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Drill.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := drill.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Drill.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := drill.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Drill.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := drill.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Drill.correct_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Solution(); ok {
		if err := drill.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Drill.solution": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillUpdateOne) sqlSave(ctx context.Context) (_node *Drill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drill.Table, drill.Columns, sqlgraph.NewFieldSpec(drill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Drill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drill.FieldID)
		for _, f := range fields {
			if !drill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drill.FieldID {
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
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(drill.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(drill.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(drill.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(drill.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(drill.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(drill.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(drill.FieldSolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint1(); ok {
		_spec.SetField(drill.FieldHint1, field.TypeString, value)
	}
	if _u.mutation.Hint1Cleared() {
		_spec.ClearField(drill.FieldHint1, field.TypeString)
	}
	if value, ok := _u.mutation.Hint2(); ok {
		_spec.SetField(drill.FieldHint2, field.TypeString, value)
	}
	if _u.mutation.Hint2Cleared() {
		_spec.ClearField(drill.FieldHint2, field.TypeString)
	}
	if value, ok := _u.mutation.Hint3(); ok {
		_spec.SetField(drill.FieldHint3, field.TypeString, value)
	}
	if _u.mutation.Hint3Cleared() {
		_spec.ClearField(drill.FieldHint3, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drill.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(drill.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(drill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(drill.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(drill.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(drill.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(drill.FieldUsedAt, field.TypeTime)
	}
	_node = &Drill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
