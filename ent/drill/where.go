// Code generated by ent, DO NOT EDIT.

package drill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/guruji/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldID, id))
}

// MistakeID applies equality check predicate on the "mistake_id" field. It's identical to MistakeIDEQ.
func MistakeID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldMistakeID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldQuestionText, v))
}

// OptionA applies equality check predicate on the "option_a" field. It's identical to OptionAEQ.
func OptionA(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionA, v))
}

// OptionB applies equality check predicate on the "option_b" field. It's identical to OptionBEQ.
func OptionB(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionB, v))
}

// OptionC applies equality check predicate on the "option_c" field. It's identical to OptionCEQ.
func OptionC(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionC, v))
}

// OptionD applies equality check predicate on the "option_d" field. It's identical to OptionDEQ.
func OptionD(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionD, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCorrectOption, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldSolution, v))
}

// Hint1 applies equality check predicate on the "hint_1" field. It's identical to Hint1EQ.
func Hint1(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint1, v))
}

// Hint2 applies equality check predicate on the "hint_2" field. It's identical to Hint2EQ.
func Hint2(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint2, v))
}

// Hint3 applies equality check predicate on the "hint_3" field. It's identical to Hint3EQ.
func Hint3(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint3, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDifficulty, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOrderIndex, v))
}

// IsUsed applies equality check predicate on the "is_used" field. It's identical to IsUsedEQ.
func IsUsed(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldIsUsed, v))
}

// UsedAt applies equality check predicate on the "used_at" field. It's identical to UsedAtEQ.
func UsedAt(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCreatedAt, v))
}

// MistakeIDEQ applies the EQ predicate on the "mistake_id" field.
func MistakeIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldMistakeID, v))
}

// MistakeIDNEQ applies the NEQ predicate on the "mistake_id" field.
func MistakeIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldMistakeID, v))
}

// MistakeIDIn applies the In predicate on the "mistake_id" field.
func MistakeIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldMistakeID, vs...))
}

// MistakeIDNotIn applies the NotIn predicate on the "mistake_id" field.
func MistakeIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldMistakeID, vs...))
}

// MistakeIDGT applies the GT predicate on the "mistake_id" field.
func MistakeIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldMistakeID, v))
}

// MistakeIDGTE applies the GTE predicate on the "mistake_id" field.
func MistakeIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldMistakeID, v))
}

// MistakeIDLT applies the LT predicate on the "mistake_id" field.
func MistakeIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldMistakeID, v))
}

// MistakeIDLTE applies the LTE predicate on the "mistake_id" field.
func MistakeIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldMistakeID, v))
}

// MistakeIDContains applies the Contains predicate on the "mistake_id" field.
func MistakeIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldMistakeID, v))
}

// MistakeIDHasPrefix applies the HasPrefix predicate on the "mistake_id" field.
func MistakeIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldMistakeID, v))
}

// MistakeIDHasSuffix applies the HasSuffix predicate on the "mistake_id" field.
func MistakeIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldMistakeID, v))
}

// MistakeIDEqualFold applies the EqualFold predicate on the "mistake_id" field.
func MistakeIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldMistakeID, v))
}

// MistakeIDContainsFold applies the ContainsFold predicate on the "mistake_id" field.
func MistakeIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldMistakeID, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldQuestionText, v))
}

// OptionAEQ applies the EQ predicate on the "option_a" field.
func OptionAEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionA, v))
}

// OptionANEQ applies the NEQ predicate on the "option_a" field.
func OptionANEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOptionA, v))
}

// OptionAIn applies the In predicate on the "option_a" field.
func OptionAIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOptionA, vs...))
}

// OptionANotIn applies the NotIn predicate on the "option_a" field.
func OptionANotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOptionA, vs...))
}

// OptionAGT applies the GT predicate on the "option_a" field.
func OptionAGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOptionA, v))
}

// OptionAGTE applies the GTE predicate on the "option_a" field.
func OptionAGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOptionA, v))
}

// OptionALT applies the LT predicate on the "option_a" field.
func OptionALT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOptionA, v))
}

// OptionALTE applies the LTE predicate on the "option_a" field.
func OptionALTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOptionA, v))
}

// OptionAContains applies the Contains predicate on the "option_a" field.
func OptionAContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldOptionA, v))
}

// OptionAHasPrefix applies the HasPrefix predicate on the "option_a" field.
func OptionAHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldOptionA, v))
}

// OptionAHasSuffix applies the HasSuffix predicate on the "option_a" field.
func OptionAHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldOptionA, v))
}

// OptionAEqualFold applies the EqualFold predicate on the "option_a" field.
func OptionAEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldOptionA, v))
}

// OptionAContainsFold applies the ContainsFold predicate on the "option_a" field.
func OptionAContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldOptionA, v))
}

// OptionBEQ applies the EQ predicate on the "option_b" field.
func OptionBEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionB, v))
}

// OptionBNEQ applies the NEQ predicate on the "option_b" field.
func OptionBNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOptionB, v))
}

// OptionBIn applies the In predicate on the "option_b" field.
func OptionBIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOptionB, vs...))
}

// OptionBNotIn applies the NotIn predicate on the "option_b" field.
func OptionBNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOptionB, vs...))
}

// OptionBGT applies the GT predicate on the "option_b" field.
func OptionBGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOptionB, v))
}

// OptionBGTE applies the GTE predicate on the "option_b" field.
func OptionBGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOptionB, v))
}

// OptionBLT applies the LT predicate on the "option_b" field.
func OptionBLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOptionB, v))
}

// OptionBLTE applies the LTE predicate on the "option_b" field.
func OptionBLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOptionB, v))
}

// OptionBContains applies the Contains predicate on the "option_b" field.
func OptionBContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldOptionB, v))
}

// OptionBHasPrefix applies the HasPrefix predicate on the "option_b" field.
func OptionBHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldOptionB, v))
}

// OptionBHasSuffix applies the HasSuffix predicate on the "option_b" field.
func OptionBHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldOptionB, v))
}

// OptionBEqualFold applies the EqualFold predicate on the "option_b" field.
func OptionBEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldOptionB, v))
}

// OptionBContainsFold applies the ContainsFold predicate on the "option_b" field.
func OptionBContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldOptionB, v))
}

// OptionCEQ applies the EQ predicate on the "option_c" field.
func OptionCEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionC, v))
}

// OptionCNEQ applies the NEQ predicate on the "option_c" field.
func OptionCNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOptionC, v))
}

// OptionCIn applies the In predicate on the "option_c" field.
func OptionCIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOptionC, vs...))
}

// OptionCNotIn applies the NotIn predicate on the "option_c" field.
func OptionCNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOptionC, vs...))
}

// OptionCGT applies the GT predicate on the "option_c" field.
func OptionCGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOptionC, v))
}

// OptionCGTE applies the GTE predicate on the "option_c" field.
func OptionCGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOptionC, v))
}

// OptionCLT applies the LT predicate on the "option_c" field.
func OptionCLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOptionC, v))
}

// OptionCLTE applies the LTE predicate on the "option_c" field.
func OptionCLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOptionC, v))
}

// OptionCContains applies the Contains predicate on the "option_c" field.
func OptionCContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldOptionC, v))
}

// OptionCHasPrefix applies the HasPrefix predicate on the "option_c" field.
func OptionCHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldOptionC, v))
}

// OptionCHasSuffix applies the HasSuffix predicate on the "option_c" field.
func OptionCHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldOptionC, v))
}

// OptionCEqualFold applies the EqualFold predicate on the "option_c" field.
func OptionCEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldOptionC, v))
}

// OptionCContainsFold applies the ContainsFold predicate on the "option_c" field.
func OptionCContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldOptionC, v))
}

// OptionDEQ applies the EQ predicate on the "option_d" field.
func OptionDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOptionD, v))
}

// OptionDNEQ applies the NEQ predicate on the "option_d" field.
func OptionDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOptionD, v))
}

// OptionDIn applies the In predicate on the "option_d" field.
func OptionDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOptionD, vs...))
}

// OptionDNotIn applies the NotIn predicate on the "option_d" field.
func OptionDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOptionD, vs...))
}

// OptionDGT applies the GT predicate on the "option_d" field.
func OptionDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOptionD, v))
}

// OptionDGTE applies the GTE predicate on the "option_d" field.
func OptionDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOptionD, v))
}

// OptionDLT applies the LT predicate on the "option_d" field.
func OptionDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOptionD, v))
}

// OptionDLTE applies the LTE predicate on the "option_d" field.
func OptionDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOptionD, v))
}

// OptionDContains applies the Contains predicate on the "option_d" field.
func OptionDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldOptionD, v))
}

// OptionDHasPrefix applies the HasPrefix predicate on the "option_d" field.
func OptionDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldOptionD, v))
}

// OptionDHasSuffix applies the HasSuffix predicate on the "option_d" field.
func OptionDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldOptionD, v))
}

// OptionDEqualFold applies the EqualFold predicate on the "option_d" field.
func OptionDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldOptionD, v))
}

// OptionDContainsFold applies the ContainsFold predicate on the "option_d" field.
func OptionDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldOptionD, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionContains applies the Contains predicate on the "correct_option" field.
func CorrectOptionContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldCorrectOption, v))
}

// CorrectOptionHasPrefix applies the HasPrefix predicate on the "correct_option" field.
func CorrectOptionHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldCorrectOption, v))
}

// CorrectOptionHasSuffix applies the HasSuffix predicate on the "correct_option" field.
func CorrectOptionHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldCorrectOption, v))
}

// CorrectOptionEqualFold applies the EqualFold predicate on the "correct_option" field.
func CorrectOptionEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldCorrectOption, v))
}

// CorrectOptionContainsFold applies the ContainsFold predicate on the "correct_option" field.
func CorrectOptionContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldCorrectOption, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldSolution, v))
}

// SolutionContains applies the Contains predicate on the "solution" field.
func SolutionContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldSolution, v))
}

// SolutionHasPrefix applies the HasPrefix predicate on the "solution" field.
func SolutionHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldSolution, v))
}

// SolutionHasSuffix applies the HasSuffix predicate on the "solution" field.
func SolutionHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldSolution, v))
}

// SolutionEqualFold applies the EqualFold predicate on the "solution" field.
func SolutionEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldSolution, v))
}

// SolutionContainsFold applies the ContainsFold predicate on the "solution" field.
func SolutionContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldSolution, v))
}

// Hint1EQ applies the EQ predicate on the "hint_1" field.
func Hint1EQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint1, v))
}

// Hint1NEQ applies the NEQ predicate on the "hint_1" field.
func Hint1NEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldHint1, v))
}

// Hint1In applies the In predicate on the "hint_1" field.
func Hint1In(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldHint1, vs...))
}

// Hint1NotIn applies the NotIn predicate on the "hint_1" field.
func Hint1NotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldHint1, vs...))
}

// Hint1GT applies the GT predicate on the "hint_1" field.
func Hint1GT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldHint1, v))
}

// Hint1GTE applies the GTE predicate on the "hint_1" field.
func Hint1GTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldHint1, v))
}

// Hint1LT applies the LT predicate on the "hint_1" field.
func Hint1LT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldHint1, v))
}

// Hint1LTE applies the LTE predicate on the "hint_1" field.
func Hint1LTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldHint1, v))
}

// Hint1Contains applies the Contains predicate on the "hint_1" field.
func Hint1Contains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldHint1, v))
}

// Hint1HasPrefix applies the HasPrefix predicate on the "hint_1" field.
func Hint1HasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldHint1, v))
}

// Hint1HasSuffix applies the HasSuffix predicate on the "hint_1" field.
func Hint1HasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldHint1, v))
}

// Hint1IsNil applies the IsNil predicate on the "hint_1" field.
func Hint1IsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldHint1))
}

// Hint1NotNil applies the NotNil predicate on the "hint_1" field.
func Hint1NotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldHint1))
}

// Hint1EqualFold applies the EqualFold predicate on the "hint_1" field.
func Hint1EqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldHint1, v))
}

// Hint1ContainsFold applies the ContainsFold predicate on the "hint_1" field.
func Hint1ContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldHint1, v))
}

// Hint2EQ applies the EQ predicate on the "hint_2" field.
func Hint2EQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint2, v))
}

// Hint2NEQ applies the NEQ predicate on the "hint_2" field.
func Hint2NEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldHint2, v))
}

// Hint2In applies the In predicate on the "hint_2" field.
func Hint2In(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldHint2, vs...))
}

// Hint2NotIn applies the NotIn predicate on the "hint_2" field.
func Hint2NotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldHint2, vs...))
}

// Hint2GT applies the GT predicate on the "hint_2" field.
func Hint2GT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldHint2, v))
}

// Hint2GTE applies the GTE predicate on the "hint_2" field.
func Hint2GTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldHint2, v))
}

// Hint2LT applies the LT predicate on the "hint_2" field.
func Hint2LT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldHint2, v))
}

// Hint2LTE applies the LTE predicate on the "hint_2" field.
func Hint2LTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldHint2, v))
}

// Hint2Contains applies the Contains predicate on the "hint_2" field.
func Hint2Contains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldHint2, v))
}

// Hint2HasPrefix applies the HasPrefix predicate on the "hint_2" field.
func Hint2HasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldHint2, v))
}

// Hint2HasSuffix applies the HasSuffix predicate on the "hint_2" field.
func Hint2HasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldHint2, v))
}

// Hint2IsNil applies the IsNil predicate on the "hint_2" field.
func Hint2IsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldHint2))
}

// Hint2NotNil applies the NotNil predicate on the "hint_2" field.
func Hint2NotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldHint2))
}

// Hint2EqualFold applies the EqualFold predicate on the "hint_2" field.
func Hint2EqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldHint2, v))
}

// Hint2ContainsFold applies the ContainsFold predicate on the "hint_2" field.
func Hint2ContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldHint2, v))
}

// Hint3EQ applies the EQ predicate on the "hint_3" field.
func Hint3EQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldHint3, v))
}

// Hint3NEQ applies the NEQ predicate on the "hint_3" field.
func Hint3NEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldHint3, v))
}

// Hint3In applies the In predicate on the "hint_3" field.
func Hint3In(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldHint3, vs...))
}

// Hint3NotIn applies the NotIn predicate on the "hint_3" field.
func Hint3NotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldHint3, vs...))
}

// Hint3GT applies the GT predicate on the "hint_3" field.
func Hint3GT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldHint3, v))
}

// Hint3GTE applies the GTE predicate on the "hint_3" field.
func Hint3GTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldHint3, v))
}

// Hint3LT applies the LT predicate on the "hint_3" field.
func Hint3LT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldHint3, v))
}

// Hint3LTE applies the LTE predicate on the "hint_3" field.
func Hint3LTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldHint3, v))
}

// Hint3Contains applies the Contains predicate on the "hint_3" field.
func Hint3Contains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldHint3, v))
}

// Hint3HasPrefix applies the HasPrefix predicate on the "hint_3" field.
func Hint3HasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldHint3, v))
}

// Hint3HasSuffix applies the HasSuffix predicate on the "hint_3" field.
func Hint3HasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldHint3, v))
}

// Hint3IsNil applies the IsNil predicate on the "hint_3" field.
func Hint3IsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldHint3))
}

// Hint3NotNil applies the NotNil predicate on the "hint_3" field.
func Hint3NotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldHint3))
}

// Hint3EqualFold applies the EqualFold predicate on the "hint_3" field.
func Hint3EqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldHint3, v))
}

// Hint3ContainsFold applies the ContainsFold predicate on the "hint_3" field.
func Hint3ContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldHint3, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDifficulty, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldOrderIndex, v))
}

// IsUsedEQ applies the EQ predicate on the "is_used" field.
func IsUsedEQ(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldIsUsed, v))
}

// IsUsedNEQ applies the NEQ predicate on the "is_used" field.
func IsUsedNEQ(v bool) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldIsUsed, v))
}

// UsedAtEQ applies the EQ predicate on the "used_at" field.
func UsedAtEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldUsedAt, v))
}

// UsedAtNEQ applies the NEQ predicate on the "used_at" field.
func UsedAtNEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldUsedAt, v))
}

// UsedAtIn applies the In predicate on the "used_at" field.
func UsedAtIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldUsedAt, vs...))
}

// UsedAtNotIn applies the NotIn predicate on the "used_at" field.
func UsedAtNotIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldUsedAt, vs...))
}

// UsedAtGT applies the GT predicate on the "used_at" field.
func UsedAtGT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldUsedAt, v))
}

// UsedAtGTE applies the GTE predicate on the "used_at" field.
func UsedAtGTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldUsedAt, v))
}

// UsedAtLT applies the LT predicate on the "used_at" field.
func UsedAtLT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldUsedAt, v))
}

// UsedAtLTE applies the LTE predicate on the "used_at" field.
func UsedAtLTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldUsedAt, v))
}

// UsedAtIsNil applies the IsNil predicate on the "used_at" field.
func UsedAtIsNil() predicate.Drill {
	return predicate.Drill(sql.FieldIsNull(FieldUsedAt))
}

// UsedAtNotNil applies the NotNil predicate on the "used_at" field.
func UsedAtNotNil() predicate.Drill {
	return predicate.Drill(sql.FieldNotNull(FieldUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.NotPredicates(p))
}
