// Code generated by ent, DO NOT EDIT.

package mistake

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/guruji/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldUserID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldSubject, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldChapter, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTopic, v))
}

// MistakeType applies equality check predicate on the "mistake_type" field. It's identical to MistakeTypeEQ.
func MistakeType(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMistakeType, v))
}

// Misconception applies equality check predicate on the "misconception" field. It's identical to MisconceptionEQ.
func Misconception(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMisconception, v))
}

// ReportedText applies equality check predicate on the "reported_text" field. It's identical to ReportedTextEQ.
func ReportedText(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldReportedText, v))
}

// TimesDrilled applies equality check predicate on the "times_drilled" field. It's identical to TimesDrilledEQ.
func TimesDrilled(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTimesDrilled, v))
}

// TimesCorrect applies equality check predicate on the "times_correct" field. It's identical to TimesCorrectEQ.
func TimesCorrect(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTimesCorrect, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMasteryScore, v))
}

// IsMastered applies equality check predicate on the "is_mastered" field. It's identical to IsMasteredEQ.
func IsMastered(v bool) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldIsMastered, v))
}

// EasinessFactor applies equality check predicate on the "easiness_factor" field. It's identical to EasinessFactorEQ.
func EasinessFactor(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldEasinessFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldIntervalDays, v))
}

// RepetitionCount applies equality check predicate on the "repetition_count" field. It's identical to RepetitionCountEQ.
func RepetitionCount(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldRepetitionCount, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldNextReviewAt, v))
}

// MasteredAt applies equality check predicate on the "mastered_at" field. It's identical to MasteredAtEQ.
func MasteredAt(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMasteredAt, v))
}

// LastDrilledAt applies equality check predicate on the "last_drilled_at" field. It's identical to LastDrilledAtEQ.
func LastDrilledAt(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldLastDrilledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldSubject, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldChapter, v))
}

// ChapterContains applies the Contains predicate on the "chapter" field.
func ChapterContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldChapter, v))
}

// ChapterHasPrefix applies the HasPrefix predicate on the "chapter" field.
func ChapterHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldChapter, v))
}

// ChapterHasSuffix applies the HasSuffix predicate on the "chapter" field.
func ChapterHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldChapter, v))
}

// ChapterIsNil applies the IsNil predicate on the "chapter" field.
func ChapterIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldChapter))
}

// ChapterNotNil applies the NotNil predicate on the "chapter" field.
func ChapterNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldChapter))
}

// ChapterEqualFold applies the EqualFold predicate on the "chapter" field.
func ChapterEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldChapter, v))
}

// ChapterContainsFold applies the ContainsFold predicate on the "chapter" field.
func ChapterContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldChapter, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldTopic, v))
}

// MistakeTypeEQ applies the EQ predicate on the "mistake_type" field.
func MistakeTypeEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMistakeType, v))
}

// MistakeTypeNEQ applies the NEQ predicate on the "mistake_type" field.
func MistakeTypeNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMistakeType, v))
}

// MistakeTypeIn applies the In predicate on the "mistake_type" field.
func MistakeTypeIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMistakeType, vs...))
}

// MistakeTypeNotIn applies the NotIn predicate on the "mistake_type" field.
func MistakeTypeNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMistakeType, vs...))
}

// MistakeTypeGT applies the GT predicate on the "mistake_type" field.
func MistakeTypeGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMistakeType, v))
}

// MistakeTypeGTE applies the GTE predicate on the "mistake_type" field.
func MistakeTypeGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMistakeType, v))
}

// MistakeTypeLT applies the LT predicate on the "mistake_type" field.
func MistakeTypeLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMistakeType, v))
}

// MistakeTypeLTE applies the LTE predicate on the "mistake_type" field.
func MistakeTypeLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMistakeType, v))
}

// MistakeTypeContains applies the Contains predicate on the "mistake_type" field.
func MistakeTypeContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldMistakeType, v))
}

// MistakeTypeHasPrefix applies the HasPrefix predicate on the "mistake_type" field.
func MistakeTypeHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldMistakeType, v))
}

// MistakeTypeHasSuffix applies the HasSuffix predicate on the "mistake_type" field.
func MistakeTypeHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldMistakeType, v))
}

// MistakeTypeIsNil applies the IsNil predicate on the "mistake_type" field.
func MistakeTypeIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldMistakeType))
}

// MistakeTypeNotNil applies the NotNil predicate on the "mistake_type" field.
func MistakeTypeNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldMistakeType))
}

// MistakeTypeEqualFold applies the EqualFold predicate on the "mistake_type" field.
func MistakeTypeEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldMistakeType, v))
}

// MistakeTypeContainsFold applies the ContainsFold predicate on the "mistake_type" field.
func MistakeTypeContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldMistakeType, v))
}

// MisconceptionEQ applies the EQ predicate on the "misconception" field.
func MisconceptionEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMisconception, v))
}

// MisconceptionNEQ applies the NEQ predicate on the "misconception" field.
func MisconceptionNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMisconception, v))
}

// MisconceptionIn applies the In predicate on the "misconception" field.
func MisconceptionIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMisconception, vs...))
}

// MisconceptionNotIn applies the NotIn predicate on the "misconception" field.
func MisconceptionNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMisconception, vs...))
}

// MisconceptionGT applies the GT predicate on the "misconception" field.
func MisconceptionGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMisconception, v))
}

// MisconceptionGTE applies the GTE predicate on the "misconception" field.
func MisconceptionGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMisconception, v))
}

// MisconceptionLT applies the LT predicate on the "misconception" field.
func MisconceptionLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMisconception, v))
}

// MisconceptionLTE applies the LTE predicate on the "misconception" field.
func MisconceptionLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMisconception, v))
}

// MisconceptionContains applies the Contains predicate on the "misconception" field.
func MisconceptionContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldMisconception, v))
}

// MisconceptionHasPrefix applies the HasPrefix predicate on the "misconception" field.
func MisconceptionHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldMisconception, v))
}

// MisconceptionHasSuffix applies the HasSuffix predicate on the "misconception" field.
func MisconceptionHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldMisconception, v))
}

// MisconceptionIsNil applies the IsNil predicate on the "misconception" field.
func MisconceptionIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldMisconception))
}

// MisconceptionNotNil applies the NotNil predicate on the "misconception" field.
func MisconceptionNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldMisconception))
}

// MisconceptionEqualFold applies the EqualFold predicate on the "misconception" field.
func MisconceptionEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldMisconception, v))
}

// MisconceptionContainsFold applies the ContainsFold predicate on the "misconception" field.
func MisconceptionContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldMisconception, v))
}

// ReportedTextEQ applies the EQ predicate on the "reported_text" field.
func ReportedTextEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldReportedText, v))
}

// ReportedTextNEQ applies the NEQ predicate on the "reported_text" field.
func ReportedTextNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldReportedText, v))
}

// ReportedTextIn applies the In predicate on the "reported_text" field.
func ReportedTextIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldReportedText, vs...))
}

// ReportedTextNotIn applies the NotIn predicate on the "reported_text" field.
func ReportedTextNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldReportedText, vs...))
}

// ReportedTextGT applies the GT predicate on the "reported_text" field.
func ReportedTextGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldReportedText, v))
}

// ReportedTextGTE applies the GTE predicate on the "reported_text" field.
func ReportedTextGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldReportedText, v))
}

// ReportedTextLT applies the LT predicate on the "reported_text" field.
func ReportedTextLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldReportedText, v))
}

// ReportedTextLTE applies the LTE predicate on the "reported_text" field.
func ReportedTextLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldReportedText, v))
}

// ReportedTextContains applies the Contains predicate on the "reported_text" field.
func ReportedTextContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldReportedText, v))
}

// ReportedTextHasPrefix applies the HasPrefix predicate on the "reported_text" field.
func ReportedTextHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldReportedText, v))
}

// ReportedTextHasSuffix applies the HasSuffix predicate on the "reported_text" field.
func ReportedTextHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldReportedText, v))
}

// ReportedTextIsNil applies the IsNil predicate on the "reported_text" field.
func ReportedTextIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldReportedText))
}

// ReportedTextNotNil applies the NotNil predicate on the "reported_text" field.
func ReportedTextNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldReportedText))
}

// ReportedTextEqualFold applies the EqualFold predicate on the "reported_text" field.
func ReportedTextEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldReportedText, v))
}

// ReportedTextContainsFold applies the ContainsFold predicate on the "reported_text" field.
func ReportedTextContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldReportedText, v))
}

// TimesDrilledEQ applies the EQ predicate on the "times_drilled" field.
func TimesDrilledEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTimesDrilled, v))
}

// TimesDrilledNEQ applies the NEQ predicate on the "times_drilled" field.
func TimesDrilledNEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldTimesDrilled, v))
}

// TimesDrilledIn applies the In predicate on the "times_drilled" field.
func TimesDrilledIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldTimesDrilled, vs...))
}

// TimesDrilledNotIn applies the NotIn predicate on the "times_drilled" field.
func TimesDrilledNotIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldTimesDrilled, vs...))
}

// TimesDrilledGT applies the GT predicate on the "times_drilled" field.
func TimesDrilledGT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldTimesDrilled, v))
}

// TimesDrilledGTE applies the GTE predicate on the "times_drilled" field.
func TimesDrilledGTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldTimesDrilled, v))
}

// TimesDrilledLT applies the LT predicate on the "times_drilled" field.
func TimesDrilledLT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldTimesDrilled, v))
}

// TimesDrilledLTE applies the LTE predicate on the "times_drilled" field.
func TimesDrilledLTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldTimesDrilled, v))
}

// TimesCorrectEQ applies the EQ predicate on the "times_correct" field.
func TimesCorrectEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldTimesCorrect, v))
}

// TimesCorrectNEQ applies the NEQ predicate on the "times_correct" field.
func TimesCorrectNEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldTimesCorrect, v))
}

// TimesCorrectIn applies the In predicate on the "times_correct" field.
func TimesCorrectIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldTimesCorrect, vs...))
}

// TimesCorrectNotIn applies the NotIn predicate on the "times_correct" field.
func TimesCorrectNotIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldTimesCorrect, vs...))
}

// TimesCorrectGT applies the GT predicate on the "times_correct" field.
func TimesCorrectGT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldTimesCorrect, v))
}

// TimesCorrectGTE applies the GTE predicate on the "times_correct" field.
func TimesCorrectGTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldTimesCorrect, v))
}

// TimesCorrectLT applies the LT predicate on the "times_correct" field.
func TimesCorrectLT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldTimesCorrect, v))
}

// TimesCorrectLTE applies the LTE predicate on the "times_correct" field.
func TimesCorrectLTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldTimesCorrect, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMasteryScore, v))
}

// IsMasteredEQ applies the EQ predicate on the "is_mastered" field.
func IsMasteredEQ(v bool) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldIsMastered, v))
}

// IsMasteredNEQ applies the NEQ predicate on the "is_mastered" field.
func IsMasteredNEQ(v bool) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldIsMastered, v))
}

// EasinessFactorEQ applies the EQ predicate on the "easiness_factor" field.
func EasinessFactorEQ(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldEasinessFactor, v))
}

// EasinessFactorNEQ applies the NEQ predicate on the "easiness_factor" field.
func EasinessFactorNEQ(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldEasinessFactor, v))
}

// EasinessFactorIn applies the In predicate on the "easiness_factor" field.
func EasinessFactorIn(vs ...float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldEasinessFactor, vs...))
}

// EasinessFactorNotIn applies the NotIn predicate on the "easiness_factor" field.
func EasinessFactorNotIn(vs ...float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldEasinessFactor, vs...))
}

// EasinessFactorGT applies the GT predicate on the "easiness_factor" field.
func EasinessFactorGT(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldEasinessFactor, v))
}

// EasinessFactorGTE applies the GTE predicate on the "easiness_factor" field.
func EasinessFactorGTE(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldEasinessFactor, v))
}

// EasinessFactorLT applies the LT predicate on the "easiness_factor" field.
func EasinessFactorLT(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldEasinessFactor, v))
}

// EasinessFactorLTE applies the LTE predicate on the "easiness_factor" field.
func EasinessFactorLTE(v float64) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldEasinessFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionCountEQ applies the EQ predicate on the "repetition_count" field.
func RepetitionCountEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldRepetitionCount, v))
}

// RepetitionCountNEQ applies the NEQ predicate on the "repetition_count" field.
func RepetitionCountNEQ(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldRepetitionCount, v))
}

// RepetitionCountIn applies the In predicate on the "repetition_count" field.
func RepetitionCountIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldRepetitionCount, vs...))
}

// RepetitionCountNotIn applies the NotIn predicate on the "repetition_count" field.
func RepetitionCountNotIn(vs ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldRepetitionCount, vs...))
}

// RepetitionCountGT applies the GT predicate on the "repetition_count" field.
func RepetitionCountGT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldRepetitionCount, v))
}

// RepetitionCountGTE applies the GTE predicate on the "repetition_count" field.
func RepetitionCountGTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldRepetitionCount, v))
}

// RepetitionCountLT applies the LT predicate on the "repetition_count" field.
func RepetitionCountLT(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldRepetitionCount, v))
}

// RepetitionCountLTE applies the LTE predicate on the "repetition_count" field.
func RepetitionCountLTE(v int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldRepetitionCount, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldNextReviewAt, v))
}

// MasteredAtEQ applies the EQ predicate on the "mastered_at" field.
func MasteredAtEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMasteredAt, v))
}

// MasteredAtNEQ applies the NEQ predicate on the "mastered_at" field.
func MasteredAtNEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMasteredAt, v))
}

// MasteredAtIn applies the In predicate on the "mastered_at" field.
func MasteredAtIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMasteredAt, vs...))
}

// MasteredAtNotIn applies the NotIn predicate on the "mastered_at" field.
func MasteredAtNotIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMasteredAt, vs...))
}

// MasteredAtGT applies the GT predicate on the "mastered_at" field.
func MasteredAtGT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMasteredAt, v))
}

// MasteredAtGTE applies the GTE predicate on the "mastered_at" field.
func MasteredAtGTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMasteredAt, v))
}

// MasteredAtLT applies the LT predicate on the "mastered_at" field.
func MasteredAtLT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMasteredAt, v))
}

// MasteredAtLTE applies the LTE predicate on the "mastered_at" field.
func MasteredAtLTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMasteredAt, v))
}

// MasteredAtIsNil applies the IsNil predicate on the "mastered_at" field.
func MasteredAtIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldMasteredAt))
}

// MasteredAtNotNil applies the NotNil predicate on the "mastered_at" field.
func MasteredAtNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldMasteredAt))
}

// LastDrilledAtEQ applies the EQ predicate on the "last_drilled_at" field.
func LastDrilledAtEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldLastDrilledAt, v))
}

// LastDrilledAtNEQ applies the NEQ predicate on the "last_drilled_at" field.
func LastDrilledAtNEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldLastDrilledAt, v))
}

// LastDrilledAtIn applies the In predicate on the "last_drilled_at" field.
func LastDrilledAtIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldLastDrilledAt, vs...))
}

// LastDrilledAtNotIn applies the NotIn predicate on the "last_drilled_at" field.
func LastDrilledAtNotIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldLastDrilledAt, vs...))
}

// LastDrilledAtGT applies the GT predicate on the "last_drilled_at" field.
func LastDrilledAtGT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldLastDrilledAt, v))
}

// LastDrilledAtGTE applies the GTE predicate on the "last_drilled_at" field.
func LastDrilledAtGTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldLastDrilledAt, v))
}

// LastDrilledAtLT applies the LT predicate on the "last_drilled_at" field.
func LastDrilledAtLT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldLastDrilledAt, v))
}

// LastDrilledAtLTE applies the LTE predicate on the "last_drilled_at" field.
func LastDrilledAtLTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldLastDrilledAt, v))
}

// LastDrilledAtIsNil applies the IsNil predicate on the "last_drilled_at" field.
func LastDrilledAtIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldLastDrilledAt))
}

// LastDrilledAtNotNil applies the NotNil predicate on the "last_drilled_at" field.
func LastDrilledAtNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldLastDrilledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.NotPredicates(p))
}
