// Code generated by ent, DO NOT EDIT.

package mistake

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mistake type in the database.
	Label = "mistake"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldMistakeType holds the string denoting the mistake_type field in the database.
	FieldMistakeType = "mistake_type"
	// FieldMisconception holds the string denoting the misconception field in the database.
	FieldMisconception = "misconception"
	// FieldReportedText holds the string denoting the reported_text field in the database.
	FieldReportedText = "reported_text"
	// FieldTimesDrilled holds the string denoting the times_drilled field in the database.
	FieldTimesDrilled = "times_drilled"
	// FieldTimesCorrect holds the string denoting the times_correct field in the database.
	FieldTimesCorrect = "times_correct"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldIsMastered holds the string denoting the is_mastered field in the database.
	FieldIsMastered = "is_mastered"
	// FieldEasinessFactor holds the string denoting the easiness_factor field in the database.
	FieldEasinessFactor = "easiness_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitionCount holds the string denoting the repetition_count field in the database.
	FieldRepetitionCount = "repetition_count"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldMasteredAt holds the string denoting the mastered_at field in the database.
	FieldMasteredAt = "mastered_at"
	// FieldLastDrilledAt holds the string denoting the last_drilled_at field in the database.
	FieldLastDrilledAt = "last_drilled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the mistake in the database.
	Table = "mistakes"
)

// Columns holds all SQL columns for mistake fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubject,
	FieldChapter,
	FieldTopic,
	FieldMistakeType,
	FieldMisconception,
	FieldReportedText,
	FieldTimesDrilled,
	FieldTimesCorrect,
	FieldMasteryScore,
	FieldIsMastered,
	FieldEasinessFactor,
	FieldIntervalDays,
	FieldRepetitionCount,
	FieldNextReviewAt,
	FieldMasteredAt,
	FieldLastDrilledAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultTimesDrilled holds the default value on creation for the "times_drilled" field.
	DefaultTimesDrilled int
	// DefaultTimesCorrect holds the default value on creation for the "times_correct" field.
	DefaultTimesCorrect int
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore float64
	// DefaultIsMastered holds the default value on creation for the "is_mastered" field.
	DefaultIsMastered bool
	// DefaultEasinessFactor holds the default value on creation for the "easiness_factor" field.
	DefaultEasinessFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultRepetitionCount holds the default value on creation for the "repetition_count" field.
	DefaultRepetitionCount int
	// DefaultNextReviewAt holds the default value on creation for the "next_review_at" field.
	DefaultNextReviewAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Mistake queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByMistakeType orders the results by the mistake_type field.
func ByMistakeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMistakeType, opts...).ToFunc()
}

// ByMisconception orders the results by the misconception field.
func ByMisconception(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisconception, opts...).ToFunc()
}

// ByReportedText orders the results by the reported_text field.
func ByReportedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedText, opts...).ToFunc()
}

// ByTimesDrilled orders the results by the times_drilled field.
func ByTimesDrilled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesDrilled, opts...).ToFunc()
}

// ByTimesCorrect orders the results by the times_correct field.
func ByTimesCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesCorrect, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByIsMastered orders the results by the is_mastered field.
func ByIsMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMastered, opts...).ToFunc()
}

// ByEasinessFactor orders the results by the easiness_factor field.
func ByEasinessFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasinessFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitionCount orders the results by the repetition_count field.
func ByRepetitionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitionCount, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByMasteredAt orders the results by the mastered_at field.
func ByMasteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredAt, opts...).ToFunc()
}

// ByLastDrilledAt orders the results by the last_drilled_at field.
func ByLastDrilledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDrilledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
