// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/guruji/ent/attempt"
	"github.com/abhisek/guruji/ent/conversationstate"
	"github.com/abhisek/guruji/ent/drill"
	"github.com/abhisek/guruji/ent/llmrequestevent"
	"github.com/abhisek/guruji/ent/message"
	"github.com/abhisek/guruji/ent/mistake"
	"github.com/abhisek/guruji/ent/schema"
	"github.com/abhisek/guruji/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[0].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescMistakeID is the schema descriptor for mistake_id field.
	attemptDescMistakeID := attemptFields[1].Descriptor()
	// attempt.MistakeIDValidator is a validator for the "mistake_id" field. It is called by the builders before save.
	attempt.MistakeIDValidator = attemptDescMistakeID.Validators[0].(func(string) error)
	// attemptDescStudentAnswer is the schema descriptor for student_answer field.
	attemptDescStudentAnswer := attemptFields[3].Descriptor()
	// attempt.StudentAnswerValidator is a validator for the "student_answer" field. It is called by the builders before save.
	attempt.StudentAnswerValidator = attemptDescStudentAnswer.Validators[0].(func(string) error)
	// attemptDescCorrectAnswer is the schema descriptor for correct_answer field.
	attemptDescCorrectAnswer := attemptFields[4].Descriptor()
	// attempt.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	attempt.CorrectAnswerValidator = attemptDescCorrectAnswer.Validators[0].(func(string) error)
	// attemptDescHintsUsed is the schema descriptor for hints_used field.
	attemptDescHintsUsed := attemptFields[6].Descriptor()
	// attempt.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attempt.DefaultHintsUsed = attemptDescHintsUsed.Default.(int)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[7].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	conversationstateFields := schema.ConversationState{}.Fields()
	_ = conversationstateFields
	// conversationstateDescUserID is the schema descriptor for user_id field.
	conversationstateDescUserID := conversationstateFields[0].Descriptor()
	// conversationstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversationstate.UserIDValidator = conversationstateDescUserID.Validators[0].(func(string) error)
	// conversationstateDescUpdatedAt is the schema descriptor for updated_at field.
	conversationstateDescUpdatedAt := conversationstateFields[2].Descriptor()
	// conversationstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationstate.DefaultUpdatedAt = conversationstateDescUpdatedAt.Default.(func() time.Time)
	// conversationstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationstate.UpdateDefaultUpdatedAt = conversationstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	drillFields := schema.Drill{}.Fields()
	_ = drillFields
	// drillDescMistakeID is the schema descriptor for mistake_id field.
	drillDescMistakeID := drillFields[0].Descriptor()
	// drill.MistakeIDValidator is a validator for the "mistake_id" field. It is called by the builders before save.
	drill.MistakeIDValidator = drillDescMistakeID.Validators[0].(func(string) error)
	// drillDescQuestionText is the schema descriptor for question_text field.
	drillDescQuestionText := drillFields[1].Descriptor()
	// drill.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	drill.QuestionTextValidator = drillDescQuestionText.Validators[0].(func(string) error)
	// drillDescOptionA is the schema descriptor for option_a field.
	drillDescOptionA := drillFields[2].Descriptor()
	// drill.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	drill.OptionAValidator = drillDescOptionA.Validators[0].(func(string) error)
	// drillDescOptionB is the schema descriptor for option_b field.
	drillDescOptionB := drillFields[3].Descriptor()
	// drill.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	drill.OptionBValidator = drillDescOptionB.Validators[0].(func(string) error)
	// drillDescOptionC is the schema descriptor for option_c field.
	drillDescOptionC := drillFields[4].Descriptor()
	// drill.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	drill.OptionCValidator = drillDescOptionC.Validators[0].(func(string) error)
	// drillDescOptionD is the schema descriptor for option_d field.
	drillDescOptionD := drillFields[5].Descriptor()
	// drill.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	drill.OptionDValidator = drillDescOptionD.Validators[0].(func(string) error)
	// drillDescCorrectOption is the schema descriptor for correct_option field.
	drillDescCorrectOption := drillFields[6].Descriptor()
	// drill.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	drill.CorrectOptionValidator = drillDescCorrectOption.Validators[0].(func(string) error)
	// drillDescSolution is the schema descriptor for solution field.
	drillDescSolution := drillFields[7].Descriptor()
	// drill.SolutionValidator is a validator for the "solution" field. It is called by the builders before save.
	drill.SolutionValidator = drillDescSolution.Validators[0].(func(string) error)
	// drillDescDifficulty is the schema descriptor for difficulty field.
	drillDescDifficulty := drillFields[11].Descriptor()
	// drill.DefaultDifficulty holds the default value on creation for the difficulty field.
	drill.DefaultDifficulty = drillDescDifficulty.Default.(int)
	// drillDescOrderIndex is the schema descriptor for order_index field.
	drillDescOrderIndex := drillFields[12].Descriptor()
	// drill.DefaultOrderIndex holds the default value on creation for the order_index field.
	drill.DefaultOrderIndex = drillDescOrderIndex.Default.(int)
	// drillDescIsUsed is the schema descriptor for is_used field.
	drillDescIsUsed := drillFields[13].Descriptor()
	// drill.DefaultIsUsed holds the default value on creation for the is_used field.
	drill.DefaultIsUsed = drillDescIsUsed.Default.(bool)
	// drillDescCreatedAt is the schema descriptor for created_at field.
	drillDescCreatedAt := drillFields[15].Descriptor()
	// drill.DefaultCreatedAt holds the default value on creation for the created_at field.
	drill.DefaultCreatedAt = drillDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescUserID is the schema descriptor for user_id field.
	messageDescUserID := messageFields[0].Descriptor()
	// message.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	message.UserIDValidator = messageDescUserID.Validators[0].(func(string) error)
	// messageDescDirection is the schema descriptor for direction field.
	messageDescDirection := messageFields[1].Descriptor()
	// message.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	message.DirectionValidator = messageDescDirection.Validators[0].(func(string) error)
	// messageDescMsgType is the schema descriptor for msg_type field.
	messageDescMsgType := messageFields[3].Descriptor()
	// message.DefaultMsgType holds the default value on creation for the msg_type field.
	message.DefaultMsgType = messageDescMsgType.Default.(string)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	mistakeFields := schema.Mistake{}.Fields()
	_ = mistakeFields
	// mistakeDescUserID is the schema descriptor for user_id field.
	mistakeDescUserID := mistakeFields[1].Descriptor()
	// mistake.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	mistake.UserIDValidator = mistakeDescUserID.Validators[0].(func(string) error)
	// mistakeDescSubject is the schema descriptor for subject field.
	mistakeDescSubject := mistakeFields[2].Descriptor()
	// mistake.DefaultSubject holds the default value on creation for the subject field.
	mistake.DefaultSubject = mistakeDescSubject.Default.(string)
	// mistakeDescTimesDrilled is the schema descriptor for times_drilled field.
	mistakeDescTimesDrilled := mistakeFields[8].Descriptor()
	// mistake.DefaultTimesDrilled holds the default value on creation for the times_drilled field.
	mistake.DefaultTimesDrilled = mistakeDescTimesDrilled.Default.(int)
	// mistakeDescTimesCorrect is the schema descriptor for times_correct field.
	mistakeDescTimesCorrect := mistakeFields[9].Descriptor()
	// mistake.DefaultTimesCorrect holds the default value on creation for the times_correct field.
	mistake.DefaultTimesCorrect = mistakeDescTimesCorrect.Default.(int)
	// mistakeDescMasteryScore is the schema descriptor for mastery_score field.
	mistakeDescMasteryScore := mistakeFields[10].Descriptor()
	// mistake.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	mistake.DefaultMasteryScore = mistakeDescMasteryScore.Default.(float64)
	// mistakeDescIsMastered is the schema descriptor for is_mastered field.
	mistakeDescIsMastered := mistakeFields[11].Descriptor()
	// mistake.DefaultIsMastered holds the default value on creation for the is_mastered field.
	mistake.DefaultIsMastered = mistakeDescIsMastered.Default.(bool)
	// mistakeDescEasinessFactor is the schema descriptor for easiness_factor field.
	mistakeDescEasinessFactor := mistakeFields[12].Descriptor()
	// mistake.DefaultEasinessFactor holds the default value on creation for the easiness_factor field.
	mistake.DefaultEasinessFactor = mistakeDescEasinessFactor.Default.(float64)
	// mistakeDescIntervalDays is the schema descriptor for interval_days field.
	mistakeDescIntervalDays := mistakeFields[13].Descriptor()
	// mistake.DefaultIntervalDays holds the default value on creation for the interval_days field.
	mistake.DefaultIntervalDays = mistakeDescIntervalDays.Default.(int)
	// mistakeDescRepetitionCount is the schema descriptor for repetition_count field.
	mistakeDescRepetitionCount := mistakeFields[14].Descriptor()
	// mistake.DefaultRepetitionCount holds the default value on creation for the repetition_count field.
	mistake.DefaultRepetitionCount = mistakeDescRepetitionCount.Default.(int)
	// mistakeDescNextReviewAt is the schema descriptor for next_review_at field.
	mistakeDescNextReviewAt := mistakeFields[15].Descriptor()
	// mistake.DefaultNextReviewAt holds the default value on creation for the next_review_at field.
	mistake.DefaultNextReviewAt = mistakeDescNextReviewAt.Default.(func() time.Time)
	// mistakeDescCreatedAt is the schema descriptor for created_at field.
	mistakeDescCreatedAt := mistakeFields[18].Descriptor()
	// mistake.DefaultCreatedAt holds the default value on creation for the created_at field.
	mistake.DefaultCreatedAt = mistakeDescCreatedAt.Default.(func() time.Time)
	// mistakeDescID is the schema descriptor for id field.
	mistakeDescID := mistakeFields[0].Descriptor()
	// mistake.DefaultID holds the default value on creation for the id field.
	mistake.DefaultID = mistakeDescID.Default.(func() string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPhoneNumber is the schema descriptor for phone_number field.
	userDescPhoneNumber := userFields[1].Descriptor()
	// user.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	user.PhoneNumberValidator = userDescPhoneNumber.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[3].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCurrentStreak is the schema descriptor for current_streak field.
	userDescCurrentStreak := userFields[4].Descriptor()
	// user.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	user.DefaultCurrentStreak = userDescCurrentStreak.Default.(int)
	// userDescLongestStreak is the schema descriptor for longest_streak field.
	userDescLongestStreak := userFields[5].Descriptor()
	// user.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	user.DefaultLongestStreak = userDescLongestStreak.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
}
