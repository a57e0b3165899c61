// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "mistake_id", Type: field.TypeString},
		{Name: "drill_id", Type: field.TypeInt, Nullable: true},
		{Name: "student_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[8]},
			},
			{
				Name:    "attempt_mistake_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
		},
	}
	// ConversationStatesColumns holds the columns for the "conversation_states" table.
	ConversationStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationStatesTable holds the schema information for the "conversation_states" table.
	ConversationStatesTable = &schema.Table{
		Name:       "conversation_states",
		Columns:    ConversationStatesColumns,
		PrimaryKey: []*schema.Column{ConversationStatesColumns[0]},
	}
	// DrillsColumns holds the columns for the "drills" table.
	DrillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mistake_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "option_a", Type: field.TypeString},
		{Name: "option_b", Type: field.TypeString},
		{Name: "option_c", Type: field.TypeString},
		{Name: "option_d", Type: field.TypeString},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "solution", Type: field.TypeString, Size: 2147483647},
		{Name: "hint_1", Type: field.TypeString, Nullable: true},
		{Name: "hint_2", Type: field.TypeString, Nullable: true},
		{Name: "hint_3", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeInt, Default: 2},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_used", Type: field.TypeBool, Default: false},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DrillsTable holds the schema information for the "drills" table.
	DrillsTable = &schema.Table{
		Name:       "drills",
		Columns:    DrillsColumns,
		PrimaryKey: []*schema.Column{DrillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drill_mistake_id_is_used_order_index",
				Unique:  false,
				Columns: []*schema.Column{DrillsColumns[1], DrillsColumns[14], DrillsColumns[13]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "direction", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "msg_type", Type: field.TypeString, Default: "text"},
		{Name: "provider_msg_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[6]},
			},
		},
	}
	// MistakesColumns holds the columns for the "mistakes" table.
	MistakesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: "physics"},
		{Name: "chapter", Type: field.TypeString, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "mistake_type", Type: field.TypeString, Nullable: true},
		{Name: "misconception", Type: field.TypeString, Nullable: true},
		{Name: "reported_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "times_drilled", Type: field.TypeInt, Default: 0},
		{Name: "times_correct", Type: field.TypeInt, Default: 0},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "is_mastered", Type: field.TypeBool, Default: false},
		{Name: "easiness_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "repetition_count", Type: field.TypeInt, Default: 0},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "mastered_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_drilled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MistakesTable holds the schema information for the "mistakes" table.
	MistakesTable = &schema.Table{
		Name:       "mistakes",
		Columns:    MistakesColumns,
		PrimaryKey: []*schema.Column{MistakesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistake_user_id_is_mastered_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{MistakesColumns[1], MistakesColumns[11], MistakesColumns[15]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "phone_number", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_phone_number",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ConversationStatesTable,
		DrillsTable,
		LlmRequestEventsTable,
		MessagesTable,
		MistakesTable,
		UsersTable,
	}
)

func init() {
}
