// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PassageRecordsColumns holds the columns for the "passage_records" table.
	PassageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "passage_id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "raw", Type: field.TypeString, Size: 2147483647},
		{Name: "level", Type: field.TypeString, Default: "C1"},
		{Name: "length", Type: field.TypeString, Default: "long"},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "valid", Type: field.TypeBool, Default: false},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "needs_regeneration", Type: field.TypeBool, Default: false},
	}
	// PassageRecordsTable holds the schema information for the "passage_records" table.
	PassageRecordsTable = &schema.Table{
		Name:       "passage_records",
		Columns:    PassageRecordsColumns,
		PrimaryKey: []*schema.Column{PassageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "passagerecord_topic",
				Unique:  false,
				Columns: []*schema.Column{PassageRecordsColumns[3]},
			},
			{
				Name:    "passagerecord_valid",
				Unique:  false,
				Columns: []*schema.Column{PassageRecordsColumns[10]},
			},
			{
				Name:    "passagerecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{PassageRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		PassageRecordsTable,
	}
)

func init() {
}
