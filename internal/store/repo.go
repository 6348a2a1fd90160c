package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// PassageRecordData is a generated passage ready to persist.
type PassageRecordData struct {
	PassageID         uuid.UUID
	Topic             string
	Domain            string
	Title             string
	Raw               string
	Level             string
	Length            string
	Score             int
	Valid             bool
	Retries           int
	NeedsRegeneration bool
}

// StoredPassage is a persisted passage row.
type StoredPassage struct {
	ID                int
	PassageID         uuid.UUID
	CreatedAt         time.Time
	Topic             string
	Domain            string
	Title             string
	Raw               string
	Level             string
	Length            string
	Score             int
	Valid             bool
	Retries           int
	NeedsRegeneration bool
}

// PassageRepo manages generated passages.
type PassageRepo interface {
	// SavePassage persists a passage and returns its row ID.
	SavePassage(ctx context.Context, data PassageRecordData) (int, error)

	// ListPassages returns stored passages, newest first.
	ListPassages(ctx context.Context, limit int) ([]StoredPassage, error)

	// GetPassage returns the passage with the given row ID, or nil if absent.
	GetPassage(ctx context.Context, id int) (*StoredPassage, error)
}
