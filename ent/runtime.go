// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/keremugurlu/readingen/ent/llmrequestevent"
	"github.com/keremugurlu/readingen/ent/passagerecord"
	"github.com/keremugurlu/readingen/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
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
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	passagerecordFields := schema.PassageRecord{}.Fields()
	_ = passagerecordFields
	// passagerecordDescPassageID is the schema descriptor for passage_id field.
	passagerecordDescPassageID := passagerecordFields[0].Descriptor()
	// passagerecord.DefaultPassageID holds the default value on creation for the passage_id field.
	passagerecord.DefaultPassageID = passagerecordDescPassageID.Default.(func() uuid.UUID)
	// passagerecordDescCreatedAt is the schema descriptor for created_at field.
	passagerecordDescCreatedAt := passagerecordFields[1].Descriptor()
	// passagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	passagerecord.DefaultCreatedAt = passagerecordDescCreatedAt.Default.(func() time.Time)
	// passagerecordDescDomain is the schema descriptor for domain field.
	passagerecordDescDomain := passagerecordFields[3].Descriptor()
	// passagerecord.DefaultDomain holds the default value on creation for the domain field.
	passagerecord.DefaultDomain = passagerecordDescDomain.Default.(string)
	// passagerecordDescTitle is the schema descriptor for title field.
	passagerecordDescTitle := passagerecordFields[4].Descriptor()
	// passagerecord.DefaultTitle holds the default value on creation for the title field.
	passagerecord.DefaultTitle = passagerecordDescTitle.Default.(string)
	// passagerecordDescLevel is the schema descriptor for level field.
	passagerecordDescLevel := passagerecordFields[6].Descriptor()
	// passagerecord.DefaultLevel holds the default value on creation for the level field.
	passagerecord.DefaultLevel = passagerecordDescLevel.Default.(string)
	// passagerecordDescLength is the schema descriptor for length field.
	passagerecordDescLength := passagerecordFields[7].Descriptor()
	// passagerecord.DefaultLength holds the default value on creation for the length field.
	passagerecord.DefaultLength = passagerecordDescLength.Default.(string)
	// passagerecordDescScore is the schema descriptor for score field.
	passagerecordDescScore := passagerecordFields[8].Descriptor()
	// passagerecord.DefaultScore holds the default value on creation for the score field.
	passagerecord.DefaultScore = passagerecordDescScore.Default.(int)
	// passagerecordDescValid is the schema descriptor for valid field.
	passagerecordDescValid := passagerecordFields[9].Descriptor()
	// passagerecord.DefaultValid holds the default value on creation for the valid field.
	passagerecord.DefaultValid = passagerecordDescValid.Default.(bool)
	// passagerecordDescRetries is the schema descriptor for retries field.
	passagerecordDescRetries := passagerecordFields[10].Descriptor()
	// passagerecord.DefaultRetries holds the default value on creation for the retries field.
	passagerecord.DefaultRetries = passagerecordDescRetries.Default.(int)
	// passagerecordDescNeedsRegeneration is the schema descriptor for needs_regeneration field.
	passagerecordDescNeedsRegeneration := passagerecordFields[11].Descriptor()
	// passagerecord.DefaultNeedsRegeneration holds the default value on creation for the needs_regeneration field.
	passagerecord.DefaultNeedsRegeneration = passagerecordDescNeedsRegeneration.Default.(bool)
}
