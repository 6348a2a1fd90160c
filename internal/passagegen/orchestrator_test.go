package passagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/keremugurlu/readingen/internal/llm"
)

// scriptedGenerator returns canned outputs in order, repeating the last
// one, and records every input it sees. errAfter >= 0 makes the call with
// that index fail.
type scriptedGenerator struct {
	outputs  []string
	errAfter int
	err      error
	calls    []GenerateInput
}

func newScripted(outputs ...string) *scriptedGenerator {
	return &scriptedGenerator{outputs: outputs, errAfter: -1}
}

func (g *scriptedGenerator) Generate(_ context.Context, input GenerateInput) (string, error) {
	idx := len(g.calls)
	g.calls = append(g.calls, input)

	if g.errAfter >= 0 && idx >= g.errAfter {
		return "", g.err
	}
	if idx >= len(g.outputs) {
		idx = len(g.outputs) - 1
	}
	return g.outputs[idx], nil
}

// validRaw builds the minimal document the simple policy accepts.
func validRaw() string {
	var b strings.Builder
	b.WriteString("The Hidden Language of Mycelial Networks\n\n")
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "(%d) Paragraph %d discusses fungal communication.\n\n", i, i)
	}
	b.WriteString("Questions\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. What does paragraph %d explain?\n\n", i, i)
	}
	b.WriteString("Answer Key\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. It explains point %d.\n", i, i)
	}
	return b.String()
}

func fastConfig(maxRetries int) Config {
	cfg := BatchConfig()
	cfg.MaxRetries = maxRetries
	cfg.RetryDelay = 0
	return cfg
}

func TestOrchestrator_FirstAttemptValid(t *testing.T) {
	gen := newScripted(validRaw())
	o := NewOrchestrator(gen, fastConfig(5))

	p, err := o.Generate(context.Background(), GenerateInput{Topic: "Mycelial Networks", Domain: "biology"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(gen.calls))
	}
	if p.Retries != 0 || p.NeedsRegeneration {
		t.Errorf("retries = %d, needsRegeneration = %t", p.Retries, p.NeedsRegeneration)
	}
	if !p.Report.IsValid {
		t.Errorf("expected valid report, issues: %v", p.Report.Issues)
	}
	if p.Parsed == nil || p.Parsed.Title != "The Hidden Language of Mycelial Networks" {
		t.Errorf("parsed title = %v", p.Parsed)
	}
	if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated ID")
	}
}

func TestOrchestrator_RetriesThenSucceeds(t *testing.T) {
	gen := newScripted("garbage", "still garbage", validRaw())
	o := NewOrchestrator(gen, fastConfig(5))

	p, err := o.Generate(context.Background(), GenerateInput{Topic: "T", Domain: "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(gen.calls))
	}
	if p.Retries != 2 {
		t.Errorf("retries = %d, want 2", p.Retries)
	}

	// The second attempt must carry the first attempt's failures.
	second := gen.calls[1]
	if second.Attempt != 1 {
		t.Errorf("second attempt counter = %d, want 1", second.Attempt)
	}
	if len(second.Corrections) == 0 {
		t.Error("expected corrections from the failed first attempt")
	}
	if first := gen.calls[0]; first.Attempt != 0 || len(first.Corrections) != 0 {
		t.Errorf("first attempt should be clean, got attempt=%d corrections=%v", first.Attempt, first.Corrections)
	}
}

func TestOrchestrator_GivesUpAfterBudget(t *testing.T) {
	gen := newScripted("never valid")
	o := NewOrchestrator(gen, fastConfig(2))

	p, err := o.Generate(context.Background(), GenerateInput{Topic: "T", Domain: "D"})
	if err != nil {
		t.Fatalf("giving up is not an error, got: %v", err)
	}
	if len(gen.calls) != 3 {
		t.Errorf("calls = %d, want 3 (1 + 2 retries)", len(gen.calls))
	}
	if !p.NeedsRegeneration {
		t.Error("expected NeedsRegeneration on exhausted budget")
	}
	if p.Raw != "never valid" {
		t.Errorf("expected the last attempt's text, got %q", p.Raw)
	}
	if p.Report.IsValid {
		t.Error("delivered report should still be invalid")
	}
}

func TestOrchestrator_ProviderErrorAborts(t *testing.T) {
	gen := newScripted()
	gen.errAfter = 0
	gen.err = &llm.ErrRateLimit{RetryAfter: time.Second, Err: errors.New("429")}

	o := NewOrchestrator(gen, fastConfig(5))
	p, err := o.Generate(context.Background(), GenerateInput{Topic: "T"})
	if p != nil {
		t.Error("expected no passage on provider failure")
	}

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if gerr.Kind != KindRateLimit {
		t.Errorf("kind = %q, want %q", gerr.Kind, KindRateLimit)
	}
	if len(gen.calls) != 1 {
		t.Errorf("calls = %d, want 1 (no validation retry on provider errors)", len(gen.calls))
	}
}

func TestOrchestrator_ContextCancelledDuringDelay(t *testing.T) {
	gen := newScripted("never valid")
	cfg := fastConfig(5)
	cfg.RetryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOrchestrator(gen, cfg).Generate(ctx, GenerateInput{Topic: "T"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_BatchKeepsGivenUpPassages(t *testing.T) {
	gen := newScripted("never valid")
	o := NewOrchestrator(gen, fastConfig(0))

	passages, err := o.GenerateBatch(context.Background(), 2, GenerateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passages) != 2 {
		t.Fatalf("passages = %d, want 2", len(passages))
	}
	for i, p := range passages {
		if !p.NeedsRegeneration {
			t.Errorf("passage %d: expected NeedsRegeneration", i)
		}
		if p.Topic == "" {
			t.Errorf("passage %d: batch items should draw a topic", i)
		}
	}
}

func TestOrchestrator_BatchAbortsOnProviderError(t *testing.T) {
	gen := newScripted(validRaw())
	gen.errAfter = 1
	gen.err = errors.New("invalid api key")

	o := NewOrchestrator(gen, fastConfig(0))
	passages, err := o.GenerateBatch(context.Background(), 3, GenerateInput{})

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if gerr.Kind != KindCredentials {
		t.Errorf("kind = %q, want %q", gerr.Kind, KindCredentials)
	}
	if len(passages) != 1 {
		t.Errorf("passages = %d, want 1 (the one completed before the failure)", len(passages))
	}
}

func TestOrchestrator_BatchSingleKeepsCallerTopic(t *testing.T) {
	gen := newScripted(validRaw())
	o := NewOrchestrator(gen, fastConfig(0))

	passages, err := o.GenerateBatch(context.Background(), 1, GenerateInput{Topic: "Chosen", Domain: "field"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if passages[0].Topic != "Chosen" {
		t.Errorf("topic = %q, want caller's topic preserved for single batches", passages[0].Topic)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKind
	}{
		{&llm.ErrRateLimit{RetryAfter: time.Second}, KindRateLimit},
		{errors.New("invalid API key provided"), KindCredentials},
		{errors.New("insufficient_quota: billing hard limit reached"), KindQuota},
		{errors.New("rate_limit_exceeded"), KindRateLimit},
		{errors.New("connection reset by peer"), KindUnknown},
	}
	for _, tt := range tests {
		if got := classify(tt.err); got.Kind != tt.kind {
			t.Errorf("classify(%v) = %q, want %q", tt.err, got.Kind, tt.kind)
		}
	}
}
