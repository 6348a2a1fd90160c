package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenInitializesClient(t *testing.T) {
	s := newTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := newTestStore(t)

	// journal_mode reports "memory" for in-memory databases, so only
	// the settings that survive are checked here.
	for pragma, want := range map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	} {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s: %v", pragma, err)
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestPassageSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.PassageRepo()
	ctx := context.Background()

	pid := uuid.New()
	id, err := repo.SavePassage(ctx, PassageRecordData{
		PassageID: pid,
		Topic:     "Ocean Acidification and Marine Ecosystems",
		Domain:    "environmental science / marine biology",
		Title:     "Ocean Acidification",
		Raw:       "Ocean Acidification\n\n(1) Text.",
		Level:     "C1",
		Length:    "long",
		Score:     85,
		Valid:     true,
		Retries:   1,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetPassage(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored passage")
	}
	if got.PassageID != pid {
		t.Errorf("passageID = %s, want %s", got.PassageID, pid)
	}
	if got.Score != 85 || !got.Valid || got.Retries != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestPassageGetMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.PassageRepo().GetPassage(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing passage")
	}
}

func TestPassageListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	repo := s.PassageRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.SavePassage(ctx, PassageRecordData{
			Topic: "Topic",
			Raw:   "text",
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	rows, err := repo.ListPassages(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (limit applied)", len(rows))
	}
	if rows[0].CreatedAt.Before(rows[1].CreatedAt) {
		t.Error("expected newest first")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := newTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "passage-gen",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "text",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("expected descending sequence order")
	}
	if events[0].RequestBody == "" || events[0].ResponseBody == "" {
		t.Error("expected request/response bodies to be captured")
	}

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "dictionary", Success: true,
	}); err != nil {
		t.Fatalf("append dictionary event: %v", err)
	}
	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "dictionary"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "dictionary" {
		t.Fatalf("purpose filter returned %+v, want one dictionary event", filtered)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := newTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "passage-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 10, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "passage-gen", InputTokens: 300, OutputTokens: 400, LatencyMs: 30, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "dictionary", InputTokens: 10, OutputTokens: 20, LatencyMs: 5, Success: true},
	}
	for i, d := range seed {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: dictionary, passage-gen.
	if byPurpose[0].Purpose != "dictionary" || byPurpose[1].Purpose != "passage-gen" {
		t.Errorf("order = %q, %q", byPurpose[0].Purpose, byPurpose[1].Purpose)
	}
	pg := byPurpose[1]
	if pg.Calls != 2 || pg.InputTokens != 400 || pg.OutputTokens != 600 || pg.AvgLatencyMs != 20 {
		t.Errorf("passage-gen usage = %+v", pg)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for want := int64(1); want <= 5; want++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq != want {
			t.Fatalf("seq = %d, want %d", seq, want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := newTestStore(t)

	for _, table := range []string{"passage_records", "llm_request_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s not created: %v", table, err)
		}
	}
}
