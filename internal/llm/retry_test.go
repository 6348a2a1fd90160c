package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func passageReply() MockResponse {
	return MockResponse{Content: json.RawMessage(fakePassage)}
}

func downstreamFailure() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("upstream down")}}
}

func TestRetry_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		queue     []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "first attempt succeeds",
			queue:     []MockResponse{passageReply()},
			wantCalls: 1,
		},
		{
			name:      "transient failure then success",
			queue:     []MockResponse{downstreamFailure(), passageReply()},
			wantCalls: 2,
		},
		{
			name:      "all attempts exhausted",
			queue:     []MockResponse{downstreamFailure(), downstreamFailure(), downstreamFailure()},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name: "truncated output is terminal",
			queue: []MockResponse{
				{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`"partial passage"`)}},
			},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name: "schema-invalid output retried once",
			queue: []MockResponse{
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`not json`), Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`not json`), Err: errors.New("bad")}},
				passageReply(), // must not be reached
			},
			wantCalls: 2,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.queue...)
			p := WithRetry(mock, fastRetry())

			resp, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "Topic: The Physics of Glass"}},
				MaxTokens: 8192,
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != fakePassage {
					t.Fatalf("content = %q", resp.Content)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_CancelledContextStopsRetrying(t *testing.T) {
	mock := NewMockProvider(downstreamFailure(), downstreamFailure(), passageReply())
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestRetry_RateLimitHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		passageReply(),
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != fakePassage {
		t.Fatalf("content = %q", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want mock", p.ModelID())
	}
}
