package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse scripts one Generate call on the MockProvider: either the
// raw text a real backend would return, or an error.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and keeps every
// request it received in Calls, so tests can assert on prompt shape as
// well as on outcomes. Safe for concurrent use.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	Calls []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{queue: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	// Running off the end of the script behaves like an unreachable
	// backend, which is what an unscripted call usually means in a test.
	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
