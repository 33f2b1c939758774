// Package testutil provides test doubles shared across packages.
package testutil

import (
	"bytes"
	"sync"
)

// FinderCall records one Index invocation
type FinderCall struct {
	Haystack string
	Needle   string
	Result   int
}

// MockFinder is a recording implementation of interfaces.Finder for testing.
// It delegates to bytes.Index unless a fixed result is set.
type MockFinder struct {
	mu          sync.Mutex
	calls       []FinderCall
	fixedResult int
	fixed       bool
}

// NewMockFinder creates a new mock finder
func NewMockFinder() *MockFinder {
	return &MockFinder{}
}

// Index implements the Finder interface
func (m *MockFinder) Index(haystack, needle []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := bytes.Index(haystack, needle)
	if m.fixed {
		result = m.fixedResult
	}
	m.calls = append(m.calls, FinderCall{
		Haystack: string(haystack),
		Needle:   string(needle),
		Result:   result,
	})
	return result
}

// SetResult makes every subsequent Index call return result
func (m *MockFinder) SetResult(result int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedResult = result
	m.fixed = true
}

// Calls returns a copy of the recorded calls
func (m *MockFinder) Calls() []FinderCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]FinderCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetIndexCallCount returns how many times Index was called
func (m *MockFinder) GetIndexCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
