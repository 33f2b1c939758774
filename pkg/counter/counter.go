// Package counter counts overlapping occurrences of a pattern within a text.
//
// After each match the search resumes one character past the start of that
// match, so "aa" occurs twice in "aaa".
package counter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Veraticus/substring-count/pkg/interfaces"
	"github.com/Veraticus/substring-count/pkg/search"
)

// ErrEmptyPattern is returned under EmptyReject when the pattern is empty.
var ErrEmptyPattern = errors.New("pattern must not be empty")

// EmptyPatternPolicy decides what Count does with an empty pattern.
type EmptyPatternPolicy int

const (
	// EmptyZero counts no occurrences.
	EmptyZero EmptyPatternPolicy = iota
	// EmptyPositions counts every character boundary: runes in text plus one.
	EmptyPositions
	// EmptyReject fails with ErrEmptyPattern.
	EmptyReject
)

var policyNames = map[EmptyPatternPolicy]string{
	EmptyZero:      "zero",
	EmptyPositions: "positions",
	EmptyReject:    "reject",
}

// String returns the configuration name of the policy.
func (p EmptyPatternPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("EmptyPatternPolicy(%d)", int(p))
}

// ParseEmptyPatternPolicy parses "zero", "positions" or "reject".
func ParseEmptyPatternPolicy(s string) (EmptyPatternPolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return EmptyZero, fmt.Errorf("invalid empty pattern policy %q (use zero, positions or reject)", s)
}

// Counter counts overlapping occurrences using a configurable search engine.
// A Counter is immutable and safe for concurrent use.
type Counter struct {
	finder      interfaces.Finder
	emptyPolicy EmptyPatternPolicy
}

// Option configures a Counter.
type Option func(*Counter)

// WithFinder sets the search engine.
func WithFinder(f interfaces.Finder) Option {
	return func(c *Counter) {
		if f != nil {
			c.finder = f
		}
	}
}

// WithEmptyPatternPolicy sets the empty pattern behavior.
func WithEmptyPatternPolicy(p EmptyPatternPolicy) Option {
	return func(c *Counter) {
		c.emptyPolicy = p
	}
}

// New creates a Counter. It defaults to bytes.Index and EmptyZero.
func New(opts ...Option) *Counter {
	c := &Counter{
		finder:      search.Stdlib{},
		emptyPolicy: EmptyZero,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Counter implements OccurrenceCounter
var _ interfaces.OccurrenceCounter = (*Counter)(nil)

// Count returns the number of positions at which pattern occurs in text,
// overlapping occurrences included.
func (c *Counter) Count(text, pattern string) (int, error) {
	if pattern == "" {
		switch c.emptyPolicy {
		case EmptyPositions:
			return utf8.RuneCountInString(text) + 1, nil
		case EmptyReject:
			return 0, ErrEmptyPattern
		default:
			return 0, nil
		}
	}

	haystack := []byte(text)
	needle := []byte(pattern)

	count := 0
	pos := 0
	for pos < len(haystack) {
		idx := c.finder.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		count++

		// Resume one character past the start of the match.
		start := pos + idx
		_, width := utf8.DecodeRune(haystack[start:])
		pos = start + width
	}

	return count, nil
}

var defaultCounter = New()

// Count counts overlapping occurrences of pattern in text with the default
// Counter. An empty pattern yields 0.
func Count(text, pattern string) int {
	n, _ := defaultCounter.Count(text, pattern)
	return n
}
