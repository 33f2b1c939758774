package counter

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Veraticus/substring-count/pkg/search"
	"github.com/Veraticus/substring-count/pkg/testutil"
)

// referenceCount checks every character start for a prefix match.
func referenceCount(text, pattern string) int {
	count := 0
	for i := range text {
		if strings.HasPrefix(text[i:], pattern) {
			count++
		}
	}
	return count
}

func countersByEngine(t *testing.T) map[string]*Counter {
	t.Helper()
	counters := make(map[string]*Counter)
	for _, name := range search.Names() {
		finder, err := search.New(name)
		if err != nil {
			t.Fatalf("search.New(%q): %v", name, err)
		}
		counters[name] = New(WithFinder(finder))
	}
	return counters
}

func TestCounter_Count(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
	}{
		{name: "overlap of two", text: "aaa", pattern: "aa", want: 2},
		{name: "overlap in middle", text: "ABCDCDC", pattern: "CDC", want: 2},
		{name: "no occurrence", text: "hello", pattern: "world", want: 0},
		{name: "banana", text: "banana", pattern: "ana", want: 2},
		{name: "empty text", text: "", pattern: "a", want: 0},
		{name: "pattern longer than text", text: "ab", pattern: "abc", want: 0},
		{name: "exact match", text: "abc", pattern: "abc", want: 1},
		{name: "single character", text: "banana", pattern: "a", want: 3},
		{name: "non overlapping", text: "abcabcabc", pattern: "abc", want: 3},
		{name: "long run", text: "aaaaaa", pattern: "aaa", want: 4},
		{name: "case sensitive", text: "AaAa", pattern: "aa", want: 0},
		{name: "multibyte overlap", text: "ééé", pattern: "éé", want: 2},
		{name: "multibyte mixed", text: "日本日本日", pattern: "日本日", want: 2},
		{name: "spaces inside", text: "a a a", pattern: "a a", want: 2},
	}

	for engine, c := range countersByEngine(t) {
		for _, tt := range tests {
			t.Run(engine+"/"+tt.name, func(t *testing.T) {
				got, err := c.Count(tt.text, tt.pattern)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Count(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
				}
			})
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count("ABCDCDC", "CDC"); got != 2 {
		t.Errorf("expected 2 but got %d", got)
	}
	if got := Count("abc", ""); got != 0 {
		t.Errorf("expected 0 for empty pattern but got %d", got)
	}
}

func TestCounter_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abé")

	randString := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	counters := countersByEngine(t)
	for i := 0; i < 1000; i++ {
		text := randString(rng.Intn(40))
		pattern := randString(1 + rng.Intn(4))
		want := referenceCount(text, pattern)

		for engine, c := range counters {
			got, err := c.Count(text, pattern)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", engine, err)
			}
			if got != want {
				t.Fatalf("%s: Count(%q, %q) = %d, want %d", engine, text, pattern, got, want)
			}
		}
	}
}

func TestCounter_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New()

	for i := 0; i < 200; i++ {
		text := ""
		pattern := []string{"a", "ab", "aba", "bb"}[rng.Intn(4)]
		prev := 0
		for j := 0; j < 30; j++ {
			text += string("ab"[rng.Intn(2)])
			got, _ := c.Count(text, pattern)
			if got < prev {
				t.Fatalf("count decreased from %d to %d for text %q pattern %q", prev, got, text, pattern)
			}
			prev = got
		}
	}
}

func TestCounter_Idempotent(t *testing.T) {
	c := New()
	first, _ := c.Count("abababab", "abab")
	second, _ := c.Count("abababab", "abab")
	if first != second {
		t.Errorf("expected identical results but got %d and %d", first, second)
	}
	if first != 3 {
		t.Errorf("expected 3 but got %d", first)
	}
}

func TestCounter_AdvancesOneCharacter(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pattern   string
		haystacks []string
	}{
		{
			name:      "ascii",
			text:      "aaa",
			pattern:   "aa",
			haystacks: []string{"aaa", "aa", "a"},
		},
		{
			name:      "multibyte",
			text:      "éxé",
			pattern:   "é",
			haystacks: []string{"éxé", "xé"},
		},
		{
			name:      "stops at end of text",
			text:      "ab",
			pattern:   "b",
			haystacks: []string{"ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := testutil.NewMockFinder()
			c := New(WithFinder(finder))
			if _, err := c.Count(tt.text, tt.pattern); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			calls := finder.Calls()
			if len(calls) != len(tt.haystacks) {
				t.Fatalf("expected %d searches but got %d: %+v", len(tt.haystacks), len(calls), calls)
			}
			for i, want := range tt.haystacks {
				if calls[i].Haystack != want {
					t.Errorf("search %d: expected haystack %q but got %q", i, want, calls[i].Haystack)
				}
				if calls[i].Needle != tt.pattern {
					t.Errorf("search %d: expected needle %q but got %q", i, tt.pattern, calls[i].Needle)
				}
			}
		})
	}
}

func TestCounter_StopsWhenNotFound(t *testing.T) {
	finder := testutil.NewMockFinder()
	finder.SetResult(-1)
	c := New(WithFinder(finder))

	got, err := c.Count("aaaa", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 but got %d", got)
	}
	if finder.GetIndexCallCount() != 1 {
		t.Errorf("expected 1 search but got %d", finder.GetIndexCallCount())
	}
}

func TestCounter_EmptyPattern(t *testing.T) {
	tests := []struct {
		name    string
		policy  EmptyPatternPolicy
		text    string
		want    int
		wantErr error
	}{
		{name: "zero", policy: EmptyZero, text: "abc", want: 0},
		{name: "zero on empty text", policy: EmptyZero, text: "", want: 0},
		{name: "positions", policy: EmptyPositions, text: "abc", want: 4},
		{name: "positions counts runes", policy: EmptyPositions, text: "héllo", want: utf8.RuneCountInString("héllo") + 1},
		{name: "positions on empty text", policy: EmptyPositions, text: "", want: 1},
		{name: "reject", policy: EmptyReject, text: "abc", wantErr: ErrEmptyPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := testutil.NewMockFinder()
			c := New(WithFinder(finder), WithEmptyPatternPolicy(tt.policy))

			got, err := c.Count(tt.text, "")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d but got %d", tt.want, got)
			}
			if finder.GetIndexCallCount() != 0 {
				t.Errorf("expected no searches for empty pattern but got %d", finder.GetIndexCallCount())
			}
		})
	}
}

func TestParseEmptyPatternPolicy(t *testing.T) {
	for _, p := range []EmptyPatternPolicy{EmptyZero, EmptyPositions, EmptyReject} {
		got, err := ParseEmptyPatternPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseEmptyPatternPolicy(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("expected %v but got %v", p, got)
		}
	}

	if _, err := ParseEmptyPatternPolicy("maybe"); err == nil {
		t.Error("expected error for invalid policy")
	}

	if s := EmptyPatternPolicy(99).String(); s != "EmptyPatternPolicy(99)" {
		t.Errorf("unexpected String() for unknown policy: %s", s)
	}
}

func TestWithFinder_NilKeepsDefault(t *testing.T) {
	c := New(WithFinder(nil))
	if got, _ := c.Count("aaa", "aa"); got != 2 {
		t.Errorf("expected 2 but got %d", got)
	}
}
