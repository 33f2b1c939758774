// Package search provides the exact substring search engines used by the counter.
package search

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/Veraticus/substring-count/pkg/interfaces"
	"github.com/coregx/coregex/simd"
)

// Engine names accepted by New.
const (
	EngineStdlib = "stdlib"
	EngineNaive  = "naive"
	EngineSIMD   = "simd"
)

// ErrUnknownEngine is returned by New for an unrecognized engine name.
var ErrUnknownEngine = errors.New("unknown search engine")

var engines = map[string]interfaces.Finder{
	EngineStdlib: Stdlib{},
	EngineNaive:  Naive{},
	EngineSIMD:   SIMD{},
}

// New returns the engine registered under name.
func New(name string) (interfaces.Finder, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownEngine, name, Names())
	}
	return f, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stdlib searches with bytes.Index.
type Stdlib struct{}

// Index implements interfaces.Finder.
func (Stdlib) Index(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// Naive checks every starting offset in turn.
type Naive struct{}

// Index implements interfaces.Finder.
func (Naive) Index(haystack, needle []byte) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && haystack[i+j] == needle[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}

// SIMD searches with coregex's vectorized memmem.
type SIMD struct{}

// Index implements interfaces.Finder.
func (SIMD) Index(haystack, needle []byte) int {
	return simd.Memmem(haystack, needle)
}
