// Package interfaces defines the core interfaces used throughout the application.
package interfaces

// Finder locates the first occurrence of needle in haystack.
type Finder interface {
	// Index returns the byte offset of the first occurrence of needle in
	// haystack, or -1 if needle is not present.
	Index(haystack, needle []byte) int
}

// OccurrenceCounter counts occurrences of a pattern within a text.
type OccurrenceCounter interface {
	Count(text, pattern string) (int, error)
}
