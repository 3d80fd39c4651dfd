// Package wordset normalizes words and deduplicates them as a set.
package wordset

import "golang.org/x/text/unicode/norm"

// Normalize returns the Unicode canonical composed form (NFC) of word.
// Pure function; any input string has a defined output.
func Normalize(word string) string {
	return norm.NFC.String(word)
}

// Set is a collection of normalized unique words. Insertion order is
// not observable; callers order the result themselves.
type Set struct {
	members map[string]struct{}
}

// NewSet creates an empty word set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add normalizes word and inserts it. Exact duplicates after
// normalization are absorbed.
func (s *Set) Add(word string) {
	s.members[Normalize(word)] = struct{}{}
}

// AddAll normalizes and inserts every word of the sequence.
func (s *Set) AddAll(words []string) {
	for _, word := range words {
		s.Add(word)
	}
}

// Contains reports whether the normalized form of word is a member.
func (s *Set) Contains(word string) bool {
	_, ok := s.members[Normalize(word)]
	return ok
}

// Len returns the number of unique normalized words.
func (s *Set) Len() int {
	return len(s.members)
}

// Words returns the members as a slice in unspecified order.
func (s *Set) Words() []string {
	words := make([]string, 0, len(s.members))
	for word := range s.members {
		words = append(words, word)
	}
	return words
}
