// Package collation sorts words by locale-specific collation rules.
package collation

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
)

// Capability is the external collation backend consulted by language
// code. Available reports whether a collation locale exists for the
// code; SortFunc returns an in-place sorter for it.
type Capability interface {
	Available(code string) bool
	SortFunc(code string) (func([]string), error)
}

// cldrCapability backs Capability with the CLDR collation tables from
// golang.org/x/text.
type cldrCapability struct {
	matcher language.Matcher
}

// NewCLDR returns the CLDR-backed collation capability.
func NewCLDR() Capability {
	return &cldrCapability{matcher: language.NewMatcher(collate.Supported())}
}

// locale parses code and checks it against the supported collation
// locales. A match with confidence No means no collation data exists
// for the code.
func (c *cldrCapability) locale(code string) (language.Tag, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, false
	}
	_, _, conf := c.matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return tag, true
}

func (c *cldrCapability) Available(code string) bool {
	_, ok := c.locale(code)
	return ok
}

// SortFunc builds an in-place sorter for code. The collator runs with
// the Force option so byte-distinct strings never compare equal, which
// keeps invisible-joiner variants apart and makes the order total and
// deterministic.
func (c *cldrCapability) SortFunc(code string) (func([]string), error) {
	tag, ok := c.locale(code)
	if !ok {
		return nil, wserror.Newf("no collation locale for language %q", code).
			WithCode(wserror.CodeUnsupportedLocale).
			WithOperation("collation.SortFunc").
			WithDetail("code", code)
	}
	col := collate.New(tag, collate.Force)
	return func(words []string) {
		col.SortStrings(words)
	}, nil
}

// Sorter orders word sets through an injected collation capability.
type Sorter struct {
	cap Capability
}

// New creates a Sorter over cap. A nil cap is permitted at construction
// but every Sort call will fail with a collation-unavailable error.
func New(cap Capability) *Sorter {
	return &Sorter{cap: cap}
}

// Sort returns the words of the set in the collation order of code's
// locale. The input slice is not modified.
func (s *Sorter) Sort(code string, words []string) ([]string, error) {
	if s.cap == nil {
		return nil, wserror.New("collation capability is not available").
			WithCode(wserror.CodeCollationUnavailable).
			WithOperation("collation.Sort")
	}

	sortFn, err := s.cap.SortFunc(code)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sortFn(sorted)
	return sorted, nil
}
