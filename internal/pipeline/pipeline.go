// Package pipeline composes registry, store, wordset, and collation
// into the word-list maintenance operations.
package pipeline

import (
	"fmt"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
	"github.com/msto63/wortschatz/foundation/core/log"
	"github.com/msto63/wortschatz/foundation/utils/filex"
	"github.com/msto63/wortschatz/foundation/utils/stringx"
	"github.com/msto63/wortschatz/internal/collation"
	"github.com/msto63/wortschatz/internal/store"
	"github.com/msto63/wortschatz/internal/wordset"
)

// Pipeline runs the word-list maintenance operations over a store and
// a collation sorter.
type Pipeline struct {
	store  *store.Store
	sorter *collation.Sorter
	logger *log.Logger
}

// New creates a Pipeline. A nil logger falls back to the default.
func New(st *store.Store, so *collation.Sorter, lg *log.Logger) *Pipeline {
	if lg == nil {
		lg = log.GetDefault()
	}
	return &Pipeline{store: st, sorter: so, logger: lg.WithName("pipeline")}
}

// Merge folds the words of every extra file into the word list for
// code, then normalizes, deduplicates, collation-sorts, and writes the
// result back. If any extra file cannot be read, the operation aborts
// before the sort and the target file is left untouched.
func (p *Pipeline) Merge(code string, extraPaths []string) error {
	existing, err := p.store.ReadWords(code)
	if err != nil {
		return err
	}

	set := wordset.NewSet()
	set.AddAll(existing)

	for _, path := range extraPaths {
		lines, err := filex.ReadLines(path)
		if err != nil {
			return wserror.Wrap(err, fmt.Sprintf("cannot read merge source %s", path)).
				WithCode(wserror.CodeMergeSourceUnreadable).
				WithOperation("pipeline.Merge").
				WithDetail("code", code).
				WithDetail("path", path)
		}
		for _, line := range lines {
			if stringx.IsBlank(line) {
				continue
			}
			set.Add(line)
		}
		p.logger.Debug("merged source file", log.Fields{
			"code":  code,
			"path":  path,
			"lines": len(lines),
		})
	}

	sorted, err := p.sorter.Sort(code, set.Words())
	if err != nil {
		return err
	}

	if err := p.store.WriteWords(code, sorted); err != nil {
		return err
	}

	p.logger.Info("word list written", log.Fields{
		"code":    code,
		"words":   len(sorted),
		"sources": len(extraPaths),
	})
	return nil
}

// Sort rewrites the word list for code in normalized, deduplicated,
// collation-sorted form. It is a merge with no extra files and always
// rewrites the file, even when nothing changed.
func (p *Pipeline) Sort(code string) error {
	return p.Merge(code, nil)
}

// SortAll runs Sort for every registered language in deterministic
// registry order, stopping at the first failure.
func (p *Pipeline) SortAll() error {
	for _, code := range p.store.Codes() {
		if err := p.Sort(code); err != nil {
			return err
		}
	}
	return nil
}
