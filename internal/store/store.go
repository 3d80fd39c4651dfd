// Package store provides filesystem access to language word lists.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
	"github.com/msto63/wortschatz/foundation/utils/filex"
	"github.com/msto63/wortschatz/foundation/utils/stringx"
	"github.com/msto63/wortschatz/internal/registry"
)

// wordFilePerm is the mode for newly written word-list files.
const wordFilePerm = 0o644

// Store accesses word-list files through a validated registry. It holds
// no cache; every call goes to the filesystem.
type Store struct {
	reg *registry.Registry
}

// New creates a Store over a loaded registry.
func New(reg *registry.Registry) *Store {
	return &Store{reg: reg}
}

// Codes returns the registered language codes in deterministic order.
func (s *Store) Codes() []string {
	return s.reg.Codes()
}

// Path resolves a language code to its word-list file path.
func (s *Store) Path(code string) (string, error) {
	stem, ok := s.reg.Stem(code)
	if !ok {
		return "", wserror.Newf("language %q is not registered", code).
			WithCode(wserror.CodeUnknownLanguage).
			WithOperation("store.Path").
			WithDetail("code", code)
	}
	return filepath.Join(s.reg.Root(), stem+".txt"), nil
}

// ReadWords reads the word list for code, one word per line in file
// order. Blank lines are dropped.
func (s *Store) ReadWords(code string) ([]string, error) {
	path, err := s.Path(code)
	if err != nil {
		return nil, err
	}

	lines, err := filex.ReadLines(path)
	if err != nil {
		return nil, wserror.Wrap(err, fmt.Sprintf("cannot read word list for %q", code)).
			WithCode(wserror.CodeReadFailure).
			WithOperation("store.ReadWords").
			WithDetail("code", code).
			WithDetail("path", path)
	}

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if stringx.IsBlank(line) {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

// WriteWords replaces the word list for code with the given words, one
// per line, newline-terminated. The new content is written to a temp
// file in the same directory and renamed into place, so on any failure
// the previous file content is left untouched.
func (s *Store) WriteWords(code string, words []string) error {
	path, err := s.Path(code)
	if err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := filex.WriteLines(tmp, words, wordFilePerm); err != nil {
		os.Remove(tmp)
		return wserror.Wrap(err, fmt.Sprintf("cannot write word list for %q", code)).
			WithCode(wserror.CodeWriteFailure).
			WithOperation("store.WriteWords").
			WithDetail("code", code).
			WithDetail("path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return wserror.Wrap(err, fmt.Sprintf("cannot replace word list for %q", code)).
			WithCode(wserror.CodeWriteFailure).
			WithOperation("store.WriteWords").
			WithDetail("code", code).
			WithDetail("path", path)
	}
	return nil
}
