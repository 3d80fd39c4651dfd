// Package registry resolves language codes to word-list files.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
	"github.com/msto63/wortschatz/foundation/utils/filex"
	"github.com/msto63/wortschatz/foundation/utils/stringx"
)

// RegistryFile is the registry document name under the data root.
const RegistryFile = "languages.json"

// Registry is a validated, immutable mapping from language code to
// word-list file stem, anchored at a data root directory.
type Registry struct {
	root    string
	mapping map[string]string
}

// Load reads <root>/languages.json and validates every entry. Each
// mapped stem must resolve to an existing regular file <root>/<stem>.txt.
// No word-list content is read, only existence is checked.
func Load(root string) (*Registry, error) {
	path := filepath.Join(root, RegistryFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wserror.Wrap(err, fmt.Sprintf("cannot read registry: %s", path)).
			WithCode(wserror.CodeRegistryNotFound).
			WithOperation("registry.Load").
			WithDetail("path", path)
	}

	var mapping map[string]string
	if err := json.Unmarshal(content, &mapping); err != nil {
		return nil, wserror.Wrap(err, fmt.Sprintf("registry is not a JSON object of strings: %s", path)).
			WithCode(wserror.CodeRegistryMalformed).
			WithOperation("registry.Load").
			WithDetail("path", path)
	}
	// A JSON null unmarshals into a nil map without error.
	if mapping == nil {
		return nil, wserror.Newf("registry is not a JSON object of strings: %s", path).
			WithCode(wserror.CodeRegistryMalformed).
			WithOperation("registry.Load").
			WithDetail("path", path)
	}

	for code, stem := range mapping {
		if stringx.IsBlank(code) || stringx.IsBlank(stem) {
			return nil, wserror.Newf("registry entry %q -> %q has an empty code or stem", code, stem).
				WithCode(wserror.CodeRegistryMalformed).
				WithOperation("registry.Load").
				WithDetail("path", path)
		}
		wordFile := wordPath(root, stem)
		if !filex.IsFile(wordFile) {
			return nil, wserror.Newf("registry entry %q maps to missing word list %s", code, wordFile).
				WithCode(wserror.CodeRegistryEntryInvalid).
				WithOperation("registry.Load").
				WithDetail("code", code).
				WithDetail("stem", stem).
				WithDetail("path", wordFile)
		}
	}

	return &Registry{root: root, mapping: mapping}, nil
}

// Root returns the data root directory the registry was loaded from.
func (r *Registry) Root() string {
	return r.root
}

// Codes returns all registered language codes in lexicographic order.
// The registry document carries no order of its own, so a stable order
// is imposed here for deterministic iteration.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.mapping))
	for code := range r.mapping {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Stem returns the file stem registered for code.
func (r *Registry) Stem(code string) (string, bool) {
	stem, ok := r.mapping[code]
	return stem, ok
}

// Len returns the number of registered languages.
func (r *Registry) Len() int {
	return len(r.mapping)
}

// wordPath builds the word-list file path for a stem under root.
func wordPath(root, stem string) string {
	return filepath.Join(root, stem+".txt")
}
