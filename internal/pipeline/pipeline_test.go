package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	wserror "github.com/msto63/wortschatz/foundation/core/error"
	"github.com/msto63/wortschatz/foundation/core/log"
	"github.com/msto63/wortschatz/internal/collation"
	"github.com/msto63/wortschatz/internal/registry"
	"github.com/msto63/wortschatz/internal/store"
)

// newPipeline builds a data root with an "en" -> "english" registry entry,
// writes content to english.txt, and returns the pipeline and the root.
func newPipeline(t *testing.T, content string) (*Pipeline, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, registry.RegistryFile), []byte(`{"en": "english"}`), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "english.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	reg, err := registry.Load(root)
	if err != nil {
		t.Fatalf("registry.Load() error = %v", err)
	}
	st := store.New(reg)
	so := collation.New(collation.NewCLDR())
	lg := log.New().WithOutput(io.Discard)
	return New(st, so, lg), root
}

func readList(t *testing.T, root string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, "english.txt"))
	if err != nil {
		t.Fatalf("read word list: %v", err)
	}
	return string(content)
}

func writeExtra(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write extra file: %v", err)
	}
	return path
}

func TestSort(t *testing.T) {
	p, root := newPipeline(t, "b\na\n")

	if err := p.Sort("en"); err != nil {
		t.Fatalf("Sort(en) error = %v", err)
	}
	if got := readList(t, root); got != "a\nb\n" {
		t.Errorf("word list = %q, want %q", got, "a\nb\n")
	}
}

func TestSortIdempotent(t *testing.T) {
	p, root := newPipeline(t, "a\nb\n")

	if err := p.Sort("en"); err != nil {
		t.Fatalf("Sort(en) error = %v", err)
	}
	if got := readList(t, root); got != "a\nb\n" {
		t.Errorf("sorted list changed: %q, want %q", got, "a\nb\n")
	}
}

func TestSortDedupesEquivalentForms(t *testing.T) {
	// The same word precomposed and decomposed must collapse to one entry.
	p, root := newPipeline(t, "café\ncafé\n")

	if err := p.Sort("en"); err != nil {
		t.Fatalf("Sort(en) error = %v", err)
	}
	if got := readList(t, root); got != "café\n" {
		t.Errorf("word list = %q, want single composed entry", got)
	}
}

func TestMergeAddsWords(t *testing.T) {
	p, root := newPipeline(t, "b\n")
	extra := writeExtra(t, root, "extra.txt", "a\nc\n")

	if err := p.Merge("en", []string{extra}); err != nil {
		t.Fatalf("Merge(en) error = %v", err)
	}
	if got := readList(t, root); got != "a\nb\nc\n" {
		t.Errorf("word list = %q, want %q", got, "a\nb\nc\n")
	}
}

func TestMergeAbsorbsDuplicates(t *testing.T) {
	p, root := newPipeline(t, "a\nb\n")
	extra := writeExtra(t, root, "extra.txt", "a\n")

	if err := p.Merge("en", []string{extra}); err != nil {
		t.Fatalf("Merge(en) error = %v", err)
	}
	if got := readList(t, root); got != "a\nb\n" {
		t.Errorf("word list = %q, want unchanged %q", got, "a\nb\n")
	}
}

func TestMergeMultipleSources(t *testing.T) {
	p, root := newPipeline(t, "m\n")
	extra1 := writeExtra(t, root, "extra1.txt", "a\n")
	extra2 := writeExtra(t, root, "extra2.txt", "z\na\n")

	if err := p.Merge("en", []string{extra1, extra2}); err != nil {
		t.Fatalf("Merge(en) error = %v", err)
	}
	if got := readList(t, root); got != "a\nm\nz\n" {
		t.Errorf("word list = %q, want %q", got, "a\nm\nz\n")
	}
}

func TestMergeUnreadableSourceAborts(t *testing.T) {
	p, root := newPipeline(t, "b\na\n")
	extra := writeExtra(t, root, "extra.txt", "c\n")
	missing := filepath.Join(root, "absent.txt")

	err := p.Merge("en", []string{extra, missing})
	if err == nil {
		t.Fatal("Merge(en) error = nil, want unreadable source")
	}
	if !wserror.HasCode(err, wserror.CodeMergeSourceUnreadable) {
		t.Errorf("Merge(en) code = %v, want %v", wserror.GetCode(err), wserror.CodeMergeSourceUnreadable)
	}
	if wsErr, ok := err.(*wserror.Error); ok {
		if wsErr.Details()["path"] != missing {
			t.Errorf("error detail path = %v, want %v", wsErr.Details()["path"], missing)
		}
	}
	// Target must be byte-identical to its pre-merge state.
	if got := readList(t, root); got != "b\na\n" {
		t.Errorf("word list = %q, want untouched %q", got, "b\na\n")
	}
}

func TestMergeUnknownLanguage(t *testing.T) {
	p, root := newPipeline(t, "a\n")
	extra := writeExtra(t, root, "extra.txt", "b\n")

	err := p.Merge("xx", []string{extra})
	if !wserror.HasCode(err, wserror.CodeUnknownLanguage) {
		t.Errorf("Merge(xx) code = %v, want %v", wserror.GetCode(err), wserror.CodeUnknownLanguage)
	}
	if got := readList(t, root); got != "a\n" {
		t.Errorf("word list = %q, want untouched %q", got, "a\n")
	}
}

func TestSortWithoutCollationFails(t *testing.T) {
	p, root := newPipeline(t, "b\na\n")
	// Swap in a sorter with no backing capability.
	p.sorter = collation.New(nil)

	err := p.Sort("en")
	if !wserror.HasCode(err, wserror.CodeCollationUnavailable) {
		t.Errorf("Sort(en) code = %v, want %v", wserror.GetCode(err), wserror.CodeCollationUnavailable)
	}
	if got := readList(t, root); got != "b\na\n" {
		t.Errorf("word list = %q, want untouched %q", got, "b\na\n")
	}
}

func TestSortAll(t *testing.T) {
	root := t.TempDir()
	reg := `{"en": "english", "de": "german"}`
	if err := os.WriteFile(filepath.Join(root, registry.RegistryFile), []byte(reg), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "english.txt"), []byte("b\na\n"), 0o644); err != nil {
		t.Fatalf("write english: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "german.txt"), []byte("zucker\napfel\n"), 0o644); err != nil {
		t.Fatalf("write german: %v", err)
	}

	loaded, err := registry.Load(root)
	if err != nil {
		t.Fatalf("registry.Load() error = %v", err)
	}
	p := New(store.New(loaded), collation.New(collation.NewCLDR()), log.New().WithOutput(io.Discard))

	if err := p.SortAll(); err != nil {
		t.Fatalf("SortAll() error = %v", err)
	}

	english, _ := os.ReadFile(filepath.Join(root, "english.txt"))
	if string(english) != "a\nb\n" {
		t.Errorf("english.txt = %q, want %q", english, "a\nb\n")
	}
	german, _ := os.ReadFile(filepath.Join(root, "german.txt"))
	if string(german) != "apfel\nzucker\n" {
		t.Errorf("german.txt = %q, want %q", german, "apfel\nzucker\n")
	}
}
