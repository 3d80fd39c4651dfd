// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured Error type including creation,
//              wrapping, code propagation, and JSON marshaling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with error tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unrecognized language %q", "xx")
	want := `unrecognized language "xx"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWithCode(t *testing.T) {
	err := New("index missing").WithCode(CodeRegistryNotFound)

	if err.Code() != CodeRegistryNotFound {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeRegistryNotFound)
	}
	// Severity auto-derived from the code
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithSeverityOverride(t *testing.T) {
	err := New("minor issue").WithSeverity(SeverityLow).WithCode(CodeRegistryNotFound)

	// Explicit severity wins over code-derived severity
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestWrap(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := Wrap(cause, "could not read language file")

		want := "could not read language file: permission denied"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("preserves code and details", func(t *testing.T) {
		inner := New("stem missing").
			WithCode(CodeRegistryEntryInvalid).
			WithDetail("stem", "english")
		err := Wrap(inner, "registry rejected")

		if err.Code() != CodeRegistryEntryInvalid {
			t.Errorf("Code() = %v, want %v", err.Code(), CodeRegistryEntryInvalid)
		}
		if err.Details()["stem"] != "english" {
			t.Errorf("Details()[stem] = %v, want english", err.Details()["stem"])
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Wrap(nil, ...) should return nil")
		}
	})
}

func TestRootCause(t *testing.T) {
	root := fmt.Errorf("disk full")
	mid := Wrap(root, "write failed").WithCode(CodeWriteFailure)
	top := Wrap(mid, "merge aborted")

	if got := top.RootCause(); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}
}

func TestHasCodeGetCode(t *testing.T) {
	err := New("no locale").WithCode(CodeUnsupportedLocale)

	if !HasCode(err, CodeUnsupportedLocale) {
		t.Error("HasCode should match the set code")
	}
	if HasCode(err, CodeReadFailure) {
		t.Error("HasCode should not match a different code")
	}
	if GetCode(err) != CodeUnsupportedLocale {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeUnsupportedLocale)
	}

	std := fmt.Errorf("plain")
	if GetCode(std) != CodeUnknown {
		t.Errorf("GetCode(std) = %v, want %v", GetCode(std), CodeUnknown)
	}
	if GetSeverity(std) != SeverityMedium {
		t.Errorf("GetSeverity(std) = %v, want %v", GetSeverity(std), SeverityMedium)
	}
}

func TestDetailsCopied(t *testing.T) {
	err := New("x").WithDetail("lang", "fa")
	details := err.Details()
	details["lang"] = "mutated"

	if err.Details()["lang"] != "fa" {
		t.Error("Details() must return a copy, not the internal map")
	}
}

func TestString(t *testing.T) {
	err := New("write failed").
		WithCode(CodeWriteFailure).
		WithOperation("store.WriteWords").
		WithDetail("lang", "en")

	s := err.String()
	for _, want := range []string{"Error: write failed", "Code: WRITE_FAILURE", "Operation: store.WriteWords", "lang=en"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(fmt.Errorf("io fault"), "read failed").
		WithCode(CodeReadFailure).
		WithOperation("store.ReadWords").
		WithDetail("lang", "de")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var obj map[string]interface{}
	if uerr := json.Unmarshal(data, &obj); uerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uerr)
	}

	if obj["code"] != "READ_FAILURE" {
		t.Errorf("code = %v, want READ_FAILURE", obj["code"])
	}
	if obj["cause"] != "io fault" {
		t.Errorf("cause = %v, want io fault", obj["cause"])
	}
	if obj["operation"] != "store.ReadWords" {
		t.Errorf("operation = %v, want store.ReadWords", obj["operation"])
	}
}
