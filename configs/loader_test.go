package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
format?: "text" | "json"
hints?: bool
exclude?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var format string
	err := loader.AssignFirst("format", &format)
	if err != nil {
		t.Fatal(err)
	}
	if format != "json" {
		t.Fatalf("got %q", format)
	}

	var exclude []string
	err = loader.AssignFirst("exclude", &exclude)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", exclude); str != "[vendor/*.lua build/*.lua]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &exclude)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var formats []string
	for value, err := range loader.IterCueValues("format") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		formats = append(formats, s)
	}
	if str := fmt.Sprintf("%v", formats); str != "[json text]" {
		t.Fatalf("got %q", str)
	}

	formats = formats[:0]
	for str := range All[string](loader, "format") {
		formats = append(formats, str)
	}
	if str := fmt.Sprintf("%v", formats); str != "[json text]" {
		t.Fatalf("got %q", str)
	}

	// only the first file sets hints
	var hints []bool
	for v := range All[bool](loader, "hints") {
		hints = append(hints, v)
	}
	if str := fmt.Sprintf("%v", hints); str != "[true]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no-such-file.cue"}, testSchema)
	var str string
	err := loader.AssignFirst("format", &str)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
