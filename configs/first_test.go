package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	format := First[string](loader, "format")
	if format != "json" {
		t.Fatalf("got %v", format)
	}

	hints := First[bool](loader, "hints")
	if !hints {
		t.Fatal()
	}

	// missing values are zero
	if v := First[int](loader, "max_errors"); v != 0 {
		t.Fatalf("got %v", v)
	}

}
