package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"j/↓", "move down"},
		{"enter", "toggle"},
		{"?", "help"},
	}
	got := Format(rows, nil)
	want := []string{
		"j/↓    move down",
		"enter  toggle",
		"?      help",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"7", "a"},
		{"120", "b"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"  7  a",
		"120  b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
