package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/testutil"
)

func TestPrintMatchesGolden(t *testing.T) {
	input := testutil.Testdata(t, "paths.txt")
	stream := source.NewStream("paths.txt", bytes.NewReader(input), source.Options{})
	var out bytes.Buffer
	if err := Print(Config{Separator: "/"}, stream, &out); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	testutil.AssertGolden(t, "print_basic.golden", out.String())
}

func TestPrintCollapseDepth(t *testing.T) {
	input := testutil.Testdata(t, "paths.txt")
	stream := source.NewStream("paths.txt", bytes.NewReader(input), source.Options{})
	var out bytes.Buffer
	if err := Print(Config{Separator: "/", CollapseDepth: 1}, stream, &out); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	testutil.AssertGolden(t, "print_depth1.golden", out.String())
}

func TestPrintCustomSeparator(t *testing.T) {
	stream := source.NewStream("keys", strings.NewReader("a.b\na.c\n"), source.Options{})
	var out bytes.Buffer
	if err := Print(Config{Separator: "."}, stream, &out); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	want := "└─ a\n   ├─ b\n   └─ c\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestPrintEmptyInput(t *testing.T) {
	stream := source.NewStream("empty", strings.NewReader(""), source.Options{})
	var out bytes.Buffer
	if err := Print(Config{}, stream, &out); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

type brokenReader struct {
	data []byte
	done bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errors.New("device went away")
	}
	r.done = true
	return copy(p, r.data), nil
}

func TestPrintWritesLinesBeforeReadError(t *testing.T) {
	stream := source.NewStream("flaky", &brokenReader{data: []byte("x/y\n")}, source.Options{})
	var out bytes.Buffer
	err := Print(Config{Separator: "/"}, stream, &out)
	if err == nil || !strings.Contains(err.Error(), "device went away") {
		t.Fatalf("expected read error, got %v", err)
	}
	if out.String() != "└─ x\n   └─ y\n" {
		t.Fatalf("expected partial output, got %q", out.String())
	}
}
