package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestReadAllSplitsLines(t *testing.T) {
	s := NewStream("test", strings.NewReader("a/b\r\na/c\n\nlast"), Options{})
	lines, err := ReadAll(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a/b", "a/c", "", "last"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected %q, got %q", want, lines)
	}
}

func TestStreamBatchesAndEndsWithDone(t *testing.T) {
	input := strings.Repeat("x/y\n", 10)
	s := NewStream("test", strings.NewReader(input), Options{BatchSize: 4, FlushInterval: time.Hour})
	var sizes []int
	sawDone := false
	for evt := range s.Events() {
		if evt.Done {
			sawDone = true
			continue
		}
		sizes = append(sizes, len(evt.Lines))
	}
	if !sawDone {
		t.Fatalf("expected a Done event")
	}
	total := 0
	for _, n := range sizes {
		if n > 4 {
			t.Fatalf("expected batches of at most 4, got %v", sizes)
		}
		total += n
	}
	if total != 10 {
		t.Fatalf("expected 10 lines, got %d in %v", total, sizes)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestStreamReportsReadErrors(t *testing.T) {
	s := NewStream("broken", failingReader{}, Options{})
	_, err := ReadAll(s)
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing"), Options{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOpenRejectsFollowOnStdin(t *testing.T) {
	if _, err := Open(StdinName, Options{Follow: true}); err == nil {
		t.Fatalf("expected follow on stdin to be rejected")
	}
}

func TestOpenFileStreamsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.txt")
	if err := os.WriteFile(path, []byte("usr/bin\nusr/lib\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	s, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Name() != path {
		t.Fatalf("expected name %q, got %q", path, s.Name())
	}
	lines, err := ReadAll(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"usr/bin", "usr/lib"}) {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestFollowPicksUpAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.txt")
	if err := os.WriteFile(path, []byte("a/b\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	s, err := Open(path, Options{Follow: true, FlushInterval: time.Millisecond})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		s.Stop()
		s.Wait()
	}()

	got := collect(t, s, 1)
	if !reflect.DeepEqual(got, []string{"a/b"}) {
		t.Fatalf("expected initial line, got %q", got)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("a/c\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	got = collect(t, s, 1)
	if !reflect.DeepEqual(got, []string{"a/c"}) {
		t.Fatalf("expected appended line, got %q", got)
	}
}

func TestPausedProducerStillFlushes(t *testing.T) {
	pr, pw := io.Pipe()
	s := NewStream("pipe", pr, Options{FlushInterval: 20 * time.Millisecond})
	t.Cleanup(func() {
		s.Stop()
		pw.Close()
		s.Wait()
	})

	if _, err := io.WriteString(pw, "a/1\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := io.WriteString(pw, "a/2\na/3\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	// The writer stays open: nothing but the flush interval can release a/2 and a/3.
	got := collect(t, s, 3)
	want := []string{"a/1", "a/2", "a/3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func collect(t *testing.T, s *Stream, want int) []string {
	t.Helper()
	var lines []string
	deadline := time.After(5 * time.Second)
	for len(lines) < want {
		select {
		case evt, ok := <-s.Events():
			if !ok {
				t.Fatalf("stream closed after %q", lines)
			}
			if evt.Err != nil {
				t.Fatalf("unexpected error: %v", evt.Err)
			}
			lines = append(lines, evt.Lines...)
		case <-deadline:
			t.Fatalf("timed out waiting for lines, got %q", lines)
		}
	}
	return lines
}

func TestThrottleReady(t *testing.T) {
	th := newThrottle(time.Hour)
	if !th.ready() {
		t.Fatalf("expected first call to be ready")
	}
	if th.ready() {
		t.Fatalf("expected second call within interval to wait")
	}
	if !newThrottle(0).ready() {
		t.Fatalf("expected zero interval to always be ready")
	}
}
