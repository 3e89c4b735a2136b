// Package source streams path lines from a file or standard input to the
// rest of the program in batches.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/pathtree/internal/logging/events"
	"golang.org/x/sync/errgroup"
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

const (
	defaultBatchSize     = 512
	defaultFlushInterval = 50 * time.Millisecond
)

// Event carries a batch of lines, a read error, or the end of input.
type Event struct {
	Lines []string
	Err   error
	Done  bool
}

// Options tunes a Stream.
type Options struct {
	Follow        bool
	BatchSize     int
	FlushInterval time.Duration
}

// Stream reads lines in the background and publishes them as Events.
type Stream struct {
	name   string
	reader *bufio.Reader
	closer io.Closer
	opts   Options

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	changes chan struct{}
	flush   *throttle
	total   int
	done    chan struct{}
	once    sync.Once

	// sendMu orders batches on the channel; mu guards pending.
	sendMu  sync.Mutex
	mu      sync.Mutex
	pending []string
}

// Open starts streaming from path, or from standard input when path is "-"
// or empty. Follow mode requires a regular file.
func Open(path string, opts Options) (*Stream, error) {
	if path == "" || path == StdinName {
		if opts.Follow {
			return nil, errors.New("follow mode needs a file, not standard input")
		}
		return NewStream(StdinName, os.Stdin, opts), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	s := newStream(path, f, f, opts)
	s.start()
	return s, nil
}

// NewStream starts streaming from r. name is used for display and logging.
func NewStream(name string, r io.Reader, opts Options) *Stream {
	var closer io.Closer
	if c, ok := r.(io.Closer); ok && r != os.Stdin {
		closer = c
	}
	s := newStream(name, r, closer, opts)
	s.start()
	return s
}

func newStream(name string, r io.Reader, closer io.Closer, opts Options) *Stream {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultFlushInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Stream{
		name:    name,
		reader:  bufio.NewReaderSize(r, 64*1024),
		closer:  closer,
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 16),
		changes: make(chan struct{}, 1),
		flush:   newThrottle(opts.FlushInterval),
		done:    make(chan struct{}),
	}
}

func (s *Stream) start() {
	events.Source.Open(s.name, s.opts.Follow)
	g, ctx := errgroup.WithContext(s.ctx)
	if s.opts.Follow {
		w, err := newFollower(s.name, s.changes)
		if err != nil {
			go s.finish(err)
			return
		}
		g.Go(func() error { return w.run(ctx) })
	}
	readDone := make(chan struct{})
	g.Go(func() error {
		defer close(readDone)
		return s.read(ctx)
	})
	g.Go(func() error {
		s.flushIdle(ctx, readDone)
		return nil
	})
	go func() {
		s.finish(g.Wait())
	}()
}

func (s *Stream) finish(err error) {
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		events.Source.Error(s.name, err)
		s.emit(Event{Err: err})
	}
	events.Source.EOF(s.name, s.total)
	s.emit(Event{Done: true})
	if s.closer != nil {
		s.closer.Close()
	}
	close(s.events)
	close(s.done)
}

// Name returns the display name of the input.
func (s *Stream) Name() string {
	return s.name
}

// Events returns the channel of batches. It is closed after the Done event.
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Stop cancels the stream. A read blocked on standard input only returns
// once the input delivers data or closes.
func (s *Stream) Stop() {
	s.once.Do(s.cancel)
}

// Wait blocks until the events channel is closed.
func (s *Stream) Wait() {
	<-s.done
}

func (s *Stream) read(ctx context.Context) error {
	var partial strings.Builder
	for {
		chunk, err := s.reader.ReadString('\n')
		if err == nil {
			partial.WriteString(chunk)
			if !s.add(ctx, trimEOL(partial.String())) {
				return ctx.Err()
			}
			partial.Reset()
			continue
		}
		if !errors.Is(err, io.EOF) {
			s.flushPending(ctx)
			return fmt.Errorf("read %s: %w", s.name, err)
		}
		partial.WriteString(chunk)
		if !s.opts.Follow {
			if partial.Len() > 0 && !s.add(ctx, trimEOL(partial.String())) {
				return ctx.Err()
			}
			s.flushPending(ctx)
			return nil
		}
		// A partial trailing line stays buffered until its newline arrives.
		if !s.flushPending(ctx) {
			return ctx.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.changes:
		}
	}
}

func (s *Stream) add(ctx context.Context, line string) bool {
	s.mu.Lock()
	s.pending = append(s.pending, line)
	full := len(s.pending) >= s.opts.BatchSize
	s.mu.Unlock()
	s.total++
	if full || s.flush.ready() {
		return s.flushPending(ctx)
	}
	return true
}

// flushIdle emits lines still pending after a flush interval, so a producer
// that pauses mid-stream does not hold them back.
func (s *Stream) flushIdle(ctx context.Context, readDone <-chan struct{}) {
	ticker := time.NewTicker(s.opts.FlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-readDone:
			return
		case <-ticker.C:
			if !s.flushPending(ctx) {
				return
			}
		}
	}
}

func (s *Stream) flushPending(ctx context.Context) bool {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()
	if len(batch) == 0 {
		return true
	}
	events.Source.Batch(s.name, len(batch))
	select {
	case <-ctx.Done():
		return false
	case s.events <- Event{Lines: batch}:
		return true
	}
}

func (s *Stream) emit(evt Event) {
	select {
	case <-s.ctx.Done():
		if !evt.Done {
			return
		}
		// Consumers still expect the terminal event after Stop.
		select {
		case s.events <- evt:
		default:
		}
	case s.events <- evt:
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ReadAll drains s and returns every line it produced.
func ReadAll(s *Stream) ([]string, error) {
	var lines []string
	var firstErr error
	for evt := range s.Events() {
		if evt.Err != nil && firstErr == nil {
			firstErr = evt.Err
		}
		lines = append(lines, evt.Lines...)
	}
	return lines, firstErr
}
