// Package tailer follows the Hearthstone log file and delivers its new lines
// in ordered batches.
package tailer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nxadm/tail"
)

// tailerErrBuffer is the buffer size for the error channel.
const tailerErrBuffer = 16

// DefaultMaxBatch caps how many lines are coalesced into one batch.
const DefaultMaxBatch = 256

// Tailer wraps nxadm/tail and groups lines that are already available into
// batches. Lines keep file order within and across batches.
type Tailer struct {
	t        *tail.Tail
	ctx      context.Context
	cancel   context.CancelFunc
	maxBatch int
	batches  chan []string
	errors   chan error
	doneCh   chan struct{}

	mu      sync.Mutex
	stopped bool
}

// Config holds configuration for tailing.
type Config struct {
	// Poll uses polling instead of inotify/ReadDirectoryChangesW.
	Poll bool

	// MustExist requires the file to exist before starting.
	MustExist bool

	// MaxBatch is the largest batch delivered. Zero uses DefaultMaxBatch.
	MaxBatch int
}

// DefaultConfig returns the configuration used for the client log: follow
// new lines from the end of an existing file.
func DefaultConfig() Config {
	return Config{
		MustExist: true,
		MaxBatch:  DefaultMaxBatch,
	}
}

// New starts following path. The provided context controls the tailer's
// lifecycle.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		Poll:      cfg.Poll,
		MustExist: cfg.MustExist,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening tail: %w", err)
	}

	maxBatch := cfg.MaxBatch
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}

	ctx, cancel := context.WithCancel(ctx)

	tailer := &Tailer{
		t:        t,
		ctx:      ctx,
		cancel:   cancel,
		maxBatch: maxBatch,
		batches:  make(chan []string),
		errors:   make(chan error, tailerErrBuffer),
		doneCh:   make(chan struct{}),
	}

	go tailer.run()

	return tailer, nil
}

// Batches returns a channel that receives ordered, non-empty line batches.
func (t *Tailer) Batches() <-chan []string {
	return t.batches
}

// Errors returns a channel that receives errors from tailing.
// Errors are sent non-blocking; if the channel is not read, errors are dropped.
func (t *Tailer) Errors() <-chan error {
	return t.errors
}

// Stop stops tailing and closes all channels.
// Safe to call multiple times.
func (t *Tailer) Stop() error {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return nil
	}
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	<-t.doneCh
	return t.t.Stop()
}

func (t *Tailer) run() {
	defer close(t.doneCh)
	defer close(t.batches)
	defer close(t.errors)

	for {
		select {
		case <-t.ctx.Done():
			return
		case line, ok := <-t.t.Lines:
			if !ok {
				return
			}
			batch, open := t.collect(line)
			if len(batch) > 0 {
				select {
				case t.batches <- batch:
				case <-t.ctx.Done():
					return
				}
			}
			if !open {
				return
			}
		}
	}
}

// collect starts a batch with first and appends every line that can be read
// without blocking, up to maxBatch. It reports false once the underlying
// line channel is closed.
func (t *Tailer) collect(first *tail.Line) ([]string, bool) {
	var batch []string
	t.add(&batch, first)

	for len(batch) < t.maxBatch {
		select {
		case line, ok := <-t.t.Lines:
			if !ok {
				return batch, false
			}
			t.add(&batch, line)
		default:
			return batch, true
		}
	}
	return batch, true
}

func (t *Tailer) add(batch *[]string, line *tail.Line) {
	if line.Err != nil {
		select {
		case t.errors <- fmt.Errorf("tail: %w", line.Err):
		default:
			// Drop error only if buffer is full
		}
		return
	}
	// CRLF logs written on Windows
	*batch = append(*batch, strings.TrimSuffix(line.Text, "\r"))
}
