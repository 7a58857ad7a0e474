package hslog

import (
	"context"
	"fmt"
	"sync"

	"github.com/hslog/hslog-go/internal/logconfig"
	"github.com/hslog/hslog-go/internal/logfinder"
	"github.com/hslog/hslog-go/internal/tailer"
)

// errBuffer is the buffer size of the Watcher's error channel.
const errBuffer = 16

// Watcher follows the Hearthstone log file and delivers parsed events.
type Watcher struct {
	cfg     *watchConfig
	logFile string

	mu       sync.Mutex
	closed   bool
	cancel   context.CancelFunc
	doneCh   chan struct{}
	watching bool
}

// NewWatcher creates a watcher.
// Resolves the log file but does NOT start goroutines (cheap to call).
// Returns ErrLogFileNotFound or ErrUnsupportedPlatform when no log file
// can be located.
func NewWatcher(opts ...WatchOption) (*Watcher, error) {
	cfg := applyWatchOptions(opts)
	if cfg.batchSize < 0 {
		return nil, fmt.Errorf("invalid options: batch size must be non-negative, got %d", cfg.batchSize)
	}

	logFile, err := logfinder.FindLogFile(cfg.logFile)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		cfg:     cfg,
		logFile: logFile,
	}, nil
}

// LogFile returns the path being watched.
func (w *Watcher) LogFile() string {
	return w.logFile
}

// Watch starts following the log from its current end and returns the event
// and error channels. Both channels close when ctx is cancelled or the
// Watcher is closed. Watch can only be called once per Watcher.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, <-chan error, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, nil, ErrWatcherClosed
	}
	if w.watching {
		return nil, nil, ErrAlreadyWatching
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})

	eventCh := make(chan Event)
	errCh := make(chan error, errBuffer)

	go w.run(ctx, eventCh, errCh)

	return eventCh, errCh, nil
}

// Close stops the watcher and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, eventCh chan<- Event, errCh chan<- error) {
	defer close(w.doneCh)
	defer close(eventCh)
	defer close(errCh)

	logger := w.cfg.logger

	if w.cfg.installLogConfig {
		w.installLogConfig(errCh)
	}

	tcfg := tailer.DefaultConfig()
	tcfg.Poll = w.cfg.poll
	tcfg.MaxBatch = w.cfg.batchSize
	t, err := tailer.New(ctx, w.logFile, tcfg)
	if err != nil {
		sendError(errCh, &WatchError{Op: WatchOpTail, Path: w.logFile, Err: err})
		return
	}
	defer func() { _ = t.Stop() }()

	logger.Debug("watching log file", "path", w.logFile)

	sink := &eventSink{ctx: ctx, cfg: w.cfg, out: eventCh}
	p := NewParser(sink, logger)

	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-t.Batches():
			if !ok {
				return
			}
			for _, line := range batch {
				if ctx.Err() != nil {
					return
				}
				sink.line = line
				p.ProcessLine(line)
			}
		case err, ok := <-t.Errors():
			if !ok {
				return
			}
			sendError(errCh, &WatchError{Op: WatchOpTail, Path: w.logFile, Err: err})
		}
	}
}

func (w *Watcher) installLogConfig(errCh chan<- error) {
	path, err := logfinder.FindLogConfig(w.cfg.logConfigPath)
	if err != nil {
		sendError(errCh, &WatchError{Op: WatchOpInstallConfig, Path: w.cfg.logConfigPath, Err: err})
		return
	}
	if err := logconfig.Install(path); err != nil {
		sendError(errCh, &WatchError{Op: WatchOpInstallConfig, Path: path, Err: err})
		return
	}
	w.cfg.logger.Debug("installed log.config", "path", path)
}

// eventSink turns Parser callbacks into Events on the watcher channel.
type eventSink struct {
	ctx  context.Context
	cfg  *watchConfig
	out  chan<- Event
	line string
}

func (s *eventSink) OnAction(change ZoneChange) {
	s.send(Event{Type: EventAction, Action: &change})
}

func (s *eventSink) OnMatchStart(players []Player) {
	s.send(Event{Type: EventMatchStart, Players: players})
}

func (s *eventSink) OnMatchOver(players []Player) {
	s.send(Event{Type: EventMatchOver, Players: players})
}

func (s *eventSink) send(ev Event) {
	if !s.cfg.filter.Allows(ev.Type) {
		return
	}
	ev.Timestamp = s.cfg.now()
	if s.cfg.includeRawLine {
		ev.RawLine = s.line
	}
	select {
	case s.out <- ev:
	case <-s.ctx.Done():
	}
}

// sendError sends an error non-blocking.
func sendError(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
		// Drop error if channel is full
	}
}

// Watch is a convenience function that creates a watcher and starts watching.
// The watcher is released when ctx is cancelled.
func Watch(ctx context.Context, opts ...WatchOption) (<-chan Event, <-chan error, error) {
	w, err := NewWatcher(opts...)
	if err != nil {
		return nil, nil, err
	}
	return w.Watch(ctx)
}
