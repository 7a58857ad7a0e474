package hslog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createLog(t *testing.T) (string, *os.File) {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "Player.log")
	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return logFile, f
}

func writeLines(t *testing.T, f *os.File, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			t.Fatal(err)
		}
	}
	f.Sync()
}

func receive(t *testing.T, events <-chan Event, errs <-chan error, n int) []Event {
	t.Helper()
	var got []Event
	timeout := time.After(3 * time.Second)
	for len(got) < n {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events closed after %d events, want %d", len(got), n)
			}
			got = append(got, ev)
		case err := <-errs:
			t.Fatalf("unexpected error: %v", err)
		case <-timeout:
			t.Fatalf("timeout after %d events, want %d", len(got), n)
		}
	}
	return got
}

func TestNewWatcher_MissingLogFile(t *testing.T) {
	_, err := NewWatcher(WithLogFile("/nonexistent/Player.log"))
	if !errors.Is(err, ErrLogFileNotFound) {
		t.Errorf("NewWatcher() error = %v, want %v", err, ErrLogFileNotFound)
	}
}

func TestNewWatcher_InvalidBatchSize(t *testing.T) {
	logFile, _ := createLog(t)
	if _, err := NewWatcher(WithLogFile(logFile), WithBatchSize(-1)); err == nil {
		t.Error("NewWatcher() expected error for negative batch size")
	}
}

func TestWatcher_ReceivesMatch(t *testing.T) {
	logFile, f := createLog(t)
	stamp := time.Date(2016, 3, 1, 20, 0, 0, 0, time.UTC)

	w, err := NewWatcher(WithLogFile(logFile), withClock(func() time.Time { return stamp }))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, errs, err := w.Watch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)
	writeLines(t, f, revealRexxar, teamPlayer1, drawCard, revealThrall, teamPlayer2, wonPlayer1, lostPlayer2)

	got := receive(t, events, errs, 3)
	wantTypes := []EventType{EventAction, EventMatchStart, EventMatchOver}
	for i, want := range wantTypes {
		if got[i].Type != want {
			t.Errorf("event %d type = %v, want %v", i, got[i].Type, want)
		}
		if !got[i].Timestamp.Equal(stamp) {
			t.Errorf("event %d timestamp = %v, want %v", i, got[i].Timestamp, stamp)
		}
		if got[i].RawLine != "" {
			t.Errorf("event %d raw line set without WithIncludeRawLine", i)
		}
	}
	if got[0].Action == nil || got[0].Action.CardID != "DS1_185" {
		t.Errorf("action = %+v, want card DS1_185", got[0].Action)
	}
	if len(got[1].Players) != 2 || got[1].Players[0].Class != "hunter" {
		t.Errorf("match start players = %+v", got[1].Players)
	}
	if len(got[2].Players) != 2 || got[2].Players[1].Status != "LOST" {
		t.Errorf("match over players = %+v", got[2].Players)
	}
}

func TestWatcher_FilterAndRawLine(t *testing.T) {
	logFile, f := createLog(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, errs, err := Watch(ctx,
		WithLogFile(logFile),
		WithIncludeRawLine(true),
		WithExcludeTypes(EventAction),
	)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)
	writeLines(t, f, drawCard, revealRexxar, teamPlayer1, drawCard, revealThrall, teamPlayer2)

	got := receive(t, events, errs, 1)
	if got[0].Type != EventMatchStart {
		t.Fatalf("type = %v, want %v", got[0].Type, EventMatchStart)
	}
	if got[0].RawLine != teamPlayer2 {
		t.Errorf("raw line = %q, want %q", got[0].RawLine, teamPlayer2)
	}
}

func TestWatcher_InstallsLogConfig(t *testing.T) {
	logFile, _ := createLog(t)
	configPath := filepath.Join(t.TempDir(), "Hearthstone", "log.config")

	w, err := NewWatcher(WithLogFile(logFile), WithLogConfig(configPath))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, _, err := w.Watch(ctx); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(configPath); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("log.config not written to %s", configPath)
}

func TestWatcher_WatchTwice(t *testing.T) {
	logFile, _ := createLog(t)
	w, err := NewWatcher(WithLogFile(logFile))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, _, err := w.Watch(ctx); err != nil {
		t.Fatal(err)
	}
	if _, _, err := w.Watch(ctx); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("second Watch() error = %v, want %v", err, ErrAlreadyWatching)
	}
}

func TestWatcher_WatchAfterClose(t *testing.T) {
	logFile, _ := createLog(t)
	w, err := NewWatcher(WithLogFile(logFile))
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	if _, _, err := w.Watch(context.Background()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch() after Close error = %v, want %v", err, ErrWatcherClosed)
	}
}

func TestWatcher_ContextCancel(t *testing.T) {
	logFile, _ := createLog(t)
	w, err := NewWatcher(WithLogFile(logFile))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, errs, err := w.Watch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected events channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for events channel to close")
	}
	for range errs {
	}
}

func TestWatcher_CloseMultipleTimes(t *testing.T) {
	logFile, _ := createLog(t)
	w, err := NewWatcher(WithLogFile(logFile))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := w.Watch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatchError(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(&WatchError{Op: WatchOpInstallConfig, Path: "/x/log.config", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("WatchError should unwrap to its cause")
	}
	want := "install_config /x/log.config: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
