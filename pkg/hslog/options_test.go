package hslog

import (
	"log/slog"
	"testing"
	"time"
)

func TestApplyWatchOptions_Defaults(t *testing.T) {
	cfg := applyWatchOptions(nil)

	if cfg.logger == nil {
		t.Error("logger should default to a discard logger")
	}
	if cfg.now == nil {
		t.Error("clock should default to time.Now")
	}
	if cfg.filter != nil {
		t.Errorf("filter = %+v, want nil", cfg.filter)
	}
	if cfg.installLogConfig || cfg.includeRawLine || cfg.poll {
		t.Errorf("boolean options should default to false: %+v", cfg)
	}
}

func TestApplyWatchOptions_NilOptionSkipped(t *testing.T) {
	cfg := applyWatchOptions([]WatchOption{nil, WithBatchSize(8)})
	if cfg.batchSize != 8 {
		t.Errorf("batchSize = %d, want 8", cfg.batchSize)
	}
}

func TestApplyWatchOptions_All(t *testing.T) {
	logger := slog.Default()
	stamp := time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)

	cfg := applyWatchOptions([]WatchOption{
		WithLogFile("/tmp/Player.log"),
		WithLogConfig("/tmp/log.config"),
		WithIncludeRawLine(true),
		WithPolling(true),
		WithLogger(logger),
		withClock(func() time.Time { return stamp }),
	})

	if cfg.logFile != "/tmp/Player.log" {
		t.Errorf("logFile = %q", cfg.logFile)
	}
	if !cfg.installLogConfig || cfg.logConfigPath != "/tmp/log.config" {
		t.Errorf("log config = %v %q, want install to /tmp/log.config", cfg.installLogConfig, cfg.logConfigPath)
	}
	if !cfg.includeRawLine || !cfg.poll {
		t.Errorf("includeRawLine = %v, poll = %v, want both true", cfg.includeRawLine, cfg.poll)
	}
	if cfg.logger != logger {
		t.Error("logger not applied")
	}
	if !cfg.now().Equal(stamp) {
		t.Errorf("now() = %v, want %v", cfg.now(), stamp)
	}
}

func TestApplyWatchOptions_TypeFilters(t *testing.T) {
	tests := []struct {
		name    string
		opts    []WatchOption
		allowed map[EventType]bool
	}{
		{
			name: "include only",
			opts: []WatchOption{WithIncludeTypes(EventMatchOver)},
			allowed: map[EventType]bool{
				EventAction: false, EventMatchStart: false, EventMatchOver: true,
			},
		},
		{
			name: "exclude only",
			opts: []WatchOption{WithExcludeTypes(EventAction)},
			allowed: map[EventType]bool{
				EventAction: false, EventMatchStart: true, EventMatchOver: true,
			},
		},
		{
			name: "last include wins",
			opts: []WatchOption{WithIncludeTypes(EventAction), WithIncludeTypes(EventMatchStart)},
			allowed: map[EventType]bool{
				EventAction: false, EventMatchStart: true, EventMatchOver: false,
			},
		},
		{
			name: "exclude beats include",
			opts: []WatchOption{WithIncludeTypes(EventAction, EventMatchStart), WithExcludeTypes(EventAction)},
			allowed: map[EventType]bool{
				EventAction: false, EventMatchStart: true, EventMatchOver: false,
			},
		},
		{
			name: "WithFilter replaces earlier filters",
			opts: []WatchOption{WithExcludeTypes(EventMatchOver), WithFilter(nil, nil)},
			allowed: map[EventType]bool{
				EventAction: true, EventMatchStart: true, EventMatchOver: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := applyWatchOptions(tt.opts)
			for typ, want := range tt.allowed {
				if got := cfg.filter.Allows(typ); got != want {
					t.Errorf("Allows(%v) = %v, want %v", typ, got, want)
				}
			}
		})
	}
}
