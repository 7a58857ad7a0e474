package hslog

import (
	"log/slog"
	"time"
)

// WatchOption configures a Watcher using the functional options pattern.
type WatchOption func(*watchConfig)

// watchConfig holds internal configuration for the watcher.
type watchConfig struct {
	logFile          string
	logConfigPath    string
	installLogConfig bool
	includeRawLine   bool
	poll             bool
	batchSize        int
	logger           *slog.Logger
	filter           *typeFilter
	now              func() time.Time
}

func defaultWatchConfig() *watchConfig {
	return &watchConfig{
		now: time.Now,
	}
}

func applyWatchOptions(opts []WatchOption) *watchConfig {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}
	return cfg
}

// WithLogFile sets the Hearthstone log file to follow.
// If not set, uses HSLOG_LOG_FILE or the platform default location.
func WithLogFile(path string) WatchOption {
	return func(c *watchConfig) {
		c.logFile = path
	}
}

// WithLogConfig overwrites the client's log.config when watching starts so
// the Zone and Power sections are logged. An empty path uses HSLOG_LOG_CONFIG
// or the platform default location.
func WithLogConfig(path string) WatchOption {
	return func(c *watchConfig) {
		c.installLogConfig = true
		c.logConfigPath = path
	}
}

// WithIncludeRawLine includes the original log line in Event.RawLine.
// Default: false.
func WithIncludeRawLine(include bool) WatchOption {
	return func(c *watchConfig) {
		c.includeRawLine = include
	}
}

// WithPolling polls the log file instead of using file system notifications.
func WithPolling(poll bool) WatchOption {
	return func(c *watchConfig) {
		c.poll = poll
	}
}

// WithBatchSize caps how many lines are read per batch.
// Zero uses the tailer default.
func WithBatchSize(n int) WatchOption {
	return func(c *watchConfig) {
		c.batchSize = n
	}
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// WithIncludeTypes delivers only events of the specified types.
// If called multiple times, only the last call takes effect.
func WithIncludeTypes(types ...EventType) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &typeFilter{}
		}
		c.filter.setInclude(types)
	}
}

// WithExcludeTypes drops events of the specified types.
// Exclude takes precedence over include.
func WithExcludeTypes(types ...EventType) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &typeFilter{}
		}
		c.filter.setExclude(types)
	}
}

// WithFilter sets both include and exclude type filters.
func WithFilter(include, exclude []EventType) WatchOption {
	return func(c *watchConfig) {
		c.filter = newTypeFilter(include, exclude)
	}
}

// withClock overrides the event timestamp source.
func withClock(now func() time.Time) WatchOption {
	return func(c *watchConfig) {
		c.now = now
	}
}
