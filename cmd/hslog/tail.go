package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hslog/hslog-go/internal/config"
	"github.com/hslog/hslog-go/internal/notify"
	"github.com/hslog/hslog-go/internal/telemetry"
	"github.com/hslog/hslog-go/pkg/hslog"
)

// shutdownTimeout bounds flushing telemetry on exit.
const shutdownTimeout = 5 * time.Second

// tailFlags holds the tail command's flag values. Flags only override the
// loaded config when set on the command line.
type tailFlags struct {
	logFile          string
	logConfig        string
	installLogConfig bool
	poll             bool
	format           string
	includeTypes     []string
	excludeTypes     []string
	raw              bool
	otlpEndpoint     string
}

var tailOpts tailFlags

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Monitor the Hearthstone log and output events",
	Long: `Monitor the Hearthstone log file in real-time and output parsed events.

Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq. Only lines written
after hslog starts are read.

Settings come from the config file, then HSLOG_* environment variables,
then flags. When HSLOG_DISCORD_TOKEN is set, match start and match over
are also posted to the configured Discord channel.

Examples:
  # Monitor with default settings (auto-detect log file)
  hslog tail

  # Enable the Zone and Power logs first (restart the client afterwards)
  hslog tail --install-log-config

  # Specify the log file
  hslog tail --log-file ~/Library/Logs/Unity/Player.log

  # Output only match results
  hslog tail --include-types match_over

  # Human-readable output
  hslog tail --format pretty

  # Export events and counters to an OpenTelemetry collector
  hslog tail --otlp-endpoint localhost:4317

  # Pipe to jq for filtering
  hslog tail | jq 'select(.type == "action")'`,
	RunE: runTail,
}

func init() {
	addTailFlags(tailCmd, &tailOpts)
}

func addTailFlags(cmd *cobra.Command, f *tailFlags) {
	cmd.Flags().StringVarP(&f.logFile, "log-file", "l", "",
		"Hearthstone log file (auto-detected if not specified)")
	cmd.Flags().StringVar(&f.logConfig, "log-config", "",
		"log.config path used with --install-log-config (auto-detected if not specified)")
	cmd.Flags().BoolVar(&f.installLogConfig, "install-log-config", false,
		"Write log.config enabling the Zone and Power logs before tailing")
	cmd.Flags().BoolVar(&f.poll, "poll", false,
		"Poll the log file instead of using filesystem notifications")
	cmd.Flags().StringVarP(&f.format, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	cmd.Flags().StringSliceVar(&f.includeTypes, "include-types", nil,
		"Event types to include (comma-separated: action,match_start,match_over)")
	cmd.Flags().StringSliceVar(&f.excludeTypes, "exclude-types", nil,
		"Event types to exclude (comma-separated)")
	cmd.Flags().BoolVar(&f.raw, "raw", false,
		"Include raw log lines in output")
	cmd.Flags().StringVar(&f.otlpEndpoint, "otlp-endpoint", "",
		"OTLP/gRPC endpoint for event logs and counters (host:port)")

	// Register completion for event type flags
	registerEventTypeCompletion(cmd, "include-types")
	registerEventTypeCompletion(cmd, "exclude-types")
}

// applyTailFlags copies every flag explicitly set on cmd into cfg.
func applyTailFlags(cfg *config.Config, cmd *cobra.Command, f *tailFlags) {
	changed := cmd.Flags().Changed
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-config") {
		cfg.LogConfig = f.logConfig
	}
	if changed("install-log-config") {
		cfg.InstallLogConfig = f.installLogConfig
	}
	if changed("poll") {
		cfg.Poll = f.poll
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("include-types") {
		cfg.IncludeTypes = f.includeTypes
	}
	if changed("exclude-types") {
		cfg.ExcludeTypes = f.excludeTypes
	}
	if changed("raw") {
		cfg.RawLine = f.raw
	}
	if changed("otlp-endpoint") {
		cfg.OTel.Endpoint = f.otlpEndpoint
	}
}

func runTail(cmd *cobra.Command, args []string) error {
	return executeTail(cmd, &tailOpts)
}

func executeTail(cmd *cobra.Command, f *tailFlags) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyTailFlags(&cfg, cmd, f)

	// Validate format
	if !ValidFormats[cfg.Format] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", cfg.Format)
	}

	// Normalize and validate event types
	includes, err := NormalizeEventTypes(cfg.IncludeTypes)
	if err != nil {
		return err
	}
	excludes, err := NormalizeEventTypes(cfg.ExcludeTypes)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd.ErrOrStderr())

	// Create watcher with functional options
	watcher, err := hslog.NewWatcher(watchOptions(cfg, includes, excludes, logger)...)
	if err != nil {
		return err
	}
	defer watcher.Close()
	logger.Info("watching log file", "path", watcher.LogFile())

	out := &eventOutput{format: cfg.Format, w: cmd.OutOrStdout(), logger: logger}

	if cfg.OTel.Enabled() {
		provider, err := telemetry.Setup(ctx, cfg.OTel)
		if err != nil {
			return fmt.Errorf("telemetry setup: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn("telemetry shutdown", "error", err)
			}
		}()
		out.recorder, err = provider.Recorder(cfg.OTel.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry recorder: %w", err)
		}
		logger.Info("exporting telemetry", "endpoint", cfg.OTel.Endpoint)
	}

	if cfg.Discord.Enabled() {
		out.discord, err = notify.NewDiscord(cfg.Discord.Token, cfg.Discord.ChannelID, cfg.DiscordEventAllowed)
		if err != nil {
			return err
		}
		logger.Info("posting to discord", "channel", cfg.Discord.ChannelID)
	}

	// Start watching
	events, errs, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	// Output loop
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // Channel closed
			}
			if err := out.handle(ctx, ev); err != nil {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				return nil // Channel closed
			}
			// Always output errors to stderr
			logger.Warn("watch error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// watchOptions translates cfg into watcher options.
func watchOptions(cfg config.Config, includes, excludes []hslog.EventType, logger *slog.Logger) []hslog.WatchOption {
	opts := []hslog.WatchOption{hslog.WithLogger(logger)}

	if cfg.LogFile != "" {
		opts = append(opts, hslog.WithLogFile(cfg.LogFile))
	}
	if cfg.InstallLogConfig {
		opts = append(opts, hslog.WithLogConfig(cfg.LogConfig))
	}
	if cfg.Poll {
		opts = append(opts, hslog.WithPolling(true))
	}
	if cfg.RawLine {
		opts = append(opts, hslog.WithIncludeRawLine(true))
	}

	// Use library-level filtering (more efficient than CLI-side filtering)
	if len(includes) > 0 {
		opts = append(opts, hslog.WithIncludeTypes(includes...))
	}
	if len(excludes) > 0 {
		opts = append(opts, hslog.WithExcludeTypes(excludes...))
	}
	return opts
}

// eventOutput fans each event out to stdout and the optional sinks.
type eventOutput struct {
	format   string
	w        io.Writer
	logger   *slog.Logger
	recorder *telemetry.Recorder
	discord  *notify.Discord
}

func (o *eventOutput) handle(ctx context.Context, ev hslog.Event) error {
	if err := OutputEvent(o.format, ev, o.w); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	if o.recorder != nil {
		o.recorder.Record(ctx, ev)
	}
	if o.discord != nil {
		if err := o.discord.Notify(ev); err != nil {
			o.logger.Warn("notification failed", "sink", o.discord.Name(), "type", ev.Type, "error", err)
		}
	}
	return nil
}
