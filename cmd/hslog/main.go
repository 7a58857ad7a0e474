package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose    bool
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hslog",
	Short: "Hearthstone log parser and monitor",
	Long: `hslog follows the Hearthstone client log and turns it into events:
card zone changes, match start and match over.

Events are output as JSON Lines for easy processing with other tools.
The client only writes the Zone and Power sections hslog reads after
log.config enables them (see 'hslog install-config').

This is an unofficial tool and is not affiliated with Blizzard Entertainment.`,
	SilenceUsage: true, // Don't show usage on error
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to YAML config file (default: $HSLOG_CONFIG)")

	// Add subcommands
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(installConfigCmd)
	rootCmd.AddCommand(heroesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger returns the stderr logger used by all commands. Without
// --verbose only warnings and errors are shown.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hslog %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
