package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hslog/hslog-go/internal/logconfig"
	"github.com/hslog/hslog-go/internal/logfinder"
)

var (
	installConfigPath  string
	installConfigPrint bool
)

var installConfigCmd = &cobra.Command{
	Use:   "install-config",
	Short: "Write log.config enabling the Zone and Power logs",
	Long: `Overwrite the client's log.config with one that enables the Zone and
Power log sections hslog reads. The client reads log.config at startup,
so restart Hearthstone afterwards.

The path defaults to $HSLOG_LOG_CONFIG, then the platform location.

Examples:
  hslog install-config
  hslog install-config --path ./log.config
  hslog install-config --print`,
	Args: cobra.NoArgs,
	RunE: runInstallConfig,
}

func init() {
	installConfigCmd.Flags().StringVarP(&installConfigPath, "path", "p", "",
		"log.config path (auto-detected if not specified)")
	installConfigCmd.Flags().BoolVar(&installConfigPrint, "print", false,
		"Print the log.config contents instead of writing them")
}

func runInstallConfig(cmd *cobra.Command, args []string) error {
	if installConfigPrint {
		_, err := cmd.OutOrStdout().Write(logconfig.Content())
		return err
	}

	path, err := logfinder.FindLogConfig(installConfigPath)
	if err != nil {
		return err
	}
	if err := logconfig.Install(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\nrestart Hearthstone for the change to take effect\n", path)
	return nil
}
