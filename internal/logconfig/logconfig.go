// Package logconfig installs the client log.config that turns on the Zone
// and Power log sections the parser reads.
package logconfig

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed log.config
var content []byte

// Content returns the log.config written by Install.
func Content() []byte {
	out := make([]byte, len(content))
	copy(out, content)
	return out
}

// Install overwrites path with the bundled log.config, creating parent
// directories as needed. The client only reads it at startup.
func Install(path string) error {
	if path == "" {
		return fmt.Errorf("log.config path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log.config directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".log.config-*")
	if err != nil {
		return fmt.Errorf("writing log.config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing log.config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing log.config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing log.config: %w", err)
	}
	return nil
}
