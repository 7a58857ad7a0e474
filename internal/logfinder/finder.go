// Package logfinder locates the Hearthstone log file and its log.config.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables overriding the detected locations.
const (
	EnvLogFile   = "HSLOG_LOG_FILE"
	EnvLogConfig = "HSLOG_LOG_CONFIG"
)

// Sentinel errors.
var (
	ErrLogFileNotFound     = errors.New("log file not found")
	ErrUnsupportedPlatform = errors.New("no default Hearthstone location for this platform")
)

// Platform describes the host the client runs on.
type Platform struct {
	GOOS   string
	GOARCH string
	Getenv func(string) string
}

// Host returns the Platform of the running process.
func Host() Platform {
	return Platform{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH, Getenv: os.Getenv}
}

// Paths are the locations the client uses on a platform.
type Paths struct {
	LogFile   string
	LogConfig string
}

// DefaultPaths returns where the client writes its log and reads its
// log.config on p. Returns ErrUnsupportedPlatform for other systems.
func (p Platform) DefaultPaths() (Paths, error) {
	switch p.GOOS {
	case "windows":
		programFiles := "Program Files"
		if p.GOARCH == "amd64" || p.GOARCH == "arm64" {
			programFiles += " (x86)"
		}
		return Paths{
			LogFile:   filepath.Join(`C:\`, programFiles, "Hearthstone", "Hearthstone_Data", "output_log.txt"),
			LogConfig: filepath.Join(p.Getenv("LOCALAPPDATA"), "Blizzard", "Hearthstone", "log.config"),
		}, nil
	case "darwin":
		home := p.Getenv("HOME")
		return Paths{
			LogFile:   filepath.Join(home, "Library", "Logs", "Unity", "Player.log"),
			LogConfig: filepath.Join(home, "Library", "Preferences", "Blizzard", "Hearthstone", "log.config"),
		}, nil
	default:
		return Paths{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p.GOOS)
	}
}

// FindLogFile returns the Hearthstone log file on the host.
//
// Priority:
//  1. explicit (if non-empty)
//  2. HSLOG_LOG_FILE environment variable
//  3. the platform default
//
// The file must exist and be a regular file.
func FindLogFile(explicit string) (string, error) {
	return Host().FindLogFile(explicit)
}

// FindLogFile is FindLogFile for platform p.
func (p Platform) FindLogFile(explicit string) (string, error) {
	if explicit != "" {
		return validateLogFile(explicit, "specified file")
	}

	if env := p.Getenv(EnvLogFile); env != "" {
		return validateLogFile(env, EnvLogFile+" environment variable")
	}

	paths, err := p.DefaultPaths()
	if err != nil {
		return "", err
	}
	return validateLogFile(paths.LogFile, "default location")
}

// FindLogConfig returns where log.config should be written on the host.
// The file does not need to exist.
func FindLogConfig(explicit string) (string, error) {
	return Host().FindLogConfig(explicit)
}

// FindLogConfig is FindLogConfig for platform p.
func (p Platform) FindLogConfig(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := p.Getenv(EnvLogConfig); env != "" {
		return env, nil
	}
	paths, err := p.DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.LogConfig, nil
}

// validateLogFile resolves symlinks and checks path is a regular file.
func validateLogFile(path, source string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s %s: %v", ErrLogFileNotFound, source, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s %s is not a regular file", ErrLogFileNotFound, source, path)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}
	return resolved, nil
}
