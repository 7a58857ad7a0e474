package hslog

import (
	"errors"
	"fmt"

	"github.com/hslog/hslog-go/internal/logfinder"
)

// Sentinel errors returned by this package.
var (
	// ErrLogFileNotFound is returned when the Hearthstone log file
	// cannot be found or accessed.
	ErrLogFileNotFound = logfinder.ErrLogFileNotFound

	// ErrUnsupportedPlatform is returned when no default log location
	// is known for the current OS and none was configured.
	ErrUnsupportedPlatform = logfinder.ErrUnsupportedPlatform
)

// WatchOp names the operation a WatchError came from.
type WatchOp string

const (
	WatchOpTail          WatchOp = "tail"
	WatchOpInstallConfig WatchOp = "install_config"
)

// WatchError is delivered on the Watcher's error channel.
type WatchError struct {
	Op   WatchOp
	Path string
	Err  error
}

func (e *WatchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WatchError) Unwrap() error {
	return e.Err
}

// Errors returned by Watcher.Watch.
var (
	ErrWatcherClosed   = errors.New("watcher closed")
	ErrAlreadyWatching = errors.New("watcher already watching")
)
