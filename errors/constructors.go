package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GridError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *GridError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ItemsNotFound creates an error for a missing item source
func ItemsNotFound(path string) *GridError {
	return New(ErrCodeItemsNotFound, fmt.Sprintf("item source not found: %s", path)).
		WithDetail("path", path)
}

// ItemsInvalid wraps a decode failure for an item source
func ItemsInvalid(path string, err error) *GridError {
	return Wrap(err, ErrCodeItemsInvalid, fmt.Sprintf("could not decode items from %s", path)).
		WithDetail("path", path)
}

// UnsupportedFormat reports an item file extension with no decoder
func UnsupportedFormat(path, ext string) *GridError {
	return New(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported item format %q", ext)).
		WithDetail("path", path).
		WithDetail("extension", ext)
}

// WatchFailed wraps an error from the file watcher or tailer
func WatchFailed(path string, err error) *GridError {
	return Wrap(err, ErrCodeWatchFailed, fmt.Sprintf("failed to watch %s", path)).
		WithDetail("path", path)
}
