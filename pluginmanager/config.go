package pluginmanager

import (
	"io"
	"log/slog"
	"runtime"
)

// Config tunes a Manager's discovery behavior and diagnostics.
type Config struct {
	// Extension is the substring Discover matches plugin filenames
	// against. An empty value means "use DefaultExtension() for the
	// current platform".
	Extension string

	// Logger receives lifecycle diagnostics: successful loads at Info,
	// skipped discovery candidates at Debug, and failures at Error. A nil
	// Logger disables logging entirely.
	Logger *slog.Logger
}

// DefaultExtension returns the platform-conventional shared-library
// filename suffix: ".dll" on Windows, ".dylib" on Darwin, ".so" elsewhere.
func DefaultExtension() string {
	switch runtime.GOOS {
	case "windows":
		return ".dll"
	case "darwin":
		return ".dylib"
	default:
		return ".so"
	}
}

// Validate reports whether c is usable. The zero value is always valid;
// Extension is only meaningful once set, and an empty value already means
// "use the platform default".
func (c Config) Validate() error {
	return nil
}

// DefaultConfig returns a Config using the platform default extension and
// a nil (disabled) logger.
func DefaultConfig() Config {
	return Config{
		Extension: DefaultExtension(),
		Logger:    nil,
	}
}

func (c Config) extension() string {
	if c.Extension == "" {
		return DefaultExtension()
	}
	return c.Extension
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}
