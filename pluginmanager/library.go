package pluginmanager

import (
	"fmt"
	"path/filepath"
	"plugin"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const (
	symPluginMetadata        = "PluginMetadata"
	symCreatePluginInstance  = "CreatePluginInstance"
	symDestroyPluginInstance = "DestroyPluginInstance"
)

// Library owns one dynamically opened shared object, keyed by its
// canonicalized absolute path. It resolves the plugin's entry points and
// mediates instance lifetimes across the loader/plugin boundary.
//
// The Go runtime's plugin package has no unload primitive: once opened, a
// shared object stays mapped for the life of the process. Library.Close
// therefore only closes the logical handle — it prevents further use of
// this Library and enforces that no Instance is left outstanding — without
// physically unmapping the library.
type Library struct {
	path        string
	fingerprint uint64
	plugin      *plugin.Plugin
	config      Config
	outstanding atomic.Int64
	closed      atomic.Bool
}

// canonicalPath resolves path to an absolute, symlink-free form, the form
// every Library and Manager entry is keyed by.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pluginmanager: resolving absolute path for %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("pluginmanager: resolving symlinks for %q: %w", abs, err)
	}
	return resolved, nil
}

// openLibrary opens the shared object at path and returns a Library
// wrapping it. path must already be canonicalized.
func openLibrary(path string, config Config) (*Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryOpenFailed, path, err)
	}
	lib := &Library{
		path:        path,
		fingerprint: xxhash.Sum64String(path),
		plugin:      p,
		config:      config,
	}
	return lib, nil
}

// Path returns the library's canonical absolute path.
func (l *Library) Path() string {
	return l.path
}

// Metadata resolves and calls the library's PluginMetadata entry point,
// the Go-native rendering of the plugin ABI's plugin_metadata symbol.
func (l *Library) Metadata() (Metadata, error) {
	sym, err := l.plugin.Lookup(symPluginMetadata)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %s: %v", ErrSymbolMissing, l.path, symPluginMetadata, err)
	}
	fn, ok := sym.(func() Metadata)
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %s: %s has unexpected type %T", ErrSymbolMissing, l.path, symPluginMetadata, sym)
	}
	return fn(), nil
}

// CreateInstance resolves the library's CreatePluginInstance and
// DestroyPluginInstance entry points, invokes the former, and returns an
// Instance guard pairing the created value with the latter. The instance
// must be closed before the Library that created it is closed.
func (l *Library) CreateInstance() (*Instance, error) {
	if l.closed.Load() {
		return nil, fmt.Errorf("pluginmanager: %s: library is closed", l.path)
	}

	createSym, err := l.plugin.Lookup(symCreatePluginInstance)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %v", ErrSymbolMissing, l.path, symCreatePluginInstance, err)
	}
	create, ok := createSym.(func() any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s has unexpected type %T", ErrSymbolMissing, l.path, symCreatePluginInstance, createSym)
	}

	destroySym, err := l.plugin.Lookup(symDestroyPluginInstance)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %v", ErrSymbolMissing, l.path, symDestroyPluginInstance, err)
	}
	destroy, ok := destroySym.(func(any))
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s has unexpected type %T", ErrSymbolMissing, l.path, symDestroyPluginInstance, destroySym)
	}

	value := create()
	if value == nil {
		return nil, fmt.Errorf("%w: %s", ErrInstanceCreationFailed, l.path)
	}

	l.outstanding.Add(1)
	l.config.logger().Info("pluginmanager: instance created", "path", l.path, "fingerprint", l.fingerprint)
	return newInstance(value, destroy, func() { l.outstanding.Add(-1) }), nil
}

// Close closes the logical library handle. It fails with
// ErrInstancesOutstanding if any Instance created by this Library has not
// yet been closed. It does not physically unmap the underlying shared
// object — the Go runtime provides no way to do that.
func (l *Library) Close() error {
	if l.outstanding.Load() > 0 {
		return fmt.Errorf("%w: %s", ErrInstancesOutstanding, l.path)
	}
	l.closed.Store(true)
	return nil
}
