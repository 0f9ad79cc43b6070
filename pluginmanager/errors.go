package pluginmanager

import "errors"

var (
	// ErrAlreadyLoaded is returned by Load when a path is already registered.
	ErrAlreadyLoaded = errors.New("pluginmanager: library already loaded")

	// ErrNotLoaded is returned by Unload for a path that resolves but is not
	// registered. A path that cannot be resolved at all (for example, one
	// that does not exist) yields the path-resolution error instead.
	ErrNotLoaded = errors.New("pluginmanager: library not loaded")

	// ErrLibraryOpenFailed is returned when the Go runtime's dynamic loader
	// refuses to open a shared object.
	ErrLibraryOpenFailed = errors.New("pluginmanager: failed to open library")

	// ErrSymbolMissing is returned when a required exported symbol is
	// absent, or present with an unexpected type.
	ErrSymbolMissing = errors.New("pluginmanager: required symbol missing")

	// ErrInstanceCreationFailed is returned when CreatePluginInstance
	// returns nil.
	ErrInstanceCreationFailed = errors.New("pluginmanager: instance creation failed")

	// ErrInstancesOutstanding is returned by Library.Close while an
	// Instance it created has not yet been closed.
	ErrInstancesOutstanding = errors.New("pluginmanager: instances still outstanding")
)
