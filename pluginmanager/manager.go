package pluginmanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager indexes loaded libraries by their canonical absolute path. Its
// map is not internally synchronized: callers that load and unload
// concurrently must serialize their own access, exactly as an
// UnsyncResource requires of its caller.
type Manager struct {
	config    Config
	libraries map[string]*Library
}

// NewManager creates an empty manager.
func NewManager(config Config) *Manager {
	return &Manager{
		config:    config,
		libraries: make(map[string]*Library),
	}
}

// Load opens the shared object at path and registers it under its
// canonical absolute path. It fails with ErrAlreadyLoaded if that path is
// already registered.
func (m *Manager) Load(path string) (*Library, error) {
	canonical, err := canonicalPath(path)
	if err != nil {
		return nil, err
	}
	if _, exists := m.libraries[canonical]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyLoaded, canonical)
	}

	lib, err := openLibrary(canonical, m.config)
	if err != nil {
		m.config.logger().Error("pluginmanager: load failed", "path", canonical, "error", err)
		return nil, err
	}

	m.libraries[canonical] = lib
	m.config.logger().Info("pluginmanager: library loaded", "path", canonical, "fingerprint", lib.fingerprint)
	return lib, nil
}

// Unload closes and removes the library registered at path.
func (m *Manager) Unload(path string) error {
	canonical, err := canonicalPath(path)
	if err != nil {
		return err
	}
	lib, exists := m.libraries[canonical]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotLoaded, canonical)
	}
	if err := lib.Close(); err != nil {
		return err
	}
	delete(m.libraries, canonical)
	m.config.logger().Info("pluginmanager: library unloaded", "path", canonical, "fingerprint", lib.fingerprint)
	return nil
}

// UnloadAll closes and removes every registered library. It returns the
// first error encountered, if any, but still attempts to unload every
// remaining library (mirroring Close's best-effort semantics elsewhere in
// this module).
func (m *Manager) UnloadAll() error {
	var firstErr error
	for path, lib := range m.libraries {
		if err := lib.Close(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delete(m.libraries, path)
	}
	return firstErr
}

// Library returns the library registered at path, if any.
func (m *Manager) Library(path string) (*Library, bool) {
	canonical, err := canonicalPath(path)
	if err != nil {
		return nil, false
	}
	lib, ok := m.libraries[canonical]
	return lib, ok
}

// Len returns the number of currently registered libraries.
func (m *Manager) Len() int {
	return len(m.libraries)
}

// Discover iterates dir, attempting Load on every regular file whose name
// contains pattern. A pattern of "" uses the manager's configured
// extension (see Config.Extension / DefaultExtension). Per-file load
// failures are logged at Debug and skipped; a directory-level iteration
// failure is returned to the caller.
func (m *Manager) Discover(dir, pattern string) ([]*Library, error) {
	if pattern == "" {
		pattern = m.config.extension()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pluginmanager: discovering plugins in %s: %w", dir, err)
	}

	var loaded []*Library
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if !strings.Contains(entry.Name(), pattern) {
			continue
		}

		candidate := filepath.Join(dir, entry.Name())
		lib, err := m.Load(candidate)
		if err != nil {
			m.config.logger().Debug("pluginmanager: skipping discovery candidate", "path", candidate, "error", err)
			continue
		}
		loaded = append(loaded, lib)
	}
	return loaded, nil
}
