// Package pluginmanager opens platform-native shared objects, resolves
// their symbolic entry points, and manages the lifetime of library-owned
// instances across the loader/plugin boundary.
//
// Every loaded plugin must export three package-level symbols — the
// Go-native rendering of a C-ABI contract:
//
//	func PluginMetadata() Metadata
//	func CreatePluginInstance() any
//	func DestroyPluginInstance(any)
//
// Plugins may expose a richer surface through the value CreatePluginInstance
// returns; this package treats that value as opaque.
package pluginmanager

// Metadata describes a loaded plugin, resolved from its PluginMetadata
// entry point.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Author      string
	License     string
}
