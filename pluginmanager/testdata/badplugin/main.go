// Package main is a fixture plugin missing DestroyPluginInstance, used to
// exercise pluginmanager's ErrSymbolMissing path. Compiled on the fly, not
// part of the module's own build.
package main

import "github.com/aksiksi/sgi-allocator/pluginmanager"

func PluginMetadata() pluginmanager.Metadata {
	return pluginmanager.Metadata{Name: "incomplete", Version: "0.0.1"}
}

func CreatePluginInstance() any {
	return struct{}{}
}

func main() {}
