// Package main is a fixture plugin used by pluginmanager's tests. It is
// compiled on the fly with `go build -buildmode=plugin` and is not part of
// the module's own build.
package main

import "github.com/aksiksi/sgi-allocator/pluginmanager"

type echoPlugin struct {
	calls int
}

func (e *echoPlugin) Execute(s string) string {
	e.calls++
	return s
}

func PluginMetadata() pluginmanager.Metadata {
	return pluginmanager.Metadata{
		Name:        "echo",
		Version:     "1.0.0",
		Description: "echoes its input back",
		Author:      "fixture",
		License:     "MIT",
	}
}

func CreatePluginInstance() any {
	return &echoPlugin{}
}

func DestroyPluginInstance(v any) {
	_, ok := v.(*echoPlugin)
	if !ok {
		panic("DestroyPluginInstance: unexpected type")
	}
}

func main() {}
