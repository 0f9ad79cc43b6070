package pluginmanager

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// buildFixturePlugin compiles the fixture plugin package at
// testdata/<name> into a shared object under t.TempDir and returns its
// path. It skips the test outright on platforms or environments where
// -buildmode=plugin isn't available, since that is an environment
// limitation rather than a bug in this package.
func buildFixturePlugin(t *testing.T, name string) string {
	t.Helper()

	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skipf("plugin build mode is not supported on %s", runtime.GOOS)
	}

	src, err := filepath.Abs(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("resolving fixture path: %v", err)
	}

	out := filepath.Join(t.TempDir(), name+".so")
	cmd := exec.Command("go", "build", "-buildmode=plugin", "-o", out, src)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("building fixture plugin %s: %v\n%s", name, err, output)
	}
	return out
}
