package pluginmanager

import (
	"errors"
	"testing"
)

func TestLibraryMetadataAndInstanceLifecycle(t *testing.T) {
	path := buildFixturePlugin(t, "goodplugin")

	lib, err := openLibrary(path, DefaultConfig())
	if err != nil {
		t.Fatalf("openLibrary: %v", err)
	}

	meta, err := lib.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Name != "echo" || meta.Version != "1.0.0" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	inst, err := lib.CreateInstance()
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	// The library must refuse to close while the instance is outstanding.
	if err := lib.Close(); !errors.Is(err, ErrInstancesOutstanding) {
		t.Fatalf("expected ErrInstancesOutstanding, got %v", err)
	}

	if err := inst.Close(); err != nil {
		t.Fatalf("Instance.Close: %v", err)
	}
	if err := inst.Close(); err != nil {
		t.Fatalf("second Instance.Close should be a no-op, got %v", err)
	}

	if err := lib.Close(); err != nil {
		t.Fatalf("Close after instance released: %v", err)
	}
}

func TestLibraryCreateInstanceOnClosedLibrary(t *testing.T) {
	path := buildFixturePlugin(t, "goodplugin")

	lib, err := openLibrary(path, DefaultConfig())
	if err != nil {
		t.Fatalf("openLibrary: %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := lib.CreateInstance(); err == nil {
		t.Fatal("expected CreateInstance to fail on a closed library")
	}
}

func TestLibraryMissingSymbol(t *testing.T) {
	path := buildFixturePlugin(t, "badplugin")

	lib, err := openLibrary(path, DefaultConfig())
	if err != nil {
		t.Fatalf("openLibrary: %v", err)
	}
	if _, err := lib.CreateInstance(); !errors.Is(err, ErrSymbolMissing) {
		t.Fatalf("expected ErrSymbolMissing, got %v", err)
	}
}
