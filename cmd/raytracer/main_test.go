package main

import (
	"os"
	"path/filepath"
	"testing"
)

const validScene = `
width: 4
height: 4
samples_per_pixel: 1
background: [0, 0, 0]
camera:
  type: basic_pinhole
  origin: [0, 0, 0]
  horizontal: [4, 0, 0]
  vertical: [0, 2, 0]
  lower_left: [-2, -1, -1]
integrator:
  type: normal
`

func writeScene(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	return path
}

func TestParseScene_ExtensionSniffing(t *testing.T) {
	path := writeScene(t, "scene.yaml", validScene)
	doc, err := parseScene(path, "")
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}
	if doc.Camera.Value == nil {
		t.Error("Camera.Value is nil")
	}
}

func TestParseScene_ExplicitFiletypeOverridesExtension(t *testing.T) {
	path := writeScene(t, "scene.txt", validScene)
	doc, err := parseScene(path, "yaml")
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}
	if doc.Camera.Value == nil {
		t.Error("Camera.Value is nil")
	}
}

func TestParseScene_UnrecognizedExtension(t *testing.T) {
	path := writeScene(t, "scene.txt", validScene)
	if _, err := parseScene(path, ""); err == nil {
		t.Fatal("parseScene() error = nil, want an error for an unrecognized extension")
	}
}

func TestParseScene_UnsupportedFiletype(t *testing.T) {
	path := writeScene(t, "scene.json", validScene)
	if _, err := parseScene(path, "json"); err == nil {
		t.Fatal("parseScene() error = nil, want an error for an unsupported filetype")
	}
}

func TestParseScene_MissingFile(t *testing.T) {
	if _, err := parseScene(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Fatal("parseScene() error = nil, want an error for a nonexistent scene file")
	}
}
