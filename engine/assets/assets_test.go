package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAssetManagerIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tri.obj"), triangleOBJ)
	writeFile(t, filepath.Join(dir, "nested", "Other.OBJ"), triangleOBJ)
	writeFile(t, filepath.Join(dir, "readme.txt"), "not a model")

	am := NewAssetManager(4)
	if err := am.Initialize(dir, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer am.Shutdown()

	assets := am.Assets()
	if len(assets) != 2 {
		t.Fatalf("expected 2 indexed models, got %d", len(assets))
	}
	if assets[0].Type != metadata.ResourceTypeModel {
		t.Errorf("unexpected type %s", assets[0].Type)
	}

	res, err := am.LoadAsset("tri", metadata.ResourceTypeModel, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DataSize != 3 {
		t.Errorf("expected 3 elements, got %d", res.DataSize)
	}
	if err := am.UnloadAsset(res, metadata.ResourceTypeModel); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	var loaded bool
	for _, a := range am.Assets() {
		if a.Name == "tri" {
			loaded = !a.LastLoaded.IsZero()
		}
	}
	if !loaded {
		t.Error("loading should stamp LastLoaded")
	}

	if _, err := am.LoadAsset("Other", metadata.ResourceTypeModel, nil); err != nil {
		t.Errorf("nested model should load by name: %v", err)
	}
}

func TestAssetManagerLoadByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.obj")
	writeFile(t, path, triangleOBJ)

	am := NewAssetManager(1)
	if err := am.Initialize("", false, wavefront.WithMaxLineLength(64)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := am.LoadAsset(path, metadata.ResourceTypeModel, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := am.LoadAsset("notes.txt", metadata.ResourceTypeModel, nil); err == nil {
		t.Error("expected an error for a non-model file")
	}
	if _, err := am.LoadAsset(filepath.Join(t.TempDir(), "gone.obj"), metadata.ResourceTypeModel, nil); !errors.Is(err, wavefront.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if err := am.Shutdown(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := am.Shutdown(); err == nil {
		t.Error("second shutdown should fail")
	}
}

func TestAssetManagerWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	writeFile(t, path, triangleOBJ)

	am := NewAssetManager(8)
	if err := am.Initialize(dir, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer am.Shutdown()

	writeFile(t, path, triangleOBJ+"f 3 2 1\n")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "x")

	deadline := time.Now().Add(5 * time.Second)
	var got []string
	for time.Now().Before(deadline) {
		if got = am.PendingReloads(); len(got) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if len(got) != 1 || got[0] != path {
		t.Fatalf("expected a reload for %s, got %v", path, got)
	}
}
