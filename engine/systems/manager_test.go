package systems

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/objview/engine/config"
	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
)

func TestSystemManagerCleansUpOnFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	cfg.Assets.Watch = true

	sm := &SystemManager{}
	if err := sm.initialize(cfg, 0); err == nil {
		t.Fatal("expected an error for a zero geometry count")
	}
	if sm.MeshLoaderSystem != nil {
		t.Error("mesh loader should not have been created")
	}

	noop := metadata.JobTask{OnStart: func(interface{}, chan<- interface{}) error { return nil }}
	if err := sm.JobSystem.Submit(noop); !errors.Is(err, ErrJobSystemClosed) {
		t.Errorf("job system should be shut down, got %v", err)
	}
	if err := sm.AssetManager.Shutdown(); !errors.Is(err, core.ErrWatcherClosed) {
		t.Errorf("asset watcher should be shut down, got %v", err)
	}
}

func TestSystemManagerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Jobs.Workers = 0
	if _, err := NewSystemManager(cfg); err == nil {
		t.Error("expected an error for zero workers")
	}
}
