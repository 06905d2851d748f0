package systems

import (
	"github.com/spaghettifunk/objview/engine/assets"
	"github.com/spaghettifunk/objview/engine/config"
)

const maxGeometryCount uint32 = 4096

type SystemManager struct {
	AssetManager     *assets.AssetManager
	GeometrySystem   *GeometrySystem
	JobSystem        *JobSystem
	MeshLoaderSystem *MeshLoaderSystem
}

func NewSystemManager(cfg *config.Config) (*SystemManager, error) {
	sm := &SystemManager{}
	if err := sm.initialize(cfg, maxGeometryCount); err != nil {
		return nil, err
	}
	return sm, nil
}

// initialize starts every system in dependency order. On failure the systems
// already started are shut down again.
func (sm *SystemManager) initialize(cfg *config.Config, maxGeometries uint32) (err error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = sm.Shutdown()
		}
	}()

	if sm.JobSystem, err = NewJobSystem(cfg.Jobs.Workers, cfg.Jobs.QueueSize); err != nil {
		return err
	}
	sm.AssetManager = assets.NewAssetManager(cfg.Assets.ReloadQueueSize)
	if err = sm.AssetManager.Initialize(cfg.Assets.Dir, cfg.Assets.Watch, cfg.LoaderOptions()...); err != nil {
		return err
	}
	if sm.GeometrySystem, err = NewGeometrySystem(GeometrySystemConfig{
		MaxGeometryCount: maxGeometries,
	}); err != nil {
		return err
	}
	if sm.MeshLoaderSystem, err = NewMeshLoaderSystem(sm.AssetManager, sm.GeometrySystem, sm.JobSystem); err != nil {
		return err
	}
	return nil
}

// Shutdown stops every system that was started.
func (sm *SystemManager) Shutdown() error {
	// Drain pending loads before releasing what they produced.
	if sm.JobSystem != nil {
		if err := sm.JobSystem.Shutdown(); err != nil {
			return err
		}
	}
	if sm.MeshLoaderSystem != nil {
		if err := sm.MeshLoaderSystem.Shutdown(); err != nil {
			return err
		}
	}
	if sm.GeometrySystem != nil {
		if err := sm.GeometrySystem.Shutdown(); err != nil {
			return err
		}
	}
	if sm.AssetManager != nil {
		if err := sm.AssetManager.Shutdown(); err != nil {
			return err
		}
	}
	return nil
}
