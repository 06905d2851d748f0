package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

type GeometrySystemConfig struct {
	/** @brief The maximum number of geometries that can be held at once. */
	MaxGeometryCount uint32
}

type geometryReference struct {
	ReferenceCount uint64
	AutoRelease    bool
}

/**
 * @brief Tracks which geometries are in use and owns the default geometry
 * that stands in for meshes that failed to load.
 */
type GeometrySystem struct {
	Config          GeometrySystemConfig
	DefaultGeometry *metadata.GeometryConfig

	mutex                sync.Mutex
	registeredGeometries map[*metadata.GeometryConfig]*geometryReference
}

func NewGeometrySystem(config GeometrySystemConfig) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogWarn(err.Error())
		return nil, err
	}
	return &GeometrySystem{
		Config:               config,
		DefaultGeometry:      DefaultQuad(),
		registeredGeometries: make(map[*metadata.GeometryConfig]*geometryReference),
	}, nil
}

/**
 * @brief Releases every geometry still held.
 */
func (gs *GeometrySystem) Shutdown() error {
	gs.mutex.Lock()
	defer gs.mutex.Unlock()
	for g := range gs.registeredGeometries {
		g.Buffer.Release()
	}
	gs.registeredGeometries = make(map[*metadata.GeometryConfig]*geometryReference)
	return nil
}

/**
 * @brief Registers a geometry, or takes another reference to one already held.
 *
 * @param config The geometry to acquire.
 * @param autoRelease Whether the vertex data is released when its reference count reaches 0.
 * @return The acquired geometry.
 */
func (gs *GeometrySystem) Acquire(config *metadata.GeometryConfig, autoRelease bool) (*metadata.GeometryConfig, error) {
	if config == nil {
		return nil, fmt.Errorf("func Acquire cannot acquire a nil geometry")
	}
	if config == gs.DefaultGeometry {
		return config, nil
	}

	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	if ref, ok := gs.registeredGeometries[config]; ok {
		ref.ReferenceCount++
		return config, nil
	}
	if uint32(len(gs.registeredGeometries)) >= gs.Config.MaxGeometryCount {
		err := fmt.Errorf("no more room to allocate a new geometry. Adjust configuration to allow more")
		core.LogError(err.Error())
		return nil, err
	}
	gs.registeredGeometries[config] = &geometryReference{
		ReferenceCount: 1,
		AutoRelease:    autoRelease,
	}
	return config, nil
}

/**
 * @brief Releases a reference to the provided geometry.
 */
func (gs *GeometrySystem) Release(geometry *metadata.GeometryConfig) {
	if geometry == nil || geometry == gs.DefaultGeometry {
		return
	}

	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	ref, ok := gs.registeredGeometries[geometry]
	if !ok {
		core.LogWarn("geometry '%s' released but never acquired", geometry.Name)
		return
	}
	if ref.ReferenceCount > 0 {
		ref.ReferenceCount--
	}
	if ref.ReferenceCount == 0 {
		if ref.AutoRelease {
			geometry.Buffer.Release()
		}
		delete(gs.registeredGeometries, geometry)
	}
}

// Count returns the number of geometries currently held.
func (gs *GeometrySystem) Count() int {
	gs.mutex.Lock()
	defer gs.mutex.Unlock()
	return len(gs.registeredGeometries)
}

// DefaultQuad builds the unit quad shown in place of a model that could not
// be loaded: two triangles facing +z at z=0.5.
func DefaultQuad() *metadata.GeometryConfig {
	corners := [6][2]float32{
		{0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5},
		{0.5, 0.5}, {-0.5, -0.5}, {-0.5, 0.5},
	}
	vb := &wavefront.VertexBuffer{Records: make([]wavefront.VertexRecord, len(corners))}
	for i, c := range corners {
		vb.Records[i].Position = wavefront.Vertex{X: c[0], Y: c[1], Z: 0.5, W: 1}
	}
	return metadata.NewGeometryConfig(metadata.DefaultGeometryName, vb, 4)
}
