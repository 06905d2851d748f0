package systems

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/objview/engine/assets"
	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
)

// MeshLoaderSystem turns model files into meshes, synchronously or on the
// job system. A mesh whose model cannot be loaded gets the default geometry.
type MeshLoaderSystem struct {
	assetManager   *assets.AssetManager
	geometrySystem *GeometrySystem
	jobSystem      *JobSystem
	metrics        *core.LoadMetrics

	mutex   sync.Mutex
	tracked map[*metadata.Mesh]struct{}
}

func NewMeshLoaderSystem(am *assets.AssetManager, gs *GeometrySystem, js *JobSystem) (*MeshLoaderSystem, error) {
	if am == nil || gs == nil {
		return nil, core.ErrNotInitialized
	}
	return &MeshLoaderSystem{
		assetManager:   am,
		geometrySystem: gs,
		jobSystem:      js,
		metrics:        core.NewLoadMetrics(),
		tracked:        make(map[*metadata.Mesh]struct{}),
	}, nil
}

func (mls *MeshLoaderSystem) Shutdown() error {
	mls.mutex.Lock()
	meshes := make([]*metadata.Mesh, 0, len(mls.tracked))
	for m := range mls.tracked {
		meshes = append(meshes, m)
	}
	mls.mutex.Unlock()

	for _, m := range meshes {
		mls.Unload(m)
	}
	return nil
}

// Metrics returns the load timings recorded so far.
func (mls *MeshLoaderSystem) Metrics() *core.LoadMetrics {
	return mls.metrics
}

/**
 * @brief Loads the named model into a new mesh. On failure the mesh holds the
 * default geometry and the error is returned alongside it.
 *
 * @param resourceName An indexed model name or a path to a model file.
 */
func (mls *MeshLoaderSystem) Load(resourceName string) (*metadata.Mesh, error) {
	mesh := &metadata.Mesh{Name: resourceName}
	err := mls.LoadFromResource(resourceName, mesh)
	return mesh, err
}

/**
 * @brief Loads the named model into the provided mesh on the calling goroutine.
 */
func (mls *MeshLoaderSystem) LoadFromResource(resourceName string, mesh *metadata.Mesh) error {
	if mesh == nil {
		return fmt.Errorf("func LoadFromResource requires a valid mesh")
	}
	params := &metadata.MeshLoadParams{
		ResourceName: resourceName,
		OutMesh:      mesh,
	}
	results := make(chan interface{}, 1)
	if err := mls.meshLoadJobStart(params, results); err != nil {
		mls.meshLoadJobFail(params)
		return err
	}
	return mls.meshLoadJobSuccess(params)
}

/**
 * @brief Loads the named model on the job system. onDone, if set, runs on the
 * worker once the mesh holds either its geometry or the default one.
 */
func (mls *MeshLoaderSystem) LoadAsync(resourceName string, onDone func(*metadata.Mesh, error)) error {
	if mls.jobSystem == nil {
		return core.ErrNotInitialized
	}
	params := &metadata.MeshLoadParams{
		ResourceName: resourceName,
		OutMesh:      &metadata.Mesh{Name: resourceName},
	}
	return mls.jobSystem.Submit(metadata.JobTask{
		InputParams: params,
		OnStart: func(p interface{}, results chan<- interface{}) error {
			lp, ok := p.(*metadata.MeshLoadParams)
			if !ok {
				return fmt.Errorf("failed to cast params to `*metadata.MeshLoadParams`")
			}
			return mls.meshLoadJobStart(lp, results)
		},
		OnComplete: func(results <-chan interface{}) {
			<-results
			params.Err = mls.meshLoadJobSuccess(params)
		},
		OnFailure: func(results <-chan interface{}) {
			<-results
			mls.meshLoadJobFail(params)
		},
		OnCompletionCallback: func() {
			if onDone != nil {
				onDone(params.OutMesh, params.Err)
			}
		},
	})
}

/**
 * @brief Replaces the mesh's geometry with a fresh load of the same model.
 */
func (mls *MeshLoaderSystem) Reload(mesh *metadata.Mesh) error {
	if mesh == nil {
		return fmt.Errorf("func Reload requires a valid mesh")
	}
	name := mesh.Path
	if name == "" {
		name = mesh.Name
	}
	mls.Unload(mesh)
	return mls.LoadFromResource(name, mesh)
}

// ReloadPending reloads every loaded mesh whose model changed on disk since
// the last call and returns the reloaded meshes.
func (mls *MeshLoaderSystem) ReloadPending() []*metadata.Mesh {
	changed := make(map[string]bool)
	for _, p := range mls.assetManager.PendingReloads() {
		changed[filepath.Clean(p)] = true
	}
	if len(changed) == 0 {
		return nil
	}

	mls.mutex.Lock()
	var stale []*metadata.Mesh
	for m := range mls.tracked {
		if m.Path != "" && changed[filepath.Clean(m.Path)] {
			stale = append(stale, m)
		}
	}
	mls.mutex.Unlock()

	for _, m := range stale {
		if err := mls.Reload(m); err != nil {
			core.LogWarn("reload of '%s' failed: %s", m.Path, err)
		}
	}
	return stale
}

/**
 * @brief Releases the mesh's geometry. The mesh may be loaded again.
 */
func (mls *MeshLoaderSystem) Unload(mesh *metadata.Mesh) {
	if mesh == nil {
		return
	}
	mls.mutex.Lock()
	delete(mls.tracked, mesh)
	mls.mutex.Unlock()

	if mesh.Geometry != nil && !mesh.IsDefault {
		mls.geometrySystem.Release(mesh.Geometry)
	}
	mesh.Geometry = nil
	mesh.IsDefault = false
	mesh.UniqueID = ""
}

/**
 * @brief Called when a mesh loading job begins.
 *
 * @param params Mesh loading parameters.
 * @param results Receives the parameters, with the loaded resource or the error set.
 * @return nil on job success; otherwise the load error.
 */
func (mls *MeshLoaderSystem) meshLoadJobStart(params *metadata.MeshLoadParams, results chan<- interface{}) error {
	clock := core.NewClock()
	clock.Start()
	res, err := mls.assetManager.LoadAsset(params.ResourceName, metadata.ResourceTypeModel, nil)
	clock.Stop()

	params.Elapsed = clock.Elapsed()
	params.MeshResource = res
	params.Err = err
	results <- params
	return err
}

/**
 * @brief Called when the job completes successfully.
 *
 * @param params The parameters passed from the job after completion.
 */
func (mls *MeshLoaderSystem) meshLoadJobSuccess(params *metadata.MeshLoadParams) error {
	res := params.MeshResource
	geometry, ok := res.Data.(*metadata.GeometryConfig)
	if !ok {
		err := fmt.Errorf("resource '%s' holds %T, not geometry", res.Name, res.Data)
		core.LogError(err.Error())
		params.Err = err
		mls.meshLoadJobFail(params)
		return err
	}
	if _, err := mls.geometrySystem.Acquire(geometry, true); err != nil {
		geometry.Buffer.Release()
		params.Err = err
		mls.meshLoadJobFail(params)
		return err
	}

	mesh := params.OutMesh
	mesh.Name = res.Name
	mesh.Path = res.FullPath
	mesh.Geometry = geometry
	mesh.IsDefault = false
	mesh.UniqueID = uuid.NewString()
	mesh.Generation++
	mls.track(mesh)
	mls.metrics.Record(params.Elapsed, nil)

	core.LogDebug("Successfully loaded mesh '%s'.", params.ResourceName)

	var ctx core.EventContext
	ctx.Data.C[0] = mesh.Name
	ctx.Data.C[1] = mesh.Path
	ctx.Data.U32[0] = geometry.VertexCount()
	core.EventFire(core.EVENT_CODE_MESH_LOADED, mls, ctx)
	return nil
}

/**
 * @brief Called when the job fails. The default geometry takes the mesh's place.
 *
 * @param params Parameters passed when a job fails.
 */
func (mls *MeshLoaderSystem) meshLoadJobFail(params *metadata.MeshLoadParams) {
	core.LogError("Failed to load mesh '%s': %s", params.ResourceName, params.Err)
	mls.metrics.Record(params.Elapsed, params.Err)

	mesh := params.OutMesh
	mesh.Geometry = mls.geometrySystem.DefaultGeometry
	mesh.IsDefault = true
	mesh.UniqueID = uuid.NewString()
	mesh.Generation++
	if mesh.Path == "" {
		mesh.Path = params.ResourceName
	}
	mls.track(mesh)

	var ctx core.EventContext
	ctx.Data.C[0] = mesh.Name
	ctx.Data.C[1] = mesh.Path
	if params.Err != nil {
		ctx.Data.C[2] = params.Err.Error()
	}
	core.EventFire(core.EVENT_CODE_MESH_LOAD_FAILED, mls, ctx)
}

func (mls *MeshLoaderSystem) track(mesh *metadata.Mesh) {
	mls.mutex.Lock()
	mls.tracked[mesh] = struct{}{}
	mls.mutex.Unlock()
}
