package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/objview/engine/assets/loaders"
	"github.com/spaghettifunk/objview/engine/containers"
	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

type AssetInfo struct {
	Name       string
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

type AssetManager struct {
	assets  map[string]AssetInfo
	names   map[string]string
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool

	reloadMutex sync.Mutex
	reloads     *containers.RingQueue[string]
}

func NewAssetManager(reloadQueueSize int) *AssetManager {
	return &AssetManager{
		assets:  make(map[string]AssetInfo),
		names:   make(map[string]string),
		loaders: make(map[metadata.ResourceType]Loader),
		reloads: containers.NewRingQueue[string](reloadQueueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Initialize indexes every model under assetsDir and, when watch is set,
// keeps the index current and queues reloads for changed models.
func (am *AssetManager) Initialize(assetsDir string, watch bool, opts ...wavefront.Option) error {
	// Register loaders
	am.RegisterLoader(metadata.ResourceTypeModel, loaders.NewModelLoader(opts...))

	if assetsDir == "" {
		return nil
	}
	if _, err := os.Stat(assetsDir); errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("Asset directory '%s' does not exist, nothing indexed.", assetsDir)
		return nil
	}
	if watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		am.fsnotify = fsWatch
		go am.start()
	}

	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}
	core.LogInfo("Asset manager indexed %d models under '%s' (watch=%t).", len(am.Assets()), assetsDir, watch)
	return nil
}

// AddRecursive indexes the named directory and all sub-directories, and
// watches them if a watcher is running.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return core.ErrWatcherClosed
	}
	return am.watchRecursive(name)
}

// Register loaders for each asset type
func (am *AssetManager) RegisterLoader(assetType metadata.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// resolve maps an indexed asset name or a path to a path on disk.
func (am *AssetManager) resolve(name string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	if p, ok := am.names[name]; ok {
		return am.assets[p], true
	}
	asset, ok := am.assets[filepath.Clean(name)]
	return asset, ok
}

// LoadAsset loads an asset using the appropriate loader. name is either the
// base name of an indexed model or a path to a file.
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	asset, exists := am.resolve(name)
	if !exists {
		asset = AssetInfo{
			Name: strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
			Path: name,
			Type: determineAssetType(name),
		}
	}
	if asset.Type != resourceType {
		return nil, fmt.Errorf("asset '%s' is a %s, not a %s", name, asset.Type, resourceType)
	}

	am.mutex.RLock()
	loader, loaderExists := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", resourceType)
	}

	res, err := loader.Load(asset.Path, resourceType, params)
	if err != nil {
		return nil, err
	}

	// Load or reload asset from disk if necessary
	if exists {
		am.mutex.Lock()
		asset.LastLoaded = time.Now()
		am.assets[asset.Path] = asset // Update the loaded time
		am.mutex.Unlock()
	}
	return res, nil
}

func (am *AssetManager) UnloadAsset(res *metadata.Resource, resourceType metadata.ResourceType) error {
	if res == nil {
		return nil
	}
	am.mutex.RLock()
	loader, ok := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("no loader registered for asset type: %s", resourceType)
	}
	return loader.Unload(res)
}

// Assets returns the indexed assets sorted by path.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(am.assets))
	for _, a := range am.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// PendingReloads drains the queue of models that changed on disk, oldest
// first, with repeated paths reported once.
func (am *AssetManager) PendingReloads() []string {
	am.reloadMutex.Lock()
	defer am.reloadMutex.Unlock()

	var out []string
	seen := make(map[string]bool)
	for !am.reloads.IsEmpty() {
		p, _ := am.reloads.Dequeue()
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func (am *AssetManager) queueReload(path string) {
	am.reloadMutex.Lock()
	defer am.reloadMutex.Unlock()

	if err := am.reloads.Enqueue(path); err != nil {
		core.LogWarn("dropping reload of '%s': %s", path, err)
		return
	}

	var ctx core.EventContext
	ctx.Data.C[1] = path
	core.EventFire(core.EVENT_CODE_MESH_RELOAD_REQUESTED, am, ctx)
}

// Shutdown stops the watcher goroutine, if any.
func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return core.ErrWatcherClosed
	}
	am.isClosed = true
	close(am.done)
	if am.fsnotify != nil {
		<-am.stopped
	}
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {

		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogError(err.Error())
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if am.handleFileEvent(e.Name) {
					am.queueReload(e.Name)
				}
			}
			// Can't stat a deleted directory, so just pretend that it's always a directory and
			// try to remove from the watch list...  we really have no clue if it's a directory or not...
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
				_ = am.fsnotify.Remove(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive indexes all files under the given directory and adds
// every directory to the watch list.
// this is probably a very racey process. What if a file is added to a folder before we get the watch added?
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.WalkDir(path, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if am.fsnotify == nil {
				return nil
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file. Returns true for files
// the manager knows how to load.
func (am *AssetManager) handleFileEvent(path string) bool {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	path = filepath.Clean(path)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	prev := am.assets[path]
	am.assets[path] = AssetInfo{
		Name:       name,
		Path:       path,
		Type:       assetType,
		LastLoaded: prev.LastLoaded,
	}
	if _, taken := am.names[name]; !taken {
		am.names[name] = path
	}
	return true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	path = filepath.Clean(path)
	if a, ok := am.assets[path]; ok {
		if am.names[a.Name] == path {
			delete(am.names, a.Name)
		}
		delete(am.assets, path)
	}
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return metadata.ResourceTypeModel
	default:
		return metadata.ResourceTypeNone
	}
}
