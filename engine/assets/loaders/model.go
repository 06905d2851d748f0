package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

// ModelLoader turns Wavefront OBJ files into renderer-ready geometry.
type ModelLoader struct {
	Options []wavefront.Option
}

func NewModelLoader(opts ...wavefront.Option) *ModelLoader {
	return &ModelLoader{Options: opts}
}

// Load parses, triangulates and assembles the model at path. The returned
// resource's Data is a *metadata.GeometryConfig and DataSize its element
// count. The intermediate document is released before returning.
func (ml *ModelLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	if assetType != metadata.ResourceTypeModel {
		return nil, fmt.Errorf("model loader cannot load resource type %s", assetType)
	}

	clock := core.NewClock()
	clock.Start()

	doc, err := wavefront.ParseFile(path, ml.Options...)
	if err != nil {
		return nil, err
	}
	defer doc.Release()
	pointCount := len(doc.Vertices)

	tris, err := wavefront.Triangulate(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer tris.Release()

	vb, err := wavefront.BuildVertexBuffer(doc, tris, ml.Options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if n, ok := params.(string); ok && n != "" {
		name = n
	}
	clock.Stop()
	core.LogDebug("parsed '%s': %d vertices, %d texcoords, %d normals, %d faces, %d triangles in %s",
		path, pointCount, len(doc.Textures), len(doc.Normals), len(doc.Faces), tris.Count(), clock.Elapsed())

	return &metadata.Resource{
		Name:     name,
		FullPath: path,
		DataSize: uint64(vb.Count()),
		Data:     metadata.NewGeometryConfig(name, vb, pointCount),
	}, nil
}

func (ml *ModelLoader) Unload(res *metadata.Resource) error {
	if res == nil {
		return nil
	}
	if gc, ok := res.Data.(*metadata.GeometryConfig); ok && gc != nil {
		gc.Buffer.Release()
	}
	res.Data = nil
	res.DataSize = 0
	return nil
}
