package metadata

import (
	"github.com/spaghettifunk/objview/engine/math"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief The interleaved vertex data, three records per triangle. */
	Buffer *wavefront.VertexBuffer

	/** @brief The number of source vertices (the "v" records) before assembly. */
	PointCount uint32
	/** @brief The number of triangles after fan triangulation. */
	TriangleCount uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3
}

// NewGeometryConfig wraps a vertex buffer and computes its extents.
func NewGeometryConfig(name string, vb *wavefront.VertexBuffer, pointCount int) *GeometryConfig {
	ext := vb.Extents()
	return &GeometryConfig{
		Name:          name,
		Buffer:        vb,
		PointCount:    uint32(pointCount),
		TriangleCount: uint32(vb.Count() / 3),
		Center:        ext.Center(),
		MinExtents:    ext.Min,
		MaxExtents:    ext.Max,
	}
}

// VertexCount returns the number of elements to draw.
func (gc *GeometryConfig) VertexCount() uint32 {
	if gc == nil {
		return 0
	}
	return uint32(gc.Buffer.Count())
}
