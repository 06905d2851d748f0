package systems

import (
	"fmt"

	"github.com/fogleman/simplify"
	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

// GenerateSimplifiedConfig decimates the geometry to about factor times its
// triangle count. Only positions survive; texture and normal channels of the
// result are zero and every W is 1.
func GenerateSimplifiedConfig(config *metadata.GeometryConfig, factor float64) (*metadata.GeometryConfig, error) {
	if config == nil || config.Buffer == nil {
		return nil, fmt.Errorf("func GenerateSimplifiedConfig requires a geometry")
	}
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("simplify factor must be in (0, 1], got %g", factor)
	}

	records := config.Buffer.Records
	triangles := make([]*simplify.Triangle, 0, len(records)/3)
	for i := 0; i+2 < len(records); i += 3 {
		triangles = append(triangles, simplify.NewTriangle(
			toVector(records[i].Position),
			toVector(records[i+1].Position),
			toVector(records[i+2].Position),
		))
	}
	out := simplify.NewMesh(triangles).Simplify(factor)

	vb := &wavefront.VertexBuffer{Records: make([]wavefront.VertexRecord, 0, 3*len(out.Triangles))}
	points := make(map[simplify.Vector]struct{})
	for _, t := range out.Triangles {
		for _, v := range [3]simplify.Vector{t.V1, t.V2, t.V3} {
			points[v] = struct{}{}
			vb.Records = append(vb.Records, wavefront.VertexRecord{
				Position: wavefront.Vertex{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z), W: 1},
			})
		}
	}
	core.LogDebug("simplified '%s' from %d to %d triangles", config.Name, len(triangles), len(out.Triangles))

	return metadata.NewGeometryConfig(config.Name, vb, len(points)), nil
}

func toVector(v wavefront.Vertex) simplify.Vector {
	return simplify.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
