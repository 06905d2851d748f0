package wavefront

import (
	"errors"
	"fmt"
)

// TriangleCount returns how many triangles fan triangulation yields for the
// document. Faces with fewer than three corners count as zero.
func (d *Document) TriangleCount() int {
	total := 0
	for _, f := range d.Faces {
		if n := f.Corners(); n >= 3 {
			total += n - 2
		}
	}
	return total
}

// Triangulate fan-expands every face of doc around its first corner.
// Triangle j of a face uses corners 0, j+1 and j+2. Output follows face
// order, then fan order within each face.
func Triangulate(doc *Document) (*TriangleList, error) {
	if doc == nil {
		return nil, errors.New("wavefront: triangulate called with a nil document")
	}
	total := doc.TriangleCount()
	if total < 0 {
		return nil, fmt.Errorf("%w: %d triangles", ErrAllocation, total)
	}

	tl := &TriangleList{Triangles: make([]Triangle, 0, total)}
	for _, f := range doc.Faces {
		for j := 0; j+2 < f.Corners(); j++ {
			a, b, c := 0, j+1, j+2
			tl.Triangles = append(tl.Triangles, Triangle{
				VertexIndices:  [3]int{f.VertexIndices[a], f.VertexIndices[b], f.VertexIndices[c]},
				TextureIndices: [3]int{f.TextureIndices[a], f.TextureIndices[b], f.TextureIndices[c]},
				NormalIndices:  [3]int{f.NormalIndices[a], f.NormalIndices[b], f.NormalIndices[c]},
			})
		}
	}
	return tl, nil
}
