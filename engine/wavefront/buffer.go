package wavefront

import (
	"errors"

	"github.com/spaghettifunk/objview/engine/math"
)

// resolve turns a 1-based file index into a 0-based offset into a
// collection of length n.
func resolve(index, n int) (int, bool) {
	if !math.InRange(index, 1, n) {
		return 0, false
	}
	return index - 1, true
}

// BuildVertexBuffer dereferences every corner of every triangle against
// doc, in triangle-then-corner order. Each index is checked against its
// collection; nothing is read out of range.
func BuildVertexBuffer(doc *Document, tl *TriangleList, opts ...Option) (*VertexBuffer, error) {
	if doc == nil || tl == nil {
		return nil, errors.New("wavefront: vertex buffer needs a document and a triangle list")
	}
	o := newOptions(opts)

	records := make([]VertexRecord, 0, 3*len(tl.Triangles))
	for t, tri := range tl.Triangles {
		for c := 0; c < 3; c++ {
			var rec VertexRecord

			vi, ok := resolve(tri.VertexIndices[c], len(doc.Vertices))
			if !ok {
				return nil, &IndexError{Triangle: t, Corner: c, Channel: ChannelVertex, Index: tri.VertexIndices[c], Len: len(doc.Vertices)}
			}
			rec.Position = doc.Vertices[vi]

			if idx := tri.TextureIndices[c]; idx != NoIndex || o.missing == MissingStrict {
				ti, ok := resolve(idx, len(doc.Textures))
				if !ok {
					return nil, &IndexError{Triangle: t, Corner: c, Channel: ChannelTexture, Index: idx, Len: len(doc.Textures)}
				}
				rec.Texture = doc.Textures[ti]
			}

			if idx := tri.NormalIndices[c]; idx != NoIndex || o.missing == MissingStrict {
				ni, ok := resolve(idx, len(doc.Normals))
				if !ok {
					return nil, &IndexError{Triangle: t, Corner: c, Channel: ChannelNormal, Index: idx, Len: len(doc.Normals)}
				}
				rec.Normal = doc.Normals[ni]
			}

			records = append(records, rec)
		}
	}
	return &VertexBuffer{Records: records}, nil
}

// Load runs the whole pipeline on the file at path. The intermediate
// document and triangle list are released before returning.
func Load(path string, opts ...Option) (*VertexBuffer, error) {
	doc, err := ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	defer doc.Release()
	return Assemble(doc, opts...)
}

// Assemble triangulates doc and builds its vertex buffer.
func Assemble(doc *Document, opts ...Option) (*VertexBuffer, error) {
	tl, err := Triangulate(doc)
	if err != nil {
		return nil, err
	}
	defer tl.Release()
	return BuildVertexBuffer(doc, tl, opts...)
}

// Extents returns the bounding box of the buffer's positions.
func (vb *VertexBuffer) Extents() math.Extents3D {
	return math.ExtentsOf(vb.Count(), func(i int) math.Vec3 {
		return math.Vec4(vb.Records[i].Position).ToVec3()
	})
}
