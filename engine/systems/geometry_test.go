package systems

import (
	"testing"

	"github.com/spaghettifunk/objview/engine/math"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

func TestDefaultQuad(t *testing.T) {
	q := DefaultQuad()
	if q.Name != metadata.DefaultGeometryName {
		t.Errorf("unexpected name %q", q.Name)
	}
	if q.VertexCount() != 6 || q.TriangleCount != 2 {
		t.Fatalf("expected 6 elements in 2 triangles, got %d/%d", q.VertexCount(), q.TriangleCount)
	}
	want := []wavefront.Vertex{
		{X: 0.5, Y: 0.5, Z: 0.5, W: 1},
		{X: 0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: -0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: 0.5, Y: 0.5, Z: 0.5, W: 1},
		{X: -0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: -0.5, Y: 0.5, Z: 0.5, W: 1},
	}
	for i, w := range want {
		r := q.Buffer.Records[i]
		if r.Position != w {
			t.Errorf("record %d: got %+v, want %+v", i, r.Position, w)
		}
		if r.Texture != (wavefront.TextureCoord{}) || r.Normal != (wavefront.Normal{}) {
			t.Errorf("record %d: expected zero texture and normal", i)
		}
	}
	if !q.Center.Compare(math.NewVec3(0, 0, 0.5), math.K_FLOAT_EPSILON) {
		t.Errorf("unexpected center %+v", q.Center)
	}
}

func TestGeometrySystemReferenceCounting(t *testing.T) {
	if _, err := NewGeometrySystem(GeometrySystemConfig{}); err == nil {
		t.Error("expected an error for a zero geometry count")
	}

	gs, err := NewGeometrySystem(GeometrySystemConfig{MaxGeometryCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DefaultQuad()
	b := DefaultQuad()

	if _, err := gs.Acquire(a, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := gs.Acquire(a, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := gs.Acquire(b, true); err == nil {
		t.Error("expected an error when the geometry limit is reached")
	}
	if _, err := gs.Acquire(gs.DefaultGeometry, true); err != nil {
		t.Errorf("the default geometry never counts against the limit: %v", err)
	}

	gs.Release(a)
	if a.VertexCount() == 0 || gs.Count() != 1 {
		t.Error("geometry released while still referenced")
	}
	gs.Release(a)
	if a.VertexCount() != 0 || gs.Count() != 0 {
		t.Error("auto-release geometry should drop its data at zero references")
	}

	gs.Release(gs.DefaultGeometry)
	if gs.DefaultGeometry.VertexCount() != 6 {
		t.Error("the default geometry must never be released")
	}
}
