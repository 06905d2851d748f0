package wavefront

import (
	"fmt"
	"strings"
	"testing"
)

func TestTriangulateCube(t *testing.T) {
	doc, err := ParseBytes([]byte(cubeOBJ))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tl, err := Triangulate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Count() != 12 {
		t.Errorf("expected 12 triangles, got %d", tl.Count())
	}
	if doc.TriangleCount() != tl.Count() {
		t.Errorf("TriangleCount %d disagrees with list %d", doc.TriangleCount(), tl.Count())
	}
}

func TestTriangulateAllTriangles(t *testing.T) {
	doc, err := ParseBytes([]byte(texturedOBJ))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tl, err := Triangulate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Count() != len(doc.Faces) {
		t.Errorf("expected one triangle per face (%d), got %d", len(doc.Faces), tl.Count())
	}
}

func TestTriangulateFan(t *testing.T) {
	for n := 3; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d corners", n), func(t *testing.T) {
			var b strings.Builder
			b.WriteString("f")
			for i := 1; i <= n; i++ {
				fmt.Fprintf(&b, " %d/%d/%d", i, i+10, i+20)
			}
			face, err := ParseFaceLine([]byte(b.String()))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tl, err := Triangulate(&Document{Faces: []Face{face}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tl.Count() != n-2 {
				t.Fatalf("expected %d triangles, got %d", n-2, tl.Count())
			}
			for j, tri := range tl.Triangles {
				want := Triangle{
					VertexIndices:  [3]int{1, j + 2, j + 3},
					TextureIndices: [3]int{11, j + 12, j + 13},
					NormalIndices:  [3]int{21, j + 22, j + 23},
				}
				if tri != want {
					t.Errorf("triangle %d: got %+v, want %+v", j, tri, want)
				}
			}
		})
	}
}

func TestTriangulateDegenerateFaces(t *testing.T) {
	doc := &Document{Faces: []Face{
		{VertexIndices: []int{1, 2}, TextureIndices: []int{0, 0}, NormalIndices: []int{0, 0}},
		{},
		{VertexIndices: []int{1, 2, 3}, TextureIndices: []int{0, 0, 0}, NormalIndices: []int{0, 0, 0}},
	}}
	tl, err := Triangulate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Count() != 1 {
		t.Errorf("expected only the valid face to produce a triangle, got %d", tl.Count())
	}
}

func TestTriangulateOrder(t *testing.T) {
	doc, err := ParseBytes([]byte("f 1 2 3 4\nf 5 6 7\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tl, err := Triangulate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][3]int{{1, 2, 3}, {1, 3, 4}, {5, 6, 7}}
	if tl.Count() != len(want) {
		t.Fatalf("expected %d triangles, got %d", len(want), tl.Count())
	}
	for i, w := range want {
		if tl.Triangles[i].VertexIndices != w {
			t.Errorf("triangle %d: got %v, want %v", i, tl.Triangles[i].VertexIndices, w)
		}
	}
}

func TestTriangulateNilDocument(t *testing.T) {
	if _, err := Triangulate(nil); err == nil {
		t.Error("expected an error for a nil document")
	}
}
