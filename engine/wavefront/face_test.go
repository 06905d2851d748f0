package wavefront

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseFaceLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Face
	}{
		{
			name: "vertex only",
			line: "f 1 2 3",
			want: Face{[]int{1, 2, 3}, []int{0, 0, 0}, []int{0, 0, 0}},
		},
		{
			name: "full triples",
			line: "f 1/4/7 2/5/8 3/6/9\n",
			want: Face{[]int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9}},
		},
		{
			name: "third corner omits texture",
			line: "f 1/1/1 2/2/2 3//3",
			want: Face{[]int{1, 2, 3}, []int{1, 2, NoIndex}, []int{1, 2, 3}},
		},
		{
			name: "texture only",
			line: "f 1/1 2/2 3/3 4/4",
			want: Face{[]int{1, 2, 3, 4}, []int{1, 2, 3, 4}, []int{0, 0, 0, 0}},
		},
		{
			name: "markers",
			line: "f v1/vt2/vn3 v4/vt5/vn6 v7//vn9",
			want: Face{[]int{1, 4, 7}, []int{2, 5, NoIndex}, []int{3, 6, 9}},
		},
		{
			name: "extra whitespace and CRLF",
			line: "f \t 1//2   3//4\t5//6  \r\n",
			want: Face{[]int{1, 3, 5}, []int{0, 0, 0}, []int{2, 4, 6}},
		},
		{
			name: "trailing slashes",
			line: "f 1// 2// 3//",
			want: Face{[]int{1, 2, 3}, []int{0, 0, 0}, []int{0, 0, 0}},
		},
		{
			name: "negative indices are kept for the assembler to reject",
			line: "f -1 -2 -3",
			want: Face{[]int{-1, -2, -3}, []int{0, 0, 0}, []int{0, 0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFaceLine([]byte(tt.line))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Corners() != len(got.TextureIndices) || got.Corners() != len(got.NormalIndices) {
				t.Errorf("index slices disagree: %d/%d/%d", len(got.VertexIndices), len(got.TextureIndices), len(got.NormalIndices))
			}
		})
	}
}

func TestParseFaceLineOptionalChannels(t *testing.T) {
	f, err := ParseFaceLine([]byte("f 1/1/1 2/2/2 3//3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.HasTexture(0) || !f.HasTexture(1) {
		t.Error("first two corners should carry a texture index")
	}
	if f.HasTexture(2) {
		t.Error("third corner should have no texture index")
	}
	if !f.HasNormal(2) {
		t.Error("third corner should carry a normal index")
	}
}

func TestParseFaceLineMalformed(t *testing.T) {
	for _, line := range []string{
		"f a b c",
		"f 1 2 x",
		"f /1 2 3",
		"f 1/vt 2 3",
		"f 1//vn 2 3",
		"f 1/2/3/4 2 3",
		"f 1x 2 3",
	} {
		if _, err := ParseFaceLine([]byte(line)); !errors.Is(err, ErrMalformedFace) {
			t.Errorf("%q: expected ErrMalformedFace, got %v", line, err)
		}
	}
}

func TestParseFaceLineDegenerate(t *testing.T) {
	f, err := ParseFaceLine([]byte("f 1 2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Corners() != 2 {
		t.Errorf("expected 2 corners, got %d", f.Corners())
	}
}
