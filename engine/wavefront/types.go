package wavefront

// NoIndex marks a texture or normal reference that a face corner omitted.
// File indices are 1-based, so 0 never names a real record.
const NoIndex = 0

/** @brief A geometric vertex. W defaults to 1 when the line omits it. */
type Vertex struct {
	X, Y, Z, W float32
}

/** @brief A texture coordinate. W defaults to 0 when the line omits it. */
type TextureCoord struct {
	U, V, W float32
}

/** @brief A vertex normal. */
type Normal struct {
	X, Y, Z float32
}

/**
 * @brief A polygon. The three index slices always have the same length,
 * one entry per corner. Texture and normal entries may be NoIndex.
 */
type Face struct {
	VertexIndices  []int
	TextureIndices []int
	NormalIndices  []int
}

// Corners returns the number of corners of the face.
func (f Face) Corners() int {
	return len(f.VertexIndices)
}

// HasTexture reports whether corner i references a texture coordinate.
func (f Face) HasTexture(i int) bool {
	return f.TextureIndices[i] != NoIndex
}

// HasNormal reports whether corner i references a normal.
func (f Face) HasNormal(i int) bool {
	return f.NormalIndices[i] != NoIndex
}

func newFace(corners int) Face {
	return Face{
		VertexIndices:  make([]int, corners),
		TextureIndices: make([]int, corners),
		NormalIndices:  make([]int, corners),
	}
}

/**
 * @brief A parsed OBJ document. Collection lengths are fixed by the
 * counting pass and never change afterwards.
 */
type Document struct {
	/** @brief The base name of the source, empty for anonymous readers. */
	Name string
	/** @brief The path the document was read from, if any. */
	Path string

	Vertices []Vertex
	Textures []TextureCoord
	Normals  []Normal
	Faces    []Face
}

// Release drops the document's collections.
func (d *Document) Release() {
	if d == nil {
		return
	}
	d.Vertices = nil
	d.Textures = nil
	d.Normals = nil
	d.Faces = nil
}

/** @brief One fan triangle. Indices are copied from the originating face. */
type Triangle struct {
	VertexIndices  [3]int
	TextureIndices [3]int
	NormalIndices  [3]int
}

type TriangleList struct {
	Triangles []Triangle
}

// Count returns the number of triangles.
func (tl *TriangleList) Count() int {
	if tl == nil {
		return 0
	}
	return len(tl.Triangles)
}

func (tl *TriangleList) Release() {
	if tl != nil {
		tl.Triangles = nil
	}
}

/** @brief A fully resolved corner, ready for upload. */
type VertexRecord struct {
	Position Vertex
	Texture  TextureCoord
	Normal   Normal
}

/**
 * @brief A flat, interleaved array of records in triangle-then-corner order.
 * It holds no reference to the document it was built from.
 */
type VertexBuffer struct {
	Records []VertexRecord
}

// Count returns the number of elements to draw.
func (vb *VertexBuffer) Count() int {
	if vb == nil {
		return 0
	}
	return len(vb.Records)
}

func (vb *VertexBuffer) Release() {
	if vb != nil {
		vb.Records = nil
	}
}
