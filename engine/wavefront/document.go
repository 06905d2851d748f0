package wavefront

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type recordKind int

const (
	kindNone recordKind = iota
	kindVertex
	kindTexture
	kindNormal
	kindFace
	kindCount
)

func (k recordKind) String() string {
	switch k {
	case kindVertex:
		return "vertex"
	case kindTexture:
		return "texture"
	case kindNormal:
		return "normal"
	case kindFace:
		return "face"
	default:
		return "none"
	}
}

// endsTag reports whether position i of line terminates a record tag.
func endsTag(line []byte, i int) bool {
	return i >= len(line) || isBlank(line[i]) || isStop(line[i])
}

// classify is shared by both passes so that they always agree.
// "v" and "f" need whitespace after the tag; "vt" and "vn" may also end the
// line, which then fails as a malformed record instead of being skipped.
func classify(line []byte) recordKind {
	if len(line) < 2 {
		return kindNone
	}
	switch {
	case line[0] == 'v' && isBlank(line[1]):
		return kindVertex
	case line[0] == 'v' && line[1] == 't' && endsTag(line, 2):
		return kindTexture
	case line[0] == 'v' && line[1] == 'n' && endsTag(line, 2):
		return kindNormal
	case line[0] == 'f' && isBlank(line[1]):
		return kindFace
	}
	return kindNone
}

// splitLines breaks data into lines without their terminator. "\n", "\r\n"
// and a lone "\r" all end a line.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lines = append(lines, data[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, data[start:i])
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, data[start:])
}

// ParseFile reads and parses the OBJ document at path.
func ParseFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return doc, nil
}

// ParseReader buffers r completely, so it works for sources that cannot seek.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return ParseBytes(data, opts...)
}

// ParseBytes parses an in-memory OBJ document in two passes over the same
// lines: the first counts records per kind, the second fills collections
// sized by those counts. The first malformed record aborts the parse.
func ParseBytes(data []byte, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	lines := splitLines(data)

	var counts [kindCount]int
	for i, line := range lines {
		k := classify(line)
		if k == kindNone {
			continue
		}
		if len(line) > o.maxLineLength {
			return nil, &ParseError{
				Line: i + 1,
				Kind: ErrLineTooLong,
				Err:  fmt.Errorf("%d bytes, limit is %d", len(line), o.maxLineLength),
			}
		}
		counts[k]++
	}

	doc := &Document{
		Vertices: make([]Vertex, counts[kindVertex]),
		Textures: make([]TextureCoord, counts[kindTexture]),
		Normals:  make([]Normal, counts[kindNormal]),
		Faces:    make([]Face, counts[kindFace]),
	}

	var cursor [kindCount]int
	for i, line := range lines {
		k := classify(line)
		if k == kindNone {
			continue
		}
		n := cursor[k]
		if n >= counts[k] {
			return nil, &ParseError{Line: i + 1, Kind: ErrCountMismatch, Err: fmt.Errorf("extra %s record", k)}
		}

		var err error
		switch k {
		case kindVertex:
			doc.Vertices[n], err = ParseVertexLine(line)
		case kindTexture:
			doc.Textures[n], err = ParseTextureLine(line)
		case kindNormal:
			doc.Normals[n], err = ParseNormalLine(line)
		case kindFace:
			doc.Faces[n], err = ParseFaceLine(line)
		}
		if err != nil {
			return nil, &ParseError{Line: i + 1, Kind: err}
		}
		cursor[k]++
	}

	for k := kindVertex; k < kindCount; k++ {
		if cursor[k] != counts[k] {
			return nil, fmt.Errorf("%w: %s counted %d, filled %d", ErrCountMismatch, k, counts[k], cursor[k])
		}
	}
	return doc, nil
}
