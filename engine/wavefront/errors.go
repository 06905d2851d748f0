package wavefront

import (
	"errors"
	"fmt"
)

var (
	ErrIO               = errors.New("wavefront: could not read document")
	ErrAllocation       = errors.New("wavefront: could not size collection")
	ErrMalformedNumber  = errors.New("wavefront: malformed number")
	ErrMalformedVertex  = errors.New("wavefront: malformed vertex")
	ErrMalformedTexture = errors.New("wavefront: malformed texture coordinate")
	ErrMalformedNormal  = errors.New("wavefront: malformed normal")
	ErrMalformedFace    = errors.New("wavefront: malformed face")
	ErrLineTooLong      = errors.New("wavefront: line too long")
	ErrIndexOutOfRange  = errors.New("wavefront: index out of range")
	ErrCountMismatch    = errors.New("wavefront: counting and filling passes disagree")
)

// ParseError reports the first malformed record of a document.
type ParseError struct {
	// Line is 1-based.
	Line int
	Kind error
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil && e.Err != e.Kind {
		return fmt.Sprintf("line %d: %v: %v", e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil || e.Err == e.Kind {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Channel names one of the three attribute streams a corner references.
type Channel int

const (
	ChannelVertex Channel = iota
	ChannelTexture
	ChannelNormal
)

func (c Channel) String() string {
	switch c {
	case ChannelVertex:
		return "vertex"
	case ChannelTexture:
		return "texture"
	case ChannelNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// IndexError is returned by the assembler when a triangle corner points
// outside the populated collection.
type IndexError struct {
	Triangle int
	Corner   int
	Channel  Channel
	Index    int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: triangle %d corner %d: %s index %d not in [1, %d]",
		ErrIndexOutOfRange, e.Triangle, e.Corner, e.Channel, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
