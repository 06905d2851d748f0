package wavefront

// DefaultMaxLineLength is the longest line, in bytes and without its
// terminator, that the parser accepts.
const DefaultMaxLineLength = 255

// MissingPolicy decides what the assembler does with a corner that omits
// its texture or normal reference.
type MissingPolicy int

const (
	// MissingDefault substitutes a zero TextureCoord or Normal.
	MissingDefault MissingPolicy = iota
	// MissingStrict rejects the corner with ErrIndexOutOfRange.
	MissingStrict
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingDefault:
		return "default"
	case MissingStrict:
		return "strict"
	default:
		return "unknown"
	}
}

type options struct {
	maxLineLength int
	missing       MissingPolicy
}

type Option func(*options)

// WithMaxLineLength overrides DefaultMaxLineLength. Values below 1 are ignored.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}

// WithMissingPolicy selects how absent texture and normal references resolve.
func WithMissingPolicy(p MissingPolicy) Option {
	return func(o *options) {
		o.missing = p
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		maxLineLength: DefaultMaxLineLength,
		missing:       MissingDefault,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
