package expr

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned by Eval when the argument list is
	// shorter than the tree's arity.
	ErrIndexOutOfRange = errors.New("variable index out of range")

	// ErrTypeMismatch is returned when a serialized tree declares an element
	// type different from the one it is decoded into. Trees built in Go
	// cannot mix element types; the compiler rejects them.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrUnknownNode is returned when decoding meets an unknown node kind
	// or operator tag.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidIndex is returned when decoding meets a negative variable index.
	ErrInvalidIndex = errors.New("invalid variable index")
)
