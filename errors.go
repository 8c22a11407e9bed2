package bounce

import "errors"

// Errors reported by tree operations and the image loader. They are wrapped
// with context; test for them with errors.Is. An operation that returns one of
// these has made no change to any shape.
var (
	// ErrInvalidAttachment reports an attempt to add a shape that already has
	// a parent, is already a child, would create a cycle, or is added to a
	// shape that cannot hold children.
	ErrInvalidAttachment = errors.New("bounce: invalid attachment")

	// ErrOutOfBounds reports a shape that does not fit inside the box of the
	// nesting shape it is being added to.
	ErrOutOfBounds = errors.New("bounce: shape does not fit parent")

	// ErrNotFound reports a remove of a shape that is not a child.
	ErrNotFound = errors.New("bounce: shape not found")

	// ErrIndexOutOfRange reports a positional child lookup past either end.
	ErrIndexOutOfRange = errors.New("bounce: child index out of range")

	// ErrUnsupportedImage reports a file handed to the image loader whose
	// content is not a recognized image format.
	ErrUnsupportedImage = errors.New("bounce: unsupported image format")
)
