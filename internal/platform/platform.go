// Package platform provides the directory-junction primitive: the four
// reparse-point operations the rest of junc is built on. Platform error codes
// are mapped here, once, onto a small closed set of categories so callers can
// use errors.Is instead of comparing numeric codes.
package platform

import (
	"errors"
	"io/fs"
)

// Primitive is the platform's directory-junction primitive.
type Primitive interface {
	// IsJunction reports whether path is a reparse point of junction type.
	// It must not dereference the reparse point.
	IsJunction(path string) (bool, error)

	// Target returns the directory the junction at path points to.
	Target(path string) (string, error)

	// Create turns path into a junction pointing at target. The directory at
	// path is created if it does not exist. On failure the filesystem is left
	// as it was.
	Create(path, target string) error

	// Delete removes the junction reparse point at path, leaving the empty
	// directory behind.
	Delete(path string) error
}

// Error categories returned by a Primitive.
var (
	// ErrNotReparsePoint means the path carries no junction reparse point.
	ErrNotReparsePoint = errors.New("not a junction reparse point")

	// ErrNotExist means the path or one of its components does not exist.
	ErrNotExist = errors.New("no such file or directory")

	// ErrUnsupported means the host has no junction primitive.
	ErrUnsupported = errors.New("junctions are not supported on this platform")
)

// PathError records a failed primitive operation. Err carries the category
// (when one applies) joined with the underlying cause.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// categorized pairs a category sentinel with the platform cause so that both
// match errors.Is while the message stays the platform's own.
type categorized struct {
	kind  error
	cause error
}

func (c *categorized) Error() string {
	return c.cause.Error()
}

func (c *categorized) Unwrap() []error {
	return []error{c.kind, c.cause}
}

// Categorize tags cause with kind. A nil cause yields the bare category.
func Categorize(kind, cause error) error {
	if cause == nil {
		return kind
	}
	if errors.Is(cause, kind) {
		return cause
	}
	return &categorized{kind: kind, cause: cause}
}

// IsDefinitelyNotJunction reports whether err is one of the categories that
// settle a junction query negatively rather than leaving it unknown.
func IsDefinitelyNotJunction(err error) bool {
	return errors.Is(err, ErrNotReparsePoint) || errors.Is(err, ErrNotExist)
}

// classifyGeneric maps portable error values onto categories. Platform
// implementations apply their own code mapping first.
func classifyGeneric(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Categorize(ErrNotExist, err)
	}
	return err
}
