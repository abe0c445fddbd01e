package engine

import "fmt"

// UsageError is a malformed argument combination. It is raised before any
// filesystem access.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// OperationError is a failed create or delete.
type OperationError struct {
	Op   string // "create" or "delete"
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	switch e.Op {
	case "delete":
		return fmt.Sprintf("failed to remove junction `%s`: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to %s junction `%s`: %v", e.Op, e.Path, e.Err)
	}
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// PartialDeleteError means the reparse point at Path was removed but the
// directory left behind could not be.
type PartialDeleteError struct {
	Path string
	Err  error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("failed to delete empty directory `%s` after removing junction: %v", e.Path, e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

// NotJunctionError is the negative answer to a single-path list.
type NotJunctionError struct {
	Path string
}

func (e *NotJunctionError) Error() string {
	return fmt.Sprintf("path `%s` is not a junction", e.Path)
}

// AccessError means a single-path list could not decide. Junction is set when
// the path is known to be a junction but its target could not be read.
type AccessError struct {
	Path     string
	Err      error
	Junction bool
}

func (e *AccessError) Error() string {
	if e.Junction {
		return fmt.Sprintf("cannot read target of junction `%s`: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not access path `%s` to check if junction: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
