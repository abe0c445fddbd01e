package junction

import (
	"github.com/spf13/afero"

	"github.com/bianoble/junc/internal/engine"
	"github.com/bianoble/junc/internal/platform"
	"github.com/bianoble/junc/internal/resolver"
)

// Primitive is the reparse-point I/O a Client is built on.
type Primitive = platform.Primitive

// Kind is the outcome of resolving a path.
type Kind = resolver.Kind

const (
	NotJunction  = resolver.NotJunction
	Junction     = resolver.Junction
	Inaccessible = resolver.Inaccessible
)

// Result is the outcome of Resolve. KnownJunction is set for junctions whose
// target could not be read, as well as for readable ones.
type Result struct {
	Kind          Kind
	Target        string
	Err           error
	KnownJunction bool
}

// Finding is a junction discovered by Scan.
type Finding struct {
	Path   string
	Target string
}

// Error categories reported by primitives.
var (
	ErrNotReparsePoint = platform.ErrNotReparsePoint
	ErrNotExist        = platform.ErrNotExist
	ErrUnsupported     = platform.ErrUnsupported
)

// Error types returned by Create and Delete.
type (
	OperationError     = engine.OperationError
	PartialDeleteError = engine.PartialDeleteError
)

// MemoryPrimitive keeps junctions in memory over an afero.Fs. FailProbe and
// FailTarget inject per-path failures.
type MemoryPrimitive = platform.Memory

// NewMemoryPrimitive returns a MemoryPrimitive over fs, for tests and virtual
// filesystems.
func NewMemoryPrimitive(fs afero.Fs) *MemoryPrimitive {
	return platform.NewMemory(fs)
}

// Supported reports whether the host can manipulate junctions. When it is
// false, a Client built without a Primitive fails every operation with
// ErrUnsupported.
func Supported() bool {
	return platform.Supported()
}
