// Package resolver answers whether a single path is a directory junction and,
// if so, where it points.
package resolver

import (
	"github.com/bianoble/junc/internal/platform"
)

// Kind is the three-way result of resolving a path.
type Kind int

const (
	NotJunction Kind = iota
	Junction
	Inaccessible
)

func (k Kind) String() string {
	switch k {
	case NotJunction:
		return "not-junction"
	case Junction:
		return "junction"
	case Inaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// Stage identifies which query an Inaccessible outcome failed in.
type Stage int

const (
	// StageProbe is the junction-ness test itself.
	StageProbe Stage = iota
	// StageTarget is the target lookup of a path already known to be a junction.
	StageTarget
)

// Outcome is the result of resolving one path.
type Outcome struct {
	Kind   Kind
	Target string // set when Kind == Junction
	Err    error  // set when Kind == Inaccessible
	Stage  Stage  // meaningful when Kind == Inaccessible
}

// KnownJunction reports whether the path is a junction, even if its target
// could not be read.
func (o Outcome) KnownJunction() bool {
	return o.Kind == Junction || (o.Kind == Inaccessible && o.Stage == StageTarget)
}

// Resolver classifies paths using a platform primitive.
type Resolver struct {
	prim platform.Primitive
}

// New returns a Resolver backed by prim.
func New(prim platform.Primitive) *Resolver {
	return &Resolver{prim: prim}
}

// Resolve classifies path. It queries reparse-point metadata only and never
// opens the junction's target. Nonexistent paths are NotJunction.
func (r *Resolver) Resolve(path string) Outcome {
	ok, err := r.prim.IsJunction(path)
	switch {
	case err != nil && platform.IsDefinitelyNotJunction(err):
		return Outcome{Kind: NotJunction}
	case err != nil:
		return Outcome{Kind: Inaccessible, Err: err, Stage: StageProbe}
	case !ok:
		return Outcome{Kind: NotJunction}
	}

	target, err := r.prim.Target(path)
	if err != nil {
		return Outcome{Kind: Inaccessible, Err: err, Stage: StageTarget}
	}
	return Outcome{Kind: Junction, Target: target}
}
