// Package engine carries out list, create and delete requests against a
// junction primitive and a filesystem.
package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bianoble/junc/internal/logging"
	"github.com/bianoble/junc/internal/platform"
	"github.com/bianoble/junc/internal/resolver"
	"github.com/bianoble/junc/internal/scan"
)

// Engine executes requests. Findings go to Out; diagnostics go to Log.
type Engine struct {
	Primitive platform.Primitive
	Fs        afero.Fs
	Out       io.Writer
	Log       zerolog.Logger

	resolver *resolver.Resolver
}

// New returns an Engine over prim and fs.
func New(prim platform.Primitive, fs afero.Fs, out io.Writer, log zerolog.Logger) *Engine {
	return &Engine{
		Primitive: prim,
		Fs:        fs,
		Out:       out,
		Log:       log,
		resolver:  resolver.New(prim),
	}
}

// Run dispatches req to the matching operation.
func (e *Engine) Run(req Request) error {
	switch r := req.(type) {
	case ListRequest:
		return e.List(r)
	case CreateRequest:
		return e.Create(r)
	case DeleteRequest:
		return e.Delete(r)
	default:
		return fmt.Errorf("unknown request %T", req)
	}
}

// Resolve classifies a single path.
func (e *Engine) Resolve(path string) resolver.Outcome {
	return e.resolver.Resolve(path)
}

// Reporter returns a recursive reporter whose diagnostics go to e.Log.
func (e *Engine) Reporter() *scan.Reporter {
	w := scan.NewWalker(e.Fs, e.resolver, logging.Component(e.Log, "scan"))
	return scan.NewReporter(w, e.diagnose)
}

func (e *Engine) report(path, target string) error {
	_, err := fmt.Fprintf(e.Out, "JUNCTION: %s -> %s\n", path, target)
	return err
}

func (e *Engine) diagnose(entry scan.Entry) {
	ev := e.Log.Warn().Str("path", entry.Path).AnErr("error", entry.Err())
	if entry.WalkErr == nil && entry.Outcome.KnownJunction() {
		ev.Msg("cannot read junction target")
		return
	}
	ev.Msg("could not access path to check if junction")
}
