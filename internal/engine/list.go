package engine

import (
	"github.com/bianoble/junc/internal/resolver"
)

// List reports the junction at req.Path, or every junction beneath it.
//
// A single-path list fails with NotJunctionError or AccessError when there is
// nothing to report. A recursive list only fails if output cannot be written;
// per-node failures are diagnosed (unless quiet) and skipped.
func (e *Engine) List(req ListRequest) error {
	if req.Recursive {
		return e.listRecursive(req)
	}

	out := e.resolver.Resolve(req.Path)
	switch out.Kind {
	case resolver.Junction:
		return e.report(req.Path, out.Target)
	case resolver.Inaccessible:
		return &AccessError{Path: req.Path, Err: out.Err, Junction: out.KnownJunction()}
	default:
		return &NotJunctionError{Path: req.Path}
	}
}

func (e *Engine) listRecursive(req ListRequest) error {
	findings, stats := e.Reporter().ReportAll(req.Path, req.Quiet)
	for f := range findings {
		if err := e.report(f.Path, f.Target); err != nil {
			return err
		}
	}
	e.Log.Debug().
		Str("root", req.Path).
		Int("visited", stats.Visited).
		Int("junctions", stats.Junctions).
		Int("errors", stats.Errors).
		Msg("scan complete")
	return nil
}
