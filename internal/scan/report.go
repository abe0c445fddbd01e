package scan

import (
	"iter"

	"github.com/bianoble/junc/internal/resolver"
)

// Finding is a discovered junction.
type Finding struct {
	Path   string
	Target string
}

// Stats counts what one ReportAll run has seen so far.
type Stats struct {
	Visited   int
	Junctions int
	Errors    int
}

// Reporter turns a walk into a stream of junction findings.
type Reporter struct {
	walker *Walker

	// Diagnose receives entries that failed, unless the run is quiet.
	Diagnose func(Entry)
}

// NewReporter returns a Reporter over w.
func NewReporter(w *Walker, diagnose func(Entry)) *Reporter {
	return &Reporter{walker: w, Diagnose: diagnose}
}

// ReportAll yields every junction at or below root as soon as it is found.
// Failures go to Diagnose unless quiet is set, and never end the scan. The
// returned Stats is private to this call and fills in as the sequence is
// consumed.
func (r *Reporter) ReportAll(root string, quiet bool) (iter.Seq[Finding], *Stats) {
	stats := &Stats{}
	seq := func(yield func(Finding) bool) {
		for e := range r.walker.Walk(root) {
			if e.WalkErr == nil {
				stats.Visited++
			}
			if e.Failed() {
				stats.Errors++
				if !quiet && r.Diagnose != nil {
					r.Diagnose(e)
				}
				continue
			}
			if e.Outcome.Kind != resolver.Junction {
				continue
			}
			stats.Junctions++
			if !yield(Finding{Path: e.Path, Target: e.Outcome.Target}) {
				return
			}
		}
	}
	return seq, stats
}
