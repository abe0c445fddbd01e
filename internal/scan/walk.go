// Package scan walks a directory tree without following reparse points and
// reports every junction it meets.
package scan

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bianoble/junc/internal/resolver"
)

// Entry is one visited node: either a resolved path or a walk failure.
type Entry struct {
	Path    string
	Outcome resolver.Outcome
	WalkErr error
}

// Failed reports whether the entry carries no usable answer.
func (e Entry) Failed() bool {
	return e.WalkErr != nil || e.Outcome.Kind == resolver.Inaccessible
}

// Err returns the walk error or the resolver error, whichever is set.
func (e Entry) Err() error {
	if e.WalkErr != nil {
		return e.WalkErr
	}
	return e.Outcome.Err
}

var errStop = errors.New("scan stopped")

// Walker enumerates every node at and below a root.
type Walker struct {
	fs  afero.Fs
	res *resolver.Resolver
	log zerolog.Logger
}

// NewWalker returns a Walker over fs that classifies nodes with res.
func NewWalker(fs afero.Fs, res *resolver.Resolver, log zerolog.Logger) *Walker {
	return &Walker{fs: fs, res: res, log: log}
}

// Walk yields an Entry for root and every node beneath it, depth first and in
// lexical order within a directory. Nodes are examined with Lstat, and a
// directory the resolver reports as a junction is never descended into, so
// each node is visited once. A directory that cannot be listed yields an
// entry with WalkErr and the walk carries on with its siblings.
func (w *Walker) Walk(root string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		_ = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				w.log.Debug().Str("path", path).Err(err).Msg("walk error")
				if !yield(Entry{Path: path, WalkErr: err}) {
					return errStop
				}
				return nil
			}

			out := w.res.Resolve(path)
			w.log.Debug().Str("path", path).Stringer("outcome", out.Kind).Msg("visit")
			if !yield(Entry{Path: path, Outcome: out}) {
				return errStop
			}
			if info.IsDir() && out.KnownJunction() {
				return filepath.SkipDir
			}
			return nil
		})
	}
}
