// Package junction is the Go API for junc: resolving, scanning, creating and
// deleting NTFS directory junctions from another program.
//
// # Basic Usage
//
//	client := junction.New(junction.Options{})
//
//	// Is this path a junction?
//	res := client.Resolve(`C:\Users\me\AppData\Local\Application Data`)
//	if res.Kind == junction.Junction {
//	    fmt.Println(res.Target)
//	}
//
//	// Every junction under a tree, streamed.
//	for f := range client.Scan(`C:\Users`, junction.ScanOptions{Quiet: true}) {
//	    fmt.Println(f.Path, "->", f.Target)
//	}
//
// On hosts other than Windows the default primitive reports ErrUnsupported.
package junction

import (
	"iter"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bianoble/junc/internal/engine"
	"github.com/bianoble/junc/internal/platform"
	"github.com/bianoble/junc/internal/scan"
)

// Resolver answers whether a path is a junction.
type Resolver interface {
	Resolve(path string) Result
}

// Scanner streams every junction beneath a root.
type Scanner interface {
	Scan(root string, opts ScanOptions) iter.Seq[Finding]
}

// Creator makes junctions.
type Creator interface {
	Create(path, target string) error
}

// Deleter removes junctions together with their empty directory.
type Deleter interface {
	Delete(path string) error
}

// Options configures a Client.
type Options struct {
	// Primitive performs the reparse-point I/O. Nil means the host's.
	Primitive Primitive

	// Fs is walked during scans and used to check and remove directories.
	// Nil means the OS filesystem.
	Fs afero.Fs

	// Logger receives diagnostics. The zero value discards them.
	Logger *zerolog.Logger
}

// ScanOptions configures Scan.
type ScanOptions struct {
	// Quiet drops access failures instead of passing them to OnError.
	Quiet bool

	// OnError is called for every node that could not be examined.
	OnError func(path string, err error)
}

// Client implements Resolver, Scanner, Creator and Deleter.
type Client struct {
	eng *engine.Engine
}

var (
	_ Resolver = (*Client)(nil)
	_ Scanner  = (*Client)(nil)
	_ Creator  = (*Client)(nil)
	_ Deleter  = (*Client)(nil)
)

// New returns a Client. Unset options take their defaults.
func New(opts Options) *Client {
	prim := opts.Primitive
	if prim == nil {
		prim = platform.Native()
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Client{eng: engine.New(prim, fs, nil, log)}
}

// Resolve classifies path without following it.
func (c *Client) Resolve(path string) Result {
	out := c.eng.Resolve(path)
	return Result{
		Kind:          out.Kind,
		Target:        out.Target,
		Err:           out.Err,
		KnownJunction: out.KnownJunction(),
	}
}

// Scan yields every junction at or below root. The walk never follows a
// reparse point and carries on past nodes it cannot read.
func (c *Client) Scan(root string, opts ScanOptions) iter.Seq[Finding] {
	rep := c.eng.Reporter()
	rep.Diagnose = func(e scan.Entry) {
		if opts.OnError != nil {
			opts.OnError(e.Path, e.Err())
		}
	}
	seq, _ := rep.ReportAll(root, opts.Quiet)
	return func(yield func(Finding) bool) {
		for f := range seq {
			if !yield(Finding{Path: f.Path, Target: f.Target}) {
				return
			}
		}
	}
}

// Create makes path a junction to target.
func (c *Client) Create(path, target string) error {
	return c.eng.Create(engine.CreateRequest{Source: path, Destination: target})
}

// Delete removes the junction at path and its directory.
func (c *Client) Delete(path string) error {
	return c.eng.Delete(engine.DeleteRequest{Path: path})
}
