package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Create makes req.Source a junction to req.Destination. The destination must
// be an existing directory; the source must be absent or an empty directory.
// When a precondition fails nothing on disk is touched.
func (e *Engine) Create(req CreateRequest) error {
	target, err := e.checkCreate(req.Source, req.Destination)
	if err != nil {
		return &OperationError{Op: "create", Path: req.Source, Err: err}
	}

	if err := e.Primitive.Create(req.Source, target); err != nil {
		return &OperationError{Op: "create", Path: req.Source, Err: err}
	}
	e.Log.Debug().Str("path", req.Source).Str("target", target).Msg("junction created")
	return nil
}

// checkCreate validates both ends and returns the absolute target.
func (e *Engine) checkCreate(src, dest string) (string, error) {
	target, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("resolving target `%s`: %w", dest, err)
	}

	ok, err := afero.DirExists(e.Fs, target)
	if err != nil {
		return "", fmt.Errorf("target `%s` is not accessible: %w", dest, err)
	}
	if !ok {
		return "", fmt.Errorf("target `%s` is not an existing directory", dest)
	}

	if out := e.resolver.Resolve(src); out.KnownJunction() {
		return "", fmt.Errorf("`%s` is already a junction", src)
	}

	info, err := lstat(e.Fs, src)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return target, nil
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", errors.New("path already exists and is not a directory")
	}

	empty, err := afero.IsEmpty(e.Fs, src)
	if err != nil {
		return "", err
	}
	if !empty {
		return "", errors.New("directory already exists and is not empty")
	}
	return target, nil
}

// lstat inspects path itself when fs supports it.
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
