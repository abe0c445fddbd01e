package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Memory is a Primitive that records junctions in a map over an afero.Fs. The
// directory shells live in the filesystem; the reparse data lives in the map.
// It backs tests and programs that embed junc over a virtual filesystem.
type Memory struct {
	fs        afero.Fs
	targets   map[string]string
	probeErr  map[string]error
	targetErr map[string]error
}

// NewMemory returns an empty Memory primitive over fs.
func NewMemory(fs afero.Fs) *Memory {
	return &Memory{
		fs:        fs,
		targets:   make(map[string]string),
		probeErr:  make(map[string]error),
		targetErr: make(map[string]error),
	}
}

// FailProbe makes IsJunction fail for path with err.
func (m *Memory) FailProbe(path string, err error) {
	m.probeErr[filepath.Clean(path)] = err
}

// FailTarget makes Target fail for path with err.
func (m *Memory) FailTarget(path string, err error) {
	m.targetErr[filepath.Clean(path)] = err
}

// Junctions returns a copy of the recorded junctions keyed by path.
func (m *Memory) Junctions() map[string]string {
	out := make(map[string]string, len(m.targets))
	for k, v := range m.targets {
		out[k] = v
	}
	return out
}

func (m *Memory) IsJunction(path string) (bool, error) {
	key := filepath.Clean(path)
	if err, ok := m.probeErr[key]; ok {
		return false, &PathError{Op: "query", Path: path, Err: err}
	}
	if _, ok := m.targets[key]; ok {
		return true, nil
	}
	if _, err := m.fs.Stat(key); err != nil {
		return false, &PathError{Op: "query", Path: path, Err: classifyGeneric(err)}
	}
	return false, nil
}

func (m *Memory) Target(path string) (string, error) {
	key := filepath.Clean(path)
	if err, ok := m.targetErr[key]; ok {
		return "", &PathError{Op: "readlink", Path: path, Err: err}
	}
	target, ok := m.targets[key]
	if !ok {
		return "", m.missing("readlink", path)
	}
	return target, nil
}

func (m *Memory) Create(path, target string) error {
	key := filepath.Clean(path)
	if _, ok := m.targets[key]; ok {
		return &PathError{Op: "create", Path: path, Err: errors.New("already a junction")}
	}

	info, err := m.fs.Stat(key)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := m.fs.Mkdir(key, 0o755); err != nil {
			return &PathError{Op: "create", Path: path, Err: classifyGeneric(err)}
		}
	case err != nil:
		return &PathError{Op: "create", Path: path, Err: err}
	case !info.IsDir():
		return &PathError{Op: "create", Path: path, Err: errors.New("not a directory")}
	default:
		empty, err := afero.IsEmpty(m.fs, key)
		if err != nil {
			return &PathError{Op: "create", Path: path, Err: err}
		}
		if !empty {
			return &PathError{Op: "create", Path: path, Err: errors.New("directory not empty")}
		}
	}

	m.targets[key] = target
	return nil
}

func (m *Memory) Delete(path string) error {
	key := filepath.Clean(path)
	if _, ok := m.targets[key]; !ok {
		return m.missing("delete", path)
	}
	delete(m.targets, key)
	return nil
}

// missing reports why path has no junction to operate on.
func (m *Memory) missing(op, path string) error {
	if _, err := m.fs.Stat(filepath.Clean(path)); err != nil {
		return &PathError{Op: op, Path: path, Err: classifyGeneric(err)}
	}
	return &PathError{Op: op, Path: path, Err: Categorize(ErrNotReparsePoint, nil)}
}
