package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/junc/internal/platform"
)

type testEnv struct {
	fs   afero.Fs
	mem  *platform.Memory
	out  *bytes.Buffer
	logs *bytes.Buffer
	eng  *Engine
}

func newTestEnv(t *testing.T, dirs ...string) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
	return newTestEnvFs(t, fs)
}

func newTestEnvFs(t *testing.T, fs afero.Fs) *testEnv {
	t.Helper()
	mem := platform.NewMemory(fs)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	log := zerolog.New(zerolog.ConsoleWriter{Out: logs, NoColor: true}).Level(zerolog.DebugLevel)
	return &testEnv{fs: fs, mem: mem, out: out, logs: logs, eng: New(mem, fs, out, log)}
}

// withFs swaps the engine's filesystem, keeping the primitive.
func (e *testEnv) withFs(fs afero.Fs) *testEnv {
	e.eng = New(e.mem, fs, e.out, e.eng.Log)
	return e
}

// failingFs refuses listed operations on listed paths.
type failingFs struct {
	afero.Fs
	openDenied   map[string]bool
	removeDenied map[string]bool
}

func (f failingFs) Open(name string) (afero.File, error) {
	if f.openDenied[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f failingFs) Remove(name string) error {
	if f.removeDenied[filepath.Clean(name)] {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Remove(name)
}
