//go:build !windows

package platform

type unsupported struct{}

// Native returns the host's junction primitive. Outside Windows every
// operation fails with ErrUnsupported.
func Native() Primitive {
	return unsupported{}
}

func (unsupported) fail(op, path string) error {
	return &PathError{Op: op, Path: path, Err: Categorize(ErrUnsupported, nil)}
}

func (u unsupported) IsJunction(path string) (bool, error) {
	return false, u.fail("query", path)
}

func (u unsupported) Target(path string) (string, error) {
	return "", u.fail("readlink", path)
}

func (u unsupported) Create(path, target string) error {
	return u.fail("create", path)
}

func (u unsupported) Delete(path string) error {
	return u.fail("delete", path)
}

// Supported reports whether Native can manipulate junctions on this host.
func Supported() bool {
	return false
}
