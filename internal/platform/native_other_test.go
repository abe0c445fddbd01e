//go:build !windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeUnsupported(t *testing.T) {
	p := Native()
	assert.False(t, Supported())

	_, err := p.IsJunction("/tmp")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, IsDefinitelyNotJunction(err))

	_, err = p.Target("/tmp")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, p.Create("/tmp/a", "/tmp"), ErrUnsupported)
	assert.ErrorIs(t, p.Delete("/tmp/a"), ErrUnsupported)
}
