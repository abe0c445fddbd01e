package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusRequest struct{ ListRequest }

func TestRunUnknownRequest(t *testing.T) {
	env := newTestEnv(t)
	err := env.eng.Run(bogusRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown request")
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("access is denied")
	tests := []struct {
		err  error
		want string
	}{
		{Usagef("expected exactly %d path, got %d", 1, 3), "expected exactly 1 path, got 3"},
		{&OperationError{Op: "create", Path: `C:\j`, Err: cause}, "failed to create junction `C:\\j`: access is denied"},
		{&OperationError{Op: "delete", Path: `C:\j`, Err: cause}, "failed to remove junction `C:\\j`: access is denied"},
		{&PartialDeleteError{Path: `C:\j`, Err: cause}, "failed to delete empty directory `C:\\j` after removing junction: access is denied"},
		{&NotJunctionError{Path: `C:\j`}, "path `C:\\j` is not a junction"},
		{&AccessError{Path: `C:\j`, Err: cause}, "could not access path `C:\\j` to check if junction: access is denied"},
		{&AccessError{Path: `C:\j`, Err: cause, Junction: true}, "cannot read target of junction `C:\\j`: access is denied"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
