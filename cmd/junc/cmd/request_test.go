package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/junc/internal/config"
	"github.com/bianoble/junc/internal/engine"
)

func TestStripLegacyFlags(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"-nobanner", "-accepteula", `C:\a`}, []string{`C:\a`}},
		{[]string{"-NoBanner", "-s", `C:\a`, "-AcceptEula"}, []string{"-s", `C:\a`}},
		{[]string{"-q", "--", "-nobanner"}, []string{"-q", "--", "-nobanner"}},
		{[]string{"-d", `C:\j`}, []string{"-d", `C:\j`}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripLegacyFlags(tt.in), "%v", tt.in)
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name      string
		del       bool
		rec       bool
		qui       bool
		paths     []string
		want      engine.Request
		wantUsage string
	}{
		{name: "no args shows usage"},
		{name: "quiet alone shows usage", qui: true},
		{name: "list", paths: []string{"a"}, want: engine.ListRequest{Path: "a"}},
		{name: "recursive quiet list", rec: true, qui: true, paths: []string{"a"},
			want: engine.ListRequest{Path: "a", Recursive: true, Quiet: true}},
		{name: "create", paths: []string{"j", "t"}, want: engine.CreateRequest{Source: "j", Destination: "t"}},
		{name: "create with -s", rec: true, paths: []string{"j", "t"},
			wantUsage: "q and s are for a different subcommand"},
		{name: "three paths", paths: []string{"a", "b", "c"},
			wantUsage: "expected exactly 2 paths to create junction, got 3"},
		{name: "three paths with -q", qui: true, paths: []string{"a", "b", "c"},
			wantUsage: "expected exactly 1 path to display junction information, got 3"},
		{name: "delete", del: true, paths: []string{"j"}, want: engine.DeleteRequest{Path: "j"}},
		{name: "delete without path", del: true,
			wantUsage: "expected exactly 1 path to junction to delete, got 0"},
		{name: "delete two paths", del: true, paths: []string{"a", "b"},
			wantUsage: "expected exactly 1 path to junction to delete, got 2"},
		{name: "delete with -q", del: true, qui: true, paths: []string{"j"},
			wantUsage: "-q and -s cannot be combined with -d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			deleteMode, recursive, quiet = tt.del, tt.rec, tt.qui

			req, err := parseRequest(tt.paths)
			if tt.wantUsage != "" {
				var ue *engine.UsageError
				require.ErrorAs(t, err, &ue)
				assert.Equal(t, tt.wantUsage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	yes := true
	cfg := &config.Config{Version: 1, Quiet: &yes}

	got := applyDefaults(engine.ListRequest{Path: "a"}, cfg, false)
	assert.Equal(t, engine.ListRequest{Path: "a", Quiet: true}, got)

	create := engine.CreateRequest{Source: "j", Destination: "t"}
	assert.Equal(t, create, applyDefaults(create, cfg, false))

	assert.Equal(t, engine.ListRequest{Path: "a"}, applyDefaults(engine.ListRequest{Path: "a"}, config.Default(), false))

	// An explicit flag is kept even when it disagrees with the config file.
	assert.Equal(t, engine.ListRequest{Path: "a"}, applyDefaults(engine.ListRequest{Path: "a"}, cfg, true))
}
