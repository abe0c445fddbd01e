package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDiscoverPathsAllLevels(t *testing.T) {
	layers := DiscoverPaths(DiscoverOptions{
		ExplicitPath:     "./junc.yaml",
		SystemConfigPath: "/etc/junc/junc.yaml",
		UserConfigPath:   "/home/user/.config/junc/junc.yaml",
	})

	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}

	if layers[0].Level != LevelSystem {
		t.Errorf("layers[0].Level = %q, want %q", layers[0].Level, LevelSystem)
	}
	if layers[1].Level != LevelUser {
		t.Errorf("layers[1].Level = %q, want %q", layers[1].Level, LevelUser)
	}
	if layers[2].Level != LevelExplicit {
		t.Errorf("layers[2].Level = %q, want %q", layers[2].Level, LevelExplicit)
	}
	if layers[0].Required || layers[1].Required || !layers[2].Required {
		t.Errorf("only the explicit layer should be required: %+v", layers)
	}
}

func TestDiscoverPathsDeduplication(t *testing.T) {
	samePath, err := filepath.Abs("./junc.yaml")
	if err != nil {
		t.Fatal(err)
	}

	layers := DiscoverPaths(DiscoverOptions{
		ExplicitPath:     samePath,
		SystemConfigPath: samePath,
		UserConfigPath:   "/other/path/junc.yaml",
	})

	if len(layers) != 2 {
		t.Fatalf("expected 2 layers (deduped), got %d", len(layers))
	}
	if layers[0].Level != LevelSystem {
		t.Errorf("layers[0].Level = %q, want %q", layers[0].Level, LevelSystem)
	}
}

func TestDiscoverPathsNoInherit(t *testing.T) {
	layers := DiscoverPaths(DiscoverOptions{
		ExplicitPath: "./junc.yaml",
		NoInherit:    true,
	})
	if len(layers) != 1 || layers[0].Level != LevelExplicit {
		t.Fatalf("expected only the explicit layer, got %+v", layers)
	}

	if got := DiscoverPaths(DiscoverOptions{NoInherit: true}); len(got) != 0 {
		t.Errorf("expected no layers, got %+v", got)
	}
}

func TestDiscoverPathsDefaults(t *testing.T) {
	layers := DiscoverPaths(DiscoverOptions{})
	if len(layers) == 0 {
		t.Fatal("expected at least the system layer")
	}
	if layers[0].Level != LevelSystem {
		t.Errorf("layers[0].Level = %q, want %q", layers[0].Level, LevelSystem)
	}

	want := filepath.Join("junc", "junc.yaml")
	if runtime.GOOS != "windows" && layers[0].Path != "/etc/junc/junc.yaml" {
		t.Errorf("system path = %q", layers[0].Path)
	}
	if !strings.HasSuffix(layers[0].Path, want) {
		t.Errorf("system path %q should end with %q", layers[0].Path, want)
	}
}

func TestEnvNoInherit(t *testing.T) {
	for _, tt := range []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"TRUE", true},
		{" true ", true},
		{"yes", false},
	} {
		t.Setenv("JUNC_NO_INHERIT", tt.val)
		if got := EnvNoInherit(); got != tt.want {
			t.Errorf("JUNC_NO_INHERIT=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}
