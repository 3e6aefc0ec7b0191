package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garvitthakral/GrindChain/internal/infrastructure/config"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != nil {
		t.Errorf("got %+v, want nil", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &config.Config{
		ServerURL:      "https://api.example.com",
		Token:          "secret",
		ActorID:        "u-42",
		TimeoutSeconds: 25,
	}

	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil || *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server_url: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestSaveNil(t *testing.T) {
	if err := config.Save(filepath.Join(t.TempDir(), "config.yaml"), nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestTimeoutDefault(t *testing.T) {
	cfg := &config.Config{}
	if got := cfg.Timeout(); got != 10*time.Second {
		t.Errorf("default timeout = %v, want 10s", got)
	}
	cfg.TimeoutSeconds = 3
	if got := cfg.Timeout(); got != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", got)
	}
}
