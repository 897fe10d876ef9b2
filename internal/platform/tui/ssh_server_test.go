package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error = %v", err)
	}
	if got != want {
		t.Errorf("resolveHostKeyPath() = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error = %v", err)
	}
	if want := filepath.Join(home, ".takeoff", "host_key"); got != want {
		t.Errorf("resolveHostKeyPath() = %q, want %q", got, want)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
