package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome_NoTilde(t *testing.T) {
	got, err := ExpandHome("/var/lib/notegend")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != "/var/lib/notegend" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandHome_Empty(t *testing.T) {
	got, err := ExpandHome("")
	if err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestExpandHome_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandHome("~/models/whisper")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join("models", "whisper")) {
		t.Fatalf("got %q", got)
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "f")
	if PathExists(p) {
		t.Fatalf("expected missing path")
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(p) {
		t.Fatalf("expected existing path")
	}
}
