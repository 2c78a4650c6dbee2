package execx

import (
	"context"
	"strings"
	"testing"
)

func TestRun_CapturesStdout(t *testing.T) {
	out, err := NewRunner().Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("stdout=%q", out)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	if _, err := NewRunner().Run(context.Background(), "definitely-not-a-binary-12345"); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}
