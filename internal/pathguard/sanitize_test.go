package pathguard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize_Accepted(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "app", "api"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"default to root", "."},
		{"empty string", ""},
		{"relative subdir", "app/api"},
		{"leading ./ ", "./app/api"},
		{"surrounding whitespace", "  app/api  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(root, tt.input)
			if err != nil {
				t.Fatalf("Sanitize(%q) returned error: %v", tt.input, err)
			}
			absRoot, _ := filepath.Abs(root)
			if got != absRoot && got[:len(absRoot)] != absRoot {
				t.Fatalf("Sanitize(%q) = %q, want prefix %q", tt.input, got, absRoot)
			}
		})
	}
}

func TestSanitize_Rejected(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name  string
		input string
	}{
		{"simple traversal", "../../etc/passwd"},
		{"traversal buried mid-path", "app/../../etc"},
		{"bare traversal token", ".."},
		{"sensitive prefix etc", "/etc/passwd"},
		{"sensitive prefix root", "/root/.ssh/id_rsa"},
		{"sensitive prefix proc", "/proc/1/environ"},
		{"sensitive prefix sys", "/sys/class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(root, tt.input)
			if err == nil {
				t.Fatalf("Sanitize(%q) succeeded, want rejection", tt.input)
			}
			if !errors.Is(err, ErrPathRejected) {
				t.Fatalf("Sanitize(%q) error = %v, want wrapping ErrPathRejected", tt.input, err)
			}
		})
	}
}

func TestSanitize_AcceptedPathHasRootPrefix(t *testing.T) {
	root := t.TempDir()
	absRoot, _ := filepath.Abs(root)

	inputs := []string{".", "a", "a/b/c", "./a/./b"}
	for _, in := range inputs {
		got, err := Sanitize(root, in)
		if err != nil {
			continue // path need not exist on disk to resolve; only failures here are bugs
		}
		if got != absRoot && !hasPathPrefix(got, absRoot) {
			t.Errorf("Sanitize(%q) = %q does not have root %q as a prefix", in, got, absRoot)
		}
	}
}

func hasPathPrefix(path, prefix string) bool {
	if len(path) <= len(prefix) {
		return false
	}
	return path[:len(prefix)] == prefix && path[len(prefix)] == filepath.Separator
}
