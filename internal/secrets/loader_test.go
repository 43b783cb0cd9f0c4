package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		expect  string
		errPart string
	}{
		{name: "inline value", src: Source{Value: " inline "}, expect: "inline"},
		{name: "file wins over value", src: Source{Value: "inline", File: keyFile}, expect: "from-file"},
		{name: "empty file", src: Source{Name: "gemini api key", Value: "inline", File: emptyFile}, errPart: "gemini api key file"},
		{name: "missing file", src: Source{File: filepath.Join(dir, "nope")}, errPart: "reading secret"},
		{name: "nothing configured", src: Source{Name: "gemini api key"}, errPart: "gemini api key is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.src)
			if tt.errPart != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errPart) {
					t.Fatalf("expected error containing %q, got %v", tt.errPart, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
