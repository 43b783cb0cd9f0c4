// Package secrets resolves credentials given inline or through a file.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret may come from.
type Source struct {
	// Name appears in error messages.
	Name string
	// Value is an inline secret from config, flags or the environment.
	Value string
	// File holds the secret. It takes precedence over Value.
	File string
}

// Load returns the trimmed secret. A configured but unreadable or empty file
// is an error even when Value is set, so a broken mount is never masked.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}
	return "", fmt.Errorf("%s is not configured", name)
}
