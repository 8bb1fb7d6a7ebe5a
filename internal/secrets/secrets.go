// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: dataforseo-login, dataforseo-password.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// Key file names read from the secrets directory.
const (
	KeyLogin    = "dataforseo-login"
	KeyPassword = "dataforseo-password"
)

// Secrets maps key file names to their trimmed contents.
type Secrets map[string]string

// Credentials returns the DataForSEO credentials held in s. Missing keys
// yield empty strings.
func (s Secrets) Credentials() types.Credentials {
	return types.Credentials{Login: s[KeyLogin], Password: s[KeyPassword]}
}

// Keys returns the loaded key names without their values, for logging.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Load reads all files in dir. A missing directory is not an error; Load
// returns an empty Secrets. Unreadable files produce a warning on warn
// and are skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
