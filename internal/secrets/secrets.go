// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. Each
// file holds one secret: the filename is the key name and the trimmed file
// contents are the value. Secrets are fallbacks; a value already present in
// the environment always wins.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/logging"
)

// Key files understood by the CLI, mapped to the environment variable each
// one stands in for.
var EnvNames = map[string]string{
	"semantic-scholar-api-key": "SEMANTIC_SCHOLAR_API_KEY",
	"openai-api-key":           "OPENAI_API_KEY",
	"anthropic-api-key":        "ANTHROPIC_API_KEY",
}

// Secrets maps key file names to values.
type Secrets map[string]string

// Load reads all files in dir. A missing directory is not an error and
// yields an empty set. Unreadable files are logged and skipped.
func Load(dir string, log *zap.Logger) (Secrets, error) {
	log = logging.OrNop(log)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Names returns the loaded key names, sorted.
func (s Secrets) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the value for an environment variable name: the variable
// itself when set, else the matching key file.
func (s Secrets) Lookup(env string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	for file, name := range EnvNames {
		if name == env {
			return s[file]
		}
	}
	return ""
}
