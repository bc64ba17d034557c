// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory is one secret: the filename is the key name and
// the trimmed file contents are the value.
//
// Known keys: image-auth-token (bearer token for remote picture downloads).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultDir is where the CLI looks for secrets.
const DefaultDir = ".secrets"

// ImageAuthToken names the secret holding the picture download token.
const ImageAuthToken = "image-auth-token"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error and yields an empty map.
// Unreadable files are logged at warn level and skipped.
func Load(dir string, log logrus.FieldLogger) (map[string]string, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.WithField("secret", name).WithError(err).Warn("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Default returns fallback when it is set, otherwise the named secret.
// Explicit configuration wins over the secrets directory.
func Default(loaded map[string]string, key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loaded[key]
}
