// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"
)

// timestampLayout gives second resolution; two saves in the same second
// produce the same name.
const timestampLayout = "20060102_150405"

// OutputName returns "<prefix>_YYYYMMDD_HHMMSS.pptx" for t.
func OutputName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pptx", prefix, t.Format(timestampLayout))
}

// Save writes pres into dir under the timestamped name and returns the
// path written. An existing file of the same name is overwritten.
func Save(pres *ppt.Presentation, dir, prefix string, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, OutputName(prefix, now))
	if err := pres.Save(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
