// Package archive moves a finished output directory aside so the next run
// starts without cached translations or verdicts.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const timestampFormat = "20060102-150405"

// ArchiveOutput moves outputDir into a sibling "archive" directory, named
// after the directory and the time of archiving, and returns the new path
func ArchiveOutput(outputDir string, now time.Time) (string, error) {
	info, err := os.Stat(outputDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("output directory does not exist: %s", outputDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output path is not a directory: %s", outputDir)
	}

	clean := filepath.Clean(outputDir)
	archiveDir := filepath.Join(filepath.Dir(clean), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(clean)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, now.Format(timestampFormat)))

	// Two archives within the same second get a unique suffix
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = fmt.Sprintf("%s-%s", archivePath, strings.ToLower(ulid.Make().String()))
	}

	if err := os.Rename(clean, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive output directory: %w", err)
	}
	return archivePath, nil
}
