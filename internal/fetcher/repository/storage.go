package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilingsDirName is the directory created under the download root, matching the
// layout other EDGAR downloaders use.
const FilingsDirName = "sec-edgar-filings"

// ArtifactKey locates a filing's directory: <root>/sec-edgar-filings/<Ticker>/<Form>/<Accession>.
type ArtifactKey struct {
	Ticker    string
	Form      string
	Accession string
}

func (k ArtifactKey) dir(root string) string {
	return filepath.Join(root, FilingsDirName, pathSegment(k.Ticker), pathSegment(k.Form), pathSegment(k.Accession))
}

// FileStorage writes artifacts atomically: readers see either the previous file or the complete new one.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) Save(key ArtifactKey, fileName string, body []byte) (string, error) {
	dir := key.dir(s.root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+fileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to sync %s: %w", fileName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to close %s: %w", fileName, err)
	}

	final := filepath.Join(dir, fileName)
	if err := os.Rename(tmpName, final); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to move %s into place: %w", fileName, err)
	}
	return final, nil
}

// pathSegment keeps form names such as "10-K/A" to a single directory level.
func pathSegment(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}
