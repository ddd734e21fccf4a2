package cli

import (
	"path/filepath"
	"strings"

	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/utils"
)

// Cleaner removes generated wrapper files so a module can be regenerated
// from scratch.
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// CleanGeneratedFiles removes every *.tracewrap.go file beneath the given
// directories and returns the removed paths. A trailing /... is accepted
// for symmetry with scanning, but cleaning always walks recursively:
// stale wrappers can sit in directories that no longer hold source files.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var roots []string

	for _, dir := range directories {
		if strings.HasSuffix(dir, "/...") {
			dir = strings.TrimSuffix(dir, "/...")
			if dir == "" {
				dir = "."
			}
		}

		cleanPath, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to resolve path %s", dir)
		}
		roots = append(roots, cleanPath)
	}

	return c.fileProcessor.CleanDirectories(roots)
}
