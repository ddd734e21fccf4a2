package cli

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/utils"
)

// DirectoryScanner expands the directory arguments of a pass into the list
// of package directories to parse.
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanDirectories resolves the given directories to package directories
// containing Go source files. An entry ending in /... is walked recursively;
// a plain entry contributes only itself, and only when it holds Go files.
// The result is deduplicated and sorted.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var recursiveRoots []string
	var plainDirs []string

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}

			cleanPath, err := filepath.Abs(baseDir)
			if err != nil {
				return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to resolve path %s", baseDir)
			}
			recursiveRoots = append(recursiveRoots, cleanPath)
		} else {
			cleanPath, err := filepath.Abs(rootDir)
			if err != nil {
				return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to resolve path %s", rootDir)
			}
			plainDirs = append(plainDirs, cleanPath)
		}
	}

	found, err := s.fileProcessor.ScanDirectoriesWithGoFiles(recursiveRoots)
	if err != nil {
		return nil, err
	}

	for _, dir := range plainDirs {
		hasGo, err := s.fileProcessor.HasGoFiles(dir)
		if err != nil {
			return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read directory %s", dir)
		}
		if hasGo {
			found = append(found, dir)
		}
	}

	// Candidate order follows directory order, so repeated runs must see
	// the same list.
	sort.Strings(found)

	return dedupeSorted(found), nil
}

// dedupeSorted collapses adjacent duplicates left by overlapping patterns,
// such as "./..." alongside "./billing".
func dedupeSorted(dirs []string) []string {
	out := dirs[:0]
	for i, dir := range dirs {
		if i == 0 || dir != dirs[i-1] {
			out = append(out, dir)
		}
	}
	return out
}
