package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// generatedFileSuffix matches templates.GeneratedFileSuffix; utils stays
// free of internal imports.
const generatedFileSuffix = ".tracewrap.go"

// FileProcessor provides utilities for common file processing operations
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// DefaultGoFileFilter filters for .go files, excluding tests and generated
// wrapper files
func DefaultGoFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		name := info.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasSuffix(name, generatedFileSuffix)
	}
}

// GeneratedFileFilter filters for generated wrapper files
func GeneratedFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		return strings.HasSuffix(info.Name(), generatedFileSuffix)
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain source code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		".git":         true,
		".svn":         true,
		".hg":          true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden and underscore-prefixed directories, matching what the
		// Go toolchain does for ./... patterns
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		if strings.HasPrefix(name, "_") {
			return false
		}

		return !skipDirs[name]
	}
}

// ScanDirectoriesWithGoFiles scans directories and returns those containing Go files
func (fp *FileProcessor) ScanDirectoriesWithGoFiles(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		dirs, err := fp.scanDirectoryRecursive(rootDir, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, dirs...)
	}

	return packageDirs, nil
}

// scanDirectoryRecursive recursively scans a directory for Go files
func (fp *FileProcessor) scanDirectoryRecursive(dir string, visited map[string]bool) ([]string, error) {
	// Resolve the absolute path to handle symlinks and avoid cycles
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("path resolution %s", dir), err)
	}

	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	var packageDirs []string

	hasGoFiles, err := fp.HasGoFiles(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("Go file check in %s", dir), err)
	}

	if hasGoFiles {
		packageDirs = append(packageDirs, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("directory read %s", dir), err)
	}

	directoryFilter := DefaultDirectoryFilter()

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		entryPath := filepath.Join(dir, entry.Name())

		if !directoryFilter(entryPath, entry) {
			continue
		}

		subDirs, err := fp.scanDirectoryRecursive(entryPath, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, subDirs...)
	}

	return packageDirs, nil
}

// HasGoFiles checks if a directory contains any .go files, excluding test
// files and generated wrapper files
func (fp *FileProcessor) HasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	fileFilter := DefaultGoFileFilter()

	for _, entry := range entries {
		if fileFilter(filepath.Join(dir, entry.Name()), entry) {
			return true, nil
		}
	}

	return false, nil
}

// CleanDirectories removes generated wrapper files from the given directory
// trees and returns the paths it removed.
func (fp *FileProcessor) CleanDirectories(baseDirs []string) ([]string, error) {
	var removedFiles []string

	for _, baseDir := range baseDirs {
		err := fp.cleanDirectory(baseDir, &removedFiles)
		if err != nil {
			return removedFiles, WrapProcessError(fmt.Sprintf("directory clean %s", baseDir), err)
		}
	}

	return removedFiles, nil
}

// cleanDirectory removes generated files from a single directory tree.
func (fp *FileProcessor) cleanDirectory(baseDir string, removedFiles *[]string) error {
	startDir := "."
	if baseDir != "" {
		startDir = baseDir
	}

	generatedFilter := GeneratedFileFilter()
	directoryFilter := DefaultDirectoryFilter()

	return filepath.WalkDir(startDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			// Skip paths that vanished or cannot be read
			return nil
		}

		if entry.IsDir() {
			if !directoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if !generatedFilter(path, entry) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			return WrapProcessError(fmt.Sprintf("file removal %s", path), err)
		}
		*removedFiles = append(*removedFiles, path)
		return nil
	})
}
