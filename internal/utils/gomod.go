package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// GoModParser provides utilities for parsing go.mod files
type GoModParser struct {
	fileReader *FileReader
}

// NewGoModParser creates a new go.mod parser with caching
func NewGoModParser(fileReader *FileReader) *GoModParser {
	return &GoModParser{
		fileReader: fileReader,
	}
}

// ParseModuleName extracts the module name from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	modFile, err := p.parse(goModPath)
	if err != nil {
		return "", err
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in go.mod")
	}

	return modFile.Module.Mod.Path, nil
}

// HasRequire reports whether the go.mod file requires the given module,
// either directly or as the module's own path. Generated wrappers import the
// tracing runtime, so a target module that requires neither will not build.
func (p *GoModParser) HasRequire(goModPath, modulePath string) (bool, error) {
	modFile, err := p.parse(goModPath)
	if err != nil {
		return false, err
	}

	if modFile.Module != nil && moduleContains(modFile.Module.Mod.Path, modulePath) {
		return true, nil
	}
	for _, require := range modFile.Require {
		if moduleContains(require.Mod.Path, modulePath) {
			return true, nil
		}
	}

	return false, nil
}

// FindGoModFile searches for go.mod file starting from the given directory and walking up
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	currentDir := filepath.Clean(startDir)

	for {
		goModPath := filepath.Join(currentDir, "go.mod")

		if content, err := p.fileReader.ReadFile(goModPath); err == nil && content != "" {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found")
}

// moduleContains reports whether importPath belongs to the module at
// modulePath.
func moduleContains(modulePath, importPath string) bool {
	return importPath == modulePath || strings.HasPrefix(importPath, modulePath+"/")
}

// parse reads and parses one go.mod file through the cached reader.
func (p *GoModParser) parse(goModPath string) (*modfile.File, error) {
	cleanPath := filepath.Clean(goModPath)
	if !strings.HasSuffix(cleanPath, "go.mod") {
		return nil, fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	content, err := p.fileReader.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod file: %w", err)
	}

	modFile, err := modfile.Parse(cleanPath, []byte(content), nil)
	if err != nil {
		return nil, WrapParseError("go.mod file", err)
	}

	return modFile, nil
}
