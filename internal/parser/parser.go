// Package parser discovers instrument-annotated types in Go source. For each
// marked type it records the declaration's form, the annotation that marked
// it, and one fragment per contributing file: the declaring file plus every
// file that adds methods with a matching receiver.
package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/tracewrap/internal/annotations"
	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/templates"
)

// Parser discovers annotated candidate types and reconstructs their
// fragments.
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.Parser
}

// NewParser creates a parser backed by the default annotation registry.
func NewParser() *Parser {
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewParser(annotations.DefaultRegistry()),
	}
}

// ParseSource parses source code from a string for testing purposes.
func (p *Parser) ParseSource(filename, source string) (*models.PackageCandidates, error) {
	return p.ParseSources(map[string]string{filename: source})
}

// ParseSources parses a set of in-memory files that form one package.
// Fragment order follows the sorted file names, matching what a directory
// scan produces.
func (p *Parser) ParseSources(sources map[string]string) (*models.PackageCandidates, error) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]fileEntry, 0, len(names))
	for _, name := range names {
		file, err := goparser.ParseFile(p.fileSet, name, sources[name], goparser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse source %s: %w", name, err)
		}
		entries = append(entries, fileEntry{name: name, file: file})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no source files provided")
	}

	return p.processFiles(entries[0].file.Name.Name, "./", entries)
}

// ParseDirectory scans one directory for annotated types. Test files and
// previously generated wrapper files are excluded so repeated runs see the
// same inputs.
func (p *Parser) ParseDirectory(dirPath string) (*models.PackageCandidates, error) {
	pkgs, err := goparser.ParseDir(p.fileSet, dirPath, isCandidateFile, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", dirPath, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in directory %s", dirPath)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found in directory %s", dirPath)
	}

	var pkg *ast.Package
	var packageName string
	for name, parsed := range pkgs {
		pkg = parsed
		packageName = name
	}

	// Map iteration order is random; fragment order must not be.
	fileNames := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	entries := make([]fileEntry, 0, len(fileNames))
	for _, name := range fileNames {
		entries = append(entries, fileEntry{name: name, file: pkg.Files[name]})
	}

	return p.processFiles(packageName, dirPath, entries)
}

// fileEntry pairs a parsed file with the name used for fragment ordering.
type fileEntry struct {
	name string
	file *ast.File
}

// baseName returns the file name used in fragments and diagnostics.
func (e fileEntry) baseName() string {
	return filepath.Base(e.name)
}

// isCandidateFile reports whether a directory entry should be parsed. Test
// files never carry candidates and generated wrappers must not feed back
// into discovery.
func isCandidateFile(info fs.FileInfo) bool {
	name := info.Name()
	if strings.HasSuffix(name, "_test.go") {
		return false
	}
	if strings.HasSuffix(name, templates.GeneratedFileSuffix) {
		return false
	}
	return true
}

// processFiles runs the two discovery passes over one package's files:
// candidate discovery first, then fragment reconstruction for every
// candidate that has a declaration.
func (p *Parser) processFiles(packageName, dirPath string, entries []fileEntry) (*models.PackageCandidates, error) {
	result := &models.PackageCandidates{
		PackageName: packageName,
		DirPath:     dirPath,
	}

	candidates, notices, err := p.discoverCandidates(packageName, dirPath, entries)
	if err != nil {
		return nil, err
	}
	result.Notices = notices

	for i := range candidates {
		if candidates[i].HasDeclaration {
			candidates[i].Fragments = p.collectFragments(candidates[i].Name, entries)
		}
	}
	result.Candidates = candidates

	return result, nil
}
