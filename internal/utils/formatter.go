package utils

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"os/exec"

	"golang.org/x/tools/imports"
)

// FormatGeneratedSource formats generated Go source the way goimports
// would: unused imports are pruned and the rest grouped and sorted. A
// wrapper inherits every import of its contributing fragments, so pruning
// is what keeps the written file compiling.
func FormatGeneratedSource(filename, source string) (string, error) {
	formatted, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err == nil {
		return string(formatted), nil
	}

	// Fall back to plain formatting before giving up.
	gofmted, fmtErr := format.Source([]byte(source))
	if fmtErr == nil {
		return string(gofmted), nil
	}

	// Distinguish invalid Go from a formatter limitation.
	fset := token.NewFileSet()
	if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
		return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
	}
	return source, err
}

// FormatGoFileWithGofmt formats a Go file using the gofmt command as fallback
func FormatGoFileWithGofmt(filename string) error {
	cmd := exec.Command("gofmt", "-w", filename)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gofmt failed for %s: %w (stderr: %s)", filename, err, stderr.String())
	}

	return nil
}

// FormatAndWriteGeneratedFile formats generated code and writes it to a
// file, falling back to writing the raw text plus an external gofmt pass
// when in-process formatting fails.
func FormatAndWriteGeneratedFile(filename string, code string) error {
	formatted, err := FormatGeneratedSource(filename, code)
	if err != nil {
		if writeErr := os.WriteFile(filename, []byte(code), 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted code to %s: %w (format error: %v)", filename, writeErr, err)
		}

		if gofmtErr := FormatGoFileWithGofmt(filename); gofmtErr != nil {
			return fmt.Errorf("failed to format %s with gofmt: %w (original format error: %v)", filename, gofmtErr, err)
		}

		return nil
	}

	return os.WriteFile(filename, []byte(formatted), 0644)
}
