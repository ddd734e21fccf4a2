package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	tempDir := t.TempDir()

	billingDir := filepath.Join(tempDir, "billing")
	archiveDir := filepath.Join(tempDir, "ledger", "archive")
	vendorDir := filepath.Join(tempDir, "vendor")

	writeSource(t, filepath.Join(billingDir, "processor.go"), "package billing")
	writeSource(t, filepath.Join(billingDir, "instrumented_processor_impl.tracewrap.go"), "package billing")
	writeSource(t, filepath.Join(archiveDir, "instrumented_ledger_impl.tracewrap.go"), "package archive")
	writeSource(t, filepath.Join(vendorDir, "instrumented_dep_impl.tracewrap.go"), "package dep")

	cleaner := NewCleaner()
	removed, err := cleaner.CleanGeneratedFiles([]string{tempDir + "/..."})
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	assert.NoFileExists(t, filepath.Join(billingDir, "instrumented_processor_impl.tracewrap.go"))
	assert.NoFileExists(t, filepath.Join(archiveDir, "instrumented_ledger_impl.tracewrap.go"))

	// Handwritten sources and vendored trees stay untouched.
	assert.FileExists(t, filepath.Join(billingDir, "processor.go"))
	assert.FileExists(t, filepath.Join(vendorDir, "instrumented_dep_impl.tracewrap.go"))
}

func TestCleaner_PlainDirectoryCleansRecursively(t *testing.T) {
	tempDir := t.TempDir()

	nested := filepath.Join(tempDir, "ledger", "archive")
	writeSource(t, filepath.Join(nested, "instrumented_ledger_impl.tracewrap.go"), "package archive")

	// Stale wrappers can sit below directories with no sources of their own,
	// so a plain directory argument still cleans the whole tree.
	cleaner := NewCleaner()
	removed, err := cleaner.CleanGeneratedFiles([]string{tempDir})
	require.NoError(t, err)
	assert.Len(t, removed, 1)
	assert.NoFileExists(t, filepath.Join(nested, "instrumented_ledger_impl.tracewrap.go"))
}

func TestCleaner_NothingToClean(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, filepath.Join(tempDir, "main.go"), "package main")

	cleaner := NewCleaner()
	removed, err := cleaner.CleanGeneratedFiles([]string{tempDir})
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(tempDir, "main.go"))
}
