package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureGoMod = `module example.com/checkout

go 1.25

require github.com/toyz/tracewrap v0.3.0
`

const fixtureSource = `package payments

//tracewrap::instrument
type Gateway struct {
	Endpoint string
}

func (g *Gateway) Authorize(customer string, amount int64) error {
	return nil
}
`

// buildBinary compiles the tracewrap binary into a temp directory so the
// subtests can drive it the way users do.
func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tracewrap")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = "."
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build binary: %s", output)
	return binaryPath
}

// writeFixtureModule lays out a small module with one annotated type and
// returns its root plus the path the wrapper should land at.
func writeFixtureModule(t *testing.T) (string, string) {
	t.Helper()

	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(fixtureGoMod), 0644))

	paymentsDir := filepath.Join(moduleDir, "payments")
	require.NoError(t, os.MkdirAll(paymentsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(paymentsDir, "gateway.go"), []byte(fixtureSource), 0644))

	return moduleDir, filepath.Join(paymentsDir, "instrumented_gateway_impl.tracewrap.go")
}

func TestCLI(t *testing.T) {
	binaryPath := buildBinary(t)

	t.Run("help flag", func(t *testing.T) {
		cmd := exec.Command(binaryPath, "-help")
		output, err := cmd.CombinedOutput()
		assert.NoError(t, err, "help should exit zero")

		outputStr := string(output)
		assert.Contains(t, outputStr, "Usage:")
		assert.Contains(t, outputStr, "Tracewrap Wrapper Generator")
		assert.Contains(t, outputStr, "-runtime")
		assert.Contains(t, outputStr, "-clean")
		assert.Contains(t, outputStr, "directory-paths")
	})

	t.Run("no packages", func(t *testing.T) {
		cmd := exec.Command(binaryPath)
		cmd.Dir = t.TempDir()
		output, err := cmd.CombinedOutput()
		assert.Error(t, err, "an empty tree should exit nonzero")

		outputStr := string(output)
		assert.Contains(t, outputStr, "no Go packages found")
		assert.Contains(t, outputStr, "Generation failed")
	})

	t.Run("generate and clean", func(t *testing.T) {
		moduleDir, artifactPath := writeFixtureModule(t)

		cmd := exec.Command(binaryPath)
		cmd.Dir = moduleDir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		outputStr := string(output)
		assert.Contains(t, outputStr, "Generation Summary")
		assert.Contains(t, outputStr, "All wrappers are up to date")
		require.FileExists(t, artifactPath)

		content, err := os.ReadFile(artifactPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "type InstrumentedGatewayImpl struct")
		assert.Contains(t, string(content), `span.SetTag("customer", customer)`)

		cmd = exec.Command(binaryPath, "-clean")
		cmd.Dir = moduleDir
		output, err = cmd.CombinedOutput()
		require.NoError(t, err, "clean failed: %s", output)

		assert.Contains(t, string(output), "1 files removed")
		assert.NoFileExists(t, artifactPath)
		assert.FileExists(t, filepath.Join(moduleDir, "payments", "gateway.go"))
	})

	t.Run("custom runtime flag", func(t *testing.T) {
		moduleDir, artifactPath := writeFixtureModule(t)

		cmd := exec.Command(binaryPath, "-runtime", "example.com/app/tracing", "./...")
		cmd.Dir = moduleDir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		content, err := os.ReadFile(artifactPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"example.com/app/tracing"`)
	})

	t.Run("quiet mode", func(t *testing.T) {
		moduleDir, artifactPath := writeFixtureModule(t)

		cmd := exec.Command(binaryPath, "-quiet")
		cmd.Dir = moduleDir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		// Quiet runs still do the work, they just stop narrating it.
		assert.NotContains(t, string(output), "Generation Summary")
		assert.FileExists(t, artifactPath)
	})
}
