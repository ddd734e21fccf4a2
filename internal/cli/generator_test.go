package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/utils"
)

const generatorGoMod = `module example.com/shop

go 1.25

require github.com/toyz/tracewrap v0.3.0
`

// chdir moves the test into dir and restores the working directory when the
// test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(originalDir) })
	require.NoError(t, os.Chdir(dir))
}

func silentGenerator() *Generator {
	return NewGenerator(utils.NewDiagnosticSystem(utils.DiagnosticSilent))
}

func TestGenerator_Run(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(generatorGoMod), 0644))

	billingDir := filepath.Join(moduleDir, "internal", "billing")
	modelsDir := filepath.Join(moduleDir, "internal", "models")

	writeSource(t, filepath.Join(billingDir, "processor.go"), `package billing

import "context"

//tracewrap::instrument
type Processor struct {
	Limit int
}

func (p *Processor) Charge(ctx context.Context, customer string, amount int64) error {
	return nil
}
`)
	writeSource(t, filepath.Join(billingDir, "processor_refunds.go"), `package billing

func (p *Processor) Refund(customer string, amount int64) error {
	return nil
}
`)
	writeSource(t, filepath.Join(modelsDir, "invoice.go"), `package models

type Invoice struct {
	ID string
}
`)

	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{Directories: []string{"./..."}})
	require.NoError(t, err)

	artifactPath := filepath.Join(billingDir, "instrumented_processor_impl.tracewrap.go")
	require.FileExists(t, artifactPath)
	assert.NoFileExists(t, filepath.Join(modelsDir, "instrumented_invoice_impl.tracewrap.go"))

	content, err := os.ReadFile(artifactPath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "package billing")
	assert.Contains(t, text, `"github.com/toyz/tracewrap/pkg/tracing"`)
	assert.Contains(t, text, "type InstrumentedProcessorImpl struct")
	assert.Contains(t, text, "func NewInstrumentedProcessorImpl(impl *Processor) *InstrumentedProcessorImpl")
	assert.Contains(t, text, "func (w *InstrumentedProcessorImpl) Limit() int")
	assert.Contains(t, text, "func (w *InstrumentedProcessorImpl) Charge(ctx context.Context, customer string, amount int64) error")
	assert.Contains(t, text, "func (w *InstrumentedProcessorImpl) Refund(customer string, amount int64) error")
	assert.Contains(t, text, `span.SetTag("customer", customer)`)

	summary := gen.GetSummary()
	assert.Equal(t, 2, summary.PackagesProcessed)
	assert.Equal(t, 1, summary.CandidatesDiscovered)
	assert.Equal(t, 1, summary.ArtifactsGenerated)
	assert.Equal(t, 0, summary.CandidatesSkipped)
	assert.Equal(t, 0, summary.CandidatesFailed)

	require.Len(t, summary.GeneratedFiles, 1)
	assert.True(t, strings.HasSuffix(summary.GeneratedFiles[0], "instrumented_processor_impl.tracewrap.go"))

	require.Len(t, summary.Candidates, 1)
	assert.Equal(t, "Processor", summary.Candidates[0].TypeName)
	assert.Equal(t, models.StateEmitted, summary.Candidates[0].State)
}

func TestGenerator_RunSkipsIneligible(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(generatorGoMod), 0644))

	cacheDir := filepath.Join(moduleDir, "cache")
	writeSource(t, filepath.Join(cacheDir, "cache.go"), `package cache

//tracewrap::instrument
type Store interface {
	Find(id string) (string, error)
}

//tracewrap::instrument
type Cache struct{}

func (c *Cache) Get(key string) string {
	return ""
}
`)

	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{Directories: []string{"./..."}})
	require.NoError(t, err, "skips are not failures")

	assert.NoFileExists(t, filepath.Join(cacheDir, "instrumented_store_impl.tracewrap.go"))
	assert.FileExists(t, filepath.Join(cacheDir, "instrumented_cache_impl.tracewrap.go"))

	summary := gen.GetSummary()
	assert.Equal(t, 2, summary.CandidatesDiscovered)
	assert.Equal(t, 1, summary.ArtifactsGenerated)
	assert.Equal(t, 1, summary.CandidatesSkipped)

	require.Len(t, summary.Candidates, 2)
	assert.Equal(t, "Store", summary.Candidates[0].TypeName)
	assert.Equal(t, models.StateSkipped, summary.Candidates[0].State)
	assert.Equal(t, "not a struct type", summary.Candidates[0].Detail)
	assert.Equal(t, "Cache", summary.Candidates[1].TypeName)
	assert.Equal(t, models.StateEmitted, summary.Candidates[1].State)
}

func TestGenerator_RunCountsNotices(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(generatorGoMod), 0644))

	jobsDir := filepath.Join(moduleDir, "jobs")
	writeSource(t, filepath.Join(jobsDir, "jobs.go"), `package jobs

//tracewrap::instrument
func Run() {}
`)

	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{Directories: []string{"./..."}})
	require.NoError(t, err)

	summary := gen.GetSummary()
	assert.Equal(t, 0, summary.CandidatesDiscovered)
	assert.Equal(t, 0, summary.ArtifactsGenerated)
	assert.Equal(t, 1, summary.MarkersIgnored)
}

func TestGenerator_RunIsolatesFailures(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(generatorGoMod), 0644))

	alphaDir := filepath.Join(moduleDir, "internal", "alpha")
	betaDir := filepath.Join(moduleDir, "internal", "beta")

	// The -Source flag requires a value, so parsing package alpha fails.
	writeSource(t, filepath.Join(alphaDir, "broken.go"), `package alpha

//tracewrap::instrument -Source
type Broken struct{}
`)
	writeSource(t, filepath.Join(betaDir, "service.go"), `package beta

//tracewrap::instrument
type Service struct{}

func (s *Service) Ping() error {
	return nil
}
`)

	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{Directories: []string{"./..."}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse package")

	// The broken package never suppresses artifacts for the good one.
	assert.FileExists(t, filepath.Join(betaDir, "instrumented_service_impl.tracewrap.go"))

	summary := gen.GetSummary()
	assert.Equal(t, 2, summary.PackagesProcessed)
	assert.Equal(t, 1, summary.ArtifactsGenerated)
}

func TestGenerator_RunCustomRuntime(t *testing.T) {
	moduleDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "go.mod"), []byte(generatorGoMod), 0644))

	meterDir := filepath.Join(moduleDir, "meter")
	writeSource(t, filepath.Join(meterDir, "meter.go"), `package meter

//tracewrap::instrument
type Meter struct{}

func (m *Meter) Observe(value float64) {}
`)

	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{
		Directories:   []string{"./..."},
		RuntimeImport: "example.com/app/spankit",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(meterDir, "instrumented_meter_impl.tracewrap.go"))
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, `"example.com/app/spankit"`)
	assert.Contains(t, text, "*spankit.SpanSource")
	assert.Contains(t, text, `spankit.SourceFor("Meter")`)
	assert.NotContains(t, text, DefaultRuntimeImport)
}

func TestGenerator_RunNoPackages(t *testing.T) {
	moduleDir := t.TempDir()
	chdir(t, moduleDir)

	gen := silentGenerator()
	err := gen.Run(Config{Directories: []string{"./..."}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Go packages found")
}

func TestGenerator_RunValidatesConfig(t *testing.T) {
	gen := silentGenerator()
	err := gen.Run(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directories")
}
