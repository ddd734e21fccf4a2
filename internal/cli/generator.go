package cli

import (
	"fmt"
	"time"

	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/generator"
	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/parser"
	"github.com/toyz/tracewrap/internal/utils"
)

// Generator coordinates one generation pass: resolve the runtime import,
// scan directories, parse each package, assemble each candidate, write the
// artifacts.
type Generator struct {
	scanner     *DirectoryScanner
	resolver    *ModuleResolver
	parser      *parser.Parser
	assembler   *generator.ClassAssembler
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// GenerationSummary describes what one pass did
type GenerationSummary struct {
	PackagesProcessed    int
	CandidatesDiscovered int
	ArtifactsGenerated   int
	CandidatesSkipped    int
	CandidatesFailed     int
	MarkersIgnored       int
	Duration             time.Duration
	GeneratedFiles       []string
	Candidates           []CandidateRecord
}

// CandidateRecord is the terminal state of one candidate within a pass
type CandidateRecord struct {
	TypeName string
	Package  string
	State    models.CandidateState
	Detail   string
}

// NewGenerator creates a generator that reports through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:     NewDirectoryScanner(),
		resolver:    NewModuleResolver(),
		parser:      parser.NewParser(),
		assembler:   generator.NewAssembler(),
		diagnostics: diagnostics,
		summary:     GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// GetSummary returns the summary of the most recent pass
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes one complete generation pass. Candidate and package failures
// are collected instead of aborting the pass, so one bad candidate never
// suppresses artifacts for the rest; the combined error is returned once
// every package has been processed.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	if err := config.Validate(); err != nil {
		return err
	}

	runtimeImport := g.resolver.ResolveRuntimeImport(config.RuntimeImport)
	g.diagnostics.Verbose("Generated wrappers will import %s", runtimeImport)
	g.checkRuntimeRequirement(runtimeImport)

	g.diagnostics.StartProgress("Scanning directories")
	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return errors.Wrap(errors.FileSystemErrorCode, "failed to scan directories", err).
			WithContext("directories", config.Directories).
			WithSuggestion("Check that the directories exist and are readable")
	}
	if len(packageDirs) == 0 {
		g.diagnostics.EndProgress(false, "no Go packages found")
		return errors.New(errors.ValidationErrorCode, "no Go packages found in the given directories").
			WithContext("directories", config.Directories).
			WithSuggestion("Point tracewrap at directories containing .go files, or use './...'")
	}
	g.diagnostics.EndProgress(true, fmt.Sprintf("%d packages", len(packageDirs)))

	g.summary.PackagesProcessed = len(packageDirs)
	for _, dir := range packageDirs {
		g.diagnostics.Verbose("Package directory: %s", dir)
	}

	failures := errors.NewMultipleErrors()
	for _, packageDir := range packageDirs {
		g.processPackage(packageDir, runtimeImport, failures)
	}

	g.summary.Duration = time.Since(startTime)
	g.diagnostics.Verbose("Pass completed in %v", g.summary.Duration.Round(time.Millisecond))

	if !failures.IsEmpty() {
		return failures
	}
	return nil
}

// checkRuntimeRequirement warns when the module being instrumented cannot
// import the runtime package. Generation still proceeds; the written
// wrappers are correct once the dependency is added.
func (g *Generator) checkRuntimeRequirement(runtimeImport string) {
	moduleName, goModPath, err := g.resolver.ResolveModule()
	if err != nil {
		g.diagnostics.Warn("Skipping runtime dependency check: %v", err)
		return
	}

	required, err := g.resolver.RequiresRuntime(goModPath, runtimeImport)
	if err != nil {
		g.diagnostics.Warn("Skipping runtime dependency check: %v", err)
		return
	}

	if !required {
		g.diagnostics.Warn("Module %s does not require %s; generated wrappers will not build until it does", moduleName, runtimeImport)
		return
	}
	g.diagnostics.Debug("Module %s can import %s", moduleName, runtimeImport)
}

// processPackage parses one package directory and takes every candidate in
// it through assembly.
func (g *Generator) processPackage(packageDir, runtimeImport string, failures *errors.MultipleErrors) {
	g.diagnostics.Verbose("Parsing %s", packageDir)

	candidates, err := g.parser.ParseDirectory(packageDir)
	if err != nil {
		failure := errors.Wrap(errors.ParseErrorCode, fmt.Sprintf("failed to parse package %s", packageDir), err).
			WithContext("package_directory", packageDir).
			WithSuggestions(
				"Check the package's Go files for syntax errors",
				"Check the tracewrap annotation syntax",
			)
		g.diagnostics.Error("%v", failure)
		failures.Add(failure)
		return
	}

	for _, notice := range candidates.Notices {
		g.diagnostics.Warn("%s:%d: %s", notice.FileName, notice.Line, notice.Message)
	}
	g.summary.MarkersIgnored += len(candidates.Notices)
	g.summary.CandidatesDiscovered += len(candidates.Candidates)

	for i := range candidates.Candidates {
		g.processCandidate(&candidates.Candidates[i], runtimeImport, failures)
	}
}

// processCandidate assembles and writes the wrapper for one candidate and
// records where the candidate came to rest.
func (g *Generator) processCandidate(descriptor *models.TypeDescriptor, runtimeImport string, failures *errors.MultipleErrors) {
	name := candidateLabel(descriptor)
	g.traceState(name, models.StateDiscovered)

	artifact, verdict, err := g.assembler.Assemble(descriptor, runtimeImport)
	if err != nil {
		g.recordCandidate(descriptor, name, models.StateFailed, err.Error())
		g.diagnostics.Error("%s: %v", name, err)
		failures.Add(liftFailure(err, descriptor))
		return
	}

	if !verdict.Eligible {
		g.recordCandidate(descriptor, name, models.StateSkipped, verdict.Reason.String())
		g.diagnostics.Verbose("Skipping %s (%s:%d): %s", name, descriptor.FileName, descriptor.Line, verdict.Reason)
		return
	}

	g.traceState(name, models.StateAssembled)

	if err := utils.FormatAndWriteGeneratedFile(artifact.FilePath, artifact.Content); err != nil {
		g.recordCandidate(descriptor, name, models.StateFailed, err.Error())
		g.diagnostics.Error("%s: %v", name, err)
		failures.Add(errors.Wrap(errors.FileSystemErrorCode, fmt.Sprintf("failed to write wrapper for %s", name), err).
			WithContext("file_path", artifact.FilePath).
			WithSuggestion("Check write permissions for the package directory"))
		return
	}

	g.recordCandidate(descriptor, name, models.StateEmitted, artifact.FilePath)
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, artifact.FilePath)
	g.diagnostics.List("Generated %s", artifact.FilePath)
}

// recordCandidate appends the candidate's terminal record and keeps the
// per-state counters in step with it.
func (g *Generator) recordCandidate(descriptor *models.TypeDescriptor, name string, state models.CandidateState, detail string) {
	g.summary.Candidates = append(g.summary.Candidates, CandidateRecord{
		TypeName: name,
		Package:  descriptor.DirPath,
		State:    state,
		Detail:   detail,
	})

	switch state {
	case models.StateEmitted:
		g.summary.ArtifactsGenerated++
	case models.StateSkipped:
		g.summary.CandidatesSkipped++
	case models.StateFailed:
		g.summary.CandidatesFailed++
	}
	g.traceState(name, state)
}

// traceState logs one transition of the per-candidate state machine
func (g *Generator) traceState(name string, state models.CandidateState) {
	g.diagnostics.Debug("%s: %s", name, state)
}

// candidateLabel names a candidate in diagnostics; markers with no attached
// declaration have no type name to use.
func candidateLabel(descriptor *models.TypeDescriptor) string {
	if descriptor.Name != "" {
		return descriptor.Name
	}
	return fmt.Sprintf("marker at %s:%d", descriptor.FileName, descriptor.Line)
}

// liftFailure keeps assembly failures on the error spine, attaching the
// candidate's source location when the error does not carry one.
func liftFailure(err error, descriptor *models.TypeDescriptor) errors.TracewrapError {
	if base, ok := err.(*errors.BaseError); ok {
		if base.Location().IsEmpty() {
			base.WithLocation(errors.SourceLocation{File: descriptor.FileName, Line: descriptor.Line})
		}
		return base
	}
	if traced, ok := err.(errors.TracewrapError); ok {
		return traced
	}
	return errors.Wrap(errors.AssemblyErrorCode, fmt.Sprintf("failed to assemble wrapper for %s", candidateLabel(descriptor)), err)
}
