package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/tracewrap/internal/cli"
	"github.com/toyz/tracewrap/internal/utils"
)

func main() {
	var (
		runtimeFlag = flag.String("runtime", "", "Import path of the tracing runtime package (defaults to "+cli.DefaultRuntimeImport+")")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and per-candidate reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		cleanFlag   = flag.Bool("clean", false, "Delete generated *.tracewrap.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [directory-paths...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Tracewrap Wrapper Generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for types marked //tracewrap::instrument and generates tracing wrappers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    Directories to scan for annotated Go files (default './...')\n")
		fmt.Fprintf(os.Stderr, "                     A trailing /... scans recursively\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         # Scan the current module recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/...                          # Scan internal recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/billing ./internal/ledger    # Scan specific directories\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -runtime example.com/app/tracing ./...  # Use a custom runtime package\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose ./...                          # Detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clean ./...                            # Delete generated wrappers\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"./..."}
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Tracewrap Generator")

	if *cleanFlag {
		diagnostics.StartProgress("Cleaning generated wrappers")

		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(args)
		if err != nil {
			diagnostics.EndProgress(false, "")
			diagnostics.Error("Clean failed: %v", err)
			os.Exit(1)
		}

		diagnostics.EndProgress(true, fmt.Sprintf("%d files removed", len(removed)))
		for _, path := range removed {
			diagnostics.Verbose("Removed %s", path)
		}
		return
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *runtimeFlag != "" {
			diagnostics.List("Runtime package: %s", *runtimeFlag)
		}
	}

	generator := cli.NewGenerator(diagnostics)
	config := cli.Config{
		Directories:   args,
		RuntimeImport: *runtimeFlag,
	}

	diagnostics.Subsection("Generation")
	err := generator.Run(config)
	summary := generator.GetSummary()

	stats := map[string]interface{}{
		"Packages processed": summary.PackagesProcessed,
		"Candidates found":   summary.CandidatesDiscovered,
		"Wrappers generated": summary.ArtifactsGenerated,
		"Candidates skipped": summary.CandidatesSkipped,
	}
	if summary.CandidatesFailed > 0 {
		stats["Candidates failed"] = summary.CandidatesFailed
	}
	if summary.MarkersIgnored > 0 {
		stats["Markers ignored"] = summary.MarkersIgnored
	}
	diagnostics.Summary("Generation Summary", stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	if err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	diagnostics.Success("All wrappers are up to date")
}
