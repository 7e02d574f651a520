// Package app wires flags, file discovery, and the worker pool that feeds
// the processor.
package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/evanrichards/tree-styler-cs/internal/config"
	"github.com/evanrichards/tree-styler-cs/internal/fileutil"
	"github.com/evanrichards/tree-styler-cs/internal/processor"
	_ "github.com/evanrichards/tree-styler-cs/internal/rules"
	"github.com/evanrichards/tree-styler-cs/pkg/diff"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnTint = color.New(color.FgYellow).SprintFunc()
)

// cliFlags holds the flag values that stay outside processor.Options.
type cliFlags struct {
	path       string
	configPath string
	recursive  bool
	extensions []string
}

// Run is the CLI entry point.
func Run() {
	opts, cli := parseFlags()

	cfg, err := config.Load(cli.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.Config = cfg
	if len(cli.extensions) > 0 {
		cfg.Extensions = cli.extensions
	}

	if err := run(opts, cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (processor.Options, cliFlags) {
	var opts processor.Options
	var cli cliFlags
	var extensions string

	flag.BoolVar(&opts.Check, "check", false, "Check for style violations (exit 1 if any)")
	flag.BoolVar(&opts.Write, "write", false, "Write fixes to files (default: dry-run)")
	flag.BoolVar(&cli.recursive, "recursive", true, "Process directories recursively")
	flag.StringVar(&extensions, "extensions", "", "File extensions to process (default: from config)")
	flag.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Show detailed output")
	flag.StringVar(&cli.configPath, "config", "", "Path to config file (default: discover tree-styler.yml)")

	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cli.path = args[0]
	if extensions != "" {
		cli.extensions = strings.Split(extensions, ",")
	}
	return opts, cli
}

func run(opts processor.Options, cli cliFlags) error {
	path := cli.path
	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access path %s: %w", path, err)
	}

	var files []string

	if fileInfo.IsDir() {
		files, err = fileutil.FindFiles(path, opts.Config.Extensions, cli.recursive)
		if err != nil {
			return fmt.Errorf("error finding files: %w", err)
		}
	} else {
		if fileutil.HasValidExtension(path, opts.Config.Extensions) {
			files = []string{path}
		} else {
			return fmt.Errorf("file %s does not have a valid extension", path)
		}
	}

	if len(files) == 0 {
		if opts.Verbose {
			fmt.Println("No C# files found")
		}
		return nil
	}

	if opts.Verbose {
		fmt.Printf("Found %d C# file(s)\n", len(files))
	}

	hasViolations, err := processFilesParallel(files, opts)
	if err != nil {
		return err
	}

	if opts.Check && hasViolations {
		return fmt.Errorf("files have style violations")
	}

	return nil
}

type fileResult struct {
	file   string
	result processor.Result
	err    error
}

type stats struct {
	totalFiles     int
	filesWithIssue int
	filesClean     int
	errorFiles     int
	totalIssues    int
	fixesApplied   int
}

func processFilesParallel(files []string, opts processor.Options) (bool, error) {
	// Set up worker pool
	workerCount := opts.Workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	// Channels for work distribution
	fileChan := make(chan string, len(files))
	resultChan := make(chan fileResult, len(files))

	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range fileChan {
				result, err := processor.ProcessFile(file, opts)
				resultChan <- fileResult{file: file, result: result, err: err}
			}
		}()
	}

	// Send files to workers
	for _, file := range files {
		fileChan <- file
	}
	close(fileChan)

	wg.Wait()
	close(resultChan)

	// Collect results
	stats := stats{totalFiles: len(files)}
	var hasViolations atomic.Bool
	var errors []error

	for r := range resultChan {
		if r.err != nil {
			errors = append(errors, fmt.Errorf("%s: %w", r.file, r.err))
			stats.errorFiles++
			continue
		}

		stats.totalIssues += len(r.result.Diagnostics)
		stats.fixesApplied += r.result.FixesApplied

		if len(r.result.Diagnostics) == 0 && !r.result.Changed {
			stats.filesClean++
			if opts.Verbose && opts.Check {
				fmt.Printf("%s No violations %s\n", okMark, r.file)
			}
			continue
		}

		stats.filesWithIssue++
		hasViolations.Store(true)
		reportFile(r, opts)
	}

	printSummary(stats, opts)

	// Handle errors
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		// Only return first error so the exit path stays simple
		return hasViolations.Load(), errors[0]
	}

	return hasViolations.Load(), nil
}

// reportFile prints one file's outcome in the active mode: diagnostics in
// check mode, a confirmation in write mode, a unified diff in dry-run mode.
func reportFile(r fileResult, opts processor.Options) {
	switch {
	case opts.Check:
		fmt.Printf("%s %s (%d violations)\n", failMark, r.file, len(r.result.Diagnostics))
		for _, d := range r.result.Diagnostics {
			fmt.Printf("  %s:%d:%d: %s: %s [%s]\n",
				r.file, d.Line, d.Column, warnTint(d.Severity.String()), d.Message, d.RuleID)
		}
	case opts.Write:
		if r.result.Changed {
			fmt.Printf("%s Fixed %s (%d fixes)\n", okMark, r.file, r.result.FixesApplied)
		}
		for _, d := range r.result.Diagnostics {
			fmt.Printf("  %s:%d:%d: %s: %s [%s]\n",
				r.file, d.Line, d.Column, warnTint(d.Severity.String()), d.Message, d.RuleID)
		}
	default:
		// Dry-run mode
		if r.result.Changed {
			fmt.Printf("Would fix %s (%d fixes)\n", r.file, r.result.FixesApplied)
			fmt.Print(diff.Unified(r.file, string(r.result.Original), string(r.result.Fixed)))
		}
		for _, d := range r.result.Diagnostics {
			fmt.Printf("  %s:%d:%d: %s: %s [%s]\n",
				r.file, d.Line, d.Column, warnTint(d.Severity.String()), d.Message, d.RuleID)
		}
	}
}

// printSummary mirrors the multi-file summary block of the check/write runs.
func printSummary(s stats, opts processor.Options) {
	if !opts.Verbose || s.totalFiles <= 1 {
		return
	}

	fmt.Println("\n─────────────────────────────────────")
	fmt.Printf("Total files:    %d\n", s.totalFiles)
	fmt.Printf("Clean:          %d\n", s.filesClean)

	if s.filesWithIssue > 0 {
		if opts.Write {
			fmt.Printf("Fixed:          %d\n", s.filesWithIssue)
		} else {
			fmt.Printf("With issues:    %d %s\n", s.filesWithIssue, failMark)
		}
	}
	if s.errorFiles > 0 {
		fmt.Printf("Errors:         %d\n", s.errorFiles)
	}
	if s.totalIssues > 0 {
		fmt.Printf("Violations:     %d\n", s.totalIssues)
	}
	if s.fixesApplied > 0 {
		fmt.Printf("Fixes applied:  %d\n", s.fixesApplied)
	}
}
