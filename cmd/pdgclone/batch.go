package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pdgclone/pdgclone/app"
	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/pdgio"
	"github.com/pdgclone/pdgclone/service"
	"github.com/spf13/cobra"
)

// BatchCommand runs clone detection across every (benign, malicious) pair
// matched by two glob patterns.
type BatchCommand struct {
	benignGlob     string
	maliciousGlob  string
	outputDir      string
	outputFormat   string
	maxConcurrency int
	timeout        time.Duration
	configPath     string
	noProgress     bool
}

// NewBatchCommand creates a new batch command.
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{}
}

// CreateCobraCommand creates the cobra command for batch detection.
func (b *BatchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Detect clones across every matching (benign, malicious) PDG pair",
		Long: `Batch expands --benign-glob and --malicious-glob into two sets of
PDG JSON files, compares every resulting pair with a bounded worker
pool, and writes one JSON result file per pair into --output-dir. A
pair that fails to load or analyze is recorded as a failure and never
aborts the rest of the run.

Examples:
  pdgclone batch --benign-glob 'benign/*.json' --malicious-glob 'malicious/*.json' \
      --output-dir results/ --max-concurrency 8`,
		RunE: b.run,
	}

	cmd.Flags().StringVar(&b.benignGlob, "benign-glob", "", "Glob pattern matching benign PDG JSON files")
	cmd.Flags().StringVar(&b.maliciousGlob, "malicious-glob", "", "Glob pattern matching malicious PDG JSON files")
	cmd.Flags().StringVarP(&b.outputDir, "output-dir", "o", "", "Directory to write one JSON result per pair")
	cmd.Flags().StringVar(&b.outputFormat, "format", string(domain.OutputFormatJSON), "Result format persisted per pair (informational; batch always writes JSON)")
	cmd.Flags().IntVar(&b.maxConcurrency, "max-concurrency", 4, "Maximum number of pairs analyzed concurrently")
	cmd.Flags().DurationVar(&b.timeout, "timeout", 30*time.Second, "Per-pair deadline, checked before each pair's comparison starts; a running comparison is not interrupted")
	cmd.Flags().StringVarP(&b.configPath, "config", "c", "", "Configuration file path (accepted, but batch does not read a configuration file)")
	cmd.Flags().BoolVar(&b.noProgress, "no-progress", false, "Disable the terminal progress bar")

	return cmd
}

func (b *BatchCommand) run(cmd *cobra.Command, args []string) error {
	req := domain.BatchRequest{
		BenignGlob:     b.benignGlob,
		MaliciousGlob:  b.maliciousGlob,
		OutputDir:      b.outputDir,
		OutputFormat:   domain.OutputFormat(b.outputFormat),
		MaxConcurrency: b.maxConcurrency,
		Timeout:        b.timeout,
		ConfigPath:     b.configPath,
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var reporter service.BatchProgressReporter
	if b.noProgress || !isInteractiveEnvironment() {
		reporter = service.NewNoOpBatchProgressReporter()
	} else {
		benignPaths, _ := app.ResolvePDGGlob(b.benignGlob)
		maliciousPaths, _ := app.ResolvePDGGlob(b.maliciousGlob)
		reporter = service.NewBatchProgressBar(cmd.ErrOrStderr(), len(benignPaths)*len(maliciousPaths))
	}

	runner := service.NewBatchRunner(pdgio.NewLoader(), service.NewCloneService(), reporter)

	ctx := context.Background()
	outcomes, err := runner.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s / %s: %v\n", outcome.BenignPath, outcome.MaliciousPath, outcome.Err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "analyzed %d pair(s), %d failed\n", len(outcomes), failed)
	return nil
}

// NewBatchCmd creates and returns the batch cobra command.
func NewBatchCmd() *cobra.Command {
	return NewBatchCommand().CreateCobraCommand()
}
