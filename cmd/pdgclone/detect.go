package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pdgclone/pdgclone/app"
	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/pdgio"
	"github.com/pdgclone/pdgclone/service"
	"github.com/spf13/cobra"
)

// DetectCommand compares one benign PDG against one malicious PDG.
type DetectCommand struct {
	benignPath    string
	maliciousPath string
	outputPath    string
	outputFormat  string
	noOpen        bool
	configPath    string
	timeout       time.Duration
}

// NewDetectCommand creates a new detect command.
func NewDetectCommand() *DetectCommand {
	return &DetectCommand{}
}

// CreateCobraCommand creates the cobra command for single-pair detection.
func (d *DetectCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect semantic clones between a benign and a malicious PDG",
		Long: `Detect compares two serialized program dependence graphs — one
benign, one malicious — and reports every maximal matching subgraph
found between them, along with per-side clone coverage.

Examples:
  # Compare two PDG JSON files, print a text report
  pdgclone detect --benign benign.json --malicious malicious.json

  # Write a JSON report to a file instead of stdout
  pdgclone detect --benign benign.json --malicious malicious.json \
      --format json --output result.json`,
		RunE: d.run,
	}

	cmd.Flags().StringVar(&d.benignPath, "benign", "", "Path or glob to the benign PDG JSON file")
	cmd.Flags().StringVar(&d.maliciousPath, "malicious", "", "Path or glob to the malicious PDG JSON file")
	cmd.Flags().StringVarP(&d.outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&d.outputFormat, "format", string(domain.OutputFormatText), "Report format: text, json, yaml, or csv")
	cmd.Flags().BoolVar(&d.noOpen, "no-open", false, "Has no effect; detect never opens a viewer")
	cmd.Flags().StringVarP(&d.configPath, "config", "c", "", "Path to a .pdgclone.toml/.pdgclone.yaml configuration file")
	cmd.Flags().DurationVar(&d.timeout, "timeout", 0, "Deadline checked before the comparison starts; a running comparison is not interrupted (0 disables it)")

	return cmd
}

func (d *DetectCommand) run(cmd *cobra.Command, args []string) error {
	req := domain.CloneRequest{
		BenignPath:    d.benignPath,
		MaliciousPath: d.maliciousPath,
		OutputPath:    d.outputPath,
		OutputFormat:  domain.OutputFormat(d.outputFormat),
		NoOpen:        d.noOpen,
		Timeout:       d.timeout,
		ConfigPath:    d.configPath,
	}

	explicitFlags := GetExplicitFlags(cmd)
	configLoader := service.NewCloneConfigurationLoaderWithFlags(explicitFlags)

	useCase := app.NewCloneUseCase(
		pdgio.NewLoader(),
		service.NewCloneService(),
		service.NewCloneOutputFormatter(),
		configLoader,
	)

	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := useCase.Execute(ctx, req); err != nil {
		return fmt.Errorf("clone detection failed: %w", err)
	}
	return nil
}

// NewDetectCmd creates and returns the detect cobra command.
func NewDetectCmd() *cobra.Command {
	return NewDetectCommand().CreateCobraCommand()
}
