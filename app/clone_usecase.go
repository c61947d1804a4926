package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdgclone/pdgclone/domain"
	svc "github.com/pdgclone/pdgclone/service"
)

// CloneUseCase orchestrates a single-pair clone-detection run: resolve
// the benign/malicious PDG paths, load them, run detection, format the
// result, and write it out.
type CloneUseCase struct {
	loader       domain.PDGLoader
	service      domain.CloneService
	formatter    domain.CloneOutputFormatter
	configLoader domain.CloneConfigurationLoader
	output       domain.ReportWriter
}

// NewCloneUseCase creates a new clone use case with the given
// dependencies. Output goes through a file/stdout writer unless
// WithOutputWriter replaces it.
func NewCloneUseCase(
	loader domain.PDGLoader,
	service domain.CloneService,
	formatter domain.CloneOutputFormatter,
	configLoader domain.CloneConfigurationLoader,
) *CloneUseCase {
	return &CloneUseCase{
		loader:       loader,
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// WithOutputWriter overrides the default output writer (used by tests
// to capture the rendered report in memory).
func (uc *CloneUseCase) WithOutputWriter(w domain.ReportWriter) *CloneUseCase {
	uc.output = w
	return uc
}

// Execute runs the clone-detection use case for a single (benign,
// malicious) pair.
func (uc *CloneUseCase) Execute(ctx context.Context, req domain.CloneRequest) error {
	if req.ConfigPath != "" && uc.configLoader != nil {
		configReq, err := uc.configLoader.LoadCloneConfig(req.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if fm, ok := uc.configLoader.(interface {
			MergeConfig(base, override *domain.CloneRequest) *domain.CloneRequest
		}); ok {
			req = *fm.MergeConfig(configReq, &req)
		} else {
			req = mergeCloneRequest(*configReq, req)
		}
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	benignPath, err := ResolvePDGPath(req.BenignPath)
	if err != nil {
		return fmt.Errorf("failed to resolve benign PDG path: %w", err)
	}
	maliciousPath, err := ResolvePDGPath(req.MaliciousPath)
	if err != nil {
		return fmt.Errorf("failed to resolve malicious PDG path: %w", err)
	}

	benign, err := uc.loader.Load(benignPath)
	if err != nil {
		return fmt.Errorf("failed to load benign PDG: %w", err)
	}
	malicious, err := uc.loader.Load(maliciousPath)
	if err != nil {
		return fmt.Errorf("failed to load malicious PDG: %w", err)
	}

	req.BenignPath = benignPath
	req.MaliciousPath = maliciousPath

	result, err := uc.service.DetectClones(ctx, benign, malicious, req)
	if err != nil {
		return fmt.Errorf("clone detection failed: %w", err)
	}

	rendered, err := uc.formatter.FormatCloneResult(result, req.OutputFormat)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	return uc.output.Write(os.Stdout, req.OutputPath, req.OutputFormat, req.NoOpen, func(w io.Writer) error {
		_, err := w.Write([]byte(rendered))
		return err
	})
}

// mergeCloneRequest layers override on top of base: any field override
// left at its zero value keeps base's value.
func mergeCloneRequest(base, override domain.CloneRequest) domain.CloneRequest {
	merged := base
	if override.BenignPath != "" {
		merged.BenignPath = override.BenignPath
	}
	if override.MaliciousPath != "" {
		merged.MaliciousPath = override.MaliciousPath
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	merged.NoOpen = merged.NoOpen || override.NoOpen
	if override.Timeout > 0 {
		merged.Timeout = override.Timeout
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	return merged
}
