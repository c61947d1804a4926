package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pdgclone/pdgclone/domain"
)

// BatchRunner drives clone detection across every (benign, malicious)
// pair matched by a BatchRequest's glob patterns, bounding concurrency
// to MaxConcurrency workers. Each worker loads its own copy of both PDGs
// — nothing is shared across goroutines — and persists one JSON result
// file per pair.
type BatchRunner struct {
	loader  domain.PDGLoader
	service domain.CloneService
	report  BatchProgressReporter
}

// NewBatchRunner creates a BatchRunner. report may be nil, in which case
// progress is discarded.
func NewBatchRunner(loader domain.PDGLoader, svc domain.CloneService, report BatchProgressReporter) *BatchRunner {
	if report == nil {
		report = NewNoOpBatchProgressReporter()
	}
	return &BatchRunner{loader: loader, service: svc, report: report}
}

// Run expands req's glob patterns, analyzes every resulting pair with a
// bounded worker pool, writes one JSON file per pair into req.OutputDir,
// and returns every pair's outcome (including failures — a failed pair
// never aborts the rest of the batch).
func (r *BatchRunner) Run(ctx context.Context, req domain.BatchRequest) ([]domain.PairOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	benignPaths, err := doublestar.FilepathGlob(req.BenignGlob)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid benign glob pattern", err)
	}
	maliciousPaths, err := doublestar.FilepathGlob(req.MaliciousGlob)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid malicious glob pattern", err)
	}
	if len(benignPaths) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("benign glob %q matched no files", req.BenignGlob), nil)
	}
	if len(maliciousPaths) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("malicious glob %q matched no files", req.MaliciousGlob), nil)
	}

	if req.OutputDir != "" {
		if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
			return nil, domain.NewOutputError("failed to create batch output directory", err)
		}
	}

	type job struct {
		benign, malicious string
	}
	var jobs []job
	for _, b := range benignPaths {
		for _, m := range maliciousPaths {
			jobs = append(jobs, job{benign: b, malicious: m})
		}
	}

	concurrency := req.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]domain.PairOutcome, len(jobs))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes[i] = r.runOne(ctx, j.benign, j.malicious, req)
			if err := r.report.Add(1); err != nil {
				// Progress rendering is best-effort; never fail the batch for it.
				_ = err
			}
		}(i, j)
	}

	wg.Wait()
	_ = r.report.Finish()

	return outcomes, nil
}

func (r *BatchRunner) runOne(ctx context.Context, benignPath, maliciousPath string, req domain.BatchRequest) domain.PairOutcome {
	outcome := domain.PairOutcome{BenignPath: benignPath, MaliciousPath: maliciousPath}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	benign, err := r.loader.Load(benignPath)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	malicious, err := r.loader.Load(maliciousPath)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	cloneReq := domain.CloneRequest{BenignPath: benignPath, MaliciousPath: maliciousPath}
	result, err := r.service.DetectClones(ctx, benign, malicious, cloneReq)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Result = result

	if req.OutputDir != "" {
		if err := writePairResult(req.OutputDir, benignPath, maliciousPath, result); err != nil {
			outcome.Err = err
		}
	}

	return outcome
}

// writePairResult persists result as "<benign>_<malicious>.json" under
// dir, using each input file's base name with its extension stripped.
func writePairResult(dir, benignPath, maliciousPath string, result *domain.CloneResult) error {
	name := fmt.Sprintf("%s_%s.json", stemName(benignPath), stemName(maliciousPath))
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return domain.NewOutputError("failed to marshal pair result", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return domain.NewOutputError("failed to write pair result", err)
	}
	return nil
}

func stemName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
