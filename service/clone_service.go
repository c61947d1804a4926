package service

import (
	"context"
	"path/filepath"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/analyzer"
)

// CloneService implements domain.CloneService by running the dependency-
// free analyzer pipeline against an already-loaded PDG pair.
type CloneService struct{}

// NewCloneService creates a new clone service.
func NewCloneService() *CloneService {
	return &CloneService{}
}

// DetectClones runs the clone-detection pipeline on benign and malicious,
// respecting ctx cancellation before the (potentially expensive)
// analysis starts.
func (s *CloneService) DetectClones(ctx context.Context, benign, malicious *domain.Node, req domain.CloneRequest) (*domain.CloneResult, error) {
	if ctx == nil {
		return nil, domain.NewInvalidInputError("context cannot be nil", nil)
	}
	if benign == nil || malicious == nil {
		return nil, domain.NewInvalidInputError("benign and malicious PDG roots are required", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewCancelledError("clone detection cancelled before starting", err)
	}

	result, err := analyzer.Detect(benign, malicious)
	if err != nil {
		return nil, domain.NewAnalysisError("clone detection failed", err)
	}

	result.Benign = displayPath(req.BenignPath)
	result.Malicious = displayPath(req.MaliciousPath)
	return result, nil
}

func displayPath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}
