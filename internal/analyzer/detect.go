package analyzer

import (
	"time"

	"github.com/pdgclone/pdgclone/domain"
)

// Detect runs the full clone-detection pipeline over one (benign,
// malicious) PDG pair: discovery, deduplication, literal-mismatch
// collection, annotation, the dissimilar walk, and coverage, timing the
// discovery phase ("clones_detected") and the selection phase
// ("clones_selected") separately.
func Detect(benign, malicious *domain.Node) (*domain.CloneResult, error) {
	result := &domain.CloneResult{
		Benchmarks: make(map[string]float64),
	}

	detectStart := time.Now()
	store, err := FindAllClones(benign, malicious)
	if err != nil {
		return nil, err
	}
	result.Benchmarks["clones_detected"] = time.Since(detectStart).Seconds()

	selectStart := time.Now()
	Deduplicate(store)
	ChangeLiterals(store, result)
	Annotate(store, result)
	Dissimilar(malicious, result)
	result.Benchmarks["clones_selected"] = time.Since(selectStart).Seconds()

	result.PercentBenign = Coverage(benign)
	result.PercentMalicious = Coverage(malicious)
	if result.PbTokens == nil {
		result.PbTokens = []domain.TokenMismatch{}
	}
	if result.Similar == nil {
		result.Similar = [][]string{}
	}
	if result.Dissimilar == nil {
		result.Dissimilar = []string{}
	}
	return result, nil
}
