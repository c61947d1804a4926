package domain

import "time"

// BatchRequest describes a batch clone-detection job: every benign PDG
// matching BenignGlob is compared against every malicious PDG matching
// MaliciousGlob, each pair analyzed independently (§5: two workers never
// share a PDG).
type BatchRequest struct {
	BenignGlob    string `json:"benign_glob" yaml:"benign_glob" mapstructure:"benign_glob"`
	MaliciousGlob string `json:"malicious_glob" yaml:"malicious_glob" mapstructure:"malicious_glob"`

	OutputDir    string       `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	OutputFormat OutputFormat `json:"output_format" yaml:"output_format" mapstructure:"output_format"`

	MaxConcurrency int           `json:"max_concurrency" yaml:"max_concurrency" mapstructure:"max_concurrency"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	ConfigPath string `json:"-" yaml:"-" mapstructure:"-"`
}

// Validate checks that the batch request names both glob patterns.
func (r BatchRequest) Validate() error {
	if r.BenignGlob == "" {
		return NewInvalidInputError("benign glob pattern is required", nil)
	}
	if r.MaliciousGlob == "" {
		return NewInvalidInputError("malicious glob pattern is required", nil)
	}
	return nil
}

// PairOutcome is the result of analyzing one (benign, malicious) pair
// within a batch run: either a CloneResult or the error that stopped it.
// A failed pair never halts the rest of the batch (§7: driver-level
// input errors skip the pair).
type PairOutcome struct {
	BenignPath    string
	MaliciousPath string
	Result        *CloneResult
	Err           error
}
