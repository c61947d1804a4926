package domain

import (
	"context"
	"time"
)

// TokenMismatch records one pair of differing literal categories found at
// corresponding positions in a matched clone group (malicious side first,
// benign side second, following the reference's [mal_type, ben_type]
// ordering).
type TokenMismatch struct {
	Malicious string `json:"malicious" yaml:"malicious"`
	Benign    string `json:"benign" yaml:"benign"`
}

// Coverage is a [cloned, total] node-count pair for one PDG side.
type Coverage struct {
	Cloned int `json:"cloned" yaml:"cloned"`
	Total  int `json:"total" yaml:"total"`
}

// CloneResult is the output of a single (benign, malicious) PDG comparison.
type CloneResult struct {
	Malicious string `json:"malicious" yaml:"malicious"`
	Benign    string `json:"benign" yaml:"benign"`

	// Similar holds, for each surviving clone group, the ordered list of
	// AST node names on the malicious side (comments excluded).
	Similar [][]string `json:"similar" yaml:"similar"`

	// Dissimilar holds the names of malicious-side nodes that never
	// joined a surviving clone group (comments excluded).
	Dissimilar []string `json:"dissimilar" yaml:"dissimilar"`

	// PbTokens holds the literal-type mismatches found across matched
	// groups by the deduplicator's change-literal step.
	PbTokens []TokenMismatch `json:"pb_tokens" yaml:"pb_tokens"`

	PercentBenign    Coverage `json:"percent_benign" yaml:"percent_benign"`
	PercentMalicious Coverage `json:"percent_malicious" yaml:"percent_malicious"`

	// Benchmarks records wall-clock timings for named phases
	// ("clones_detected", "clones_selected").
	Benchmarks map[string]float64 `json:"benchmarks,omitempty" yaml:"benchmarks,omitempty"`
}

// CloneRequest describes one clone-detection job: a benign/malicious PDG
// pair plus where the caller wants the result written.
type CloneRequest struct {
	BenignPath    string `json:"benign_path" yaml:"benign_path" mapstructure:"benign_path"`
	MaliciousPath string `json:"malicious_path" yaml:"malicious_path" mapstructure:"malicious_path"`

	OutputPath   string       `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
	OutputFormat OutputFormat `json:"output_format" yaml:"output_format" mapstructure:"output_format"`
	NoOpen       bool         `json:"no_open" yaml:"no_open" mapstructure:"no_open"`

	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	ConfigPath string `json:"-" yaml:"-" mapstructure:"-"`
}

// DefaultCloneRequest returns a CloneRequest with the project's baseline
// settings: text output, no timeout.
func DefaultCloneRequest() CloneRequest {
	return CloneRequest{
		OutputFormat: OutputFormatText,
	}
}

// Validate checks that the request names both PDG inputs.
func (r CloneRequest) Validate() error {
	if r.BenignPath == "" {
		return NewInvalidInputError("benign PDG path is required", nil)
	}
	if r.MaliciousPath == "" {
		return NewInvalidInputError("malicious PDG path is required", nil)
	}
	return nil
}

// CloneService detects whether a benign PDG and a malicious PDG share
// semantic clones, given their already-parsed root nodes.
type CloneService interface {
	DetectClones(ctx context.Context, benign, malicious *Node, req CloneRequest) (*CloneResult, error)
}

// CloneOutputFormatter renders a CloneResult for a given OutputFormat.
type CloneOutputFormatter interface {
	FormatCloneResult(result *CloneResult, format OutputFormat) (string, error)
}

// CloneConfigurationLoader loads clone-detection configuration from a
// project config file (such as .pdgclone.yaml) as a CloneRequest.
type CloneConfigurationLoader interface {
	LoadCloneConfig(path string) (*CloneRequest, error)
}

// PDGLoader loads a serialized PDG from disk into a Node tree. PDG
// construction from source is out of scope; this is the narrow
// deserialization boundary the batch driver and CLI depend on.
type PDGLoader interface {
	Load(path string) (*Node, error)
}
