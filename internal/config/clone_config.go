// Package config loads pdgclone's configuration from .pdgclone.toml,
// pyproject.toml-style project files, and command-line flag overrides,
// following the same discovery-then-merge pattern as the rest of the
// teacher's config package.
package config

import "github.com/pdgclone/pdgclone/domain"

// CloneConfig is the on-disk configuration shape for a single detect
// run or a batch run. Zero values mean "not set"; callers merge this
// against domain defaults and explicit flags.
type CloneConfig struct {
	Input  InputConfig  `mapstructure:"input" toml:"input" yaml:"input"`
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
	Batch  BatchConfig  `mapstructure:"batch" toml:"batch" yaml:"batch"`
}

// InputConfig names the two PDG JSON files (single-pair mode) or the two
// glob patterns (batch mode) to compare.
type InputConfig struct {
	BenignPath    string `mapstructure:"benign_path" toml:"benign_path" yaml:"benign_path"`
	MaliciousPath string `mapstructure:"malicious_path" toml:"malicious_path" yaml:"malicious_path"`
	BenignGlob    string `mapstructure:"benign_glob" toml:"benign_glob" yaml:"benign_glob"`
	MaliciousGlob string `mapstructure:"malicious_glob" toml:"malicious_glob" yaml:"malicious_glob"`
}

// OutputConfig controls how and where results are written.
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" yaml:"format"`
	Path   string `mapstructure:"path" toml:"path" yaml:"path"`
	NoOpen bool   `mapstructure:"no_open" toml:"no_open" yaml:"no_open"`
}

// BatchConfig bounds worker concurrency and per-pair timeout for a batch run.
type BatchConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency" toml:"max_concurrency" yaml:"max_concurrency"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" toml:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultCloneConfig returns the configuration pdgclone ships with when no
// config file is present.
func DefaultCloneConfig() *CloneConfig {
	return &CloneConfig{
		Output: OutputConfig{
			Format: string(domain.OutputFormatText),
		},
		Batch: BatchConfig{
			MaxConcurrency: 4,
			TimeoutSeconds: 30,
		},
	}
}

// ToCloneRequest builds a domain.CloneRequest from a single-pair config,
// filling in any field the config left zero with DefaultCloneRequest's
// values.
func (c *CloneConfig) ToCloneRequest() domain.CloneRequest {
	req := domain.DefaultCloneRequest()
	req.BenignPath = c.Input.BenignPath
	req.MaliciousPath = c.Input.MaliciousPath
	if c.Output.Format != "" {
		req.OutputFormat = domain.OutputFormat(c.Output.Format)
	}
	req.OutputPath = c.Output.Path
	req.NoOpen = c.Output.NoOpen
	return req
}
