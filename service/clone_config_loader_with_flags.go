package service

import (
	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/config"
)

// CloneConfigurationLoaderWithFlags wraps CloneConfigurationLoader with
// explicit-flag tracking, so a config-file value only loses to a
// command-line flag the user actually typed.
type CloneConfigurationLoaderWithFlags struct {
	loader        *CloneConfigurationLoader
	explicitFlags map[string]bool
}

// NewCloneConfigurationLoaderWithFlags creates a loader that tracks which
// flags the user explicitly set.
func NewCloneConfigurationLoaderWithFlags(explicitFlags map[string]bool) *CloneConfigurationLoaderWithFlags {
	return &CloneConfigurationLoaderWithFlags{
		loader:        NewCloneConfigurationLoader(),
		explicitFlags: explicitFlags,
	}
}

// LoadCloneConfig loads clone configuration from the specified path.
func (cl *CloneConfigurationLoaderWithFlags) LoadCloneConfig(path string) (*domain.CloneRequest, error) {
	return cl.loader.LoadCloneConfig(path)
}

// MergeConfig merges CLI flags (override) with a config-file value
// (base), keeping the config-file value for any flag the user didn't
// explicitly set.
func (cl *CloneConfigurationLoaderWithFlags) MergeConfig(base, override *domain.CloneRequest) *domain.CloneRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	merged.BenignPath = config.MergeString(merged.BenignPath, override.BenignPath, "benign", cl.explicitFlags)
	merged.MaliciousPath = config.MergeString(merged.MaliciousPath, override.MaliciousPath, "malicious", cl.explicitFlags)
	merged.OutputPath = config.MergeString(merged.OutputPath, override.OutputPath, "output", cl.explicitFlags)
	merged.NoOpen = config.MergeBool(merged.NoOpen, override.NoOpen, "no-open", cl.explicitFlags)

	if config.WasExplicitlySet(cl.explicitFlags, "format") {
		merged.OutputFormat = override.OutputFormat
	}
	if override.Timeout > 0 {
		merged.Timeout = override.Timeout
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}
