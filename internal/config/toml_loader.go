package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// CloneTomlConfig is the structure of .pdgclone.toml: a single unified
// [input]/[output]/[batch] table set, unlike the teacher's per-analyzer
// section split, since this module has exactly one analysis.
type CloneTomlConfig struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
}

// TomlConfigLoader discovers and loads pdgclone's TOML configuration,
// grounded on the teacher's ruff-like ".pdgclone.toml, then pyproject.toml,
// then defaults" priority chain.
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML configuration loader.
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig loads configuration with priority:
//  1. .pdgclone.toml (dedicated config file)
//  2. pyproject.toml (with [tool.pdgclone] section)
//  3. defaults
//
// path may be a direct file path or a directory to search upward from.
func (l *TomlConfigLoader) LoadConfig(path string) (*CloneConfig, error) {
	if path != "" {
		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				return l.loadFromFile(path)
			}
		} else if isLikelyConfigFilePath(path) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	startDir := path
	if startDir == "" {
		startDir = "."
	}

	if cfg, err := l.loadFromDedicatedToml(startDir); err == nil {
		return cfg, nil
	}

	if cfg, err := l.loadFromPyprojectToml(startDir); err == nil {
		return cfg, nil
	}

	return DefaultCloneConfig(), nil
}

func (l *TomlConfigLoader) loadFromFile(filePath string) (*CloneConfig, error) {
	if filepath.Base(filePath) == "pyproject.toml" {
		return LoadPyprojectConfigFromFile(filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var parsed CloneTomlConfig
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	defaults := DefaultCloneConfig()
	mergeCloneTomlConfig(defaults, &parsed)
	return defaults, nil
}

func (l *TomlConfigLoader) loadFromPyprojectToml(startDir string) (*CloneConfig, error) {
	if _, err := l.findPyprojectToml(startDir); err != nil {
		return nil, err
	}
	return LoadPyprojectConfig(startDir)
}

func (l *TomlConfigLoader) loadFromDedicatedToml(startDir string) (*CloneConfig, error) {
	configPath, err := l.findDedicatedToml(startDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var parsed CloneTomlConfig
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	defaults := DefaultCloneConfig()
	mergeCloneTomlConfig(defaults, &parsed)
	return defaults, nil
}

func (l *TomlConfigLoader) findPyprojectToml(startDir string) (string, error) {
	return findPyprojectToml(startDir)
}

// findDedicatedToml walks up the directory tree looking for .pdgclone.toml.
func (l *TomlConfigLoader) findDedicatedToml(startDir string) (string, error) {
	dir, err := normalizeSearchDir(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ".pdgclone.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// ResolveConfigPath resolves the effective configuration file path once.
//   - If configPath is provided, it must exist; files are used directly and
//     directories are searched.
//   - If configPath is empty, targetPath (or cwd) is searched.
func (l *TomlConfigLoader) ResolveConfigPath(configPath string, targetPath string) (string, error) {
	if configPath != "" {
		info, err := os.Stat(configPath)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", configPath)
		}
		if !info.IsDir() {
			return configPath, nil
		}
		return l.FindConfigFileFromPath(configPath), nil
	}

	searchPath := targetPath
	if searchPath == "" {
		searchPath = "."
	}

	return l.FindConfigFileFromPath(searchPath), nil
}

// FindConfigFileFromPath discovers a config file from the given path.
// Priority: .pdgclone.toml, then pyproject.toml containing [tool.pdgclone].
func (l *TomlConfigLoader) FindConfigFileFromPath(startPath string) string {
	dir, err := normalizeSearchDir(startPath)
	if err != nil {
		return ""
	}

	current := dir
	for {
		dedicated := filepath.Join(current, ".pdgclone.toml")
		if _, err := os.Stat(dedicated); err == nil {
			return dedicated
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	current = dir
	for {
		pyprojectPath := filepath.Join(current, "pyproject.toml")
		if _, err := os.Stat(pyprojectPath); err == nil && hasPdgcloneSection(pyprojectPath) {
			return pyprojectPath
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return ""
}

func isLikelyConfigFilePath(path string) bool {
	base := filepath.Base(path)
	if base == ".pdgclone.toml" || base == "pyproject.toml" {
		return true
	}
	return strings.HasSuffix(base, ".toml")
}

func normalizeSearchDir(path string) (string, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		return filepath.Dir(absPath), nil
	}

	return absPath, nil
}

// mergeCloneTomlConfig merges a parsed .pdgclone.toml table set into
// defaults, field by field — unset strings/zero ints in the parsed table
// leave the default untouched.
func mergeCloneTomlConfig(defaults *CloneConfig, parsed *CloneTomlConfig) {
	if parsed.Input.BenignPath != "" {
		defaults.Input.BenignPath = parsed.Input.BenignPath
	}
	if parsed.Input.MaliciousPath != "" {
		defaults.Input.MaliciousPath = parsed.Input.MaliciousPath
	}
	if parsed.Input.BenignGlob != "" {
		defaults.Input.BenignGlob = parsed.Input.BenignGlob
	}
	if parsed.Input.MaliciousGlob != "" {
		defaults.Input.MaliciousGlob = parsed.Input.MaliciousGlob
	}

	if parsed.Output.Format != "" {
		defaults.Output.Format = parsed.Output.Format
	}
	if parsed.Output.Path != "" {
		defaults.Output.Path = parsed.Output.Path
	}
	defaults.Output.NoOpen = defaults.Output.NoOpen || parsed.Output.NoOpen

	if parsed.Batch.MaxConcurrency > 0 {
		defaults.Batch.MaxConcurrency = parsed.Batch.MaxConcurrency
	}
	if parsed.Batch.TimeoutSeconds > 0 {
		defaults.Batch.TimeoutSeconds = parsed.Batch.TimeoutSeconds
	}
}

// GetSupportedConfigFiles returns the list of supported TOML config files
// in order of precedence.
func (l *TomlConfigLoader) GetSupportedConfigFiles() []string {
	return []string{
		".pdgclone.toml",
		"pyproject.toml",
	}
}
