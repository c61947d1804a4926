package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// PyprojectToml represents the structure of pyproject.toml.
type PyprojectToml struct {
	Tool ToolConfig `toml:"tool"`
}

// ToolConfig represents the [tool] section.
type ToolConfig struct {
	Pdgclone PdgcloneSection `toml:"pdgclone"`
}

// PdgcloneSection represents the [tool.pdgclone] section.
type PdgcloneSection struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
}

// LoadPyprojectConfig loads clone configuration from pyproject.toml,
// walking up from startDir to find it.
func LoadPyprojectConfig(startDir string) (*CloneConfig, error) {
	configPath, err := findPyprojectToml(startDir)
	if err != nil {
		return DefaultCloneConfig(), nil
	}
	return LoadPyprojectConfigFromFile(configPath)
}

// LoadPyprojectConfigFromFile loads clone configuration from a specific
// pyproject.toml path.
func LoadPyprojectConfigFromFile(configPath string) (*CloneConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var pyproject PyprojectToml
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return nil, err
	}

	defaults := DefaultCloneConfig()
	mergeCloneTomlConfig(defaults, &CloneTomlConfig{
		Input:  pyproject.Tool.Pdgclone.Input,
		Output: pyproject.Tool.Pdgclone.Output,
		Batch:  pyproject.Tool.Pdgclone.Batch,
	})
	return defaults, nil
}

// findPyprojectToml walks up the directory tree to find pyproject.toml.
func findPyprojectToml(startDir string) (string, error) {
	dir, err := normalizeSearchDir(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, "pyproject.toml")
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

// hasPdgcloneSection reports whether a pyproject.toml file carries a
// [tool.pdgclone] table, without fully unmarshaling it.
func hasPdgcloneSection(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "[tool.pdgclone")
}
