package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPyprojectConfig_ReadsPdgcloneSection(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `[tool.pdgclone.input]
benign_glob = "fixtures/benign/*.json"
malicious_glob = "fixtures/malicious/*.json"

[tool.pdgclone.output]
format = "json"
path = "results"

[tool.pdgclone.batch]
max_concurrency = 8
timeout_seconds = 60
`
	configPath := filepath.Join(tempDir, "pyproject.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadPyprojectConfig(tempDir)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/benign/*.json", cfg.Input.BenignGlob)
	assert.Equal(t, "fixtures/malicious/*.json", cfg.Input.MaliciousGlob)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "results", cfg.Output.Path)
	assert.Equal(t, 8, cfg.Batch.MaxConcurrency)
	assert.Equal(t, 60, cfg.Batch.TimeoutSeconds)
}

func TestLoadPyprojectConfig_NoFileReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := LoadPyprojectConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultCloneConfig(), cfg)
}

func TestFindPyprojectToml_WalksUpDirectoryTree(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, "pyproject.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[tool.pdgclone]\n"), 0644))

	found, err := findPyprojectToml(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestHasPdgcloneSection(t *testing.T) {
	tempDir := t.TempDir()

	withSection := filepath.Join(tempDir, "with.toml")
	require.NoError(t, os.WriteFile(withSection, []byte("[tool.pdgclone.input]\n"), 0644))
	assert.True(t, hasPdgcloneSection(withSection))

	without := filepath.Join(tempDir, "without.toml")
	require.NoError(t, os.WriteFile(without, []byte("[tool.other]\n"), 0644))
	assert.False(t, hasPdgcloneSection(without))
}
