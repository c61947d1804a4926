package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	nodes map[string]*domain.Node
}

func (f *fakeLoader) Load(path string) (*domain.Node, error) {
	n, ok := f.nodes[path]
	if !ok {
		return nil, domain.NewFileNotFoundError(path, nil)
	}
	return n, nil
}

func writePDGFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := `{"root": 1, "nodes": [{"id": 1, "name": "Program"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBatchRunner_Run_WritesOnePerPair(t *testing.T) {
	benignDir := t.TempDir()
	maliciousDir := t.TempDir()
	outDir := t.TempDir()

	b1 := writePDGFixture(t, benignDir, "b1.json")
	m1 := writePDGFixture(t, maliciousDir, "m1.json")

	loader := &fakeLoader{nodes: map[string]*domain.Node{
		b1: {ID: 1, Name: "Program"},
		m1: {ID: 2, Name: "Program"},
	}}

	runner := NewBatchRunner(loader, NewCloneService(), nil)
	outcomes, err := runner.Run(context.Background(), domain.BatchRequest{
		BenignGlob:     filepath.Join(benignDir, "*.json"),
		MaliciousGlob:  filepath.Join(maliciousDir, "*.json"),
		OutputDir:      outDir,
		MaxConcurrency: 2,
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.NoError(t, outcomes[0].Err)
	require.NotNil(t, outcomes[0].Result)

	data, err := os.ReadFile(filepath.Join(outDir, "b1_m1.json"))
	require.NoError(t, err)

	var result domain.CloneResult
	require.NoError(t, json.Unmarshal(data, &result))
}

func TestBatchRunner_Run_NoMatchesErrors(t *testing.T) {
	runner := NewBatchRunner(&fakeLoader{}, NewCloneService(), nil)
	_, err := runner.Run(context.Background(), domain.BatchRequest{
		BenignGlob:    filepath.Join(t.TempDir(), "*.json"),
		MaliciousGlob: filepath.Join(t.TempDir(), "*.json"),
	})
	assert.Error(t, err)
}

func TestBatchRunner_Run_FailedPairDoesNotAbortBatch(t *testing.T) {
	benignDir := t.TempDir()
	maliciousDir := t.TempDir()

	b1 := writePDGFixture(t, benignDir, "b1.json")
	writePDGFixture(t, maliciousDir, "m1.json") // intentionally not in loader.nodes

	loader := &fakeLoader{nodes: map[string]*domain.Node{
		b1: {ID: 1, Name: "Program"},
	}}

	runner := NewBatchRunner(loader, NewCloneService(), nil)
	outcomes, err := runner.Run(context.Background(), domain.BatchRequest{
		BenignGlob:    filepath.Join(benignDir, "*.json"),
		MaliciousGlob: filepath.Join(maliciousDir, "*.json"),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Error(t, outcomes[0].Err)
}
