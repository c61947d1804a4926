package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleCloneResult() *domain.CloneResult {
	return &domain.CloneResult{
		Benign:     "benign.json",
		Malicious:  "malicious.json",
		Similar:    [][]string{{"ExpressionStatement", "Literal"}},
		Dissimilar: []string{"IfStatement"},
		PbTokens: []domain.TokenMismatch{
			{Malicious: "Num", Benign: "Str"},
		},
		PercentBenign:    domain.Coverage{Cloned: 2, Total: 4},
		PercentMalicious: domain.Coverage{Cloned: 2, Total: 5},
		Benchmarks:       map[string]float64{"clones_detected": 0.01, "clones_selected": 0.02},
	}
}

func TestCloneOutputFormatter_Text(t *testing.T) {
	f := NewCloneOutputFormatter()
	out, err := f.FormatCloneResult(sampleCloneResult(), domain.OutputFormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "benign.json")
	assert.Contains(t, out, "malicious.json")
	assert.Contains(t, out, "ExpressionStatement, Literal")
	assert.Contains(t, out, "IfStatement")
	assert.Contains(t, out, "Num (numeric) / Str (string)")
}

func TestCloneOutputFormatter_JSON(t *testing.T) {
	f := NewCloneOutputFormatter()
	out, err := f.FormatCloneResult(sampleCloneResult(), domain.OutputFormatJSON)
	require.NoError(t, err)

	var decoded domain.CloneResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "benign.json", decoded.Benign)
	assert.Equal(t, [][]string{{"ExpressionStatement", "Literal"}}, decoded.Similar)
}

func TestCloneOutputFormatter_YAML(t *testing.T) {
	f := NewCloneOutputFormatter()
	out, err := f.FormatCloneResult(sampleCloneResult(), domain.OutputFormatYAML)
	require.NoError(t, err)

	var decoded domain.CloneResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "malicious.json", decoded.Malicious)
}

func TestCloneOutputFormatter_CSV(t *testing.T) {
	f := NewCloneOutputFormatter()
	out, err := f.FormatCloneResult(sampleCloneResult(), domain.OutputFormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "kind,group_index,value", lines[0])
	assert.Contains(t, out, "similar,0,ExpressionStatement")
	assert.Contains(t, out, "dissimilar,,IfStatement")
	assert.Contains(t, out, "pb_token,,malicious=Num benign=Str")
}

func TestCloneOutputFormatter_UnsupportedFormat(t *testing.T) {
	f := NewCloneOutputFormatter()
	_, err := f.FormatCloneResult(sampleCloneResult(), domain.OutputFormat("html"))
	assert.Error(t, err)
}

func TestCloneOutputFormatter_EmptyResult(t *testing.T) {
	f := NewCloneOutputFormatter()
	out, err := f.FormatCloneResult(&domain.CloneResult{}, domain.OutputFormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "No clones detected.")
}
