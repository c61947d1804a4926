package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/mcp"
	"github.com/stretchr/testify/require"
)

func writePDGFixture(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const singleLeafPDG = `{
	"root": 1,
	"nodes": [
		{"id": 1, "name": "Program", "children": [2], "is_statement": true},
		{"id": 2, "name": "Literal", "attributes": {"raw": "1"}}
	]
}`

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]interface{}) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{Params: mcplib.CallToolParams{Arguments: args}}
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestHandleDetectClones_MissingArguments(t *testing.T) {
	res := callTool(t, mcp.HandleDetectClones, map[string]interface{}{})
	require.True(t, res.IsError)
}

func TestHandleDetectClones_PathNotFound(t *testing.T) {
	res := callTool(t, mcp.HandleDetectClones, map[string]interface{}{
		"benign_path":    "/does/not/exist.json",
		"malicious_path": "/does/not/exist.json",
	})
	require.True(t, res.IsError)
}

func TestHandleDetectClones_Success(t *testing.T) {
	benign := writePDGFixture(t, "benign.json", singleLeafPDG)
	malicious := writePDGFixture(t, "malicious.json", singleLeafPDG)

	res := callTool(t, mcp.HandleDetectClones, map[string]interface{}{
		"benign_path":    benign,
		"malicious_path": malicious,
	})
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text := mcplib.GetTextFromContent(res.Content[0])
	var result domain.CloneResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
}

func TestHandleBatchDetectClones_MissingArguments(t *testing.T) {
	res := callTool(t, mcp.HandleBatchDetectClones, map[string]interface{}{
		"benign_glob": "benign/*.json",
	})
	require.True(t, res.IsError)
}

func TestHandleBatchDetectClones_Success(t *testing.T) {
	dir := t.TempDir()
	benignDir := filepath.Join(dir, "benign")
	maliciousDir := filepath.Join(dir, "malicious")
	require.NoError(t, os.MkdirAll(benignDir, 0755))
	require.NoError(t, os.MkdirAll(maliciousDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(benignDir, "a.json"), []byte(singleLeafPDG), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(maliciousDir, "a.json"), []byte(singleLeafPDG), 0644))

	res := callTool(t, mcp.HandleBatchDetectClones, map[string]interface{}{
		"benign_glob":    filepath.Join(benignDir, "*.json"),
		"malicious_glob": filepath.Join(maliciousDir, "*.json"),
	})
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text := mcplib.GetTextFromContent(res.Content[0])
	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &summaries))
	require.Len(t, summaries, 1)
}
