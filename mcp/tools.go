package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all pdgclone MCP tools with the server.
func RegisterTools(s *server.MCPServer) {
	// Tool 1: detect_clones - single-pair semantic clone detection
	s.AddTool(mcp.NewTool("detect_clones",
		mcp.WithDescription("Detect semantic clones between a benign and a malicious program dependence graph (PDG)"),
		mcp.WithString("benign_path",
			mcp.Required(),
			mcp.Description("Path or glob to the benign PDG JSON file")),
		mcp.WithString("malicious_path",
			mcp.Required(),
			mcp.Description("Path or glob to the malicious PDG JSON file")),
	), HandleDetectClones)

	// Tool 2: batch_detect_clones - many-pairs semantic clone detection
	s.AddTool(mcp.NewTool("batch_detect_clones",
		mcp.WithDescription("Detect semantic clones across every (benign, malicious) PDG pair matched by two glob patterns"),
		mcp.WithString("benign_glob",
			mcp.Required(),
			mcp.Description("Glob pattern matching benign PDG JSON files")),
		mcp.WithString("malicious_glob",
			mcp.Required(),
			mcp.Description("Glob pattern matching malicious PDG JSON files")),
		mcp.WithNumber("max_concurrency",
			mcp.Description("Maximum number of pairs analyzed concurrently (default: 4)")),
	), HandleBatchDetectClones)
}
