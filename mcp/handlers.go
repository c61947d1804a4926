package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pdgclone/pdgclone/app"
	"github.com/pdgclone/pdgclone/domain"
)

var defaultDeps = NewDependencies()

// HandleDetectClones handles the detect_clones tool: compare one benign
// PDG against one malicious PDG and return the CloneResult as JSON.
func HandleDetectClones(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	benignPath, ok := args["benign_path"].(string)
	if !ok || benignPath == "" {
		return mcp.NewToolResultError("benign_path parameter is required and must be a string"), nil
	}
	maliciousPath, ok := args["malicious_path"].(string)
	if !ok || maliciousPath == "" {
		return mcp.NewToolResultError("malicious_path parameter is required and must be a string"), nil
	}

	resolvedBenign, err := app.ResolvePDGPath(benignPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("benign PDG not found: %v", err)), nil
	}
	resolvedMalicious, err := app.ResolvePDGPath(maliciousPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("malicious PDG not found: %v", err)), nil
	}

	benign, err := defaultDeps.loader.Load(resolvedBenign)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load benign PDG: %v", err)), nil
	}
	malicious, err := defaultDeps.loader.Load(resolvedMalicious)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load malicious PDG: %v", err)), nil
	}

	req := domain.CloneRequest{BenignPath: resolvedBenign, MaliciousPath: resolvedMalicious}
	result, err := defaultDeps.service.DetectClones(ctx, benign, malicious, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clone detection failed: %v", err)), nil
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleBatchDetectClones handles the batch_detect_clones tool: compare
// every benign PDG matched by benign_glob against every malicious PDG
// matched by malicious_glob, returning a JSON array of pair outcomes.
func HandleBatchDetectClones(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	benignGlob, ok := args["benign_glob"].(string)
	if !ok || benignGlob == "" {
		return mcp.NewToolResultError("benign_glob parameter is required and must be a string"), nil
	}
	maliciousGlob, ok := args["malicious_glob"].(string)
	if !ok || maliciousGlob == "" {
		return mcp.NewToolResultError("malicious_glob parameter is required and must be a string"), nil
	}

	maxConcurrency := 4
	if mc, ok := args["max_concurrency"].(float64); ok && mc > 0 {
		maxConcurrency = int(mc)
	}

	req := domain.BatchRequest{
		BenignGlob:     benignGlob,
		MaliciousGlob:  maliciousGlob,
		MaxConcurrency: maxConcurrency,
	}

	runner := defaultDeps.BuildBatchRunner()
	outcomes, err := runner.Run(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("batch run failed: %v", err)), nil
	}

	type pairSummary struct {
		BenignPath    string              `json:"benign_path"`
		MaliciousPath string              `json:"malicious_path"`
		Result        *domain.CloneResult `json:"result,omitempty"`
		Error         string              `json:"error,omitempty"`
	}

	summaries := make([]pairSummary, 0, len(outcomes))
	for _, outcome := range outcomes {
		s := pairSummary{BenignPath: outcome.BenignPath, MaliciousPath: outcome.MaliciousPath, Result: outcome.Result}
		if outcome.Err != nil {
			s.Error = outcome.Err.Error()
		}
		summaries = append(summaries, s)
	}

	jsonData, err := json.Marshal(summaries)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
