package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pdgclone/pdgclone/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "pdgclone"
	serverVersion = "1.0.0"
)

func main() {
	// MCP uses stdout for JSON-RPC; send logs to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	mcp.RegisterTools(server)

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - detect_clones: compare one benign PDG against one malicious PDG")
	log.Println("  - batch_detect_clones: compare every matching (benign, malicious) PDG pair")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
