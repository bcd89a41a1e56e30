package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ludo-technologies/cmreport/internal/version"
	"github.com/ludo-technologies/cmreport/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "cmreport"

func main() {
	configPath := flag.String("config", "", "configuration file (default: discovered from the input directory)")
	flag.Parse()

	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	mcp.RegisterTools(server, mcp.NewHandlerSet(mcp.NewDependencies(nil, *configPath)))

	log.Printf("Starting %s MCP server v%s\n", serverName, version.Short())
	log.Println("Registered tools:")
	log.Println("  - convert_metrics_report: Convert a metrics XML report to CSV or HTML")
	log.Println("  - summarize_metrics_report: Summarize severities and hotspots")
	log.Println("Server ready - waiting for MCP client connection...")

	// Blocks until the client disconnects
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
