package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/deckbuilder/internal/config"
	dbmcp "github.com/peterkuimelis/deckbuilder/internal/mcp"
)

func main() {
	kingdoms := flag.String("kingdoms", "kingdoms.yaml", "path to kingdoms YAML file")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	// logs go to stderr; stdout carries the MCP protocol
	logger, err := config.NewLogger(*logLevel, "json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dbmcp.SetKingdomsFile(*kingdoms)
	dbmcp.SetLogger(logger)

	s := server.NewMCPServer("deckbuilder", "1.0.0")
	dbmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
