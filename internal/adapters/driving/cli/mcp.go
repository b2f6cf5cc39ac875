package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpuschat/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server that answers questions from the corpus.

The server exposes the tools 'ask' and 'get_record' and the resources
corpus://grounding, corpus://records and corpus://records/{id}.

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  corpuschat mcp serve --provider google

  # HTTP mode (for MCP Inspector, remote access)
  corpuschat mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "corpuschat": {
        "command": "/path/to/corpuschat",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

var (
	mcpFlags sessionFlags
	mcpPort  int
)

func init() {
	mcpFlags.register(mcpServeCmd)
	mcpServeCmd.Flags().IntVar(&mcpPort, "port", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	session, _, err := mcpFlags.open(cmd, mcpFlags.provider)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	ports := &mcp.Ports{Chat: session}
	if corpusService != nil {
		ports.Corpus = corpusService
		ports.CorpusPath = session.Context().CorpusPath
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
