package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/agentic-research/tidy/internal/mcpserver"
)

var (
	serveTransport string
	servePort      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server exposing the organizer tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := mcpserver.New(cfg, log)

		switch serveTransport {
		case "stdio":
			log.Info("starting MCP server on stdio")
			return server.ServeStdio(s)
		case "sse":
			log.WithField("port", servePort).Info("starting MCP server with SSE transport")
			return server.NewSSEServer(s).Start(":" + servePort)
		case "httpstream":
			log.WithField("port", servePort).Info("starting MCP server with StreamableHTTP transport")
			return server.NewStreamableHTTPServer(s).Start(":" + servePort)
		default:
			return fmt.Errorf("unknown transport %q: use stdio, sse, or httpstream", serveTransport)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "stdio", "Transport: stdio, sse, or httpstream")
	serveCmd.Flags().StringVar(&servePort, "port", "8084", "Port for HTTP-based transports")
	rootCmd.AddCommand(serveCmd)
}
