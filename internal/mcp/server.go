package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/shell"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the page's axes to agents.
type Server struct {
	source content.Source
	opts   shell.Options
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading content from source. opts
// supplies the filtered title prefix and card reveal delays.
func NewServer(source content.Source, opts shell.Options) *Server {
	s := &Server{
		source: source,
		opts:   opts,
	}

	s.mcp = server.NewMCPServer(
		"axes",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(matchAxisTool, s.handleMatchAxis)
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(filterCategoryTool, s.handleFilterCategory)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
