package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the pillar catalog to AI agents.
type Server struct {
	catalog *catalog.Catalog
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given catalog.
func NewServer(c *catalog.Catalog) *Server {
	s := &Server{catalog: c}

	s.mcp = server.NewMCPServer(
		"pillars",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPillarsTool, s.handleListPillars)
	s.mcp.AddTool(getPillarTool, s.handleGetPillar)
	s.mcp.AddTool(nextPillarTool, s.handleNextPillar)
	s.mcp.AddTool(previousPillarTool, s.handlePreviousPillar)
	s.mcp.AddTool(searchPillarsTool, s.handleSearchPillars)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
