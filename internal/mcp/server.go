// Package mcp exposes guideline search and design system generation as
// MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/uxgrep/uxgrep/internal/designsystem"
	"github.com/uxgrep/uxgrep/internal/search"
)

// ServerConfig contains configuration for creating an MCP server
type ServerConfig struct {
	Name    string
	Version string

	Dispatcher *search.Dispatcher
	Generator  *designsystem.Generator

	// MaxResults caps search tool results when the caller omits a limit.
	MaxResults int

	// OutputDir is where the design system tool persists documents.
	OutputDir string
}

// CreateServer creates and configures the MCP server
func CreateServer(cfg ServerConfig) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	RegisterSearchTool(s, cfg)
	RegisterDesignSystemTool(s, cfg)

	return s
}
