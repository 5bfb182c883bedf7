package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"
	"github.com/uxgrep/uxgrep/internal/config"
	"github.com/uxgrep/uxgrep/internal/corpus"
	"github.com/uxgrep/uxgrep/internal/designsystem"
	mcputil "github.com/uxgrep/uxgrep/internal/mcp"
	"github.com/uxgrep/uxgrep/internal/search"
)

// ServeParams contains dependencies for the serve run function
type ServeParams struct {
	LoadSettings      func(*pflag.FlagSet) (*config.Settings, error)
	ValidateSettings  func(*config.Settings) error
	StartSSEServer    func(*mcp.Server, *config.Settings) error
	CustomIOTransport mcp.Transport // Optional: for testing with custom IO
}

// DefaultServeParams returns production dependencies
func DefaultServeParams() ServeParams {
	return ServeParams{
		LoadSettings:     config.LoadSettingsWithFlags,
		ValidateSettings: config.ValidateSettings,
		StartSSEServer:   StartSSEServer,
	}
}

// RunServe runs the MCP server with the provided dependencies
func RunServe(ctx context.Context, params ServeParams, flags *pflag.FlagSet, version string) error {
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := params.ValidateSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Always log to stderr: stdout carries the stdio transport
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	slog.Info("Starting MCP server", "version", version)
	config.Log(settings)
	config.LogServe(settings, logger)

	server := CreateMCPServer(settings, version)

	if settings.Serve.Transport == "stdio" {
		transport := params.CustomIOTransport
		if transport == nil {
			transport = &mcp.StdioTransport{}
		}
		return server.Run(ctx, transport)
	}

	slog.Info("Starting SSE server", "host", settings.Serve.Host, "port", settings.Serve.Port)
	return params.StartSSEServer(server, settings)
}

// CreateMCPServer creates the MCP server with registered tools
func CreateMCPServer(settings *config.Settings, version string) *mcp.Server {
	loader := corpus.NewLoader(settings.Search.DataDir)
	dispatcher := search.NewDispatcher(loader)
	generator := designsystem.NewGenerator(dispatcher, settings.DesignSystem.ResultsPerCategory)

	return mcputil.CreateServer(mcputil.ServerConfig{
		Name:       "uxgrep",
		Version:    version,
		Dispatcher: dispatcher,
		Generator:  generator,
		MaxResults: settings.Search.MaxResults,
		OutputDir:  settings.DesignSystem.OutputDir,
	})
}
