package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/uxgrep/uxgrep/internal/designsystem"
	"github.com/uxgrep/uxgrep/internal/domain"
	"github.com/uxgrep/uxgrep/internal/render"
)

// SearchArgument defines guideline search parameters.
type SearchArgument struct {
	Query      string `json:"query" jsonschema_description:"Free-text search query"`
	Domain     string `json:"domain,omitempty" jsonschema_description:"Domain to search (style, color, chart, landing, product, ux, typography, icons, react, web); omit to search all"`
	Stack      string `json:"stack,omitempty" jsonschema_description:"Stack to search instead of a domain (html-tailwind, react, nextjs)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results (default 3)"`
}

// DesignSystemArgument defines design system generation parameters.
type DesignSystemArgument struct {
	Query       string `json:"query" jsonschema_description:"Free-text query describing the product"`
	ProjectName string `json:"project_name,omitempty" jsonschema_description:"Project name; derived from the query when omitted"`
	Persist     bool   `json:"persist,omitempty" jsonschema_description:"Write the document to design-system/<project-slug>/MASTER.md"`
	Page        string `json:"page,omitempty" jsonschema_description:"Also write a page-scoped override file under pages/"`
}

// SearchHandler handles the guideline search MCP tool.
type SearchHandler struct {
	cfg ServerConfig
}

// Handle executes the search and returns formatted results.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		return errorResult("Query cannot be empty"), nil, nil
	}
	if args.Domain != "" && args.Stack != "" {
		return errorResult("Provide either a domain or a stack, not both"), nil, nil
	}

	maxResults := args.MaxResults
	if maxResults < 1 {
		maxResults = h.cfg.MaxResults
	}

	var env *domain.ResultEnvelope
	var err error
	switch {
	case args.Stack != "":
		var st domain.Stack
		if st, err = domain.ParseStack(args.Stack); err == nil {
			env, err = h.cfg.Dispatcher.SearchStack(args.Query, st, maxResults)
		}
	case args.Domain != "":
		var d domain.Domain
		if d, err = domain.ParseDomain(args.Domain); err == nil {
			env, err = h.cfg.Dispatcher.Search(args.Query, d, maxResults)
		}
	default:
		env, err = h.cfg.Dispatcher.SearchAll(args.Query, maxResults)
	}
	if err != nil {
		return errorResult(fmt.Sprintf("Search failed: %s", err)), nil, nil
	}

	return textResult(render.FormatEnvelope(env)), nil, nil
}

// DesignSystemHandler handles the design system MCP tool.
type DesignSystemHandler struct {
	cfg ServerConfig
}

// Handle generates a design system document and optionally persists it.
func (h *DesignSystemHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args DesignSystemArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		return errorResult("Query cannot be empty"), nil, nil
	}

	ds, err := h.cfg.Generator.Generate(args.Query, args.ProjectName)
	if err != nil {
		return errorResult(fmt.Sprintf("Generation failed: %s", err)), nil, nil
	}

	var b strings.Builder
	b.WriteString(designsystem.FormatMarkdown(ds))

	if args.Persist || args.Page != "" {
		result, err := designsystem.Persist(ds, designsystem.PersistOptions{
			Page:      args.Page,
			OutputDir: h.cfg.OutputDir,
			PageQuery: args.Query,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Persistence failed: %s", err)), nil, nil
		}
		fmt.Fprintf(&b, "\nPersisted to %s/:\n", result.DesignSystemDir)
		for _, f := range result.CreatedFiles {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	return textResult(b.String()), nil, nil
}

// RegisterSearchTool registers the guideline search tool with an MCP server.
func RegisterSearchTool(server *mcp.Server, cfg ServerConfig) {
	handler := &SearchHandler{cfg: cfg}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_guidelines",
		Description: "Search curated UI/UX style guide tables, ranked by relevance to a query",
	}, handler.Handle)
}

// RegisterDesignSystemTool registers the design system tool with an MCP server.
func RegisterDesignSystemTool(server *mcp.Server, cfg ServerConfig) {
	handler := &DesignSystemHandler{cfg: cfg}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_design_system",
		Description: "Generate a design system recommendation document for a product query, optionally persisting it as MASTER plus page overrides",
	}, handler.Handle)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
