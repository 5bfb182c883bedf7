package app

import (
	"github.com/spf13/pflag"
	"github.com/uxgrep/uxgrep/internal/config"
)

// RegisterFlags registers the search and design system flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("domain", "d", "", "Search domain: style, color, chart, landing, product, ux, typography, icons, react, web")
	flags.StringP("stack", "s", "", "Stack-specific search: html-tailwind, react, nextjs")
	flags.IntP("max-results", "n", config.DefaultMaxResults, "Maximum number of results")
	flags.Bool("json", false, "Output results as JSON")
	flags.Bool("design-system", false, "Generate a complete design system recommendation")
	flags.StringP("project-name", "p", "", "Project name for the design system (derived from the query when omitted)")
	flags.StringP("format", "f", "ascii", "Design system output format: ascii or markdown")
	flags.Bool("persist", false, "Save the design system to design-system/<project-slug>/MASTER.md")
	flags.String("page", "", "Also create a page-specific override file under pages/")
	flags.StringP("output-dir", "o", "", "Output directory for persisted files (default: current directory)")
	flags.String("data-dir", "", "Directory of corpus CSV tables (default: embedded tables)")
}

// RegisterServeFlags registers the MCP serve flags on the given FlagSet
func RegisterServeFlags(flags *pflag.FlagSet) {
	flags.StringP("transport", "t", "", "Transport type: stdio or sse")
	flags.StringP("host", "H", "", "Host for SSE transport")
	flags.IntP("port", "p", 0, "Port for SSE transport")
	flags.StringP("auth-type", "a", "", "Authentication type: none, basic, or apikey")
	flags.StringP("auth-basic-username", "u", "", "Basic auth username")
	flags.StringP("auth-basic-password", "P", "", "Basic auth password")
	flags.StringSliceP("auth-api-keys", "k", nil, "API keys (comma-separated)")
	flags.String("data-dir", "", "Directory of corpus CSV tables (default: embedded tables)")
	flags.StringP("output-dir", "o", "", "Output directory for persisted files (default: current directory)")
}
