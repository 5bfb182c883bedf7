package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/uxgrep/uxgrep/internal/app"
)

var (
	// Version is injected at build time
	Version = "dev"
	// Build is injected at build time
	Build = "unknown"
	// ProgramName is injected at build time
	ProgramName = "uxgrep"
)

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, Build, ProgramName, args[1:]); err != nil {
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(version, build, programName string, args []string) error {
	rootCmd := &cobra.Command{
		Use:     programName + " <query>",
		Short:   "Ranked search over curated UI/UX style guide tables",
		Long:    "uxgrep retrieves UI/UX style guide entries ranked by relevance to a query,\nand can assemble the retrievals into a persisted design system recommendation.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunQuery(app.DefaultRunParams(), cmd.Flags(), args[0])
		},
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)
	app.RegisterFlags(rootCmd.Flags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose search and design system generation as MCP tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunServe(context.Background(), app.DefaultServeParams(), cmd.Flags(), version)
		},
	}
	app.RegisterServeFlags(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)

	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}
