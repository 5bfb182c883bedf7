package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/uxgrep/uxgrep/internal/config"
	"github.com/uxgrep/uxgrep/internal/corpus"
	"github.com/uxgrep/uxgrep/internal/designsystem"
	"github.com/uxgrep/uxgrep/internal/domain"
	"github.com/uxgrep/uxgrep/internal/render"
	"github.com/uxgrep/uxgrep/internal/search"
)

// RunParams contains dependencies for the query run function
type RunParams struct {
	LoadSettings     func(*pflag.FlagSet) (*config.Settings, error)
	ValidateSettings func(*config.Settings) error
	Out              io.Writer
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:     config.LoadSettingsWithFlags,
		ValidateSettings: config.ValidateSettings,
		Out:              os.Stdout,
	}
}

// RunQuery executes one search or design system invocation end to end.
// Results go to params.Out; logs go to stderr.
func RunQuery(params RunParams, flags *pflag.FlagSet, queryText string) error {
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := params.ValidateSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Logging goes to stderr so stdout stays clean for results
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	domainFlag, _ := flags.GetString("domain")
	stackFlag, _ := flags.GetString("stack")
	if domainFlag != "" && stackFlag != "" {
		return fmt.Errorf("%w: provide either --domain or --stack, not both", domain.ErrInvalidSelector)
	}

	loader := corpus.NewLoader(settings.Search.DataDir)
	dispatcher := search.NewDispatcher(loader)

	if generate, _ := flags.GetBool("design-system"); generate {
		return runDesignSystem(params, flags, settings, dispatcher, queryText)
	}
	return runSearch(params, flags, settings, dispatcher, queryText)
}

// runSearch handles direct domain, stack and merged default searches.
func runSearch(params RunParams, flags *pflag.FlagSet, settings *config.Settings, dispatcher *search.Dispatcher, queryText string) error {
	domainFlag, _ := flags.GetString("domain")
	stackFlag, _ := flags.GetString("stack")
	maxResults := settings.Search.MaxResults

	var env *domain.ResultEnvelope
	var err error
	switch {
	case stackFlag != "":
		var st domain.Stack
		if st, err = domain.ParseStack(stackFlag); err == nil {
			env, err = dispatcher.SearchStack(queryText, st, maxResults)
		}
	case domainFlag != "":
		var d domain.Domain
		if d, err = domain.ParseDomain(domainFlag); err == nil {
			env, err = dispatcher.Search(queryText, d, maxResults)
		}
	default:
		env, err = dispatcher.SearchAll(queryText, maxResults)
	}
	if err != nil {
		return err
	}

	if asJSON, _ := flags.GetBool("json"); asJSON {
		out, err := render.FormatEnvelopeJSON(env)
		if err != nil {
			return err
		}
		fmt.Fprintln(params.Out, out)
		return nil
	}

	fmt.Fprint(params.Out, render.FormatEnvelope(env))
	return nil
}

// runDesignSystem generates the document, renders it, and optionally
// persists it with a confirmation listing every file written.
func runDesignSystem(params RunParams, flags *pflag.FlagSet, settings *config.Settings, dispatcher *search.Dispatcher, queryText string) error {
	projectName, _ := flags.GetString("project-name")
	format, _ := flags.GetString("format")
	persist, _ := flags.GetBool("persist")
	page, _ := flags.GetString("page")

	if format != "ascii" && format != "markdown" {
		return fmt.Errorf("format must be 'ascii' or 'markdown', got: %s", format)
	}

	generator := designsystem.NewGenerator(dispatcher, settings.DesignSystem.ResultsPerCategory)
	ds, err := generator.Generate(queryText, projectName)
	if err != nil {
		return err
	}

	var persistResult *domain.PersistResult
	if persist || page != "" {
		persistResult, err = designsystem.Persist(ds, designsystem.PersistOptions{
			Page:      page,
			OutputDir: settings.DesignSystem.OutputDir,
			PageQuery: queryText,
		})
		if err != nil {
			return err
		}
	}

	if format == "markdown" {
		fmt.Fprint(params.Out, designsystem.FormatMarkdown(ds))
	} else {
		fmt.Fprint(params.Out, render.BoxDesignSystem(ds))
	}

	if persistResult != nil {
		printPersistConfirmation(params.Out, persistResult)
	}
	return nil
}

// printPersistConfirmation enumerates the files written and explains the
// MASTER plus page-override reading order.
func printPersistConfirmation(out io.Writer, result *domain.PersistResult) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Design system persisted to %s/\n", result.DesignSystemDir)
	for _, f := range result.CreatedFiles {
		switch {
		case strings.HasSuffix(f, designsystem.MasterFilename):
			fmt.Fprintf(out, "   %s (Global Source of Truth)\n", f)
		default:
			fmt.Fprintf(out, "   %s (Page Overrides)\n", f)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Usage: when building a page, check %s/%s/[page].md first.\n", result.DesignSystemDir, designsystem.PagesDirName)
	fmt.Fprintln(out, "If it exists, its rules override MASTER.md. Otherwise, use MASTER.md.")
	fmt.Fprintln(out, rule)
}
