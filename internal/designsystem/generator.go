// Package designsystem assembles ranked retrievals across fixed categories
// into a recommendation document and persists it as a layered file set.
package designsystem

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/uxgrep/uxgrep/internal/domain"
	"github.com/uxgrep/uxgrep/internal/search"
)

// category binds a fixed document category to the domain corpus it
// retrieves from.
type category struct {
	name string
	dom  domain.Domain
}

// categories is the fixed category set of every generated document, in
// render order. MASTER.md always contains every key, even when empty.
var categories = []category{
	{"style", domain.DomainStyle},
	{"color", domain.DomainColor},
	{"typography", domain.DomainTypography},
	{"layout", domain.DomainLanding},
	{"components", domain.DomainReact},
	{"ux", domain.DomainUX},
	{"charts", domain.DomainChart},
	{"icons", domain.DomainIcons},
}

// CategoryNames returns the fixed category keys in render order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// Generator issues one ranking query per fixed category and assembles the
// results into a design system document.
type Generator struct {
	dispatcher         *search.Dispatcher
	resultsPerCategory int

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator over the given dispatcher.
func NewGenerator(dispatcher *search.Dispatcher, resultsPerCategory int) *Generator {
	if resultsPerCategory < 1 {
		resultsPerCategory = 3
	}
	return &Generator{
		dispatcher:         dispatcher,
		resultsPerCategory: resultsPerCategory,
		now:                time.Now,
		newID:              uuid.NewString,
	}
}

// Generate builds a design system document for the query. The same query
// is used for every category; only the backing domain differs.
//
// A missing or malformed corpus marks that category absent instead of
// aborting the rest of the document.
func (g *Generator) Generate(queryText, projectName string) (*domain.DesignSystem, error) {
	if projectName == "" {
		projectName = DefaultProjectName(queryText)
	}

	ds := &domain.DesignSystem{
		Project:     projectName,
		Query:       queryText,
		ID:          g.newID(),
		GeneratedAt: g.now().UTC(),
		Categories:  make([]domain.CategorySection, 0, len(categories)),
	}

	for _, cat := range categories {
		env, err := g.dispatcher.Search(queryText, cat.dom, g.resultsPerCategory)
		if err != nil {
			if errors.Is(err, domain.ErrCorpusNotFound) || errors.Is(err, domain.ErrCorpusMalformed) {
				slog.Warn("Category corpus unavailable", "category", cat.name, "domain", cat.dom, "error", err)
				ds.Categories = append(ds.Categories, domain.CategorySection{
					Name:    cat.name,
					Domain:  cat.dom,
					Missing: true,
				})
				continue
			}
			return nil, fmt.Errorf("category %s failed: %w", cat.name, err)
		}

		ds.Categories = append(ds.Categories, domain.CategorySection{
			Name:    cat.name,
			Domain:  cat.dom,
			Entries: env.Results,
			Columns: env.Columns,
		})
	}

	return ds, nil
}

// DefaultProjectName derives a project name from the query text.
// Pure function: the same query always yields the same name.
func DefaultProjectName(queryText string) string {
	words := strings.Fields(queryText)
	if len(words) == 0 {
		return "Design System"
	}
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
