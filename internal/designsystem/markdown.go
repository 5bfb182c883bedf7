package designsystem

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uxgrep/uxgrep/internal/domain"
)

// FormatMarkdown renders the full document as markdown. This is the exact
// content persisted to MASTER.md, so it must be a pure projection of the
// document: the same document always renders to the same bytes.
func FormatMarkdown(ds *domain.DesignSystem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — Design System\n\n", ds.Project)
	fmt.Fprintf(&b, "- **Query:** %s\n", ds.Query)
	fmt.Fprintf(&b, "- **Generated:** %s\n", ds.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **ID:** %s\n\n", ds.ID)
	b.WriteString("This file is the global source of truth. Page files under pages/ override\n")
	b.WriteString("it per category; any category absent from a page file falls back here.\n\n")

	for _, sec := range ds.Categories {
		writeSection(&b, sec)
	}

	return b.String()
}

// formatPageOverride renders a page-scoped override document containing
// only the categories the page query matched.
func formatPageOverride(ds *domain.DesignSystem, page, pageQuery string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — Page Overrides: %s\n\n", ds.Project, page)
	fmt.Fprintf(&b, "- **Page query:** %s\n", pageQuery)
	fmt.Fprintf(&b, "- **Generated:** %s\n", ds.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **ID:** %s\n\n", ds.ID)
	b.WriteString("Categories defined below take precedence over MASTER.md for this page.\n")
	b.WriteString("Categories not listed here are governed by MASTER.md.\n\n")

	sections := overrideSections(ds, pageQuery)
	if len(sections) == 0 {
		b.WriteString("_No page-specific overrides; MASTER.md applies fully._\n")
		return b.String()
	}

	for _, sec := range sections {
		writeSection(&b, sec)
	}

	return b.String()
}

func writeSection(b *strings.Builder, sec domain.CategorySection) {
	fmt.Fprintf(b, "## %s\n\n", sec.Name)

	switch {
	case sec.Missing:
		b.WriteString("_No guidance available: the backing corpus could not be loaded._\n\n")
	case len(sec.Entries) == 0:
		b.WriteString("_No matching guidance found._\n\n")
	default:
		for i, entry := range sec.Entries {
			fields := fieldOrder(sec.Columns, entry)
			title := ""
			if len(fields) > 0 {
				title = entry[fields[0]]
			}
			fmt.Fprintf(b, "### %d. %s\n\n", i+1, title)
			for _, f := range fields {
				fmt.Fprintf(b, "- **%s:** %s\n", f, entry[f])
			}
			b.WriteString("\n")
		}
	}
}

// fieldOrder returns entry field names in source column order, falling
// back to sorted keys when the column order is unknown.
func fieldOrder(columns []string, entry domain.Entry) []string {
	if len(columns) > 0 {
		return columns
	}
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
