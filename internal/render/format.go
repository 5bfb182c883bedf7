// Package render projects result envelopes and design system documents
// into their textual output forms. It never mutates what it renders.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/uxgrep/uxgrep/internal/domain"
)

// maxFieldRunes caps field values in pretty output to keep results
// scannable; the JSON projection is never truncated.
const maxFieldRunes = 300

// FormatEnvelope renders a result envelope as compact markdown-style text.
func FormatEnvelope(env *domain.ResultEnvelope) string {
	var b strings.Builder

	if env.Stack != "" {
		b.WriteString("## Stack Guidelines\n")
		fmt.Fprintf(&b, "**Stack:** %s | **Query:** %s\n", env.Stack, env.Query)
	} else {
		b.WriteString("## Search Results\n")
		fmt.Fprintf(&b, "**Domain:** %s | **Query:** %s\n", env.Domain, env.Query)
	}
	fmt.Fprintf(&b, "**Source:** %s | **Found:** %d results\n\n", env.Source, env.Count)

	for i, entry := range env.Results {
		fmt.Fprintf(&b, "### Result %d\n", i+1)
		for _, field := range entryFields(env.Columns, entry) {
			fmt.Fprintf(&b, "- **%s:** %s\n", field, truncate(entry[field]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatEnvelopeJSON renders the machine-readable projection.
func FormatEnvelopeJSON(env *domain.ResultEnvelope) (string, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}
	return string(data), nil
}

// entryFields returns field names in source column order when known,
// otherwise sorted. Merged multi-domain results have no shared schema, so
// they fall back to sorted keys.
func entryFields(columns []string, entry domain.Entry) []string {
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

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldRunes {
		return s
	}
	return string(runes[:maxFieldRunes]) + "..."
}
