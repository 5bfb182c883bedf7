package domain

import "time"

// Entry is one row of structured reference content within a corpus.
// Field names are consistent across all entries of a corpus.
type Entry map[string]string

// Corpus is the backing table of entries for a domain or stack.
// Entries preserve source file order, which ranking uses as a tie-break.
type Corpus struct {
	// ID is the domain or stack name the corpus was loaded for.
	ID string

	// Source is the backing file name, reported in result envelopes.
	Source string

	// Columns preserves the source column order for rendering.
	Columns []string

	// Weights maps searchable field names to their relevance boost.
	// Fields absent from the map are not searched.
	Weights map[string]float64

	Entries []Entry
}

// RankedEntry pairs an entry with its relevance score.
type RankedEntry struct {
	Entry Entry
	Score float64
}

// RankedResult is an ordered sequence of scored entries.
// Scores are non-increasing; equal scores preserve corpus order.
type RankedResult []RankedEntry

// Entries returns the ranked entries with scores stripped.
func (r RankedResult) Entries() []Entry {
	entries := make([]Entry, len(r))
	for i, re := range r {
		entries[i] = re.Entry
	}
	return entries
}

// ResultEnvelope is the immutable result of one search.
type ResultEnvelope struct {
	Query   string  `json:"query"`
	Domain  string  `json:"domain,omitempty"`
	Stack   string  `json:"stack,omitempty"`
	Source  string  `json:"file"`
	Count   int     `json:"count"`
	Results []Entry `json:"results"`

	// Columns preserves the source column order for rendering.
	// Empty for merged multi-domain searches where schemas differ.
	Columns []string `json:"-"`
}

// CategorySection holds the retrieval for one design system category.
type CategorySection struct {
	// Name is the fixed category key (color, typography, layout, ...).
	Name string

	// Domain is the corpus the category was retrieved from.
	Domain Domain

	// Entries are the top-ranked entries for the category.
	Entries []Entry

	// Columns preserves the source column order for rendering.
	Columns []string

	// Missing is set when the category's backing corpus could not be
	// loaded. The failure never aborts the rest of the document.
	Missing bool
}

// DesignSystem is a structured recommendation assembled from one ranking
// query per fixed category. Built once per generator invocation and never
// mutated afterwards, only rendered or persisted.
type DesignSystem struct {
	Project     string
	Query       string
	ID          string
	GeneratedAt time.Time

	// Categories holds one section per fixed category, in fixed order.
	Categories []CategorySection
}

// Category returns the section with the given name, or nil.
func (ds *DesignSystem) Category(name string) *CategorySection {
	for i := range ds.Categories {
		if ds.Categories[i].Name == name {
			return &ds.Categories[i]
		}
	}
	return nil
}

// PersistResult reports what a persist call wrote to disk.
type PersistResult struct {
	// DesignSystemDir is the design-system/<project-slug> directory.
	DesignSystemDir string

	// CreatedFiles lists every file written, in write order.
	CreatedFiles []string
}
