package search

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/uxgrep/uxgrep/internal/corpus"
	"github.com/uxgrep/uxgrep/internal/domain"
)

// MergedDomainTag marks an envelope produced by the merged default search
// that runs when no domain is selected.
const MergedDomainTag = "all"

// Dispatcher resolves selectors to corpora and delegates to the ranking
// engine, shaping results into envelopes.
type Dispatcher struct {
	loader *corpus.Loader
}

// NewDispatcher creates a dispatcher over the given loader.
func NewDispatcher(loader *corpus.Loader) *Dispatcher {
	return &Dispatcher{loader: loader}
}

// Search ranks one domain corpus against the query.
// Corpus errors surface hard; zero matches is a valid count=0 outcome.
func (d *Dispatcher) Search(queryText string, dom domain.Domain, maxResults int) (*domain.ResultEnvelope, error) {
	c, err := d.loader.Domain(dom)
	if err != nil {
		return nil, err
	}

	ranked, err := Rank(c, queryText, nil, maxResults)
	if err != nil {
		return nil, fmt.Errorf("ranking %s failed: %w", dom, err)
	}

	return &domain.ResultEnvelope{
		Query:   queryText,
		Domain:  string(dom),
		Source:  c.Source,
		Count:   len(ranked),
		Results: ranked.Entries(),
		Columns: c.Columns,
	}, nil
}

// SearchStack ranks one stack corpus against the query.
func (d *Dispatcher) SearchStack(queryText string, st domain.Stack, maxResults int) (*domain.ResultEnvelope, error) {
	c, err := d.loader.Stack(st)
	if err != nil {
		return nil, err
	}

	ranked, err := Rank(c, queryText, nil, maxResults)
	if err != nil {
		return nil, fmt.Errorf("ranking %s failed: %w", st, err)
	}

	return &domain.ResultEnvelope{
		Query:   queryText,
		Stack:   string(st),
		Source:  c.Source,
		Count:   len(ranked),
		Results: ranked.Entries(),
		Columns: c.Columns,
	}, nil
}

// SearchAll is the explicit default when no domain is selected: every
// domain corpus is ranked and the merged hits are ordered by score, then
// canonical domain order, then corpus order. Unloadable corpora are
// skipped with a warning; the search fails only when no corpus loads.
func (d *Dispatcher) SearchAll(queryText string, maxResults int) (*domain.ResultEnvelope, error) {
	type scoredHit struct {
		entry domain.Entry
		score float64
		order int
	}

	var hits []scoredHit
	loaded := 0
	for _, dom := range domain.Domains {
		c, err := d.loader.Domain(dom)
		if err != nil {
			slog.Warn("Skipping domain in merged search", "domain", dom, "error", err)
			continue
		}
		loaded++

		ranked, err := Rank(c, queryText, nil, maxResults)
		if err != nil {
			return nil, fmt.Errorf("ranking %s failed: %w", dom, err)
		}
		for _, re := range ranked {
			hits = append(hits, scoredHit{entry: re.Entry, score: re.Score, order: len(hits)})
		}
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: no domain corpus available", domain.ErrCorpusNotFound)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].order < hits[j].order
	})
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	results := make([]domain.Entry, len(hits))
	for i, h := range hits {
		results[i] = h.entry
	}

	return &domain.ResultEnvelope{
		Query:   queryText,
		Domain:  MergedDomainTag,
		Source:  "multiple",
		Count:   len(results),
		Results: results,
	}, nil
}
