// Package search ranks corpus entries against free-text queries and
// resolves domain and stack selectors to their corpora.
package search

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/uxgrep/uxgrep/internal/domain"
)

// Rank scores every entry of a corpus against a query and returns the top
// maxResults entries in descending relevance order.
//
// Each call builds a throwaway in-memory index, so ranking stays a pure
// function of its inputs. Document IDs are zero-padded ordinals and the
// result is sorted by score then ID, so equal scores preserve original
// corpus order. A query that matches nothing returns the leading entries
// at a zero baseline score; "no match" is never an error.
//
// weights overrides the corpus field weights when non-nil.
func Rank(c *domain.Corpus, queryText string, weights map[string]float64, maxResults int) (domain.RankedResult, error) {
	if maxResults < 1 {
		return nil, fmt.Errorf("max results must be positive, got %d", maxResults)
	}
	if len(c.Entries) == 0 {
		return domain.RankedResult{}, nil
	}

	if weights == nil {
		weights = c.Weights
	}
	if len(weights) == 0 {
		// No weight spec means every column is searchable at weight 1.
		weights = make(map[string]float64, len(c.Columns))
		for _, col := range c.Columns {
			weights[col] = 1.0
		}
	}

	mapping := bleve.NewIndexMapping()
	mapping.DefaultAnalyzer = standard.Name

	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	defer func() { _ = index.Close() }()

	batch := index.NewBatch()
	for i, entry := range c.Entries {
		if err := batch.Index(entryID(i), map[string]string(entry)); err != nil {
			return nil, fmt.Errorf("failed to index entry %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to index corpus: %w", err)
	}

	req := bleve.NewSearchRequest(buildQuery(queryText, weights))
	req.Size = maxResults
	req.SortBy([]string{"-_score", "_id"})

	res, err := index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	if res.Total == 0 {
		return baseline(c, maxResults), nil
	}

	ranked := make(domain.RankedResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ordinal, err := strconv.Atoi(hit.ID)
		if err != nil || ordinal < 0 || ordinal >= len(c.Entries) {
			return nil, fmt.Errorf("unexpected document id %q", hit.ID)
		}
		ranked = append(ranked, domain.RankedEntry{Entry: c.Entries[ordinal], Score: hit.Score})
	}
	return ranked, nil
}

// buildQuery constructs a disjunction of per-field match queries, boosted
// by the field weights. Field order is sorted for determinism.
func buildQuery(queryText string, weights map[string]float64) query.Query {
	fields := make([]string, 0, len(weights))
	for f := range weights {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]query.Query, 0, len(fields))
	for _, f := range fields {
		mq := bleve.NewMatchQuery(queryText)
		mq.SetField(f)
		mq.SetBoost(weights[f])
		parts = append(parts, mq)
	}
	return bleve.NewDisjunctionQuery(parts...)
}

// baseline returns the leading corpus entries at zero score, used when a
// query shares no terms with any entry.
func baseline(c *domain.Corpus, maxResults int) domain.RankedResult {
	n := min(maxResults, len(c.Entries))
	ranked := make(domain.RankedResult, n)
	for i := 0; i < n; i++ {
		ranked[i] = domain.RankedEntry{Entry: c.Entries[i], Score: 0}
	}
	return ranked
}

// entryID formats a corpus ordinal as a sortable document ID.
func entryID(i int) string {
	return fmt.Sprintf("%06d", i)
}
