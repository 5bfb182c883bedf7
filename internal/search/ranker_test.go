package search

import (
	"testing"

	"github.com/uxgrep/uxgrep/internal/domain"
)

func testCorpus() *domain.Corpus {
	return &domain.Corpus{
		ID:      "style",
		Source:  "style.csv",
		Columns: []string{"name", "keywords", "description"},
		Weights: map[string]float64{"name": 3.0, "keywords": 2.0, "description": 1.0},
		Entries: []domain.Entry{
			{"name": "Glassmorphism", "keywords": "glass blur depth", "description": "frosted panels with background blur"},
			{"name": "Dark Mode First", "keywords": "dark night oled", "description": "near-black surfaces with luminous accents"},
			{"name": "Minimalism", "keywords": "clean whitespace", "description": "restrained palette and generous whitespace"},
			{"name": "Neubrutalism", "keywords": "bold offset shadow", "description": "thick borders and loud colors"},
		},
	}
}

func TestRank_TopK(t *testing.T) {
	c := testCorpus()

	for _, k := range []int{1, 2, 10} {
		ranked, err := Rank(c, "dark mode", nil, k)
		if err != nil {
			t.Fatalf("Rank(k=%d) failed: %v", k, err)
		}
		if len(ranked) > k {
			t.Errorf("Rank(k=%d) returned %d results", k, len(ranked))
		}
	}
}

func TestRank_ScoresNonIncreasing(t *testing.T) {
	ranked, err := Rank(testCorpus(), "dark blur whitespace", nil, 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("score increased at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRank_BestMatchFirst(t *testing.T) {
	ranked, err := Rank(testCorpus(), "dark mode oled", nil, 4)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) == 0 {
		t.Fatal("expected results")
	}
	if got := ranked[0].Entry["name"]; got != "Dark Mode First" {
		t.Errorf("top result = %q, want %q", got, "Dark Mode First")
	}
}

func TestRank_TiesPreserveCorpusOrder(t *testing.T) {
	c := &domain.Corpus{
		ID:      "test",
		Columns: []string{"name"},
		Weights: map[string]float64{"name": 1.0},
		Entries: []domain.Entry{
			{"name": "twin alpha"},
			{"name": "twin alpha"},
			{"name": "twin alpha"},
		},
	}

	ranked, err := Rank(c, "twin", nil, 3)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("got %d results, want 3", len(ranked))
	}
	// Identical entries score identically; order must match the corpus
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score != ranked[0].Score {
			t.Errorf("expected equal scores, got %f and %f", ranked[0].Score, ranked[i].Score)
		}
	}
}

func TestRank_FieldWeights(t *testing.T) {
	c := &domain.Corpus{
		ID:      "test",
		Columns: []string{"name", "description"},
		Weights: map[string]float64{"name": 3.0, "description": 1.0},
		Entries: []domain.Entry{
			{"name": "filler entry", "description": "dashboard layout guidance"},
			{"name": "dashboard", "description": "filler text"},
		},
	}

	ranked, err := Rank(c, "dashboard", nil, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) < 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].Entry["name"] != "dashboard" {
		t.Errorf("name-field match should outrank description-field match, got %q first", ranked[0].Entry["name"])
	}
}

func TestRank_NoMatchReturnsBaseline(t *testing.T) {
	c := testCorpus()

	ranked, err := Rank(c, "zzzquark nonexistent", nil, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2 baseline entries", len(ranked))
	}
	for i, re := range ranked {
		if re.Score != 0 {
			t.Errorf("baseline score = %f, want 0", re.Score)
		}
		if re.Entry["name"] != c.Entries[i]["name"] {
			t.Errorf("baseline entry %d = %q, want corpus order", i, re.Entry["name"])
		}
	}
}

func TestRank_EmptyQuery(t *testing.T) {
	ranked, err := Rank(testCorpus(), "", nil, 3)
	if err != nil {
		t.Fatalf("Rank with empty query failed: %v", err)
	}
	if len(ranked) != 3 {
		t.Errorf("got %d results, want 3 baseline entries", len(ranked))
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	c := &domain.Corpus{ID: "empty", Columns: []string{"name"}}

	ranked, err := Rank(c, "anything", nil, 5)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("got %d results from empty corpus", len(ranked))
	}
}

func TestRank_InvalidMaxResults(t *testing.T) {
	for _, k := range []int{0, -1} {
		if _, err := Rank(testCorpus(), "query", nil, k); err == nil {
			t.Errorf("Rank(k=%d) should fail", k)
		}
	}
}

func TestRank_WeightOverride(t *testing.T) {
	c := &domain.Corpus{
		ID:      "test",
		Columns: []string{"name", "description"},
		Weights: map[string]float64{"name": 3.0, "description": 1.0},
		Entries: []domain.Entry{
			{"name": "filler entry", "description": "dashboard layout guidance"},
			{"name": "dashboard", "description": "filler text"},
		},
	}

	// Inverted weights flip the winner
	ranked, err := Rank(c, "dashboard", map[string]float64{"name": 1.0, "description": 5.0}, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].Entry["name"] != "filler entry" {
		t.Errorf("override weights not applied, got %q first", ranked[0].Entry["name"])
	}
}
