// Package corpus loads curated UI/UX reference tables from CSV files.
package corpus

import "github.com/uxgrep/uxgrep/internal/domain"

// tableSpec describes the backing file and searchable field weights for
// one corpus. Fields absent from the weight map are stored and rendered
// but not searched.
type tableSpec struct {
	file    string
	weights map[string]float64
}

// domainSpecs maps each recognized domain to its backing table.
// Name-like fields score higher than descriptive ones.
var domainSpecs = map[domain.Domain]tableSpec{
	domain.DomainStyle: {
		file: "style.csv",
		weights: map[string]float64{
			"name":        3.0,
			"category":    1.5,
			"keywords":    2.0,
			"description": 1.0,
			"best_for":    1.0,
		},
	},
	domain.DomainColor: {
		file: "color.csv",
		weights: map[string]float64{
			"palette":  3.0,
			"keywords": 2.0,
			"notes":    1.0,
		},
	},
	domain.DomainChart: {
		file: "chart.csv",
		weights: map[string]float64{
			"chart_type": 3.0,
			"use_case":   2.0,
			"keywords":   2.0,
			"library":    1.0,
		},
	},
	domain.DomainLanding: {
		file: "landing.csv",
		weights: map[string]float64{
			"pattern":     3.0,
			"section":     2.0,
			"keywords":    2.0,
			"description": 1.0,
		},
	},
	domain.DomainProduct: {
		file: "product.csv",
		weights: map[string]float64{
			"pattern":     3.0,
			"keywords":    2.0,
			"description": 1.0,
		},
	},
	domain.DomainUX: {
		file: "ux.csv",
		weights: map[string]float64{
			"guideline":   3.0,
			"category":    1.5,
			"keywords":    2.0,
			"description": 1.0,
		},
	},
	domain.DomainTypography: {
		file: "typography.csv",
		weights: map[string]float64{
			"pairing":      3.0,
			"keywords":     2.0,
			"mood":         1.5,
			"heading_font": 1.0,
			"body_font":    1.0,
		},
	},
	domain.DomainIcons: {
		file: "icons.csv",
		weights: map[string]float64{
			"style":       3.0,
			"keywords":    2.0,
			"library":     1.5,
			"description": 1.0,
		},
	},
	domain.DomainReact: {
		file: "react.csv",
		weights: map[string]float64{
			"component":   3.0,
			"keywords":    2.0,
			"library":     1.5,
			"description": 1.0,
		},
	},
	domain.DomainWeb: {
		file: "web.csv",
		weights: map[string]float64{
			"topic":          3.0,
			"keywords":       2.0,
			"description":    1.0,
			"recommendation": 1.0,
		},
	},
}

// stackSpecs maps each recognized stack to its backing table.
// All stack tables share one schema.
var stackSpecs = map[domain.Stack]tableSpec{
	domain.StackHTMLTailwind: {file: "stacks/html-tailwind.csv", weights: stackWeights},
	domain.StackReact:        {file: "stacks/react.csv", weights: stackWeights},
	domain.StackNextJS:       {file: "stacks/nextjs.csv", weights: stackWeights},
}

var stackWeights = map[string]float64{
	"guideline":   3.0,
	"category":    1.5,
	"keywords":    2.0,
	"description": 1.0,
}
