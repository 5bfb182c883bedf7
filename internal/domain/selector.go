package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector indicates an unrecognized domain or stack name.
// It is a usage error, distinct from an empty result set.
var ErrInvalidSelector = errors.New("unrecognized selector")

// Data layer errors, surfaced by the corpus loader.
var (
	// ErrCorpusNotFound indicates the selector has no backing table.
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrCorpusMalformed indicates the backing table rows do not share a
	// consistent field schema.
	ErrCorpusMalformed = errors.New("corpus malformed")
)

// Domain identifies a curated UI/UX reference table.
type Domain string

// Recognized domains.
const (
	DomainStyle      Domain = "style"
	DomainColor      Domain = "color"
	DomainChart      Domain = "chart"
	DomainLanding    Domain = "landing"
	DomainProduct    Domain = "product"
	DomainUX         Domain = "ux"
	DomainTypography Domain = "typography"
	DomainIcons      Domain = "icons"
	DomainReact      Domain = "react"
	DomainWeb        Domain = "web"
)

// Domains lists all recognized domains in canonical order.
// The order is used when merging results across the default corpus.
var Domains = []Domain{
	DomainStyle,
	DomainColor,
	DomainChart,
	DomainLanding,
	DomainProduct,
	DomainUX,
	DomainTypography,
	DomainIcons,
	DomainReact,
	DomainWeb,
}

// ParseDomain converts a string to a Domain.
// Returns an error wrapping ErrInvalidSelector for unrecognized values.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: domain %q", ErrInvalidSelector, s)
}

// Stack identifies a target technology profile with its own guideline corpus.
type Stack string

// Recognized stacks.
const (
	StackHTMLTailwind Stack = "html-tailwind"
	StackReact        Stack = "react"
	StackNextJS       Stack = "nextjs"
)

// Stacks lists all recognized stacks in canonical order.
var Stacks = []Stack{
	StackHTMLTailwind,
	StackReact,
	StackNextJS,
}

// ParseStack converts a string to a Stack.
// Returns an error wrapping ErrInvalidSelector for unrecognized values.
func ParseStack(s string) (Stack, error) {
	for _, st := range Stacks {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: stack %q", ErrInvalidSelector, s)
}
