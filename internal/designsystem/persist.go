package designsystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uxgrep/uxgrep/internal/domain"
	"github.com/uxgrep/uxgrep/internal/search"
)

const (
	// DirName is the root directory of all persisted design systems.
	DirName = "design-system"

	// MasterFilename is the global source-of-truth document.
	MasterFilename = "MASTER.md"

	// PagesDirName holds page-scoped override documents.
	PagesDirName = "pages"
)

// PersistOptions control what Persist writes beyond MASTER.md.
type PersistOptions struct {
	// Page, when set, also writes a page-scoped override file.
	Page string

	// OutputDir overrides the current directory as the file root.
	OutputDir string

	// PageQuery narrows the page override to matching categories.
	PageQuery string
}

// Persist writes the document under <output-dir>/design-system/<slug>/.
//
// MASTER.md is always written and holds the full document. When a page is
// named, pages/<page-slug>.md is additionally written with only the
// categories the page query matched; categories absent from a page file are
// governed by MASTER. Writes are temp-file + rename so readers never see a
// half-written document. Concurrent persists to the same slug are
// last-writer-wins.
func Persist(ds *domain.DesignSystem, opts PersistOptions) (*domain.PersistResult, error) {
	root := opts.OutputDir
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, DirName, Slug(ds.Project))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create design system directory: %w", err)
	}

	result := &domain.PersistResult{DesignSystemDir: dir}

	masterPath := filepath.Join(dir, MasterFilename)
	if err := writeFileAtomic(masterPath, []byte(FormatMarkdown(ds))); err != nil {
		return nil, err
	}
	result.CreatedFiles = append(result.CreatedFiles, masterPath)

	if opts.Page != "" {
		pagesDir := filepath.Join(dir, PagesDirName)
		if err := os.MkdirAll(pagesDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create pages directory: %w", err)
		}

		pagePath := filepath.Join(pagesDir, Slug(opts.Page)+".md")
		content := formatPageOverride(ds, opts.Page, opts.PageQuery)
		if err := writeFileAtomic(pagePath, []byte(content)); err != nil {
			return nil, err
		}
		result.CreatedFiles = append(result.CreatedFiles, pagePath)
	}

	return result, nil
}

// Slug derives a filesystem-safe identifier from a name: lowercased, with
// every run of non-alphanumeric characters collapsed to a single dash.
// Pure and stable, so repeated persists address the same directory.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "design-system"
	}
	return s
}

// overrideSections selects the categories a page file defines.
//
// The page file is a true subset, not a regenerated document. A category
// is included only when the page query matches at least one of its
// already-retrieved entries (re-scored with the ranking engine); with no
// page query, every populated category is included.
func overrideSections(ds *domain.DesignSystem, pageQuery string) []domain.CategorySection {
	var sections []domain.CategorySection
	for _, sec := range ds.Categories {
		if sec.Missing || len(sec.Entries) == 0 {
			continue
		}
		if pageQuery == "" {
			sections = append(sections, sec)
			continue
		}

		c := &domain.Corpus{
			ID:      sec.Name,
			Columns: sec.Columns,
			Entries: sec.Entries,
		}
		ranked, err := search.Rank(c, pageQuery, nil, len(sec.Entries))
		if err != nil {
			continue
		}

		var matched []domain.Entry
		for _, re := range ranked {
			if re.Score > 0 {
				matched = append(matched, re.Entry)
			}
		}
		if len(matched) == 0 {
			continue
		}

		override := sec
		override.Entries = matched
		sections = append(sections, override)
	}
	return sections
}

// writeFileAtomic writes data via a temp file and rename so a reader never
// observes partial content and a failed write never corrupts the target.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
