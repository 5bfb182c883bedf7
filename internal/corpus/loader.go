package corpus

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/uxgrep/uxgrep/internal/domain"
)

//go:embed data
var embeddedFS embed.FS

// Loader reads a corpus from its backing CSV table.
// It performs no caching: every call re-reads the backing store, trading
// speed for freshness and simplicity (the tables are small).
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over the given data directory.
// An empty dataDir selects the tables embedded in the binary.
func NewLoader(dataDir string) *Loader {
	if dataDir == "" {
		return &Loader{fsys: embeddedData()}
	}
	return &Loader{fsys: os.DirFS(dataDir)}
}

// NewLoaderFS creates a loader over an arbitrary filesystem.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Domain loads the backing table for a recognized domain.
func (l *Loader) Domain(d domain.Domain) (*domain.Corpus, error) {
	spec, ok := domainSpecs[d]
	if !ok {
		return nil, fmt.Errorf("%w: domain %q", domain.ErrInvalidSelector, d)
	}
	return l.load(string(d), spec)
}

// Stack loads the backing table for a recognized stack.
func (l *Loader) Stack(s domain.Stack) (*domain.Corpus, error) {
	spec, ok := stackSpecs[s]
	if !ok {
		return nil, fmt.Errorf("%w: stack %q", domain.ErrInvalidSelector, s)
	}
	return l.load(string(s), spec)
}

// load reads and validates one CSV table.
// The first record is the header; every following record is one entry.
func (l *Loader) load(id string, spec tableSpec) (*domain.Corpus, error) {
	f, err := l.fsys.Open(spec.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrCorpusNotFound, id, spec.file)
		}
		return nil, fmt.Errorf("failed to open corpus %s: %w", id, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		// encoding/csv reports inconsistent field counts per record,
		// which is exactly the schema consistency invariant.
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorpusMalformed, id, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", domain.ErrCorpusMalformed, id)
	}

	columns := records[0]
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("%w: %s: empty column name", domain.ErrCorpusMalformed, id)
		}
		if seen[col] {
			return nil, fmt.Errorf("%w: %s: duplicate column %q", domain.ErrCorpusMalformed, id, col)
		}
		seen[col] = true
	}

	entries := make([]domain.Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		entry := make(domain.Entry, len(columns))
		for i, col := range columns {
			entry[col] = record[i]
		}
		entries = append(entries, entry)
	}

	return &domain.Corpus{
		ID:      id,
		Source:  spec.file,
		Columns: columns,
		Weights: spec.weights,
		Entries: entries,
	}, nil
}

// embeddedData roots the embedded filesystem at the data directory so that
// file paths match an on-disk --data-dir layout.
func embeddedData() fs.FS {
	sub, err := fs.Sub(embeddedFS, "data")
	if err != nil {
		// The embed layout is fixed at build time.
		panic(err)
	}
	return sub
}
