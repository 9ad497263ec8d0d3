package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// ErrUnsupportedFormat is returned by FromFile for unknown extensions.
// Check with errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TripleLoader produces triples from some source.
type TripleLoader interface {
	Load(ctx context.Context) ([]kg.Triple, error)
}

// LoadInto runs each loader and inserts everything it produced into the
// graph, returning the number of inserted triples. The first loader error
// stops the process; triples from earlier loaders stay inserted.
func LoadInto(ctx context.Context, g *kg.Graph, loaders ...TripleLoader) (int, error) {
	total := 0
	for _, l := range loaders {
		triples, err := l.Load(ctx)
		if err != nil {
			return total, err
		}
		for _, t := range triples {
			g.Insert(t.Subject, t.Predicate, t.Object)
			total++
		}
	}
	return total, nil
}

// FromFile selects a loader by file extension: .txt and .tsv load as
// separated text, .json as a JSON triple array, .html and .htm as HTML,
// .md and .markdown as Markdown.
func FromFile(path string) (TripleLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return NewText(path), nil
	case ".tsv":
		return NewText(path, WithSeparator("\t")), nil
	case ".json":
		return NewJSON(path), nil
	case ".html", ".htm":
		return NewHTML(path), nil
	case ".md", ".markdown":
		return NewMarkdown(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
