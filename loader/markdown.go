package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// Markdown extracts triples from a Markdown file by rendering it to HTML
// and running the HTML extraction, so Markdown tables and "a | b | c" list
// items both work:
//
//	| Subject | Predicate | Object |
//	|---------|-----------|--------|
//	| GPT     | is_example_of | Large Language Models |
//
//	- GPT | is_example_of | Large Language Models
type Markdown struct {
	path string
}

// NewMarkdown creates a Markdown loader for the given file.
func NewMarkdown(path string) *Markdown {
	return &Markdown{path: path}
}

// Load renders the file and extracts triples from the resulting HTML.
func (l *Markdown) Load(ctx context.Context) ([]kg.Triple, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}

	// A parser instance is single-use, so build one per Load.
	p := parser.NewWithExtensions(parser.CommonExtensions)
	rendered := markdown.ToHTML(data, p, nil)

	triples, err := extractTriplesFromHTML(rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered %s: %w", l.path, err)
	}
	return triples, nil
}
