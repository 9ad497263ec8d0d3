package loader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// HTML extracts triples from an HTML file. Two shapes are recognized:
//
//   - tables whose body rows carry at least three cells, read as
//     subject / predicate / object (header rows with <th> are skipped);
//   - list items whose text is "subject | predicate | object".
//
// The document is sanitized with bluemonday before parsing, so scripts and
// event handlers in scraped pages never reach the extractor.
type HTML struct {
	path string
}

// NewHTML creates an HTML loader for the given file.
func NewHTML(path string) *HTML {
	return &HTML{path: path}
}

// Load sanitizes and parses the file, then walks tables and lists.
func (l *HTML) Load(ctx context.Context) ([]kg.Triple, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	triples, err := extractTriplesFromHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	return triples, nil
}

// extractTriplesFromHTML is shared with the Markdown loader, which renders
// to HTML and reuses the same extraction.
func extractTriplesFromHTML(raw []byte) ([]kg.Triple, error) {
	policy := bluemonday.UGCPolicy()
	policy.AllowTables()
	clean := policy.SanitizeBytes(raw)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(clean))
	if err != nil {
		return nil, err
	}

	var triples []kg.Triple

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		triples = append(triples, kg.Triple{
			Subject:   strings.TrimSpace(cells.Eq(0).Text()),
			Predicate: strings.TrimSpace(cells.Eq(1).Text()),
			Object:    strings.TrimSpace(cells.Eq(2).Text()),
		})
	})

	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		fields := strings.Split(item.Text(), "|")
		if len(fields) != 3 {
			return
		}
		triples = append(triples, kg.Triple{
			Subject:   strings.TrimSpace(fields[0]),
			Predicate: strings.TrimSpace(fields[1]),
			Object:    strings.TrimSpace(fields[2]),
		})
	})

	return triples, nil
}
