package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// JSON loads triples from a file holding a JSON array of triple objects:
//
//	[{"subject": "GPT", "predicate": "is_example_of", "object": "Large Language Models"}]
type JSON struct {
	path string
}

// NewJSON creates a JSON loader for the given file.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Load decodes the whole file.
func (l *JSON) Load(ctx context.Context) ([]kg.Triple, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}

	var triples []kg.Triple
	if err := json.Unmarshal(data, &triples); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	return triples, nil
}
