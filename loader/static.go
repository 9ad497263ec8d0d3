package loader

import (
	"context"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// Static serves a fixed set of triples, mostly for tests and hand-authored
// seed data.
type Static struct {
	triples []kg.Triple
}

// NewStatic creates a loader over the given triples. The slice is copied
// so later mutation by the caller has no effect.
func NewStatic(triples []kg.Triple) *Static {
	out := make([]kg.Triple, len(triples))
	copy(out, triples)
	return &Static{triples: out}
}

// Load returns a copy of the static triples.
func (l *Static) Load(ctx context.Context) ([]kg.Triple, error) {
	out := make([]kg.Triple, len(l.triples))
	copy(out, l.triples)
	return out, nil
}
