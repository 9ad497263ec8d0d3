package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// GraphLookup answers "what do we know about X" against a shared knowledge
// graph. The graph is read, never written; callers that mutate it
// concurrently must synchronize outside.
type GraphLookup struct {
	graph *kg.Graph
}

// NewGraphLookup creates a lookup tool over g.
func NewGraphLookup(g *kg.Graph) *GraphLookup {
	return &GraphLookup{graph: g}
}

// Name returns the name of the tool.
func (t *GraphLookup) Name() string {
	return "graph_lookup"
}

// Description returns the description of the tool.
func (t *GraphLookup) Description() string {
	return "Looks up everything known about an entity in the knowledge graph. " +
		"Input should be an exact entity name."
}

// Call lists the entity's outgoing relationships, one predicate per line.
func (t *GraphLookup) Call(ctx context.Context, entity string) (string, error) {
	entity = strings.TrimSpace(entity)
	info := t.graph.EntityInfo(entity)
	if info == nil {
		return fmt.Sprintf("Entity %q is not in the knowledge graph", entity), nil
	}
	if len(info) == 0 {
		return fmt.Sprintf("No facts stored about %q", entity), nil
	}

	predicates := make([]string, 0, len(info))
	for p := range info {
		predicates = append(predicates, p)
	}
	sort.Strings(predicates)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Information about %s:\n", entity)
	for _, p := range predicates {
		fmt.Fprintf(&sb, "  %s: %s\n", p, strings.Join(info[p], ", "))
	}
	return sb.String(), nil
}

// GraphPath finds how two entities connect in a shared knowledge graph.
// Input is "start -> end"; the search depth is fixed at construction.
type GraphPath struct {
	graph    *kg.Graph
	maxDepth int
}

// NewGraphPath creates a path tool over g searching up to maxDepth hops;
// zero or negative means kg.DefaultMaxDepth.
func NewGraphPath(g *kg.Graph, maxDepth int) *GraphPath {
	if maxDepth <= 0 {
		maxDepth = kg.DefaultMaxDepth
	}
	return &GraphPath{graph: g, maxDepth: maxDepth}
}

// Name returns the name of the tool.
func (t *GraphPath) Name() string {
	return "graph_path"
}

// Description returns the description of the tool.
func (t *GraphPath) Description() string {
	return "Finds the relationship path between two entities in the knowledge graph. " +
		"Input should be 'start entity -> end entity'."
}

// Call parses the endpoints and runs the bounded path search. Both a
// malformed input and a missing path are soft answers.
func (t *GraphPath) Call(ctx context.Context, input string) (string, error) {
	start, end, ok := strings.Cut(input, "->")
	if !ok {
		return "", fmt.Errorf("input must look like 'start entity -> end entity'")
	}
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	path, found := t.graph.FindPath(start, end, t.maxDepth)
	if !found {
		return fmt.Sprintf("No connection found between %q and %q within %d hops", start, end, t.maxDepth), nil
	}
	if len(path) == 0 {
		return fmt.Sprintf("%q and %q are the same entity", start, end), nil
	}
	return "Path: " + path.String(), nil
}
