package kg

import (
	"fmt"
	"strings"
)

// Exporter renders a graph in diagram formats.
type Exporter struct {
	graph *Graph
}

// NewExporter creates an exporter for the given graph.
func NewExporter(g *Graph) *Exporter {
	return &Exporter{graph: g}
}

// MermaidOptions defines configuration for Mermaid diagram generation.
type MermaidOptions struct {
	// Direction of the flowchart (e.g., "TD", "LR").
	Direction string
}

// DrawMermaid generates a Mermaid flowchart of the graph with the default
// top-down direction.
func (ex *Exporter) DrawMermaid() string {
	return ex.DrawMermaidWithOptions(MermaidOptions{Direction: "TD"})
}

// DrawMermaidWithOptions generates a Mermaid flowchart with custom options.
// Entities become nodes with stable aliases in first-seen order; every
// triple becomes a labeled edge, so duplicate triples draw duplicate edges.
func (ex *Exporter) DrawMermaidWithOptions(opts MermaidOptions) string {
	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "flowchart %s\n", direction)

	alias := make(map[string]string)
	for i, name := range ex.graph.Entities() {
		id := fmt.Sprintf("n%d", i)
		alias[name] = id
		fmt.Fprintf(&sb, "    %s[%q]\n", id, mermaidLabel(name))
	}

	for _, t := range ex.graph.Triples() {
		fmt.Fprintf(&sb, "    %s -->|%s| %s\n", alias[t.Subject], mermaidLabel(t.Predicate), alias[t.Object])
	}
	return sb.String()
}

// mermaidLabel strips characters that break Mermaid label syntax.
func mermaidLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, "#quot;")
	s = strings.ReplaceAll(s, "|", "/")
	return s
}

// DrawDOT generates a DOT (Graphviz) representation of the graph with one
// labeled edge per stored triple.
func (ex *Exporter) DrawDOT() string {
	var sb strings.Builder
	sb.WriteString("digraph knowledge {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=box];\n")

	for _, name := range ex.graph.Entities() {
		fmt.Fprintf(&sb, "    %q;\n", name)
	}
	for _, t := range ex.graph.Triples() {
		fmt.Fprintf(&sb, "    %q -> %q [label=%q];\n", t.Subject, t.Object, t.Predicate)
	}

	sb.WriteString("}\n")
	return sb.String()
}
