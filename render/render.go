// Package render formats agent output for terminals. Examples and demo
// mains use it; nothing in the core depends on presentation.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentgraph-dev/agentgraph/agent"
	"github.com/agentgraph-dev/agentgraph/kg"
)

const boxWidth = 70

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(boxWidth)

	labelStyle = lipgloss.NewStyle().Faint(true)
)

// Response renders a titled, bordered block around an agent's answer.
func Response(title, body string) string {
	content := titleStyle.Render(title) + "\n\n" + strings.TrimRight(body, "\n")
	return boxStyle.Render(content)
}

// FactList renders numbered fact lines.
func FactList(facts []string) string {
	var sb strings.Builder
	for i, fact := range facts {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, fact)
	}
	return sb.String()
}

// PathDiagram renders a relationship path one hop per line, or a marker
// for the zero-hop path.
func PathDiagram(path kg.Path) string {
	if len(path) == 0 {
		return "(start and end are the same entity)"
	}
	var sb strings.Builder
	sb.WriteString(path[0].Subject + "\n")
	for _, t := range path {
		fmt.Fprintf(&sb, "  --[%s]--> %s\n", t.Predicate, t.Object)
	}
	return sb.String()
}

// StepTrace renders a ReAct transcript in the classic
// Thought/Action/Observation layout.
func StepTrace(steps []agent.Step) string {
	var sb strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&sb, "%s %d\n", labelStyle.Render("--- Iteration"), i+1)
		fmt.Fprintf(&sb, "Thought: %s\n", s.Thought)
		fmt.Fprintf(&sb, "Action: %s(%s)\n", s.Action, s.Input)
		fmt.Fprintf(&sb, "Observation: %s\n\n", s.Observation)
	}
	return sb.String()
}
