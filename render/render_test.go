package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentgraph-dev/agentgraph/agent"
	"github.com/agentgraph-dev/agentgraph/kg"
)

func TestResponseContainsTitleAndBody(t *testing.T) {
	t.Parallel()
	out := Response("KG Agent", "Information about GPT")
	assert.Contains(t, out, "KG Agent")
	assert.Contains(t, out, "Information about GPT")
	// Bordered block.
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestFactList(t *testing.T) {
	t.Parallel()
	out := FactList([]string{"A r B", "B r C"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1. A r B")
	assert.Contains(t, lines[1], "2. B r C")
}

func TestPathDiagram(t *testing.T) {
	t.Parallel()
	path := kg.Path{
		{Subject: "A", Predicate: "rel1", Object: "B"},
		{Subject: "B", Predicate: "rel2", Object: "C"},
	}
	out := PathDiagram(path)
	assert.Contains(t, out, "A\n")
	assert.Contains(t, out, "--[rel1]--> B")
	assert.Contains(t, out, "--[rel2]--> C")

	assert.Contains(t, PathDiagram(nil), "same entity")
}

func TestStepTrace(t *testing.T) {
	t.Parallel()
	steps := []agent.Step{
		{Thought: "need math", Action: "calculator", Input: "2+2", Observation: "Result: 4"},
	}
	out := StepTrace(steps)
	assert.Contains(t, out, "Thought: need math")
	assert.Contains(t, out, "Action: calculator(2+2)")
	assert.Contains(t, out, "Observation: Result: 4")
}
