package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentgraph-dev/agentgraph/log"
	"github.com/agentgraph-dev/agentgraph/store/memory"
	"github.com/agentgraph-dev/agentgraph/tool"
)

func TestReActAgentCalculation(t *testing.T) {
	t.Parallel()
	a := NewReActAgent(NewRulePlanner(), tool.DefaultRegistry(),
		WithReActLogger(log.NoOpLogger{}))

	result, err := a.Run(context.Background(), "What is 2 + 2?")
	require.NoError(t, err)

	assert.Equal(t, "Result: 4", result.Answer)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "calculator", result.Steps[0].Action)
	assert.Equal(t, "Result: 4", result.Steps[0].Observation)
	assert.Equal(t, ActionFinish, result.Steps[1].Action)
}

func TestReActAgentSearch(t *testing.T) {
	t.Parallel()
	a := NewReActAgent(NewRulePlanner(), tool.DefaultRegistry(),
		WithReActLogger(log.NoOpLogger{}))

	result, err := a.Run(context.Background(), "tell me about ai agents")
	require.NoError(t, err)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "search", result.Steps[0].Action)
	assert.Contains(t, result.Answer, "autonomous systems")
}

// stubPlanner returns scripted steps, cycling on the last one.
type stubPlanner struct {
	steps []Step
	calls int
}

func (p *stubPlanner) Plan(ctx context.Context, question string, steps []Step) (Step, error) {
	i := p.calls
	if i >= len(p.steps) {
		i = len(p.steps) - 1
	}
	p.calls++
	return p.steps[i], nil
}

func TestReActAgentUnknownToolIsSoftObservation(t *testing.T) {
	t.Parallel()
	planner := &stubPlanner{steps: []Step{
		{Thought: "try something odd", Action: "teleport", Input: "moon"},
		{Thought: "give up gracefully", Action: ActionFinish, Input: "done"},
	}}
	a := NewReActAgent(planner, tool.DefaultRegistry(),
		WithReActLogger(log.NoOpLogger{}))

	result, err := a.Run(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Error: Tool 'teleport' not found", result.Steps[0].Observation)
	assert.Equal(t, "done", result.Answer)
}

func TestReActAgentToolErrorIsSoftObservation(t *testing.T) {
	t.Parallel()
	planner := &stubPlanner{steps: []Step{
		{Thought: "divide", Action: "calculator", Input: "1 / 0"},
		{Thought: "finish", Action: ActionFinish, Input: "cannot divide by zero"},
	}}
	a := NewReActAgent(planner, tool.DefaultRegistry(),
		WithReActLogger(log.NoOpLogger{}))

	result, err := a.Run(context.Background(), "what is 1/0?")
	require.NoError(t, err)
	assert.Contains(t, result.Steps[0].Observation, "Error:")
	assert.Equal(t, "cannot divide by zero", result.Answer)
}

func TestReActAgentMaxIterations(t *testing.T) {
	t.Parallel()
	planner := &stubPlanner{steps: []Step{
		{Thought: "keep searching", Action: "search", Input: "llm"},
	}}
	a := NewReActAgent(planner, tool.DefaultRegistry(),
		WithMaxIterations(3),
		WithReActLogger(log.NoOpLogger{}))

	result, err := a.Run(context.Background(), "never finishes")
	require.NoError(t, err)
	assert.Equal(t, MaxIterationsAnswer, result.Answer)
	assert.Len(t, result.Steps, 3)
}

func TestReActAgentRecordsSession(t *testing.T) {
	t.Parallel()
	st := memory.NewSessionStore()
	a := NewReActAgent(NewRulePlanner(), tool.DefaultRegistry(),
		WithReActLogger(log.NoOpLogger{}),
		WithReActSession(st, "session-react"))

	ctx := context.Background()
	answer, err := a.Process(ctx, "What is 6 * 7?")
	require.NoError(t, err)
	assert.Equal(t, "Result: 42", answer)

	records, err := st.List(ctx, "session-react")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "react-agent", records[0].Agent)
	assert.EqualValues(t, 2, records[0].Metadata["steps"])
}
