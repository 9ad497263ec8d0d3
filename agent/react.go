package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentgraph-dev/agentgraph/log"
	"github.com/agentgraph-dev/agentgraph/store"
	"github.com/agentgraph-dev/agentgraph/tool"
)

// ActionFinish is the terminal action; its input is the final answer.
const ActionFinish = "finish"

// DefaultMaxIterations bounds the ReAct loop when the caller sets nothing.
const DefaultMaxIterations = 10

// MaxIterationsAnswer is returned when the loop hits its bound without a
// finish action.
const MaxIterationsAnswer = "Maximum iterations reached without finding an answer."

// Step is one turn of the ReAct loop.
type Step struct {
	Thought     string `json:"thought"`
	Action      string `json:"action"`
	Input       string `json:"input"`
	Observation string `json:"observation"`
}

// RunResult holds the final answer and the full transcript of a run.
type RunResult struct {
	Answer string `json:"answer"`
	Steps  []Step `json:"steps"`
}

// Planner decides the next step given the question and what happened so
// far. Returning a step with Action == ActionFinish ends the run with
// Input as the answer.
type Planner interface {
	Plan(ctx context.Context, question string, steps []Step) (Step, error)
}

// ReActAgent runs the Thought/Action/Observation loop: a planner proposes
// an action, the registry executes it, the observation feeds the next plan.
type ReActAgent struct {
	planner       Planner
	registry      *tool.Registry
	maxIterations int
	logger        log.Logger
	recorder      *sessionRecorder

	sessionStore store.SessionStore
	sessionID    string
}

// ReActOption configures a ReActAgent.
type ReActOption func(*ReActAgent)

// WithMaxIterations bounds the loop; zero or negative keeps the default.
func WithMaxIterations(n int) ReActOption {
	return func(a *ReActAgent) {
		if n > 0 {
			a.maxIterations = n
		}
	}
}

// WithReActLogger sets the logger.
func WithReActLogger(logger log.Logger) ReActOption {
	return func(a *ReActAgent) {
		a.logger = logger
	}
}

// WithReActSession records each completed run to the given store.
func WithReActSession(st store.SessionStore, sessionID string) ReActOption {
	return func(a *ReActAgent) {
		a.sessionStore = st
		a.sessionID = sessionID
	}
}

// NewReActAgent creates an agent driven by planner and executing through
// registry.
func NewReActAgent(planner Planner, registry *tool.Registry, opts ...ReActOption) *ReActAgent {
	a := &ReActAgent{
		planner:       planner,
		registry:      registry,
		maxIterations: DefaultMaxIterations,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.recorder = newSessionRecorder(a.sessionStore, a.sessionID, a.logger)
	return a
}

// Name identifies the agent.
func (a *ReActAgent) Name() string {
	return "react-agent"
}

// Process runs the loop and returns only the final answer.
func (a *ReActAgent) Process(ctx context.Context, input string) (string, error) {
	result, err := a.Run(ctx, input)
	if err != nil {
		return "", err
	}
	return result.Answer, nil
}

// Run executes the ReAct loop until the planner finishes or the iteration
// bound is hit. Planner failures abort the run; tool failures become
// observations, so the planner can react to them.
func (a *ReActAgent) Run(ctx context.Context, question string) (*RunResult, error) {
	var steps []Step

	for i := 0; i < a.maxIterations; i++ {
		step, err := a.planner.Plan(ctx, question, steps)
		if err != nil {
			return nil, fmt.Errorf("planning step %d: %w", i+1, err)
		}
		a.logger.Debug("iteration %d thought: %s", i+1, step.Thought)
		a.logger.Debug("iteration %d action: %s(%s)", i+1, step.Action, step.Input)

		if step.Action == ActionFinish {
			step.Observation = step.Input
			steps = append(steps, step)
			result := &RunResult{Answer: step.Input, Steps: steps}
			a.recordRun(ctx, question, result)
			return result, nil
		}

		step.Observation = a.observe(ctx, step)
		a.logger.Debug("iteration %d observation: %s", i+1, step.Observation)
		steps = append(steps, step)
	}

	result := &RunResult{Answer: MaxIterationsAnswer, Steps: steps}
	a.recordRun(ctx, question, result)
	return result, nil
}

// observe executes the step's action. Failures turn into observation text
// in the original's soft style rather than aborting the loop.
func (a *ReActAgent) observe(ctx context.Context, step Step) string {
	out, err := a.registry.Execute(ctx, step.Action, step.Input)
	switch {
	case errors.Is(err, tool.ErrToolNotFound):
		return fmt.Sprintf("Error: Tool '%s' not found", step.Action)
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	default:
		return out
	}
}

func (a *ReActAgent) recordRun(ctx context.Context, question string, result *RunResult) {
	a.recorder.record(ctx, a.Name(), question, result.Answer, map[string]any{
		"steps": len(result.Steps),
	})
}
