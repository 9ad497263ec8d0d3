package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/agentgraph-dev/agentgraph/tool"
)

// RulePlanner picks actions by keyword heuristics, the offline stand-in
// for an LLM planner: arithmetic questions go to the calculator, everything
// else to search, and one observation is considered enough to finish.
type RulePlanner struct{}

// NewRulePlanner creates a rule-based planner.
func NewRulePlanner() *RulePlanner {
	return &RulePlanner{}
}

// Plan decides the next step from the question and prior steps.
func (p *RulePlanner) Plan(ctx context.Context, question string, steps []Step) (Step, error) {
	if len(steps) > 0 {
		last := steps[len(steps)-1]
		return Step{
			Thought: "I have enough information to provide the final answer.",
			Action:  ActionFinish,
			Input:   last.Observation,
		}, nil
	}

	if looksArithmetic(question) {
		return Step{
			Thought: "I need to perform a calculation to answer this question.",
			Action:  "calculator",
			Input:   extractExpression(question),
		}, nil
	}
	return Step{
		Thought: "I need to search for information to answer this question.",
		Action:  "search",
		Input:   question,
	}, nil
}

func looksArithmetic(question string) bool {
	if strings.Contains(strings.ToLower(question), "calculate") {
		return true
	}
	return strings.ContainsAny(question, "+-*/")
}

// extractExpression keeps only the characters that can appear in an
// arithmetic expression, dropping the surrounding words.
func extractExpression(question string) string {
	var sb strings.Builder
	for _, r := range question {
		if r >= '0' && r <= '9' || strings.ContainsRune("+-*/(). ", r) {
			sb.WriteRune(r)
		}
	}
	expr := strings.TrimSpace(sb.String())
	if expr == "" {
		return question
	}
	return expr
}

// LLMPlanner asks a langchaingo model for the next step using the classic
// ReAct text protocol (Thought / Action / Action Input / Final Answer).
type LLMPlanner struct {
	model llms.Model
	tools []tool.Info
}

// NewLLMPlanner creates a planner over model that may propose any of the
// given tools.
func NewLLMPlanner(model llms.Model, tools []tool.Info) *LLMPlanner {
	return &LLMPlanner{model: model, tools: tools}
}

// Plan prompts the model with the question and transcript and parses its
// reply into a step.
func (p *LLMPlanner) Plan(ctx context.Context, question string, steps []Step) (Step, error) {
	prompt := BuildReActPrompt(question, steps, p.tools)
	reply, err := llms.GenerateFromSinglePrompt(ctx, p.model, prompt)
	if err != nil {
		return Step{}, fmt.Errorf("llm planner: %w", err)
	}
	return ParseReActReply(reply)
}

// BuildReActPrompt renders the ReAct text protocol prompt: the tool list,
// the format instructions, the question and the transcript so far. Every
// LLM-backed planner uses the same prompt so their replies parse the same
// way.
func BuildReActPrompt(question string, steps []Step, tools []tool.Info) string {
	var sb strings.Builder
	sb.WriteString("You are an agent that answers questions by reasoning and using tools.\n\n")
	sb.WriteString("Available tools:\n")
	for _, t := range tools {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name, t.Description)
	}
	sb.WriteString("\nRespond with exactly one of the following formats.\n")
	sb.WriteString("To use a tool:\n")
	sb.WriteString("Thought: <your reasoning>\nAction: <tool name>\nAction Input: <tool input>\n")
	sb.WriteString("\nTo finish:\n")
	sb.WriteString("Thought: <your reasoning>\nFinal Answer: <the answer>\n")

	fmt.Fprintf(&sb, "\nQuestion: %s\n", question)
	for _, s := range steps {
		fmt.Fprintf(&sb, "\nThought: %s\nAction: %s\nAction Input: %s\nObservation: %s\n",
			s.Thought, s.Action, s.Input, s.Observation)
	}
	return sb.String()
}

// ParseReActReply extracts the step fields from a model's reply. A Final
// Answer line maps to the finish action. Missing both an action and a
// final answer is a planner failure.
func ParseReActReply(reply string) (Step, error) {
	var step Step
	var haveAction, haveAnswer bool

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Thought:"):
			step.Thought = strings.TrimSpace(strings.TrimPrefix(line, "Thought:"))
		case strings.HasPrefix(line, "Final Answer:"):
			step.Action = ActionFinish
			step.Input = strings.TrimSpace(strings.TrimPrefix(line, "Final Answer:"))
			haveAnswer = true
		case strings.HasPrefix(line, "Action Input:"):
			step.Input = strings.TrimSpace(strings.TrimPrefix(line, "Action Input:"))
		case strings.HasPrefix(line, "Action:"):
			step.Action = strings.TrimSpace(strings.TrimPrefix(line, "Action:"))
			haveAction = true
		}
		if haveAnswer {
			break
		}
	}

	if !haveAction && !haveAnswer {
		return Step{}, fmt.Errorf("planner reply has neither an action nor a final answer: %q", reply)
	}
	return step, nil
}
