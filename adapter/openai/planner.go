// Package openai implements a ReAct planner on the OpenAI chat completions
// API through the sashabaranov/go-openai client.
package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/agentgraph-dev/agentgraph/agent"
	"github.com/agentgraph-dev/agentgraph/tool"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Planner asks an OpenAI chat model for the next ReAct step. It speaks the
// same Thought/Action/Final Answer protocol as agent.LLMPlanner, so the two
// are interchangeable behind agent.Planner.
type Planner struct {
	client *goopenai.Client
	model  string
	tools  []tool.Info

	baseURL string
}

var _ agent.Planner = (*Planner)(nil)

// Option configures a Planner.
type Option func(*Planner)

// WithModel selects the chat model.
func WithModel(model string) Option {
	return func(p *Planner) {
		p.model = model
	}
}

// WithBaseURL points the client at a different endpoint: a proxy, an
// OpenAI-compatible server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(p *Planner) {
		p.baseURL = baseURL
	}
}

// NewPlanner creates a planner that may propose the given tools.
func NewPlanner(apiKey string, tools []tool.Info, opts ...Option) (*Planner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	p := &Planner{
		model: DefaultModel,
		tools: tools,
	}
	for _, opt := range opts {
		opt(p)
	}

	cfg := goopenai.DefaultConfig(apiKey)
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	p.client = goopenai.NewClientWithConfig(cfg)
	return p, nil
}

// Plan sends the transcript-bearing prompt and parses the model's reply
// into a step.
func (p *Planner) Plan(ctx context.Context, question string, steps []agent.Step) (agent.Step, error) {
	prompt := agent.BuildReActPrompt(question, steps, p.tools)

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return agent.Step{}, fmt.Errorf("openai planner: %w", err)
	}
	if len(resp.Choices) == 0 {
		return agent.Step{}, fmt.Errorf("openai planner: empty response")
	}
	return agent.ParseReActReply(resp.Choices[0].Message.Content)
}
