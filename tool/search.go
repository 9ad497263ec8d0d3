package tool

import (
	"context"
	"fmt"
	"strings"
)

// Search answers queries from a small built-in knowledge base by keyword
// matching. It is the offline stand-in for a real search tool such as
// BraveSearch.
type Search struct {
	entries []searchEntry
}

type searchEntry struct {
	key   string
	value string
}

// NewSearch creates a search tool over the built-in knowledge base.
func NewSearch() *Search {
	return &Search{
		entries: []searchEntry{
			{"ai agents", "AI agents are autonomous systems that perceive their environment and take actions to achieve goals."},
			{"react", "ReAct (Reasoning and Acting) is a paradigm for AI agents that combines reasoning with action execution."},
			{"langchain", "LangChain is a framework for developing applications powered by language models."},
			{"llm", "Large Language Models (LLMs) are AI models trained on vast amounts of text data."},
		},
	}
}

// Name returns the name of the tool.
func (s *Search) Name() string {
	return "search"
}

// Description returns the description of the tool.
func (s *Search) Description() string {
	return "Searches for information on a topic. Input should be a search query."
}

// Call matches known keys against the lowered query, first match wins.
// No match is a soft miss, not an error.
func (s *Search) Call(ctx context.Context, query string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(query))
	for _, e := range s.entries {
		if strings.Contains(lowered, e.key) {
			return fmt.Sprintf("Search result for %q: %s", query, e.value), nil
		}
	}
	return fmt.Sprintf("No specific information found for %q", query), nil
}
