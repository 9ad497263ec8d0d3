// Package adapter groups integrations with external LLM providers.
//
// Each subpackage bridges one provider SDK onto the interfaces the agent
// package defines, so the agents themselves stay provider-agnostic:
//
//   - adapter/openai implements agent.Planner on the OpenAI chat
//     completions API (and any API speaking its dialect, via a base URL
//     override).
//
// The langchaingo-backed agent.LLMPlanner covers every provider langchaingo
// supports; adapters here exist for SDKs used directly.
package adapter
