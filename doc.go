// AgentGraph - Knowledge-Graph Agents in Go
//
// AgentGraph is a library for building agents around an in-memory knowledge
// graph. The graph is a directed labeled multigraph of subject-predicate-
// object triples; agents answer questions from it, reason over tools in a
// ReAct loop, or cooperate under a supervisor, and every interaction can be
// recorded to a pluggable session store.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/agentgraph-dev/agentgraph
//
// Basic example:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/agentgraph-dev/agentgraph/agent"
//		"github.com/agentgraph-dev/agentgraph/kg"
//	)
//
//	func main() {
//		g := kg.New()
//		g.Insert("Go", "is", "Programming Language")
//		g.Insert("Go", "created_by", "Google")
//
//		a := agent.NewKGAgent(g)
//		answer, _ := a.Process(context.Background(), "What is Go?")
//		fmt.Println(answer)
//	}
//
// # Packages
//
//   - kg: the triple store with conjunctive queries, bounded BFS path
//     search and Mermaid/DOT export. kg/sample ships a populated graph.
//   - agent: the KG question-answering agent, the ReAct agent with
//     pluggable planners, and the supervisor-based multi-agent system.
//   - tool: langchaingo-compatible tools (calculator, search, weather,
//     datetime, file writing, Brave search) plus tools that expose a
//     knowledge graph to a ReAct loop.
//   - loader: builds graphs from text, JSON, HTML and Markdown sources.
//   - store: session transcripts with memory, file, SQLite, Redis and
//     PostgreSQL backends.
//   - adapter/openai: an agent.Planner on the OpenAI chat completions API.
//   - render: terminal output helpers for answers, facts and step traces.
//   - config: viper-based configuration with environment overrides.
//   - log: the logging facade used across the library.
//
// # Determinism
//
// Every read of the graph is deterministic: entities iterate in first-seen
// order, query results follow subject insertion order, and path search
// breaks ties by edge insertion order. Two programs inserting the same
// triples in the same order always observe identical results.
//
// # Concurrency
//
// kg.Graph is not synchronized; wrap it with a lock if goroutines mutate it
// concurrently. Session stores and mailboxes are safe for concurrent use.
package agentgraph
