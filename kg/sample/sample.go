// Package sample builds a small knowledge graph about AI concepts, used by
// examples and tests that need a populated graph.
package sample

import "github.com/agentgraph-dev/agentgraph/kg"

// Triples returns the sample facts in insertion order.
func Triples() []kg.Triple {
	return []kg.Triple{
		{Subject: "Artificial Intelligence", Predicate: "includes", Object: "Machine Learning"},
		{Subject: "Machine Learning", Predicate: "includes", Object: "Deep Learning"},
		{Subject: "Machine Learning", Predicate: "includes", Object: "Supervised Learning"},
		{Subject: "Machine Learning", Predicate: "includes", Object: "Unsupervised Learning"},
		{Subject: "Deep Learning", Predicate: "includes", Object: "Neural Networks"},
		{Subject: "Large Language Models", Predicate: "is_type_of", Object: "Deep Learning"},
		{Subject: "GPT", Predicate: "is_example_of", Object: "Large Language Models"},
		{Subject: "BERT", Predicate: "is_example_of", Object: "Large Language Models"},
		{Subject: "AI Agents", Predicate: "uses", Object: "Large Language Models"},
		{Subject: "AI Agents", Predicate: "uses", Object: "Reasoning"},
		{Subject: "ReAct", Predicate: "is_type_of", Object: "AI Agents"},
		{Subject: "ReAct", Predicate: "combines", Object: "Reasoning"},
		{Subject: "ReAct", Predicate: "combines", Object: "Action"},
		{Subject: "LangChain", Predicate: "is", Object: "Framework"},
		{Subject: "LangChain", Predicate: "builds", Object: "AI Agents"},
		{Subject: "LlamaIndex", Predicate: "is", Object: "Framework"},
		{Subject: "LlamaIndex", Predicate: "builds", Object: "AI Agents"},
	}
}

// Build returns a fresh graph populated with the sample facts.
func Build() *kg.Graph {
	g := kg.New()
	for _, t := range Triples() {
		g.Insert(t.Subject, t.Predicate, t.Object)
	}
	return g
}
