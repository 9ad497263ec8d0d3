// Package agent implements the agent patterns built on the knowledge graph
// and tool packages.
//
//   - KGAgent answers natural-language questions against a kg.Graph by
//     matching entity names in the question and presenting entity facts or
//     relationship paths.
//   - ReActAgent runs the Thought/Action/Observation loop, dispatching
//     actions through a tool.Registry. The next step comes from a Planner;
//     RulePlanner decides by keyword heuristics, LLMPlanner asks a
//     langchaingo model.
//   - System coordinates role-based workers (researcher, writer, reviewer,
//     executor) under a Supervisor that decomposes a task, routes subtasks
//     and forwards intermediate results as typed messages.
//
// All agents implement the Agent interface and can record what they did to
// a store.SessionStore.
package agent
