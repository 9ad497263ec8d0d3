// Package tool provides the tools agents call while working through a task,
// plus a registry that dispatches tool invocations by name.
//
// Every tool implements the langchaingo tools.Tool interface:
//
//	type Tool interface {
//		Name() string
//		Description() string
//		Call(ctx context.Context, input string) (string, error)
//	}
//
// so tools from this package drop into anything else built on langchaingo,
// and third-party langchaingo tools register here unchanged.
//
// # Built-in Tools
//
//   - Calculator: arithmetic expression evaluation without eval
//   - Weather: canned conditions for a handful of cities (demo data)
//   - DateTime: current date and time
//   - Search: keyword lookup over a small built-in knowledge base
//   - FileWrite: JSON-driven file writing inside a sandbox directory
//   - GraphLookup / GraphPath: queries against a shared kg.Graph
//   - BraveSearch: real web search through the Brave API
//
// # Registry
//
//	registry := tool.NewRegistry()
//	registry.Register(tool.NewCalculator())
//	registry.Register(tool.NewSearch())
//
//	out, err := registry.Execute(ctx, "calculator", "2 + 2 * 3")
//	// out == "Result: 8"
//
// Execute returns an error wrapping ErrToolNotFound for unknown names;
// agents that prefer the soft style render it as an observation string
// instead of failing the run.
//
// DefaultRegistry returns a registry pre-loaded with the built-in tools
// that need no external state.
package tool
