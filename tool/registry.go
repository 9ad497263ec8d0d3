package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/tools"
)

// ErrToolNotFound is returned when a tool name is not registered. Check
// with errors.Is.
var ErrToolNotFound = errors.New("tool not found")

// Info describes a registered tool for listing purposes.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry holds tools by name and executes them on demand. Registration
// order is preserved by List. The registry is not safe for concurrent
// mutation; register everything up front.
type Registry struct {
	tools map[string]tools.Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]tools.Tool),
	}
}

// Register adds a tool, replacing any tool already registered under the
// same name.
func (r *Registry) Register(t tools.Tool) {
	name := t.Name()
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}
	r.tools[name] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (tools.Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t, nil
}

// List returns name and description of every registered tool in
// registration order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Info{Name: name, Description: r.tools[name].Description()})
	}
	return out
}

// Execute looks up a tool by name and calls it. An unknown name yields an
// error wrapping ErrToolNotFound; tool failures pass through as returned by
// the tool.
func (r *Registry) Execute(ctx context.Context, name, input string) (string, error) {
	t, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return t.Call(ctx, input)
}

// DefaultRegistry returns a registry with the built-in tools that need no
// external state: calculator, weather, datetime and search. FileWrite and
// the graph tools need a directory or a graph and are registered by the
// caller.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewCalculator())
	r.Register(NewWeather())
	r.Register(NewDateTime())
	r.Register(NewSearch())
	return r
}
