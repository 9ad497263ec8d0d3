package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentgraph-dev/agentgraph/kg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStaticLoader(t *testing.T) {
	t.Parallel()
	src := []kg.Triple{
		{Subject: "Go", Predicate: "created_by", Object: "Google"},
	}
	l := NewStatic(src)
	src[0].Subject = "mutated"

	got, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go", got[0].Subject, "loader must not share the caller's slice")
}

func TestTextLoader(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.txt", `
# AI facts
Artificial Intelligence | includes | Machine Learning
Machine Learning | includes | Deep Learning

GPT | is_example_of | Large Language Models
`)

	got, err := NewText(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, kg.Triple{
		Subject:   "Artificial Intelligence",
		Predicate: "includes",
		Object:    "Machine Learning",
	}, got[0])
	assert.Equal(t, "GPT", got[2].Subject)
}

func TestTextLoaderCustomSeparator(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.tsv", "Go\tcreated_by\tGoogle\n")

	got, err := NewText(path, WithSeparator("\t")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "created_by", got[0].Predicate)
}

func TestTextLoaderMalformedLine(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.txt", "only two | fields\n")

	_, err := NewText(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1:")
}

func TestTextLoaderMissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewText("/no/such/file.txt").Load(context.Background())
	assert.Error(t, err)
}

func TestJSONLoader(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.json", `[
		{"subject": "GPT", "predicate": "is_example_of", "object": "Large Language Models"},
		{"subject": "BERT", "predicate": "is_example_of", "object": "Large Language Models"}
	]`)

	got, err := NewJSON(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "BERT", got[1].Subject)
}

func TestJSONLoaderInvalid(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.json", `{"not": "an array"}`)

	_, err := NewJSON(path).Load(context.Background())
	assert.Error(t, err)
}

func TestHTMLLoaderTable(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.html", `<html><body>
<table>
  <tr><th>Subject</th><th>Predicate</th><th>Object</th></tr>
  <tr><td>AI Agents</td><td>uses</td><td>Reasoning</td></tr>
  <tr><td>ReAct</td><td>is_type_of</td><td>AI Agents</td></tr>
</table>
<script>alert("never parsed")</script>
</body></html>`)

	got, err := NewHTML(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, kg.Triple{Subject: "AI Agents", Predicate: "uses", Object: "Reasoning"}, got[0])
}

func TestHTMLLoaderList(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.html", `<ul>
  <li>LangChain | is | Framework</li>
  <li>a plain item with no triple</li>
  <li>LlamaIndex | is | Framework</li>
</ul>`)

	got, err := NewHTML(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "LlamaIndex", got[1].Subject)
}

func TestMarkdownLoaderTable(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "facts.md", `# Facts

| Subject | Predicate | Object |
|---------|-----------|--------|
| GPT | is_example_of | Large Language Models |
| BERT | is_example_of | Large Language Models |
`)

	got, err := NewMarkdown(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "GPT", got[0].Subject)
	assert.Equal(t, "is_example_of", got[0].Predicate)
}

func TestLoadInto(t *testing.T) {
	t.Parallel()
	g := kg.New()
	n, err := LoadInto(context.Background(), g,
		NewStatic([]kg.Triple{{Subject: "A", Predicate: "r", Object: "B"}}),
		NewStatic([]kg.Triple{{Subject: "B", Predicate: "r", Object: "C"}}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, g.Len())

	path, found := g.FindPath("A", "C", kg.DefaultMaxDepth)
	require.True(t, found)
	assert.Len(t, path, 2)
}

func TestLoadIntoStopsOnError(t *testing.T) {
	t.Parallel()
	g := kg.New()
	n, err := LoadInto(context.Background(), g,
		NewStatic([]kg.Triple{{Subject: "A", Predicate: "r", Object: "B"}}),
		NewText("/no/such/file.txt"),
	)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, g.Len())
}

func TestFromFile(t *testing.T) {
	t.Parallel()
	cases := map[string]any{
		"x.txt":  (*Text)(nil),
		"x.tsv":  (*Text)(nil),
		"x.json": (*JSON)(nil),
		"x.html": (*HTML)(nil),
		"x.md":   (*Markdown)(nil),
	}
	for name, want := range cases {
		l, err := FromFile(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, l, name)
	}

	_, err := FromFile("x.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
