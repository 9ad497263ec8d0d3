package kg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph() *Graph {
	g := New()
	g.Insert("a", "r1", "b")
	g.Insert("b", "r2", "c")
	g.Insert("c", "r3", "d")
	g.Insert("d", "r4", "e")
	return g
}

func TestFindPathTwoHops(t *testing.T) {
	g := New()
	g.Insert("a", "rel1", "b")
	g.Insert("b", "rel2", "c")

	path, ok := g.FindPath("a", "c", DefaultMaxDepth)
	require.True(t, ok)
	require.Len(t, path, 2)
	assert.Equal(t, Triple{Subject: "a", Predicate: "rel1", Object: "b"}, path[0])
	assert.Equal(t, Triple{Subject: "b", Predicate: "rel2", Object: "c"}, path[1])
	assert.Equal(t, "a --[rel1]--> b --[rel2]--> c", path.String())
}

func TestFindPathSelf(t *testing.T) {
	g := New()
	g.Insert("a", "r", "b")

	path, ok := g.FindPath("a", "a", DefaultMaxDepth)
	require.True(t, ok)
	assert.Empty(t, path)
	assert.Equal(t, "", path.String())

	t.Run("self with depth zero", func(t *testing.T) {
		path, ok := g.FindPath("a", "a", 0)
		require.True(t, ok)
		assert.Empty(t, path)
	})

	t.Run("self loop edge does not lengthen the path", func(t *testing.T) {
		g := New()
		g.Insert("x", "loops", "x")
		path, ok := g.FindPath("x", "x", DefaultMaxDepth)
		require.True(t, ok)
		assert.Empty(t, path)
	})
}

func TestFindPathUnreachable(t *testing.T) {
	g := New()
	g.Insert("a", "r", "b")
	g.Insert("c", "r", "d")

	_, ok := g.FindPath("a", "d", DefaultMaxDepth)
	assert.False(t, ok)

	// Edges are directed, so being an object does not reach back.
	_, ok = g.FindPath("b", "a", DefaultMaxDepth)
	assert.False(t, ok)
}

func TestFindPathUnknownEndpoints(t *testing.T) {
	g := New()
	g.Insert("a", "r", "b")

	_, ok := g.FindPath("ghost", "b", DefaultMaxDepth)
	assert.False(t, ok)

	_, ok = g.FindPath("a", "ghost", DefaultMaxDepth)
	assert.False(t, ok)

	// Even identical endpoints fail when the name is unregistered.
	_, ok = g.FindPath("ghost", "ghost", DefaultMaxDepth)
	assert.False(t, ok)
}

func TestFindPathDepthBound(t *testing.T) {
	g := chainGraph()

	_, ok := g.FindPath("a", "e", 2)
	assert.False(t, ok)

	_, ok = g.FindPath("a", "e", 3)
	assert.False(t, ok)

	// A path of exactly maxDepth hops must be reported.
	path, ok := g.FindPath("a", "e", 4)
	require.True(t, ok)
	assert.Len(t, path, 4)

	path, ok = g.FindPath("a", "e", 10)
	require.True(t, ok)
	assert.Len(t, path, 4)
}

func TestFindPathDepthZero(t *testing.T) {
	g := New()
	g.Insert("a", "r", "b")

	_, ok := g.FindPath("a", "b", 0)
	assert.False(t, ok)

	_, ok = g.FindPath("a", "b", -1)
	assert.False(t, ok)
}

func TestFindPathReturnsShortestRoute(t *testing.T) {
	g := New()
	// Long route first so shortness wins over insertion order.
	g.Insert("a", "step", "b")
	g.Insert("b", "step", "c")
	g.Insert("c", "step", "d")
	g.Insert("a", "jump", "x")
	g.Insert("x", "jump", "d")

	path, ok := g.FindPath("a", "d", DefaultMaxDepth)
	require.True(t, ok)
	require.Len(t, path, 2)
	assert.Equal(t, "a --[jump]--> x --[jump]--> d", path.String())
}

func TestFindPathInsertionOrderTieBreak(t *testing.T) {
	g := New()
	g.Insert("a", "via_b", "b")
	g.Insert("a", "via_c", "c")
	g.Insert("b", "to", "d")
	g.Insert("c", "to", "d")

	path, ok := g.FindPath("a", "d", DefaultMaxDepth)
	require.True(t, ok)
	require.Len(t, path, 2)
	assert.Equal(t, "b", path[0].Object)
}

func TestFindPathCyclicGraphTerminates(t *testing.T) {
	g := New()
	g.Insert("a", "r", "b")
	g.Insert("b", "r", "a")
	g.Insert("b", "r", "c")
	g.Insert("island", "r", "far")

	path, ok := g.FindPath("a", "c", DefaultMaxDepth)
	require.True(t, ok)
	assert.Len(t, path, 2)

	// Registered but unreachable; the search must drain, not spin.
	_, ok = g.FindPath("a", "far", DefaultMaxDepth)
	assert.False(t, ok)
}
