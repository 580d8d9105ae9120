package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("x")
	assert.Len(t, g.nodes, 1)
	nodeX, ok := g.nodes["x"]
	require.True(t, ok)
	assert.Equal(t, "x", nodeX.id)
	assert.NotNil(t, nodeX.deps)
	assert.NotNil(t, nodeX.dependents)

	g.AddNode("x") // idempotent
	assert.Len(t, g.nodes, 1)

	g.AddNode("y")
	assert.Len(t, g.nodes, 2)
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("x")
		g.AddNode("z")

		err := g.AddEdge("x", "z") // z depends on x
		require.NoError(t, err)

		deps, err := g.Dependencies("z")
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, deps)

		dependents, err := g.Dependents("x")
		require.NoError(t, err)
		assert.Equal(t, []string{"z"}, dependents)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("x")

		err := g.AddEdge("dne", "x")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("x", "dne")
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("x", "x")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		g := New()
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := New()
		for _, id := range []string{"x", "y", "z", "t"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "z"))
		require.NoError(t, g.AddEdge("x", "z")) // transitive edge
		require.NoError(t, g.AddEdge("z", "t"))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("direct cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("x")
		g.AddNode("z")
		require.NoError(t, g.AddEdge("x", "z"))
		require.NoError(t, g.AddEdge("z", "x"))
		err := g.DetectCycles()
		assert.ErrorContains(t, err, "cycle detected")
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))

		g.AddNode("u")
		g.AddNode("v")
		g.AddNode("w")
		require.NoError(t, g.AddEdge("u", "v"))
		require.NoError(t, g.AddEdge("v", "w"))
		require.NoError(t, g.AddEdge("w", "v"))

		err := g.DetectCycles()
		assert.ErrorContains(t, err, "cycle detected")
	})
}

func TestTopologicalOrder(t *testing.T) {
	t.Run("orders dependencies first", func(t *testing.T) {
		g := New()
		for _, id := range []string{"x", "y", "z"} {
			g.AddNode(id)
		}
		// z resolves from x and y.
		require.NoError(t, g.AddEdge("x", "z"))
		require.NoError(t, g.AddEdge("y", "z"))

		ordered, cyclic := g.TopologicalOrder()
		assert.Empty(t, cyclic)
		assert.Equal(t, []string{"x", "y", "z"}, ordered)
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		g := New()
		for _, id := range []string{"c", "a", "b"} {
			g.AddNode(id)
		}
		ordered, cyclic := g.TopologicalOrder()
		assert.Empty(t, cyclic)
		assert.Equal(t, []string{"a", "b", "c"}, ordered)
	})

	t.Run("chain", func(t *testing.T) {
		g := New()
		for _, id := range []string{"x", "y", "z"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("z", "y"))
		require.NoError(t, g.AddEdge("y", "x"))

		ordered, cyclic := g.TopologicalOrder()
		assert.Empty(t, cyclic)
		assert.Equal(t, []string{"z", "y", "x"}, ordered)
	})

	t.Run("cycle members are ordered out separately", func(t *testing.T) {
		g := New()
		for _, id := range []string{"x", "y", "z"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "x"))

		ordered, cyclic := g.TopologicalOrder()
		assert.Equal(t, []string{"z"}, ordered)
		assert.Equal(t, []string{"x", "y"}, cyclic)
	})

	t.Run("node depending on a cycle is also unordered", func(t *testing.T) {
		g := New()
		for _, id := range []string{"x", "y", "z"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "x"))
		require.NoError(t, g.AddEdge("y", "z"))

		ordered, cyclic := g.TopologicalOrder()
		assert.Empty(t, ordered)
		assert.Equal(t, []string{"x", "y", "z"}, cyclic)
	})
}
