package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingContext is a minimal ExtensionContext used to prove
// AttachExtension/DetachExtension actually install and remove an overload,
// per property 8 (extension isolation): attaching and detaching an
// extension must leave the embedder's behavior exactly as it was before.
// This file lives in package core (not core_test) because its overlay needs
// to delegate to the unexported default embeddingInitializeCore to stay a
// faithful decorator rather than a partial reimplementation.
type countingContext struct {
	calls int
}

func (c *countingContext) DupContext(_ *Graph) ExtensionContext {
	return &countingContext{calls: c.calls}
}

func buildCompleteForExtTest(t *testing.T, n int) *Graph {
	t.Helper()
	g := NewGraph()
	require.NoError(t, g.InitGraph(n, 0))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}
	return g
}

func TestAttachExtensionOverloadsHook(t *testing.T) {
	g := buildCompleteForExtTest(t, 4)

	ctx := &countingContext{}
	overlay := ExtensionOverlay{
		EmbeddingInitialize: func(g *Graph) error {
			ctx.calls++
			return embeddingInitializeCore(g)
		},
	}
	g.AttachExtension("counting", ctx, overlay)

	res, err := g.Embed(FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, Embedded, res)
	assert.Equal(t, 1, ctx.calls)

	got, err := g.FindExtension("counting")
	require.NoError(t, err)
	assert.Same(t, ctx, got)
}

// TestDetachExtensionRestoresDefaultBehavior checks that detaching an
// extension leaves Embed behaving exactly as an unextended graph would
// (property 8): after detach, Embed (here on a second graph) must not
// invoke the overload again.
func TestDetachExtensionRestoresDefaultBehavior(t *testing.T) {
	g := buildCompleteForExtTest(t, 4)

	ctx := &countingContext{}
	g.AttachExtension("counting", ctx, ExtensionOverlay{
		EmbeddingInitialize: func(g *Graph) error {
			ctx.calls++
			return embeddingInitializeCore(g)
		},
	})

	_, err := g.Embed(FlagPlanar)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.calls)

	detached, err := g.DetachExtension("counting")
	require.NoError(t, err)
	assert.Same(t, ctx, detached)

	_, err = g.FindExtension("counting")
	assert.ErrorIs(t, err, ErrExtensionNotFound)

	g2 := buildCompleteForExtTest(t, 4)
	_, err = g2.Embed(FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.calls, "Embed on an unrelated graph must not invoke a detached extension's hook")
}

// TestDetachExtensionRequiresLIFOOrder checks that detaching anything but
// the most recently attached extension is rejected rather than silently
// leaving the function table inconsistent.
func TestDetachExtensionRequiresLIFOOrder(t *testing.T) {
	g := buildCompleteForExtTest(t, 4)

	g.AttachExtension("outer", &countingContext{}, ExtensionOverlay{})
	g.AttachExtension("inner", &countingContext{}, ExtensionOverlay{})

	_, err := g.DetachExtension("outer")
	assert.ErrorIs(t, err, ErrExtensionConflict)

	_, err = g.DetachExtension("inner")
	require.NoError(t, err)
	_, err = g.DetachExtension("outer")
	require.NoError(t, err)
}
