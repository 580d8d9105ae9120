package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const consoleScene = `
vars {
  amp = 2.5
}

axis "x" {
  min = 0
  max = 2
}

function3d "wave" {
  mode       = "x,y,z=fns(t)"
  fnx        = "t"
  fny        = "amp * sin(tau * t)"
  fnz        = "0"
  line_steps = 5
}
`

func newTestConsole(t *testing.T, sceneSrc string) (*Console, *bytes.Buffer, string) {
	t.Helper()
	out := &bytes.Buffer{}

	path := ""
	if sceneSrc != "" {
		path = filepath.Join(t.TempDir(), "scene.hcl")
		require.NoError(t, os.WriteFile(path, []byte(sceneSrc), 0o644))
	}
	c := New(path, out)
	require.NoError(t, c.load(context.Background()))
	return c, out, path
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("number", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.evaluate(ctx, "2 + 2")
		require.Equal(t, "4\n", out.String())
	})

	t.Run("undefined result", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.evaluate(ctx, "sqrt(0 - 1)")
		require.Equal(t, "undefined\n", out.String())
	})

	t.Run("broken expression", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.evaluate(ctx, "sqrt(")
		require.Contains(t, out.String(), "invalid expression")
	})

	t.Run("scene variables in scope", func(t *testing.T) {
		c, out, _ := newTestConsole(t, consoleScene)
		c.evaluate(ctx, "amp * 4")
		require.Equal(t, "10\n", out.String())
	})

	t.Run("expression of t prints a sample window", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.evaluate(ctx, "2 * t")
		require.Equal(t, sampleWindow, strings.Count(out.String(), "t="))
		require.Contains(t, out.String(), "t=0")
		require.Contains(t, out.String(), "t=0.25")
		require.Contains(t, out.String(), "t=1")
		require.Contains(t, out.String(), "2\n")
	})
}

func TestCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("funcs", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":funcs")
		require.Contains(t, out.String(), "sin")
		require.Contains(t, out.String(), "atan2")
	})

	t.Run("vars", func(t *testing.T) {
		c, out, _ := newTestConsole(t, consoleScene)
		c.command(ctx, ":vars")
		require.Contains(t, out.String(), "amp = 2.5")
	})

	t.Run("vars without scene", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":vars")
		require.Contains(t, out.String(), "(no scene variables)")
	})

	t.Run("set overrides a scene variable", func(t *testing.T) {
		c, out, _ := newTestConsole(t, consoleScene)
		c.command(ctx, ":set amp 2 * 3")
		require.Contains(t, out.String(), "amp = 6")

		out.Reset()
		c.evaluate(ctx, "amp")
		require.Equal(t, "6\n", out.String())

		// Reloading from disk keeps the override.
		out.Reset()
		c.command(ctx, ":reload")
		c.command(ctx, ":vars")
		require.Contains(t, out.String(), "amp = 6")
	})

	t.Run("set defines a new variable without a scene", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":set k sqrt(16)")
		require.Contains(t, out.String(), "k = 4")

		out.Reset()
		c.evaluate(ctx, "k + 1")
		require.Equal(t, "5\n", out.String())
	})

	t.Run("set rejects bad input", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":set")
		require.Contains(t, out.String(), "usage: :set NAME EXPR")

		out.Reset()
		c.command(ctx, ":set k")
		require.Contains(t, out.String(), "usage: :set NAME EXPR")

		out.Reset()
		c.command(ctx, ":set 2x 5")
		require.Contains(t, out.String(), `invalid variable name "2x"`)

		out.Reset()
		c.command(ctx, ":set k sqrt(")
		require.Contains(t, out.String(), "invalid expression")
	})

	t.Run("ranges", func(t *testing.T) {
		c, out, _ := newTestConsole(t, consoleScene)
		c.command(ctx, ":ranges")
		require.Contains(t, out.String(), "x")
		require.Contains(t, out.String(), "[0, 2]")
		require.Contains(t, out.String(), "y")
	})

	t.Run("build", func(t *testing.T) {
		c, out, _ := newTestConsole(t, consoleScene)
		c.command(ctx, ":build")
		require.Contains(t, out.String(), "wave")
		require.Contains(t, out.String(), "4 segments, 0 triangles")
	})

	t.Run("reload", func(t *testing.T) {
		c, out, path := newTestConsole(t, consoleScene)
		updated := consoleScene + `
function3d "plane" {
  mode = "z=fn(x,y)"
  fnz  = "x * y"
}
`
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
		c.command(ctx, ":reload")
		require.Contains(t, out.String(), "scene reloaded: 3 axes, 2 plots")
	})

	t.Run("reload without scene", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":reload")
		require.Contains(t, out.String(), "no scene loaded")
	})

	t.Run("unknown command", func(t *testing.T) {
		c, out, _ := newTestConsole(t, "")
		c.command(ctx, ":nope")
		require.Contains(t, out.String(), "unknown command: :nope")
	})
}

func TestComplete(t *testing.T) {
	c, _, _ := newTestConsole(t, consoleScene)

	require.Contains(t, c.complete("2 * sq"), "2 * sqrt")
	require.Contains(t, c.complete(":ra"), ":ranges")

	matches := c.complete("amp * si")
	require.Contains(t, matches, "amp * sin")
	require.Contains(t, matches, "amp * sign")

	require.Contains(t, c.complete("am"), "amp")

	require.Nil(t, c.complete(""))
	require.Nil(t, c.complete("2 + "))
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "2.5", formatValue(cty.NumberFloatVal(2.5)))
	require.Equal(t, `"hello"`, formatValue(cty.StringVal("hello")))
	require.Equal(t, "true", formatValue(cty.True))
	require.Equal(t, "null", formatValue(cty.NullVal(cty.Number)))
}
