package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/peterh/liner"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/surfgrid/internal/expr"
	"github.com/vk/surfgrid/internal/sample"
	"github.com/vk/surfgrid/internal/scene"
)

const prompt = "surfgrid> "

// sampleWindow is the number of t values an expression of t is shown over.
const sampleWindow = 5

// Console is an interactive expression prompt, optionally bound to a scene.
type Console struct {
	scenePath string
	out       io.Writer

	doc         *scene.Document
	eval        *expr.Service
	overrides   map[string]cty.Value
	completions []string
}

// New creates a console. scenePath may be empty, leaving a bare calculator
// over the builtin functions and constants.
func New(scenePath string, out io.Writer) *Console {
	return &Console{scenePath: scenePath, out: out}
}

// Run starts the prompt loop and blocks until the user exits.
func (c *Console) Run(ctx context.Context) error {
	if err := c.load(ctx); err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(c.complete)

	historyFile := filepath.Join(os.TempDir(), ".surfgrid_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(c.out, "surfgrid console")
	if c.doc != nil {
		fmt.Fprintf(c.out, "scene loaded: %d axes, %d plots\n", len(c.doc.Axes()), len(c.doc.Plots()))
	}
	fmt.Fprintln(c.out, "Type an expression to evaluate it, ':help' for commands, 'exit' or Ctrl+D to quit")
	fmt.Fprintln(c.out, "")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(c.out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(c.out, "")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}
		line.AppendHistory(input)

		if strings.HasPrefix(trimmed, ":") {
			c.command(ctx, trimmed)
			continue
		}
		c.evaluate(ctx, trimmed)
	}
}

// load builds the evaluation service, from the scene document when a path is
// configured. Variable overrides from :set survive reloads.
func (c *Console) load(ctx context.Context) error {
	if c.scenePath == "" {
		c.eval = expr.NewService(c.overrides)
		c.refreshCompletions()
		return nil
	}
	doc, err := scene.LoadPathWith(ctx, c.scenePath, scene.Options{Vars: c.overrides})
	if err != nil {
		return err
	}
	c.doc = doc
	c.eval = doc.Eval()
	c.refreshCompletions()
	return nil
}

// sessionVars returns the variables visible at the prompt.
func (c *Console) sessionVars() map[string]cty.Value {
	if c.doc != nil {
		return c.doc.Vars()
	}
	return c.overrides
}

// evaluate compiles and evaluates one expression. Scalar expressions print
// one number; an expression of t prints a small sample window over [0, 1].
// Anything that cannot be evaluated prints as a short word rather than an
// error dump; run with debug logging for the reasons.
func (c *Console) evaluate(ctx context.Context, src string) {
	if prog, ok := c.eval.Compile(ctx, src); ok {
		v, ok := c.eval.Scalar(ctx, prog)
		if !ok {
			fmt.Fprintln(c.out, "undefined")
			return
		}
		fmt.Fprintf(c.out, "%g\n", v)
		return
	}

	prog, ok := c.eval.Compile(ctx, src, "t")
	if !ok {
		fmt.Fprintln(c.out, "invalid expression (:funcs lists what is available)")
		return
	}
	ts := sample.Linear(0, 1, sampleWindow)
	vals, ok := c.eval.Vector(ctx, prog, map[string][]float64{"t": ts}, sampleWindow)
	if !ok {
		fmt.Fprintln(c.out, "undefined")
		return
	}
	for i, tv := range ts {
		fmt.Fprintf(c.out, "  t=%-5g %g\n", tv, vals[i])
	}
}

func (c *Console) command(ctx context.Context, cmd string) {
	name, rest, _ := strings.Cut(cmd, " ")
	switch name {
	case ":help", ":h", ":?":
		fmt.Fprintln(c.out, "Console commands:")
		fmt.Fprintln(c.out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(c.out, "  :funcs          List builtin functions")
		fmt.Fprintln(c.out, "  :vars           Show scene variables")
		fmt.Fprintln(c.out, "  :set NAME EXPR  Override a scene variable")
		fmt.Fprintln(c.out, "  :ranges         Resolve and print axis ranges")
		fmt.Fprintln(c.out, "  :build          Build all plots and print fragment counts")
		fmt.Fprintln(c.out, "  :reload         Reload the scene from disk")
		fmt.Fprintln(c.out, "  exit, quit      Leave the console")

	case ":funcs":
		fmt.Fprintln(c.out, strings.Join(c.eval.FunctionNames(), " "))

	case ":vars":
		c.printVars()

	case ":set":
		c.setVar(ctx, strings.TrimSpace(rest))

	case ":ranges", ":range":
		c.printRanges(ctx)

	case ":build":
		c.printBuild(ctx)

	case ":reload":
		if c.scenePath == "" {
			fmt.Fprintln(c.out, "no scene loaded")
			return
		}
		if err := c.load(ctx); err != nil {
			fmt.Fprintf(c.out, "reload failed: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "scene reloaded: %d axes, %d plots\n", len(c.doc.Axes()), len(c.doc.Plots()))

	default:
		fmt.Fprintf(c.out, "unknown command: %s (type :help for commands)\n", cmd)
	}
}

// setVar handles ":set NAME EXPR". The value expression is evaluated in the
// current context; the result overrides the named variable for the rest of
// the session, and the scene reloads so variables derived from it follow.
func (c *Console) setVar(ctx context.Context, args string) {
	name, src, found := strings.Cut(args, " ")
	if !found || strings.TrimSpace(src) == "" {
		fmt.Fprintln(c.out, "usage: :set NAME EXPR")
		return
	}
	if !hclsyntax.ValidIdentifier(name) {
		fmt.Fprintf(c.out, "invalid variable name %q\n", name)
		return
	}

	prog, ok := c.eval.Compile(ctx, src)
	if !ok {
		fmt.Fprintln(c.out, "invalid expression (:funcs lists what is available)")
		return
	}
	v, ok := c.eval.Scalar(ctx, prog)
	if !ok {
		fmt.Fprintln(c.out, "undefined")
		return
	}

	if c.overrides == nil {
		c.overrides = make(map[string]cty.Value)
	}
	c.overrides[name] = cty.NumberFloatVal(v)
	if err := c.load(ctx); err != nil {
		fmt.Fprintf(c.out, "reload failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%s = %g\n", name, v)
}

func (c *Console) printVars() {
	vars := c.sessionVars()
	if len(vars) == 0 {
		fmt.Fprintln(c.out, "(no scene variables)")
		return
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.out, "  %s = %s\n", name, formatValue(vars[name]))
	}
}

func (c *Console) printRanges(ctx context.Context) {
	if c.doc == nil {
		fmt.Fprintln(c.out, "no scene loaded")
		return
	}
	c.doc.ResolveRanges(ctx)
	for _, ax := range c.doc.Axes() {
		min, max := ax.PlottedRange()
		scale := ""
		if ax.Log() {
			scale = "  log"
		}
		fmt.Fprintf(c.out, "  %-10s [%g, %g]%s\n", ax.Name(), min, max, scale)
	}
}

func (c *Console) printBuild(ctx context.Context) {
	if c.doc == nil {
		fmt.Fprintln(c.out, "no scene loaded")
		return
	}
	built := c.doc.BuildAll(ctx)
	if len(built) == 0 {
		fmt.Fprintln(c.out, "(nothing to draw)")
		return
	}
	for _, pg := range built {
		segments, triangles := 0, 0
		for _, line := range pg.Container.Lines {
			segments += len(line.Segments())
		}
		for _, mesh := range pg.Container.Meshes {
			if mesh.Line != nil {
				segments += len(mesh.LineSegments())
			}
			if mesh.Surface != nil {
				triangles += len(mesh.Triangles())
			}
		}
		fmt.Fprintf(c.out, "  %-12s %d segments, %d triangles\n", pg.Name, segments, triangles)
	}
}

// refreshCompletions rebuilds the tab completion word list from the current
// functions, constants and scene variables.
func (c *Console) refreshCompletions() {
	words := append([]string(nil), c.eval.FunctionNames()...)
	words = append(words, "pi", "tau", "e", "phi")
	for name := range c.sessionVars() {
		words = append(words, name)
	}
	words = append(words, ":help", ":funcs", ":vars", ":set", ":ranges", ":build", ":reload", "exit", "quit")
	sort.Strings(words)
	c.completions = words
}

// complete suggests completions for the word under the cursor, keeping the
// rest of the line intact.
func (c *Console) complete(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	if ch := line[len(line)-1]; ch == ' ' || ch == '\t' {
		return nil
	}

	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != ':'
	}) + 1
	head, last := line[:start], line[start:]
	if last == "" {
		return nil
	}

	var out []string
	for _, w := range c.completions {
		if strings.HasPrefix(w, last) {
			out = append(out, head+w)
		}
	}
	return out
}

// formatValue renders a cty value the way a user would have written it.
func formatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	switch v.Type() {
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case cty.String:
		return fmt.Sprintf("%q", v.AsString())
	case cty.Bool:
		return strconv.FormatBool(v.True())
	default:
		return v.GoString()
	}
}
