// Package cli wires the gridfmt command tree: subcommands that project
// JSON, CSV/TSV, Markdown, and XLSX inputs into cell tables and render them
// with package grid.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/codalotl/gridfmt/internal/q/cli"
	"github.com/codalotl/gridfmt/internal/simplelogger"
	"github.com/codalotl/gridfmt/style"
	"golang.org/x/term"
)

// Version is the gridfmt version. It is a var (not a const) so build tooling
// can override it via -ldflags.
var Version = "0.3.0"

// RunOptions override standard I/O, which is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args) and returns a process exit
// code.
func Run(args []string, opts *RunOptions) int {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	return cli.Run(context.Background(), newRootCommand(), cli.Options{
		Args: argv,
		In:   in,
		Out:  out,
		Err:  errW,
	})
}

// app holds flag bindings shared by every subcommand.
type app struct {
	configPath *string
	color      *string
}

func newRootCommand() *cli.Command {
	root := &cli.Command{
		Name:  "gridfmt",
		Short: "render tabular data as a box-drawing grid",
		Long: "gridfmt reads tabular data (JSON, CSV/TSV, Markdown tables, XLSX sheets)\n" +
			"and prints it as a box-drawing grid. Nested structures render as nested\n" +
			"grids.",
	}

	a := &app{}
	a.configPath = root.Flags().String("config", 'c', "", "path to a TOML config with a [style] table")
	a.color = root.Flags().String("color", 0, "auto", "when to style output: auto, always, never")

	root.AddCommand(
		newJSONCommand(a),
		newCSVCommand(a),
		newMarkdownCommand(a),
		newXLSXCommand(a),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Short: "print the gridfmt version",
		Args:  cli.NoArgs,
		Run: func(c *cli.Context) error {
			fmt.Fprintln(c.Out, Version)
			return nil
		},
	}
}

// readInput returns the named file's contents, or everything from stdin if
// no file argument was given.
func readInput(c *cli.Context, args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		simplelogger.Log("gridfmt %s: read %d bytes from %s", c.Command.Name, len(data), args[0])
		return data, nil
	}

	data, err := io.ReadAll(c.In)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	simplelogger.Log("gridfmt %s: read %d bytes from stdin", c.Command.Name, len(data))
	return data, nil
}

// emit prints rendered grid lines, applying the configured style to whole
// lines only. Styling never feeds back into layout: the lines are already
// laid out when they get here.
func (a *app) emit(c *cli.Context, lines []string) error {
	st, err := a.loadStyle()
	if err != nil {
		return err
	}

	useColor := false
	switch *a.color {
	case "always":
		useColor = true
	case "never", "":
		useColor = false
	case "auto":
		useColor = isTerminal(c.Out)
	default:
		return cli.UsageError{Message: fmt.Sprintf("invalid --color value: %q", *a.color)}
	}

	a.warnIfTooWide(c, lines)

	for _, line := range lines {
		if useColor {
			line = st.Format(line)
		}
		fmt.Fprintln(c.Out, line)
	}
	return nil
}

func (a *app) loadStyle() (style.Style, error) {
	if *a.configPath == "" {
		return style.Style{}, nil
	}
	cfg, err := LoadConfig(*a.configPath)
	if err != nil {
		return style.Style{}, err
	}
	return cfg.Style.Style()
}

// warnIfTooWide tells the user when the grid won't fit the terminal. The
// grid is never wrapped or truncated; the warning is all they get.
func (a *app) warnIfTooWide(c *cli.Context, lines []string) {
	if len(lines) == 0 {
		return
	}
	f, ok := c.Out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return
	}
	if width := style.VisibleWidth(lines[0]); width > cols {
		fmt.Fprintf(c.Err, "gridfmt: grid is %d columns wide but the terminal has %d\n", width, cols)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
