package cli

import (
	"fmt"

	"github.com/codalotl/gridfmt/grid"
	"github.com/codalotl/gridfmt/internal/q/cli"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func newMarkdownCommand(a *app) *cli.Command {
	cmd := &cli.Command{
		Name:    "markdown",
		Short:   "render the pipe tables of a Markdown document as grids",
		Example: "gridfmt markdown README.md",
		Args:    cli.MaximumArgs(1),
	}

	cmd.Run = func(c *cli.Context) error {
		data, err := readInput(c, c.Args)
		if err != nil {
			return err
		}

		tables, err := extractMarkdownTables(data)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			fmt.Fprintln(c.Err, "gridfmt: no tables found")
			return nil
		}

		for i, rows := range tables {
			if i > 0 {
				fmt.Fprintln(c.Out)
			}
			lines, err := grid.Render(rows)
			if err != nil {
				return err
			}
			if err := a.emit(c, lines); err != nil {
				return err
			}
		}
		return nil
	}

	return cmd
}

// extractMarkdownTables parses src with the GFM table extension and returns
// the cell rows of each pipe table, header row first.
func extractMarkdownTables(src []byte) ([][][]string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return nil, fmt.Errorf("parse markdown: nil document")
	}

	var tables [][][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*extast.Table)
		if !ok {
			return ast.WalkContinue, nil
		}

		var rows [][]string
		for row := table.FirstChild(); row != nil; row = row.NextSibling() {
			switch row.(type) {
			case *extast.TableHeader, *extast.TableRow:
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, inlineText(src, cell))
				}
				rows = append(rows, cells)
			}
		}
		if len(rows) > 0 {
			tables = append(tables, rows)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// inlineText concatenates the raw text segments under n.
func inlineText(src []byte, n ast.Node) string {
	var out []byte
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			out = append(out, t.Segment.Value(src)...)
		}
		return ast.WalkContinue, nil
	})
	return string(out)
}
