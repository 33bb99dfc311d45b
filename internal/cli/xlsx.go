package cli

import (
	"bytes"
	"fmt"

	"github.com/codalotl/gridfmt/grid"
	"github.com/codalotl/gridfmt/internal/q/cli"
	"github.com/xuri/excelize/v2"
)

func newXLSXCommand(a *app) *cli.Command {
	cmd := &cli.Command{
		Name:    "xlsx",
		Short:   "render a sheet of an Excel workbook as a grid",
		Example: "gridfmt xlsx --sheet Inventory report.xlsx",
		Args:    cli.MaximumArgs(1),
	}
	sheet := cmd.Flags().String("sheet", 0, "", "sheet to render (default: the first sheet)")

	cmd.Run = func(c *cli.Context) error {
		data, err := readInput(c, c.Args)
		if err != nil {
			return err
		}

		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()

		name := *sheet
		if name == "" {
			sheets := f.GetSheetList()
			if len(sheets) == 0 {
				return fmt.Errorf("workbook has no sheets")
			}
			name = sheets[0]
		}

		rows, err := f.GetRows(name)
		if err != nil {
			return fmt.Errorf("read sheet %q: %w", name, err)
		}

		lines, err := grid.Render(padRows(rows))
		if err != nil {
			return err
		}
		return a.emit(c, lines)
	}

	return cmd
}

// padRows right-pads every row with empty cells to the width of the widest
// row. GetRows drops trailing empty cells, so sheets routinely come back
// ragged.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}
