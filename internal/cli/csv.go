package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/codalotl/gridfmt/grid"
	"github.com/codalotl/gridfmt/internal/q/cli"
)

func newCSVCommand(a *app) *cli.Command {
	cmd := &cli.Command{
		Name:    "csv",
		Short:   "render CSV (or TSV) records as a grid",
		Example: "gridfmt csv data.csv\ngridfmt csv --tsv data.tsv",
		Args:    cli.MaximumArgs(1),
	}

	tsv := cmd.Flags().Bool("tsv", 0, false, "treat input as tab-separated")

	cmd.Run = func(c *cli.Context) error {
		data, err := readInput(c, c.Args)
		if err != nil {
			return err
		}

		reader := csv.NewReader(bytes.NewReader(data))
		if *tsv {
			reader.Comma = '\t'
		}

		// The csv reader enforces a uniform field count, so records reach
		// grid.Render rectangular.
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("parse csv: %w", err)
		}

		lines, err := grid.Render(records)
		if err != nil {
			return err
		}
		return a.emit(c, lines)
	}

	return cmd
}
