package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codalotl/gridfmt/grid"
	"github.com/codalotl/gridfmt/internal/q/cli"
)

func newJSONCommand(a *app) *cli.Command {
	cmd := &cli.Command{
		Name:  "json",
		Short: "render a JSON document as a grid",
		Long: "Objects become two-column Keys:/Values: tables, arrays become single-column\n" +
			"lists, and nested objects and arrays become nested grids, rendered bottom-up.",
		Example: `echo '{"name":"ada","tags":["a","b"]}' | gridfmt json`,
		Args:    cli.MaximumArgs(1),
	}

	unordered := cmd.Flags().Bool("unordered", 0, false,
		"iterate object keys in map order; row order then varies run to run")

	cmd.Run = func(c *cli.Context) error {
		data, err := readInput(c, c.Args)
		if err != nil {
			return err
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}

		return a.emit(c, jsonGrid(v, *unordered))
	}

	return cmd
}

// jsonGrid renders any decoded JSON value as grid lines.
func jsonGrid(v any, unordered bool) []string {
	switch val := v.(type) {
	case map[string]any:
		cells := make(map[string]string, len(val))
		for k, child := range val {
			cells[k] = jsonCell(child, unordered)
		}
		if unordered {
			return grid.Map(cells)
		}
		return grid.SortedMap(cells)
	case []any:
		cells := make([]string, len(val))
		for i, child := range val {
			cells[i] = jsonCell(child, unordered)
		}
		return grid.List(cells)
	default:
		return grid.Text(jsonScalar(v))
	}
}

// jsonCell is a value's cell text: scalars verbatim, containers rendered
// into an embedded grid joined with newlines.
func jsonCell(v any, unordered bool) string {
	switch v.(type) {
	case map[string]any, []any:
		return strings.Join(jsonGrid(v, unordered), "\n")
	default:
		return jsonScalar(v)
	}
}

func jsonScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
