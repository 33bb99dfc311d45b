package grid

import (
	"cmp"
	"fmt"
	"slices"
)

// List renders values as a single-column table, one row per element.
// Elements are formatted with fmt.Sprint.
func List[T any](values []T) []string {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{fmt.Sprint(v)}
	}
	return render(rows, 1)
}

// Map renders m as a two-column table with a "Keys:"/"Values:" header row.
// Iteration follows Go's map order: the row order is unspecified and may
// differ between renders of the same map. Use SortedMap when deterministic
// output matters.
func Map[K comparable, V any](m map[K]V) []string {
	rows := [][]string{{"Keys:", "Values:"}}
	for k, v := range m {
		rows = append(rows, []string{fmt.Sprint(k), fmt.Sprint(v)})
	}
	return render(rows, 2)
}

// SortedMap is Map with rows ordered by ascending key.
func SortedMap[K cmp.Ordered, V any](m map[K]V) []string {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := [][]string{{"Keys:", "Values:"}}
	for _, k := range keys {
		rows = append(rows, []string{fmt.Sprint(k), fmt.Sprint(m[k])})
	}
	return render(rows, 2)
}

// Text renders s as a single-cell table. Embedded newlines become the lines
// of the one box.
func Text(s string) []string {
	return render([][]string{{s}}, 1)
}
