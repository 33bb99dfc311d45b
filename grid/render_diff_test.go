package grid

import (
	"slices"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// requireSameLines compares rendered grids and, on mismatch, fails with a
// character-level diff. Plain assert output is unreadable for box-drawing
// literals that differ by one glyph.
func requireSameLines(t *testing.T, want, got []string) {
	t.Helper()

	if slices.Equal(want, got) {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(want, "\n"), strings.Join(got, "\n"), false)
	t.Fatalf("rendered grid mismatch (want vs got):\n%s", dmp.DiffPrettyText(diffs))
}
