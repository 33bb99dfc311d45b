package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func runCLI(t *testing.T, args []string, stdin string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errW bytes.Buffer
	code = Run(append([]string{"gridfmt"}, args...), &RunOptions{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errW,
	})
	return out.String(), errW.String(), code
}

func TestJSONObjectSorted(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `{"b":"2","a":"1"}`)
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━━━━━┳━━━━━━━┓",
		"┃Keys:┃Values:┃",
		"┣━━━━━╋━━━━━━━┫",
		"┃a    ┃1      ┃",
		"┣━━━━━╋━━━━━━━┫",
		"┃b    ┃2      ┃",
		"┗━━━━━┻━━━━━━━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestJSONArray(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `["x","y"]`)
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━┓",
		"┃x┃",
		"┣━┫",
		"┃y┃",
		"┗━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestJSONScalar(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `"hi"`)
	require.Equal(t, 0, code)
	assert.Equal(t, "┏━━┓\n┃hi┃\n┗━━┛\n", out)
}

func TestJSONNestedArray(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `{"t":["a","b"]}`)
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━━━━━┳━━━━━━━┓",
		"┃Keys:┃Values:┃",
		"┣━━━━━╋━━━━━━━┫",
		"┃t    ┃┏━┓    ┃",
		"┃     ┃┃a┃    ┃",
		"┃     ┃┣━┫    ┃",
		"┃     ┃┃b┃    ┃",
		"┃     ┃┗━┛    ┃",
		"┗━━━━━┻━━━━━━━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestJSONNumbersKeepFormatting(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `[1.50, 2]`)
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━━━━┓",
		"┃1.50┃",
		"┣━━━━┫",
		"┃2   ┃",
		"┗━━━━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestJSONInvalid(t *testing.T) {
	_, errOut, code := runCLI(t, []string{"json"}, `{`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "parse json")
}

func TestCSV(t *testing.T) {
	out, _, code := runCLI(t, []string{"csv"}, "a,b\nc,d\n")
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━┳━┓",
		"┃a┃b┃",
		"┣━╋━┫",
		"┃c┃d┃",
		"┗━┻━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestCSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\nc,d\n"), 0o644))

	out, _, code := runCLI(t, []string{"csv", path}, "")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "┏━┳━┓\n"))
}

func TestTSV(t *testing.T) {
	out, _, code := runCLI(t, []string{"csv", "--tsv"}, "a\tb\nc\td\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "┃a┃b┃")
	assert.Contains(t, out, "┃c┃d┃")
}

func TestCSVRaggedInput(t *testing.T) {
	_, errOut, code := runCLI(t, []string{"csv"}, "a,b\nc\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "parse csv")
}

func TestMarkdownTable(t *testing.T) {
	src := "# Title\n\nprose\n\n| x | y |\n|---|---|\n| 1 | 2 |\n"
	out, _, code := runCLI(t, []string{"markdown"}, src)
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━┳━┓",
		"┃x┃y┃",
		"┣━╋━┫",
		"┃1┃2┃",
		"┗━┻━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestMarkdownMultipleTables(t *testing.T) {
	src := "| a |\n|---|\n\ntext between\n\n| b |\n|---|\n"
	out, _, code := runCLI(t, []string{"markdown"}, src)
	require.Equal(t, 0, code)
	assert.Equal(t, "┏━┓\n┃a┃\n┗━┛\n\n┏━┓\n┃b┃\n┗━┛\n", out)
}

func TestMarkdownNoTables(t *testing.T) {
	out, errOut, code := runCLI(t, []string{"markdown"}, "just prose\n")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no tables found")
}

func TestXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"a", "b"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"c", "d"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	out, _, code := runCLI(t, []string{"xlsx"}, buf.String())
	require.Equal(t, 0, code)
	want := strings.Join([]string{
		"┏━┳━┓",
		"┃a┃b┃",
		"┣━╋━┫",
		"┃c┃d┃",
		"┗━┻━┛",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestXLSXUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	_, errOut, code := runCLI(t, []string{"xlsx", "--sheet", "Missing"}, buf.String())
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Missing")
}

func TestStyledOutput(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "gridfmt.toml")
	cfg := "[style]\nbold = true\nforeground = \"red\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, _, code := runCLI(t, []string{"json", "--config", cfgPath, "--color", "always"}, `"hi"`)
	require.Equal(t, 0, code)
	want := "\x1b[1;31m┏━━┓\x1b[0m\n" +
		"\x1b[1;31m┃hi┃\x1b[0m\n" +
		"\x1b[1;31m┗━━┛\x1b[0m\n"
	assert.Equal(t, want, out)
}

func TestColorNeverByDefaultInPipes(t *testing.T) {
	out, _, code := runCLI(t, []string{"json"}, `"hi"`)
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "\x1b[")
}

func TestInvalidColorMode(t *testing.T) {
	_, errOut, code := runCLI(t, []string{"json", "--color", "sometimes"}, `"hi"`)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid --color value")
}

func TestMissingFile(t *testing.T) {
	_, errOut, code := runCLI(t, []string{"csv", "no-such-file.csv"}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no-such-file.csv")
}

func TestVersion(t *testing.T) {
	out, _, code := runCLI(t, []string{"version"}, "")
	require.Equal(t, 0, code)
	assert.Equal(t, Version+"\n", out)
}
