package cli_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/865charlesw/x12tools/internal/cli"
)

func Test_Show_Lists_Segments_With_Indices(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", sampleSet)

	stdout := c.MustRun("show", "doc.x12")

	cli.AssertContains(t, stdout, "0  ST*835*0001")
	cli.AssertContains(t, stdout, "1  BPR*I*100")
	cli.AssertContains(t, stdout, "2  SE*3*0001")
}

func Test_Show_Detects_Delimiters_For_Interchanges(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	exotic := strings.ReplaceAll(sampleInterchange(), "*", "|")
	exotic = strings.ReplaceAll(exotic, "~", "!")
	c.WriteDocument("doc.x12", exotic)

	stdout := c.MustRun("show", "doc.x12")

	cli.AssertContains(t, stdout, "ST|835|0001")
	cli.AssertContains(t, stdout, "IEA|1|000000001")
}

func Test_Show_Uses_Configured_Delimiters_For_Fragments(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeFile(t, filepath.Join(c.Dir, ".x12.json"),
		`{"segment_terminator": "!", "element_separator": "|"}`)
	c.WriteDocument("doc.x12", "ST|835|0001!SE|2|0001!")

	stdout := c.MustRun("show", "doc.x12")

	cli.AssertContains(t, stdout, "0  ST|835|0001")
	cli.AssertContains(t, stdout, "1  SE|2|0001")
}

func Test_Show_Uses_Configured_Delimiters_When_Detection_Disabled(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeFile(t, filepath.Join(c.Dir, ".x12.json"),
		`{"detect_delimiters": false, "segment_terminator": "!", "element_separator": "|"}`)

	exotic := strings.ReplaceAll(sampleInterchange(), "*", "|")
	exotic = strings.ReplaceAll(exotic, "~", "!")
	c.WriteDocument("doc.x12", exotic)

	stdout := c.MustRun("show", "doc.x12")

	cli.AssertContains(t, stdout, "ISA|00")
	cli.AssertContains(t, stdout, "GE|1|1")
}

func Test_Show_Missing_File_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("show", "missing.x12")

	cli.AssertContains(t, stderr, "reading document")
}

func Test_Show_Requires_File_Argument(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("show")

	cli.AssertContains(t, stderr, "document file is required")
}

func Test_Show_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("show", "--help")

	cli.AssertContains(t, stdout, "Usage: x12 show <file>")
}
