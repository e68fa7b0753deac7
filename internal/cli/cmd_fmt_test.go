package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/865charlesw/x12tools/internal/cli"
)

func Test_Fmt_Prints_Synced_Document_Without_Writing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", "ST*835*0001~BPR*I*100~SE*9*0001~")

	stdout := c.MustRun("fmt", "doc.x12")

	cli.AssertContains(t, stdout, "SE*3*0001")

	// Dry run: the file keeps its stale count
	cli.AssertContains(t, c.ReadDocument("doc.x12"), "SE*9*0001")
}

func Test_Fmt_Write_Flag_Rewrites_File(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", "ST*835*0001~BPR*I*100~SE*9*0001~")

	stdout := c.MustRun("fmt", "-w", "doc.x12")

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, c.ReadDocument("doc.x12"), "SE*3*0001~\n")
}

func Test_Fmt_Newlines_Never_Emits_Compact_Output(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", sampleSet)

	stdout, stderr, exitCode := c.Run("fmt", "--newlines", "never", "doc.x12")

	if exitCode != 0 {
		t.Fatalf("exitCode=%d\nstderr: %s", exitCode, stderr)
	}

	if got, want := stdout, sampleSet; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Fmt_Newlines_From_Config_When_Flag_Absent(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeFile(t, filepath.Join(c.Dir, ".x12.json"), `{"newlines": "never"}`)
	c.WriteDocument("doc.x12", sampleSet)

	stdout, stderr, exitCode := c.Run("fmt", "doc.x12")

	if exitCode != 0 {
		t.Fatalf("exitCode=%d\nstderr: %s", exitCode, stderr)
	}

	if got, want := stdout, sampleSet; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Fmt_Rejects_Bad_Newlines_Value(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", sampleSet)

	stderr := c.MustFail("fmt", "--newlines", "sometimes", "doc.x12")

	cli.AssertContains(t, stderr, "--newlines must be")
}

func Test_Fmt_Fails_On_Unclosed_Transaction_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", "ST*835*0001~BPR*I*100~")

	stderr := c.MustFail("fmt", "doc.x12")

	cli.AssertContains(t, stderr, "ST header without a closing SE trailer")
}

func Test_Fmt_Pads_Compact_ISA_Header(t *testing.T) {
	t.Parallel()

	// A compact header is too short for detection, so detection must be off
	c := cli.NewCLI(t)
	writeFile(t, filepath.Join(c.Dir, ".x12.json"), `{"detect_delimiters": false}`)
	c.WriteDocument("doc.x12", "ISA*00**00**ZZ*SENDER*ZZ*RECEIVER*240101*1200*U*00401*000000001*0*P*:~")

	stdout := c.MustRun("fmt", "doc.x12")

	cli.AssertContains(t, stdout, isaLine+"~")
}

func Test_Fmt_Rejects_Truncated_Header_When_Detecting(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", "ISA*00*SHORT~")

	stderr := c.MustFail("fmt", "doc.x12")

	cli.AssertContains(t, stderr, "cannot detect delimiters")
}
