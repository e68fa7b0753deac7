package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/865charlesw/x12tools/internal/cli"
)

func Test_Bare_Invocation_Prints_Usage(t *testing.T) {
	t.Parallel()

	// Call Run directly without the test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"x12"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "x12 - X12 EDI document tool")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "show <file>")
}

func Test_Main_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "x12 - X12 EDI document tool")
			cli.AssertContains(t, stdout, "fmt <file>")
			cli.AssertContains(t, stdout, "shell <file>")
			cli.AssertContains(t, stdout, "print-config")
		})
	}
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Unknown_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--explode", "show")

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--explode")
}

func Test_Config_Flag_Requires_Argument_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c")

	cli.AssertContains(t, stderr, "flag needs an argument")
}

func Test_Attached_Cwd_Flag_Resolves_Relative_Paths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.x12"), sampleSet)

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"x12", "-C" + dir, "show", "doc.x12"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr.String())
	}

	cli.AssertContains(t, stdout.String(), "ST*835*0001")
}

func Test_Command_Help_Routes_To_Stdout(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("fmt", "--help")

	cli.AssertContains(t, stdout, "Usage: x12 fmt <file>")
	cli.AssertContains(t, stdout, "--newlines")
}

func Test_Default_WorkDir_Is_Process_Cwd(t *testing.T) {
	// Uses os.Getwd, so no t.Parallel with the chdir below.
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.x12"), sampleSet)

	t.Chdir(dir)

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"x12", "show", "doc.x12"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr.String())
	}

	cli.AssertContains(t, stdout.String(), "SE*3*0001")
}

func Test_Home_Is_Optional_For_Config_Resolution(t *testing.T) {
	t.Parallel()

	// An empty environment means no global config path at all
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.x12"), sampleSet)

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"x12", "--cwd", dir, "show", "doc.x12"}, map[string]string{})

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr.String())
	}

	if _, statErr := os.Stat(filepath.Join(dir, ".x12.json")); statErr == nil {
		t.Error("show must not create a config file")
	}
}
