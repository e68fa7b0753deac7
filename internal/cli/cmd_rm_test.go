package cli_test

import (
	"testing"

	"github.com/865charlesw/x12tools/internal/cli"
)

func Test_Rm_Reports_Count_Without_Writing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", getFixture)

	stdout := c.MustRun("rm", "doc.x12", "N1")

	cli.AssertContains(t, stdout, "removed 2")

	// Dry run: the file still holds both parties
	cli.AssertContains(t, c.ReadDocument("doc.x12"), "N1*PR*ACME INSURANCE")
}

func Test_Rm_Write_Flag_Persists_And_Resyncs_Trailer(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", getFixture)

	stdout := c.MustRun("rm", "-w", "doc.x12", "N1")

	cli.AssertContains(t, stdout, "removed 2")

	content := c.ReadDocument("doc.x12")
	cli.AssertNotContains(t, content, "N1*")

	// Writing re-renders, so the trailer count shrinks with the set
	cli.AssertContains(t, content, "SE*2*0001")
}

func Test_Rm_One_Flag_Rejects_Ambiguity(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", getFixture)

	stderr := c.MustFail("rm", "-w", "doc.x12", "--one", "N1")

	cli.AssertContains(t, stderr, "2 segments match")
	cli.AssertContains(t, c.ReadDocument("doc.x12"), "N1*PR*ACME INSURANCE")
}

func Test_Rm_One_Flag_Removes_Single_Match(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", getFixture)

	stdout := c.MustRun("rm", "-w", "doc.x12", "--one", "N1,PE")

	cli.AssertContains(t, stdout, "removed 1")

	content := c.ReadDocument("doc.x12")
	cli.AssertNotContains(t, content, "MERCY")
	cli.AssertContains(t, content, "ACME")
}

func Test_Rm_Zero_Matches_Is_Not_An_Error(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument("doc.x12", getFixture)

	stdout := c.MustRun("rm", "doc.x12", "CLP")

	cli.AssertContains(t, stdout, "removed 0")
}
