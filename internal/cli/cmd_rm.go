package cli

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/865charlesw/x12tools/pkg/x12"
)

const rmHelp = `  rm <file> [filter]     Remove matching segments, print removed count
    --el N=V               Element filter (repeatable)
    --one                  Require exactly one match
    -w, --write            Write the result back to the file`

func cmdRm(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("rm", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 rm <file> [filter] [options]\n\n")
		fprintf(w, "Remove every segment matching the filter and print how many were\n")
		fprintf(w, "removed. Without -w this is a dry run; the file is untouched.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	el := flagSet.StringArray("el", nil, "Element filter N=V (repeatable)")
	one := flagSet.Bool("one", false, "Require exactly one match")
	write := flagSet.BoolP("write", "w", false, "Write the result back to the file")

	if hasHelpFlag(args) {
		flagSet.SetOutput(out)
		flagSet.Usage()

		return 0
	}

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		fprintf(errOut, "error: %v\n\n", parseErr)
		flagSet.Usage()

		return 1
	}

	if flagSet.NArg() < 1 {
		fprintln(errOut, "error:", errFileRequired)

		return 1
	}

	positional := ""
	if flagSet.NArg() > 1 {
		positional = flagSet.Arg(1)
	}

	filter, filterErr := parseFilter(positional, *el)
	if filterErr != nil {
		fprintln(errOut, "error:", filterErr)

		return 1
	}

	path := resolvePath(workDir, flagSet.Arg(0))

	doc, err := openDocument(cfg, path)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	var removed int

	if *one {
		rmErr := doc.RemoveOne(filter)
		if rmErr != nil {
			fprintln(errOut, "error:", rmErr)

			return 1
		}

		removed = 1
	} else {
		removed = doc.Remove(filter)
	}

	if *write {
		writeErr := doc.WriteFile(path, x12.WithNewlines(cfg.newlineMode()))
		if writeErr != nil {
			fprintln(errOut, "error:", writeErr)

			return 1
		}
	}

	fprintf(out, "removed %d\n", removed)

	return 0
}
