package cli

import (
	"io"

	flag "github.com/spf13/pflag"
)

const getHelp = `  get <file> [filter]    Print matching segments with indices
    --el N=V               Element filter (repeatable)
    --one                  Require exactly one match`

func cmdGet(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("get", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 get <file> [filter] [options]\n\n")
		fprintf(w, "Print every segment matching the filter, with its index.\n")
		fprintf(w, "The filter is a tag (ST), a comma prefix (N1,PR), or --el pairs.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	el := flagSet.StringArray("el", nil, "Element filter N=V (repeatable)")
	one := flagSet.Bool("one", false, "Require exactly one match")

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

	if *one {
		match, findErr := doc.FindOne(filter)
		if findErr != nil {
			fprintln(errOut, "error:", findErr)

			return 1
		}

		fprintln(out, segmentLine(match.Index, match.Segment, doc.ElementSeparator()))

		return 0
	}

	for _, match := range doc.Find(filter) {
		fprintln(out, segmentLine(match.Index, match.Segment, doc.ElementSeparator()))
	}

	return 0
}
