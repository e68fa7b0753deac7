package cli

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

var errFileRequired = errors.New("a document file is required")

const showHelp = `  show <file>            List segments with indices`

func cmdShow(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("show", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 show <file>\n\n")
		fprintf(w, "List every segment in the document with its index.\n")
	}

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

	path := resolvePath(workDir, flagSet.Arg(0))

	doc, err := openDocument(cfg, path)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	for idx, seg := range doc.Segments() {
		fprintln(out, segmentLine(idx, seg, doc.ElementSeparator()))
	}

	return 0
}
