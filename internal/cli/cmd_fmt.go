package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/865charlesw/x12tools/pkg/x12"
)

var errNewlinesFlag = errors.New(`--newlines must be "auto", "always", or "never"`)

const fmtHelp = `  fmt <file>             Sync trailer counts and render the document
    -w, --write            Write the result back to the file
    --newlines             Newline handling: auto|always|never`

func cmdFmt(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("fmt", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 fmt <file> [options]\n\n")
		fprintf(w, "Synchronize SE trailer counts, pad the ISA header, and render.\n")
		fprintf(w, "Prints to stdout unless -w is given.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	write := flagSet.BoolP("write", "w", false, "Write the result back to the file")
	newlines := flagSet.String("newlines", "", "Newline handling: auto|always|never")

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

	mode := cfg.newlineMode()

	if flagSet.Changed("newlines") {
		var modeErr error

		mode, modeErr = parseNewlineMode(*newlines)
		if modeErr != nil {
			fprintln(errOut, "error:", modeErr)

			return 1
		}
	}

	path := resolvePath(workDir, flagSet.Arg(0))

	doc, err := openDocument(cfg, path)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if *write {
		writeErr := doc.WriteFile(path, x12.WithNewlines(mode))
		if writeErr != nil {
			fprintln(errOut, "error:", writeErr)

			return 1
		}

		return 0
	}

	content, renderErr := doc.Render(x12.WithNewlines(mode))
	if renderErr != nil {
		fprintln(errOut, "error:", renderErr)

		return 1
	}

	fprintf(out, "%s", content)

	return 0
}

func parseNewlineMode(value string) (x12.NewlineMode, error) {
	switch value {
	case "auto":
		return x12.NewlinesAuto, nil
	case "always":
		return x12.NewlinesAlways, nil
	case "never":
		return x12.NewlinesNever, nil
	default:
		return x12.NewlinesAuto, fmt.Errorf("%w: %q", errNewlinesFlag, value)
	}
}
