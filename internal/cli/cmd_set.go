package cli

import (
	"errors"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/865charlesw/x12tools/pkg/x12"
)

var (
	errSetArity      = errors.New("set expects a file, a filter, an element position, and a value")
	errPositionValue = errors.New("element position must be a non-negative integer")
)

const setHelp = `  set <file> [filter] <pos> <value>  Replace an element of one segment
    --el N=V               Element filter (repeatable)
    -w, --write            Write the result back to the file`

func cmdSet(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("set", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 set <file> [filter] <position> <value> [options]\n\n")
		fprintf(w, "Replace one element of the single segment matching the filter.\n")
		fprintf(w, "The filter must match exactly one segment, and the position must\n")
		fprintf(w, "exist in it. The filter argument is dropped when --el is used.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	el := flagSet.StringArray("el", nil, "Element filter N=V (repeatable)")
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

	// With --el the filter is carried by flags, so one fewer positional.
	positionals := flagSet.Args()

	var positional, posArg, value string

	switch {
	case len(*el) > 0 && len(positionals) == 3:
		posArg, value = positionals[1], positionals[2]
	case len(*el) == 0 && len(positionals) == 4:
		positional, posArg, value = positionals[1], positionals[2], positionals[3]
	default:
		fprintln(errOut, "error:", errSetArity)

		return 1
	}

	filter, filterErr := parseFilter(positional, *el)
	if filterErr != nil {
		fprintln(errOut, "error:", filterErr)

		return 1
	}

	pos, convErr := strconv.Atoi(posArg)
	if convErr != nil || pos < 0 {
		fprintln(errOut, "error:", errPositionValue)

		return 1
	}

	path := resolvePath(workDir, positionals[0])

	doc, err := openDocument(cfg, path)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	match, findErr := doc.FindOne(filter)
	if findErr != nil {
		fprintln(errOut, "error:", findErr)

		return 1
	}

	setErr := doc.SetElement(match.Index, pos, value)
	if setErr != nil {
		fprintln(errOut, "error:", setErr)

		return 1
	}

	if *write {
		writeErr := doc.WriteFile(path, x12.WithNewlines(cfg.newlineMode()))
		if writeErr != nil {
			fprintln(errOut, "error:", writeErr)

			return 1
		}
	}

	fprintln(out, segmentLine(match.Index, match.Segment, doc.ElementSeparator()))

	return 0
}
