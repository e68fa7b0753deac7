package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	// Parse global flags
	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Default workDir to current directory
	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	// Load and validate config
	cfg, sources, err := LoadConfig(workDir, flags.configPath, env)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	cmd := flags.remaining[0]
	cmdArgs := flags.remaining[1:]

	// Handle help flags
	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	// Dispatch to command
	switch cmd {
	case "show":
		return cmdShow(out, errOut, cfg, workDir, cmdArgs)
	case "fmt":
		return cmdFmt(out, errOut, cfg, workDir, cmdArgs)
	case "get":
		return cmdGet(out, errOut, cfg, workDir, cmdArgs)
	case "rm":
		return cmdRm(out, errOut, cfg, workDir, cmdArgs)
	case "set":
		return cmdSet(out, errOut, cfg, workDir, cmdArgs)
	case "check":
		return cmdCheck(out, errOut, cfg, workDir, cmdArgs)
	case "shell":
		return cmdShell(out, errOut, cfg, workDir, cmdArgs)
	case "print-config":
		return cmdPrintConfig(out, errOut, cfg, sources)
	default:
		fprintln(errOut, "error: unknown command:", cmd)
		printUsage(errOut)

		return 1
	}
}

type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func cmdPrintConfig(out io.Writer, errOut io.Writer, cfg Config, sources ConfigSources) int {
	formatted, err := FormatConfig(cfg)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	fprintln(out, formatted)

	// Print sources
	fprintln(out, "")
	fprintln(out, "# Sources:")

	if sources.Global != "" {
		fprintln(out, "#   global:", sources.Global)
	}

	if sources.Project != "" {
		fprintln(out, "#   project:", sources.Project)
	}

	if sources.Global == "" && sources.Project == "" {
		fprintln(out, "#   (using defaults only)")
	}

	return 0
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(writer io.Writer) {
	fprintln(writer, `x12 - X12 EDI document tool

Usage: x12 [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file

Commands:`)
	fprintln(writer, showHelp)
	fprintln(writer, fmtHelp)
	fprintln(writer, getHelp)
	fprintln(writer, rmHelp)
	fprintln(writer, setHelp)
	fprintln(writer, checkHelp)
	fprintln(writer, shellHelp)
	fprintln(writer, `  print-config           Show resolved configuration`)
	fprintln(writer, `
Filters:
  TAG                    Segments whose tag equals TAG
  A,B,C                  Segments whose leading elements equal A, B, C
  --el N=V               Segments whose element N equals V (repeatable)`)
}
