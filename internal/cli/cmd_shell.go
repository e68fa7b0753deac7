package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/865charlesw/x12tools/pkg/x12"
)

const shellHelp = `  shell <file>           Interactive document inspector`

func cmdShell(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("shell", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 shell <file>\n\n")
		fprintf(w, "Open an interactive inspector on the document. Edits stay in\n")
		fprintf(w, "memory until 'write'.\n")
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

	session := &shellSession{
		out:     out,
		cfg:     cfg,
		workDir: workDir,
		doc:     doc,
		path:    path,
	}

	runErr := session.run()
	if runErr != nil {
		fprintln(errOut, "error:", runErr)

		return 1
	}

	return 0
}

// shellSession is the interactive command loop. Edits accumulate on the
// in-memory document and reach disk only through the write verb.
type shellSession struct {
	out     io.Writer
	cfg     Config
	workDir string
	doc     *x12.Document
	path    string
	line    *liner.State
	dirty   bool
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".x12_history")
}

func (s *shellSession) run() error {
	s.line = liner.NewLiner()
	defer s.line.Close()

	s.line.SetCtrlCAborts(true)
	s.line.SetCompleter(s.completer)

	// Load history
	if f, err := os.Open(historyFile()); err == nil {
		_, _ = s.line.ReadHistory(f)
		f.Close()
	}

	fprintf(s.out, "%s: %d segments (terminator %q, separator %q)\n",
		s.path, s.doc.Len(), s.doc.SegmentTerminator(), s.doc.ElementSeparator())
	fprintln(s.out, "Type 'help' for available commands.")
	fprintln(s.out, "")

	for {
		input, err := s.line.Prompt("x12> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fprintln(s.out, "")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		s.line.AppendHistory(input)

		fields := strings.Fields(input)
		verb := strings.ToLower(fields[0])

		if verb == "quit" || verb == "exit" || verb == "q" {
			break
		}

		s.dispatch(verb, fields[1:])
	}

	if s.dirty {
		fprintln(s.out, "note: unsaved changes were not written")
	}

	s.saveHistory()

	return nil
}

func (s *shellSession) dispatch(verb string, args []string) {
	switch verb {
	case "help", "?":
		s.printHelp()
	case "show", "ls":
		s.showSegments()
	case "get":
		s.getSegments(args)
	case "rm", "del":
		s.removeSegments(args)
	case "set":
		s.setElement(args)
	case "delims":
		s.showDelims()
	case "write", "w":
		s.writeDocument(args)
	default:
		fprintf(s.out, "unknown command: %s (type 'help' for commands)\n", verb)
	}
}

// saveHistory persists command history to disk.
func (s *shellSession) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = s.line.WriteHistory(f)
			f.Close()
		}
	}
}

// completer provides tab completion for shell verbs.
func (s *shellSession) completer(input string) []string {
	verbs := []string{
		"show", "ls", "get", "rm", "del", "set",
		"delims", "write", "help", "quit", "exit", "q",
	}

	var completions []string

	lower := strings.ToLower(input)
	for _, verb := range verbs {
		if strings.HasPrefix(verb, lower) {
			completions = append(completions, verb)
		}
	}

	return completions
}

func (s *shellSession) showSegments() {
	for idx, seg := range s.doc.Segments() {
		fprintln(s.out, segmentLine(idx, seg, s.doc.ElementSeparator()))
	}
}

func (s *shellSession) getSegments(args []string) {
	filter, err := parseShellFilter(args)
	if err != nil {
		fprintln(s.out, "error:", err)

		return
	}

	matches := s.doc.Find(filter)
	if len(matches) == 0 {
		fprintln(s.out, "no matches")

		return
	}

	for _, match := range matches {
		fprintln(s.out, segmentLine(match.Index, match.Segment, s.doc.ElementSeparator()))
	}
}

func (s *shellSession) removeSegments(args []string) {
	filter, err := parseShellFilter(args)
	if err != nil {
		fprintln(s.out, "error:", err)

		return
	}

	removed := s.doc.Remove(filter)
	if removed > 0 {
		s.dirty = true
	}

	fprintf(s.out, "removed %d\n", removed)
}

func (s *shellSession) setElement(args []string) {
	if len(args) < 3 {
		fprintln(s.out, "usage: set <filter> <position> <value>")

		return
	}

	filterArgs := args[:len(args)-2]
	posArg := args[len(args)-2]
	value := args[len(args)-1]

	filter, err := parseShellFilter(filterArgs)
	if err != nil {
		fprintln(s.out, "error:", err)

		return
	}

	pos, convErr := strconv.Atoi(posArg)
	if convErr != nil || pos < 0 {
		fprintln(s.out, "error:", errPositionValue)

		return
	}

	match, findErr := s.doc.FindOne(filter)
	if findErr != nil {
		fprintln(s.out, "error:", findErr)

		return
	}

	setErr := s.doc.SetElement(match.Index, pos, value)
	if setErr != nil {
		fprintln(s.out, "error:", setErr)

		return
	}

	s.dirty = true

	fprintln(s.out, segmentLine(match.Index, match.Segment, s.doc.ElementSeparator()))
}

func (s *shellSession) showDelims() {
	fprintf(s.out, "segment terminator: %q\n", s.doc.SegmentTerminator())
	fprintf(s.out, "element separator:  %q\n", s.doc.ElementSeparator())
}

func (s *shellSession) writeDocument(args []string) {
	target := s.path
	if len(args) > 0 {
		target = resolvePath(s.workDir, args[0])
	}

	err := s.doc.WriteFile(target, x12.WithNewlines(s.cfg.newlineMode()))
	if err != nil {
		fprintln(s.out, "error:", err)

		return
	}

	s.dirty = false

	fprintln(s.out, "wrote", target)
}

func (s *shellSession) printHelp() {
	fprintln(s.out, "Commands:")
	fprintln(s.out, "  show                           List all segments")
	fprintln(s.out, "  get <filter>                   Print matching segments")
	fprintln(s.out, "  rm <filter>                    Remove matching segments")
	fprintln(s.out, "  set <filter> <pos> <value>     Replace an element of one segment")
	fprintln(s.out, "  delims                         Show the document's delimiters")
	fprintln(s.out, "  write [path]                   Write the document back to disk")
	fprintln(s.out, "  help                           Show this help")
	fprintln(s.out, "  quit                           Exit")
	fprintln(s.out, "")
	fprintln(s.out, "Filters: a tag (ST), a comma prefix (N1,PR), or N=V pairs (0=SE 2=0001).")
}
