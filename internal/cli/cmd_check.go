package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/865charlesw/x12tools/pkg/x12"
)

var (
	errCheckPathsRequired = errors.New("at least one file or directory is required")
	errStaleTrailers      = errors.New("stale trailer counts (run x12 fmt -w)")
)

const defaultCheckJobs = 16

const checkHelp = `  check <path> ...       Parse files and verify trailer counts
    -j, --jobs             Maximum parallel checks`

func cmdCheck(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		w := flagSet.Output()
		fprintf(w, "Usage: x12 check <path> ... [options]\n\n")
		fprintf(w, "Parse each file and verify its SE trailer counts. A directory\n")
		fprintf(w, "argument checks every .x12 and .edi file under it.\n\n")
		fprintf(w, "Options:\n")
		flagSet.PrintDefaults()
	}

	jobs := flagSet.IntP("jobs", "j", defaultCheckJobs, "Maximum parallel checks")

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
		fprintln(errOut, "error:", errCheckPathsRequired)

		return 1
	}

	targets, err := collectCheckTargets(workDir, flagSet.Args())
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	results := make([]error, len(targets))

	g, _ := errgroup.WithContext(context.Background())
	// Limit concurrency to keep open file descriptors bounded
	g.SetLimit(*jobs)

	for idx, target := range targets {
		g.Go(func() error {
			results[idx] = checkFile(cfg, target.path)

			return nil
		})
	}

	// Failures land in results, one slot per file
	_ = g.Wait()

	failed := 0

	for idx, target := range targets {
		if results[idx] != nil {
			fprintf(out, "%s: error: %v\n", target.display, results[idx])
			failed++

			continue
		}

		fprintf(out, "%s: ok\n", target.display)
	}

	if failed > 0 {
		return 1
	}

	return 0
}

// checkTarget pairs the path used to open a file with the path shown in
// output, which stays relative when the argument was.
type checkTarget struct {
	display string
	path    string
}

func collectCheckTargets(workDir string, args []string) ([]checkTarget, error) {
	var targets []checkTarget

	for _, arg := range args {
		full := resolvePath(workDir, arg)

		info, err := os.Stat(full)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			targets = append(targets, checkTarget{display: arg, path: full})

			continue
		}

		walkErr := filepath.WalkDir(full, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				return nil
			}

			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".x12" && ext != ".edi" {
				return nil
			}

			rel, relErr := filepath.Rel(full, path)
			if relErr != nil {
				return relErr
			}

			targets = append(targets, checkTarget{display: filepath.Join(arg, rel), path: path})

			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	return targets, nil
}

// checkFile parses one document and verifies that its trailer counts are
// already in sync. The document is never written back.
func checkFile(cfg Config, path string) error {
	doc, err := openDocument(cfg, path)
	if err != nil {
		return err
	}

	before := trailerCounts(doc)

	syncErr := doc.SyncTrailers()
	if syncErr != nil {
		return syncErr
	}

	if !slices.Equal(before, trailerCounts(doc)) {
		return errStaleTrailers
	}

	return nil
}

// trailerCounts captures every SE count element in document order.
func trailerCounts(doc *x12.Document) []string {
	var counts []string

	for _, match := range doc.Find(x12.TagFilter("SE")) {
		count, _ := match.Segment.Element(1)
		counts = append(counts, count)
	}

	return counts
}
