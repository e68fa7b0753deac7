package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/865charlesw/x12tools/pkg/x12"
)

// resolvePath makes path absolute relative to the working directory.
func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// openDocument reads and parses the file at path. Documents that open with
// an ISA header use delimiter detection when the config allows it; everything
// else, including bare transaction-set fragments, parses with the configured
// delimiters.
func openDocument(cfg Config, path string) (*x12.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	content := string(data)

	if cfg.detectionEnabled() && x12.HasInterchangeHeader(content) {
		return x12.Parse(content, x12.WithDetectedDelimiters())
	}

	return x12.Parse(content,
		x12.WithSegmentTerminator(cfg.terminatorByte()),
		x12.WithElementSeparator(cfg.separatorByte()))
}

// segmentLine renders one segment for listings: its index and the elements
// joined with the document's element separator.
func segmentLine(idx int, seg x12.Segment, separator byte) string {
	return fmt.Sprintf("%4d  %s", idx, strings.Join(seg, string(separator)))
}
