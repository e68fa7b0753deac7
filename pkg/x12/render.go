package x12

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
)

// NewlineMode controls the cosmetic newline Render emits after each segment
// terminator. The tokenizer strips these on the way back in, so newlines
// never change what a payload parses to.
type NewlineMode uint8

// NewlineMode values.
const (
	// NewlinesAuto emits newlines unless the terminator itself is '\n'.
	NewlinesAuto NewlineMode = iota
	// NewlinesAlways emits a newline after every terminator.
	NewlinesAlways
	// NewlinesNever emits terminators only.
	NewlinesNever
)

// RenderOptions configures document serialization.
type RenderOptions struct {
	// Newlines selects the newline behavior. The default is NewlinesAuto.
	Newlines NewlineMode
}

// RenderOption mutates RenderOptions.
type RenderOption func(*RenderOptions)

// WithNewlines selects when Render emits a newline after each terminator.
func WithNewlines(mode NewlineMode) RenderOption {
	return func(opts *RenderOptions) {
		opts.Newlines = mode
	}
}

func applyRenderOptions(opts []RenderOption) RenderOptions {
	var options RenderOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return options
}

// Render serializes the document. SE trailer counts are synchronized first,
// so rendered output always carries accurate transaction-set lengths, and
// ISA segments are emitted fixed-width with space-padded elements. Every
// segment, the last included, is followed by the segment terminator.
func (d *Document) Render(opts ...RenderOption) (string, error) {
	options := applyRenderOptions(opts)

	err := d.SyncTrailers()
	if err != nil {
		return "", err
	}

	newline := options.Newlines == NewlinesAlways ||
		(options.Newlines == NewlinesAuto && d.terminator != '\n')

	separator := string(d.separator)

	var builder strings.Builder

	for _, seg := range d.segments {
		if seg.Tag() == isaTag {
			padded, padErr := padISAElements(seg)
			if padErr != nil {
				return "", padErr
			}

			seg = padded
		}

		builder.WriteString(strings.Join(seg, separator))
		builder.WriteByte(d.terminator)

		if newline {
			builder.WriteByte('\n')
		}
	}

	return builder.String(), nil
}

// WriteFile renders the document and writes it to path atomically. An empty
// path falls back to the path the document was parsed from; a document with
// neither fails with ErrNoPath.
func (d *Document) WriteFile(path string, opts ...RenderOption) error {
	if path == "" {
		path = d.path
	}

	if path == "" {
		return fmt.Errorf("%w: document was not parsed from a file", ErrNoPath)
	}

	content, err := d.Render(opts...)
	if err != nil {
		return err
	}

	writeErr := atomic.WriteFile(path, strings.NewReader(content))
	if writeErr != nil {
		return fmt.Errorf("writing document: %w", writeErr)
	}

	return nil
}
