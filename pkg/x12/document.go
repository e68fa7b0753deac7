// Package x12 provides an ordered document model for X12 EDI payloads.
//
// An X12 payload is a flat sequence of segments separated by a single-byte
// segment terminator; each segment is a sequence of elements separated by a
// single-byte element separator, and the first element is the segment tag:
//
//	ISA*00*          *00*          *ZZ*SENDER  ...~
//	ST*835*0001~
//	N1*PR*ACME INSURANCE~
//	SE*3*0001~
//
// Parse tokenizes a payload into a Document without enforcing any grammar:
// unknown tags, odd element counts, and unusual orderings all parse fine.
// Documents are queried and edited through filters (TagFilter, PrefixFilter,
// ElementsFilter) and positional indices, then serialized back with Render or
// WriteFile. Rendering synchronizes SE transaction-set trailers with the real
// segment counts and space-pads ISA headers to their fixed widths, so edits
// that grow or shrink a transaction set never leave a stale count behind.
//
// A Document is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package x12

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Default delimiters for X12 payloads.
const (
	DefaultSegmentTerminator byte = '~'
	DefaultElementSeparator  byte = '*'
)

// Document is a mutable, ordered sequence of X12 segments together with the
// delimiters used to serialize it. Construct documents with New, Parse, or
// ParseFile.
type Document struct {
	segments   []Segment
	terminator byte
	separator  byte
	path       string
}

// ParseOptions configures document construction.
type ParseOptions struct {
	// SegmentTerminator is the byte that ends each segment. Zero means the
	// default '~'.
	SegmentTerminator byte
	// ElementSeparator is the byte between elements. Zero means the default
	// '*'.
	ElementSeparator byte
	// DetectDelimiters reads both delimiters from the payload's fixed-width
	// ISA header instead of using configured values.
	DetectDelimiters bool
}

// ParseOption mutates ParseOptions.
type ParseOption func(*ParseOptions)

// WithSegmentTerminator sets the byte that ends each segment. The default is
// '~'.
func WithSegmentTerminator(terminator byte) ParseOption {
	return func(opts *ParseOptions) {
		opts.SegmentTerminator = terminator
	}
}

// WithElementSeparator sets the byte between elements. The default is '*'.
func WithElementSeparator(separator byte) ParseOption {
	return func(opts *ParseOptions) {
		opts.ElementSeparator = separator
	}
}

// WithDetectedDelimiters reads both delimiters from the payload's fixed-width
// ISA header (see DetectDelimiters) instead of using configured values.
// Combining detection with an explicit delimiter option is an error, and so
// is a payload without a full ISA header.
func WithDetectedDelimiters() ParseOption {
	return func(opts *ParseOptions) {
		opts.DetectDelimiters = true
	}
}

func applyParseOptions(opts []ParseOption) ParseOptions {
	var options ParseOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return options
}

// New returns an empty document using the configured delimiters. Detection
// needs a payload to inspect, so WithDetectedDelimiters applies only to Parse
// and ParseFile.
func New(opts ...ParseOption) *Document {
	options := applyParseOptions(opts)

	doc := &Document{
		terminator: DefaultSegmentTerminator,
		separator:  DefaultElementSeparator,
	}

	if options.SegmentTerminator != 0 {
		doc.terminator = options.SegmentTerminator
	}

	if options.ElementSeparator != 0 {
		doc.separator = options.ElementSeparator
	}

	return doc
}

// Parse tokenizes an X12 payload into a document.
//
// The payload is split on the segment terminator, each chunk is trimmed of
// surrounding whitespace, chunks left empty are dropped, and the survivors
// are split on the element separator with empty elements preserved. Compact
// payloads and pretty-printed payloads with newlines or indentation between
// segments parse to the same document. No grammar is enforced.
func Parse(content string, opts ...ParseOption) (*Document, error) {
	options := applyParseOptions(opts)

	if options.DetectDelimiters && (options.SegmentTerminator != 0 || options.ElementSeparator != 0) {
		return nil, fmt.Errorf("%w: pick explicit delimiters or detection, not both", ErrDelimiterConflict)
	}

	doc := New(opts...)

	if options.DetectDelimiters {
		terminator, separator, err := DetectDelimiters(content)
		if err != nil {
			return nil, err
		}

		doc.terminator = terminator
		doc.separator = separator
	}

	doc.segments = tokenize(content, doc.terminator, doc.separator)

	return doc, nil
}

// ParseFile reads and parses the file at path. The path is recorded on the
// returned document and becomes the default destination for WriteFile.
func ParseFile(path string, opts ...ParseOption) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	doc, parseErr := Parse(string(content), opts...)
	if parseErr != nil {
		return nil, parseErr
	}

	doc.path = path

	return doc, nil
}

// tokenize splits content into segments. Whitespace around each chunk is
// dropped so that cosmetic newlines after terminators do not leak into the
// next segment's tag.
func tokenize(content string, terminator, separator byte) []Segment {
	chunks := strings.Split(content, string(terminator))

	segments := make([]Segment, 0, len(chunks))

	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		segments = append(segments, Segment(strings.Split(chunk, string(separator))))
	}

	return segments
}

// Len returns the number of segments in the document.
func (d *Document) Len() int {
	return len(d.segments)
}

// Segments returns the document's segments in order. The returned slice and
// its segments are live views of the document's storage.
func (d *Document) Segments() []Segment {
	return d.segments
}

// At returns the segment at index idx.
// Returns (nil, false) if idx is out of range.
func (d *Document) At(idx int) (Segment, bool) {
	if idx < 0 || idx >= len(d.segments) {
		return nil, false
	}

	return d.segments[idx], true
}

// Append adds a segment built from elements to the end of the document. The
// first element is the new segment's tag; at least one element is required.
func (d *Document) Append(elements ...string) error {
	if len(elements) == 0 {
		return ErrEmptySegment
	}

	d.segments = append(d.segments, Segment(slices.Clone(elements)))

	return nil
}

// SetElement overwrites the element at position elemIdx of the segment at
// index segIdx. Both indices must be in range; segments never grow through
// SetElement.
func (d *Document) SetElement(segIdx, elemIdx int, value string) error {
	if segIdx < 0 || segIdx >= len(d.segments) {
		return fmt.Errorf("%w: segment %d in a %d-segment document", ErrSegmentIndex, segIdx, len(d.segments))
	}

	return d.segments[segIdx].SetElement(elemIdx, value)
}

// Match pairs a matched segment with its index in the document.
type Match struct {
	Index   int     // Index is the segment's position in the document.
	Segment Segment // Segment is a live view of the matched segment.
}

// Find returns every segment matching the filter, in document order. No
// matches is an empty result, not an error.
func (d *Document) Find(filter Filter) []Match {
	var matches []Match

	for idx, seg := range d.segments {
		if filter.Matches(seg) {
			matches = append(matches, Match{Index: idx, Segment: seg})
		}
	}

	return matches
}

// FindOne returns the single segment matching the filter. Zero matches and
// several matches both fail with an AmbiguousMatchError carrying the count.
func (d *Document) FindOne(filter Filter) (Match, error) {
	matches := d.Find(filter)
	if len(matches) != 1 {
		return Match{}, &AmbiguousMatchError{Filter: filter, Count: len(matches)}
	}

	return matches[0], nil
}

// Get returns the elements of the single segment matching the filter. Like
// FindOne, anything but exactly one match is an error.
func (d *Document) Get(filter Filter) (Segment, error) {
	match, err := d.FindOne(filter)
	if err != nil {
		return nil, err
	}

	return match.Segment, nil
}

// Remove deletes every segment matching the filter, preserving the order of
// the survivors, and returns how many were removed. Removing zero segments
// is not an error.
func (d *Document) Remove(filter Filter) int {
	before := len(d.segments)
	d.segments = slices.DeleteFunc(d.segments, filter.Matches)

	return before - len(d.segments)
}

// RemoveOne deletes the single segment matching the filter. An ambiguous
// filter (zero or several matches) fails and leaves the document unchanged.
func (d *Document) RemoveOne(filter Filter) error {
	match, err := d.FindOne(filter)
	if err != nil {
		return err
	}

	d.segments = slices.Delete(d.segments, match.Index, match.Index+1)

	return nil
}

// SegmentTerminator returns the byte written after each segment when the
// document is rendered.
func (d *Document) SegmentTerminator() byte {
	return d.terminator
}

// SetSegmentTerminator changes the terminator used by later renders. The
// segments themselves are untouched, so this re-renders the same document
// with a different wire framing.
func (d *Document) SetSegmentTerminator(terminator byte) {
	d.terminator = terminator
}

// ElementSeparator returns the byte written between elements when the
// document is rendered.
func (d *Document) ElementSeparator() byte {
	return d.separator
}

// SetElementSeparator changes the separator used by later renders.
func (d *Document) SetElementSeparator(separator byte) {
	d.separator = separator
}

// Path returns the file the document was parsed from, or "" for documents
// built in memory.
func (d *Document) Path() string {
	return d.path
}
