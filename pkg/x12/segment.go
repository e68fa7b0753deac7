package x12

import (
	"fmt"
	"slices"
)

// Segment is a single X12 segment: an ordered sequence of element strings
// whose first element is the segment tag (ISA, ST, N1, ...).
//
// A Segment is a plain string slice, so indexing and len work as usual.
// Segments returned by Document queries alias the document's storage; edits
// through them are visible to the document.
type Segment []string

// Tag returns the segment tag, the element at position 0.
func (s Segment) Tag() string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}

// Element returns the element at position idx.
// Returns ("", false) if idx is out of range.
func (s Segment) Element(idx int) (string, bool) {
	if idx < 0 || idx >= len(s) {
		return "", false
	}

	return s[idx], true
}

// SetElement overwrites the element at position idx. Segments never grow
// through SetElement; writing past the last element is an error.
func (s Segment) SetElement(idx int, value string) error {
	if idx < 0 || idx >= len(s) {
		return fmt.Errorf("%w: position %d in a %d-element segment", ErrElementIndex, idx, len(s))
	}

	s[idx] = value

	return nil
}

// Clone returns a copy of the segment that shares no storage with the
// original.
func (s Segment) Clone() Segment {
	return slices.Clone(s)
}
