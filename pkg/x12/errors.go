package x12

import (
	"errors"
	"fmt"
)

// Error variables for document operations.
var (
	ErrNoPath                 = errors.New("no path provided and no source path recorded")
	ErrEmptySegment           = errors.New("segment must have at least one element")
	ErrSegmentIndex           = errors.New("segment index out of range")
	ErrElementIndex           = errors.New("element index out of range")
	ErrDelimiterConflict      = errors.New("explicit delimiters conflict with delimiter detection")
	ErrDelimiterDetect        = errors.New("cannot detect delimiters")
	ErrUnopenedTransactionSet = errors.New("SE trailer without an open ST header")
	ErrUnclosedTransactionSet = errors.New("ST header without a closing SE trailer")
	ErrTrailerTooShort        = errors.New("SE trailer has no room for a segment count")
	ErrElementTooLong         = errors.New("ISA element exceeds its fixed width")
	ErrISATooManyElements     = errors.New("ISA segment has more elements than the fixed layout")
)

// AmbiguousMatchError reports a filter that was expected to match exactly one
// segment but matched zero or several.
type AmbiguousMatchError struct {
	Filter Filter // Filter is the filter that produced the ambiguous result.
	Count  int    // Count is how many segments matched.
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d segments match %s, expected exactly 1", e.Count, e.Filter)
}
