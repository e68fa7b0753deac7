package x12

import (
	"fmt"
	"strings"
	"unicode"
)

const isaTag = "ISA"

// ISA header geometry. The interchange control header is fixed-width: with
// every element space-padded to its standard width, the element separator
// lands at byte 3 and the segment terminator at byte 105, which is what makes
// delimiter detection possible.
const (
	isaSeparatorOffset  = 3
	isaTerminatorOffset = 105
	isaHeaderLength     = 106
)

// isaElementWidths are the fixed widths of the ISA tag and its sixteen
// elements, ISA01 through ISA16.
//
//nolint:gochecknoglobals // package-level constant
var isaElementWidths = [...]int{3, 2, 10, 2, 10, 2, 15, 2, 15, 6, 4, 1, 5, 9, 1, 1, 1}

// HasInterchangeHeader reports whether a payload opens with an ISA segment
// once leading whitespace is trimmed. It says nothing about the header being
// complete; DetectDelimiters enforces that.
func HasInterchangeHeader(content string) bool {
	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)

	return strings.HasPrefix(trimmed, isaTag)
}

// DetectDelimiters reads the element separator and segment terminator from a
// payload's fixed-width ISA header. The payload is inspected after trimming
// leading whitespace; it must start with "ISA" and be long enough to hold the
// full 106-byte header.
func DetectDelimiters(content string) (terminator, separator byte, err error) {
	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)

	if !strings.HasPrefix(trimmed, isaTag) {
		return 0, 0, fmt.Errorf("%w: content does not start with ISA", ErrDelimiterDetect)
	}

	if len(trimmed) < isaHeaderLength {
		return 0, 0, fmt.Errorf("%w: %d bytes is shorter than the %d-byte ISA header",
			ErrDelimiterDetect, len(trimmed), isaHeaderLength)
	}

	return trimmed[isaTerminatorOffset], trimmed[isaSeparatorOffset], nil
}

// padISAElements returns a copy of an ISA segment with every element
// space-padded to its fixed width. Trailing whitespace is stripped before
// padding, so an already padded element passes through unchanged. Elements
// longer than their width are rejected rather than silently truncated, and so
// are segments with more elements than the layout defines.
func padISAElements(seg Segment) (Segment, error) {
	if len(seg) > len(isaElementWidths) {
		return nil, fmt.Errorf("%w: %d elements, the layout has %d",
			ErrISATooManyElements, len(seg), len(isaElementWidths))
	}

	padded := make(Segment, len(seg))

	for idx, element := range seg {
		width := isaElementWidths[idx]
		element = strings.TrimRightFunc(element, unicode.IsSpace)

		if len(element) > width {
			return nil, fmt.Errorf("%w: element %d is %d bytes, the width is %d",
				ErrElementTooLong, idx, len(element), width)
		}

		padded[idx] = element + strings.Repeat(" ", width-len(element))
	}

	return padded, nil
}
