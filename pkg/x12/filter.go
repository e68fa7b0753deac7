package x12

import (
	"fmt"
	"slices"
	"strings"
)

// FilterKind distinguishes the supported segment filter shapes.
type FilterKind uint8

// FilterKind values enumerate the supported filter shapes.
const (
	FilterTag FilterKind = iota
	FilterPrefix
	FilterElements
)

// Filter selects segments by content. Build filters with TagFilter,
// PrefixFilter, or ElementsFilter; matching is plain string equality, never
// pattern matching.
type Filter struct {
	Kind     FilterKind     // Kind describes which filter shape is populated.
	Tag      string         // Tag holds the wanted segment tag when Kind == FilterTag.
	Prefix   []string       // Prefix holds the leading elements when Kind == FilterPrefix.
	Elements map[int]string // Elements maps positions to wanted values when Kind == FilterElements.
}

// TagFilter matches segments whose tag equals tag.
func TagFilter(tag string) Filter {
	return Filter{Kind: FilterTag, Tag: tag}
}

// PrefixFilter matches segments whose leading elements equal the given
// elements in order, starting with the tag. Segments shorter than the prefix
// never match. An empty prefix matches every segment.
func PrefixFilter(elements ...string) Filter {
	return Filter{Kind: FilterPrefix, Prefix: elements}
}

// ElementsFilter matches segments whose element at each position equals the
// wanted value. Positions past the end of a segment never match. An empty map
// matches every segment.
func ElementsFilter(elements map[int]string) Filter {
	return Filter{Kind: FilterElements, Elements: elements}
}

// Matches reports whether seg satisfies the filter.
func (f Filter) Matches(seg Segment) bool {
	switch f.Kind {
	case FilterTag:
		return seg.Tag() == f.Tag
	case FilterPrefix:
		if len(seg) < len(f.Prefix) {
			return false
		}

		for idx, want := range f.Prefix {
			if seg[idx] != want {
				return false
			}
		}

		return true
	case FilterElements:
		for pos, want := range f.Elements {
			if pos < 0 || pos >= len(seg) {
				return false
			}

			if seg[pos] != want {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// String describes the filter in a compact form for error messages.
func (f Filter) String() string {
	switch f.Kind {
	case FilterTag:
		return fmt.Sprintf("tag %q", f.Tag)
	case FilterPrefix:
		return fmt.Sprintf("prefix %q", f.Prefix)
	case FilterElements:
		if len(f.Elements) == 0 {
			return "empty elements filter"
		}

		positions := make([]int, 0, len(f.Elements))
		for pos := range f.Elements {
			positions = append(positions, pos)
		}

		slices.Sort(positions)

		parts := make([]string, 0, len(positions))
		for _, pos := range positions {
			parts = append(parts, fmt.Sprintf("%d=%q", pos, f.Elements[pos]))
		}

		return "elements " + strings.Join(parts, " ")
	default:
		return fmt.Sprintf("filter kind %d", f.Kind)
	}
}
