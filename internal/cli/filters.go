package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/865charlesw/x12tools/pkg/x12"
)

var (
	errFilterRequired = errors.New("a segment filter is required")
	errFilterConflict = errors.New("cannot combine a positional filter with --el")
	errElementPair    = errors.New("element filter must be N=V with a position of 0 or higher")
	errShellFilter    = errors.New("filter is one tag, one comma prefix, or N=V pairs")
)

// parseFilter builds a segment filter from a positional argument and any
// --el position=value pairs. A bare word is a tag filter, a comma-joined
// word is a prefix filter, and pairs select by element position. Exactly one
// form must be used per invocation.
func parseFilter(positional string, pairs []string) (x12.Filter, error) {
	if positional != "" && len(pairs) > 0 {
		return x12.Filter{}, errFilterConflict
	}

	if len(pairs) > 0 {
		elements, err := parseElementPairs(pairs)
		if err != nil {
			return x12.Filter{}, err
		}

		return x12.ElementsFilter(elements), nil
	}

	if positional == "" {
		return x12.Filter{}, errFilterRequired
	}

	if strings.Contains(positional, ",") {
		return x12.PrefixFilter(strings.Split(positional, ",")...), nil
	}

	return x12.TagFilter(positional), nil
}

// parseShellFilter builds a filter from whitespace-split shell tokens. Pairs
// carry their positions inline instead of through --el flags, so a token
// containing "=" selects the elements form.
func parseShellFilter(args []string) (x12.Filter, error) {
	if len(args) == 0 {
		return x12.Filter{}, errFilterRequired
	}

	pairs := true

	for _, arg := range args {
		if !strings.Contains(arg, "=") {
			pairs = false

			break
		}
	}

	if pairs {
		elements, err := parseElementPairs(args)
		if err != nil {
			return x12.Filter{}, err
		}

		return x12.ElementsFilter(elements), nil
	}

	if len(args) != 1 {
		return x12.Filter{}, errShellFilter
	}

	return parseFilter(args[0], nil)
}

func parseElementPairs(pairs []string) (map[int]string, error) {
	elements := make(map[int]string, len(pairs))

	for _, pair := range pairs {
		posStr, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errElementPair, pair)
		}

		pos, err := strconv.Atoi(posStr)
		if err != nil || pos < 0 {
			return nil, fmt.Errorf("%w: %q", errElementPair, pair)
		}

		elements[pos] = value
	}

	return elements, nil
}
