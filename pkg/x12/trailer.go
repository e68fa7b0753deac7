package x12

import (
	"fmt"
	"strconv"
)

// Transaction set boundary tags.
const (
	transactionSetHeaderTag  = "ST"
	transactionSetTrailerTag = "SE"
)

// SyncTrailers rewrites every SE trailer's segment count from the actual span
// of its transaction set. A set spans its ST header through its SE trailer,
// both boundaries included, and the count lands in the element right after
// the trailer's tag (SE01).
//
// Pairings must be well formed: an SE with no open ST, a second ST while one
// is open, an ST still open at the end of the document, and an SE with no
// room for the count all fail without guessing a count. Sets before the
// failure keep their synced counts; the rest of the document is untouched.
// Syncing a well-formed document is idempotent.
func (d *Document) SyncTrailers() error {
	openIdx := -1

	for idx, seg := range d.segments {
		switch seg.Tag() {
		case transactionSetHeaderTag:
			if openIdx != -1 {
				return fmt.Errorf("%w: ST at segment %d while the set opened at segment %d is still open",
					ErrUnclosedTransactionSet, idx, openIdx)
			}

			openIdx = idx
		case transactionSetTrailerTag:
			if openIdx == -1 {
				return fmt.Errorf("%w: SE at segment %d", ErrUnopenedTransactionSet, idx)
			}

			count := idx - openIdx + 1

			setErr := seg.SetElement(1, strconv.Itoa(count))
			if setErr != nil {
				return fmt.Errorf("%w: SE at segment %d", ErrTrailerTooShort, idx)
			}

			openIdx = -1
		}
	}

	if openIdx != -1 {
		return fmt.Errorf("%w: ST at segment %d", ErrUnclosedTransactionSet, openIdx)
	}

	return nil
}
