// Package errs defines the sentinel errors returned by the hdrv2 codec.
//
// Errors are wrapped with call-specific context using fmt.Errorf and the %w
// verb, so callers should match them with errors.Is:
//
//	if errors.Is(err, errs.ErrIndexOverrun) {
//	    // reallocate a larger counts array and decode again
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a varint was cut off by the end of the buffer.
	ErrTruncated = errors.New("truncated varint")

	// ErrVarintOverflow indicates a varint needs 64 or more significant bits.
	ErrVarintOverflow = errors.New("varint overflows 64 bits")

	// ErrValueRangeOverflow indicates a value does not fit its destination:
	// a counts slot narrower than the value, an encode input of 2^63 or more,
	// or an element-wise sum that wraps.
	ErrValueRangeOverflow = errors.New("value out of range")

	// ErrIndexOverrun indicates the decode cursor passed the destination
	// capacity before the stream was exhausted.
	ErrIndexOverrun = errors.New("destination array overrun")

	// ErrInvalidWordSize indicates a word size other than 2, 4 or 8 bytes.
	ErrInvalidWordSize = errors.New("invalid word size")

	// ErrInvalidArgument indicates a nil buffer, a negative length or offset,
	// or arrays whose shapes do not match.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexOverrunError reports the cursor position that overran a counts array
// together with the configured limit. It unwraps to ErrIndexOverrun.
type IndexOverrunError struct {
	Index    int64
	MaxIndex int
}

func (e *IndexOverrunError) Error() string {
	return fmt.Sprintf("%s: index=%d max index=%d", ErrIndexOverrun, e.Index, e.MaxIndex)
}

func (e *IndexOverrunError) Unwrap() error {
	return ErrIndexOverrun
}
