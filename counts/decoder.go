package counts

import (
	"fmt"
	"math"

	"github.com/arloliu/hdrv2/encoding"
	"github.com/arloliu/hdrv2/errs"
)

// Stats summarizes the counts written by Decode.
type Stats struct {
	// TotalCount is the sum of all nonzero counts decoded.
	TotalCount uint64
	// MinNonZeroIndex is the lowest index that received a nonzero count,
	// or -1 if none did.
	MinNonZeroIndex int64
	// MaxNonZeroIndex is the highest index that received a nonzero count,
	// or 0 if none did.
	MaxNonZeroIndex int64
	// BytesRead is the number of bytes consumed after the start offset.
	BytesRead int
}

// emptyStats is the result of decoding a stream that holds no counts.
var emptyStats = Stats{MinNonZeroIndex: -1}

// Decode reads the encoded stream in src, starting at byte offset, into
// slots [0, maxIndex) of dst and reports aggregate statistics.
//
// Decoding consumes the rest of src. Negative values skip zero runs without
// writing; non-negative values are written at the cursor, which then advances
// by one. A literal 0 is accepted and written even though EncodeTo never
// produces one. Slots skipped by zero runs keep whatever dst held, so callers
// normally decode into a zeroed array.
//
// dst is written as decoding proceeds: on error it may hold partial results.
//
// Errors:
//   - errs.ErrInvalidArgument: dst is the zero Array, offset is outside src,
//     or maxIndex is not in [1, dst.Len()]
//   - errs.ErrTruncated, errs.ErrVarintOverflow: malformed varint
//   - errs.ErrValueRangeOverflow: a count does not fit the word size, or a
//     zero run is longer than the signed 32-bit range
//   - errs.ErrIndexOverrun: the cursor reached maxIndex with bytes left in
//     the stream; the error is an *errs.IndexOverrunError
func Decode(src []byte, offset int, dst Array, maxIndex int) (Stats, error) {
	if dst.IsZero() {
		return Stats{}, fmt.Errorf("%w: nil destination array", errs.ErrInvalidArgument)
	}

	if offset < 0 || offset > len(src) {
		return Stats{}, fmt.Errorf("%w: start offset %d outside source of %d bytes",
			errs.ErrInvalidArgument, offset, len(src))
	}

	if maxIndex <= 0 || maxIndex > dst.Len() {
		return Stats{}, fmt.Errorf("%w: max index %d not in [1, %d]",
			errs.ErrInvalidArgument, maxIndex, dst.Len())
	}

	src = src[offset:]
	if len(src) == 0 {
		return emptyStats, nil
	}

	maxValue := dst.MaxValue()

	switch dst.kind {
	case kindUint16:
		return decodeSlots(src, words[uint16](dst.u16), maxIndex, maxValue)
	case kindUint32:
		return decodeSlots(src, words[uint32](dst.u32), maxIndex, maxValue)
	case kindUint64:
		return decodeSlots(src, words[uint64](dst.u64), maxIndex, maxValue)
	default:
		return decodeSlots(src, dst.rawWords(), maxIndex, maxValue)
	}
}

// decodeSlots requires len(src) > 0 and maxIndex > 0. The cursor is below
// maxIndex at the top of every iteration.
func decodeSlots[S slots](src []byte, dst S, maxIndex int, maxValue uint64) (Stats, error) {
	stats := emptyStats
	var dstIndex int64
	pos := 0

	for {
		value, n, err := encoding.ReadZigZag(src[pos:])
		if err != nil {
			return Stats{}, fmt.Errorf("decode varint at byte %d: %w", pos, err)
		}
		pos += n

		if value < math.MinInt32 {
			return Stats{}, fmt.Errorf("%w: zero run of %d at byte %d exceeds 32-bit range",
				errs.ErrValueRangeOverflow, value, pos-n)
		}

		if value < 0 {
			dstIndex -= value
		} else {
			if uint64(value) > maxValue {
				return Stats{}, fmt.Errorf("%w: count %d at index %d exceeds slot maximum %d",
					errs.ErrValueRangeOverflow, value, dstIndex, maxValue)
			}

			dst.put(int(dstIndex), uint64(value))
			if value != 0 {
				stats.TotalCount += uint64(value)
				stats.MaxNonZeroIndex = dstIndex
				if stats.MinNonZeroIndex < 0 {
					stats.MinNonZeroIndex = dstIndex
				}
			}
			dstIndex++
		}

		if pos == len(src) {
			break
		}

		if dstIndex >= int64(maxIndex) {
			return Stats{}, &errs.IndexOverrunError{Index: dstIndex, MaxIndex: maxIndex}
		}
	}

	stats.BytesRead = pos

	return stats, nil
}
