package counts

import (
	"fmt"
	"math"

	"github.com/arloliu/hdrv2/encoding"
	"github.com/arloliu/hdrv2/errs"
	"github.com/arloliu/hdrv2/format"
)

// EncodedLenBound returns the destination size EncodeTo requires for maxIndex
// slots of the given word size: (size+1) bytes per slot.
func EncodedLenBound(size format.WordSize, maxIndex int) int {
	if maxIndex <= 0 {
		return 0
	}

	return size.MaxEncodedLen() * maxIndex
}

// EncodeTo encodes slots [0, maxIndex) of src into dst and returns the exact
// number of bytes written.
//
// Each run of consecutive zero slots is written as one negative varint holding
// the run length; each nonzero slot is written as its literal value. dst must
// hold at least EncodedLenBound(src.WordSize(), maxIndex) bytes, even though
// the stream is usually much shorter.
//
// Errors:
//   - errs.ErrInvalidArgument: src is the zero Array, maxIndex is negative or
//     exceeds src.Len(), or dst is shorter than the bound
//   - errs.ErrValueRangeOverflow: a slot holds a value of 2^63 or more, which
//     ZigZag cannot represent; nothing useful is left in dst
func EncodeTo(dst []byte, src Array, maxIndex int) (int, error) {
	if src.IsZero() {
		return 0, fmt.Errorf("%w: nil source array", errs.ErrInvalidArgument)
	}

	if maxIndex < 0 {
		return 0, fmt.Errorf("%w: negative max index %d", errs.ErrInvalidArgument, maxIndex)
	}

	if maxIndex > src.Len() {
		return 0, fmt.Errorf("%w: max index %d exceeds array length %d",
			errs.ErrInvalidArgument, maxIndex, src.Len())
	}

	if maxIndex == 0 {
		return 0, nil
	}

	if need := EncodedLenBound(src.WordSize(), maxIndex); len(dst) < need {
		return 0, fmt.Errorf("%w: destination has %d bytes, need %d",
			errs.ErrInvalidArgument, len(dst), need)
	}

	switch src.kind {
	case kindUint16:
		return encodeSlots(dst, words[uint16](src.u16), maxIndex)
	case kindUint32:
		return encodeSlots(dst, words[uint32](src.u32), maxIndex)
	case kindUint64:
		return encodeSlots(dst, words[uint64](src.u64), maxIndex)
	default:
		return encodeSlots(dst, src.rawWords(), maxIndex)
	}
}

func encodeSlots[S slots](dst []byte, src S, maxIndex int) (int, error) {
	written := 0

	for i := 0; i < maxIndex; {
		value := src.get(i)
		i++

		if value == 0 {
			zeros := int64(1)
			for i < maxIndex && src.get(i) == 0 {
				zeros++
				i++
			}
			written += encoding.PutZigZag(dst[written:], -zeros)

			continue
		}

		if value > math.MaxInt64 {
			return 0, fmt.Errorf("%w: count %d at index %d exceeds the 63-bit limit",
				errs.ErrValueRangeOverflow, value, i-1)
		}

		written += encoding.PutZigZag(dst[written:], int64(value))
	}

	return written, nil
}
