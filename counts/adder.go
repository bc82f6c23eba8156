package counts

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/hdrv2/errs"
)

// Add adds slots [0, maxIndex) of src into dst element-wise and returns the
// sum of the added values.
//
// Add is all-or-nothing: every slot is checked for unsigned wraparound before
// any slot is written, so on error dst is left byte-for-byte unchanged. The
// returned total is accumulated modulo 2^64.
//
// Errors:
//   - errs.ErrInvalidArgument: either array is the zero Array, their word
//     sizes differ, or maxIndex is negative or exceeds either length
//   - errs.ErrValueRangeOverflow: dst[i]+src[i] does not fit the word size
func Add(dst, src Array, maxIndex int) (uint64, error) {
	if dst.IsZero() || src.IsZero() {
		return 0, fmt.Errorf("%w: nil counts array", errs.ErrInvalidArgument)
	}

	if dst.WordSize() != src.WordSize() {
		return 0, fmt.Errorf("%w: word size mismatch: dst %d, src %d",
			errs.ErrInvalidArgument, dst.WordSize(), src.WordSize())
	}

	if maxIndex < 0 || maxIndex > dst.Len() || maxIndex > src.Len() {
		return 0, fmt.Errorf("%w: max index %d not in [0, min(%d, %d)]",
			errs.ErrInvalidArgument, maxIndex, dst.Len(), src.Len())
	}

	switch {
	case dst.kind == kindUint16 && src.kind == kindUint16:
		return addWords(dst.u16[:maxIndex], src.u16[:maxIndex])
	case dst.kind == kindUint32 && src.kind == kindUint32:
		return addWords(dst.u32[:maxIndex], src.u32[:maxIndex])
	case dst.kind == kindUint64 && src.kind == kindUint64:
		return addWords(dst.u64[:maxIndex], src.u64[:maxIndex])
	default:
		return addSlots(dst.slots(), src.slots(), maxIndex, dst.MaxValue(), int(dst.WordSize())*8)
	}
}

// addWords adds src into dst in two passes: validate every slot, then apply.
// len(dst) must equal len(src).
func addWords[W Word](dst, src []W) (uint64, error) {
	for i, v := range src {
		if v != 0 && dst[i]+v < dst[i] {
			return 0, fmt.Errorf("%w: %d-bit overflow at index %d: %d + %d",
				errs.ErrValueRangeOverflow, wordBits[W](), i, dst[i], v)
		}
	}

	var total uint64
	for i, v := range src {
		if v != 0 {
			dst[i] += v
			total += uint64(v)
		}
	}

	return total, nil
}

// addSlots is the two-pass add for views that are not both typed slices of
// the same width, such as byte-backed arrays.
func addSlots(dst, src slots, maxIndex int, maxValue uint64, width int) (uint64, error) {
	for i := 0; i < maxIndex; i++ {
		v := src.get(i)
		if v != 0 && v > maxValue-dst.get(i) {
			return 0, fmt.Errorf("%w: %d-bit overflow at index %d: %d + %d",
				errs.ErrValueRangeOverflow, width, i, dst.get(i), v)
		}
	}

	var total uint64
	for i := 0; i < maxIndex; i++ {
		if v := src.get(i); v != 0 {
			dst.put(i, dst.get(i)+v)
			total += v
		}
	}

	return total, nil
}

func wordBits[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}
