package format

import "math"

// WordSize is the byte width of a single counts-array slot.
type WordSize uint8

const (
	WordSize16 WordSize = 2 // WordSize16 represents 16-bit (uint16) counters.
	WordSize32 WordSize = 4 // WordSize32 represents 32-bit (uint32) counters.
	WordSize64 WordSize = 8 // WordSize64 represents 64-bit (uint64) counters.
)

// Valid reports whether w is one of the supported word sizes.
func (w WordSize) Valid() bool {
	switch w {
	case WordSize16, WordSize32, WordSize64:
		return true
	default:
		return false
	}
}

// MaxValue returns the largest unsigned value a slot of this width can hold.
// It returns 0 for unsupported word sizes.
func (w WordSize) MaxValue() uint64 {
	switch w {
	case WordSize16:
		return math.MaxUint16
	case WordSize32:
		return math.MaxUint32
	case WordSize64:
		return math.MaxUint64
	default:
		return 0
	}
}

// MaxEncodedLen returns the worst-case number of encoded bytes for a single
// slot of this width, which is one byte more than the word size.
func (w WordSize) MaxEncodedLen() int {
	return int(w) + 1
}

func (w WordSize) String() string {
	switch w {
	case WordSize16:
		return "Uint16"
	case WordSize32:
		return "Uint32"
	case WordSize64:
		return "Uint64"
	default:
		return "Unknown"
	}
}
