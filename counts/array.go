package counts

import (
	"fmt"

	"github.com/arloliu/hdrv2/endian"
	"github.com/arloliu/hdrv2/errs"
	"github.com/arloliu/hdrv2/format"
)

type arrayKind uint8

const (
	kindNone arrayKind = iota
	kindUint16
	kindUint32
	kindUint64
	kindRaw
)

// Array is a word-sized view over a caller-owned counts buffer.
//
// An Array borrows its backing memory: it never copies, grows or frees it, and
// writes through Set or Decode are visible in the caller's slice. The zero
// Array is empty and rejected by EncodeTo, Decode and Add.
type Array struct {
	kind  arrayKind
	size  format.WordSize
	u16   []uint16
	u32   []uint32
	u64   []uint64
	raw   []byte
	order endian.EndianEngine
}

// NewUint16Array returns a 16-bit view over words.
func NewUint16Array(words []uint16) Array {
	return Array{kind: kindUint16, size: format.WordSize16, u16: words}
}

// NewUint32Array returns a 32-bit view over words.
func NewUint32Array(words []uint32) Array {
	return Array{kind: kindUint32, size: format.WordSize32, u32: words}
}

// NewUint64Array returns a 64-bit view over words.
func NewUint64Array(words []uint64) Array {
	return Array{kind: kindUint64, size: format.WordSize64, u64: words}
}

// NewRawArray returns a view over raw bytes holding slots of the given word size
// laid out in the given byte order. A nil order selects the host byte order.
//
// Errors:
//   - errs.ErrInvalidWordSize: size is not 2, 4 or 8
//   - errs.ErrInvalidArgument: buf is nil or its length is not a multiple of size
func NewRawArray(buf []byte, size format.WordSize, order endian.EndianEngine) (Array, error) {
	if !size.Valid() {
		return Array{}, fmt.Errorf("%w: %d", errs.ErrInvalidWordSize, size)
	}

	if buf == nil {
		return Array{}, fmt.Errorf("%w: nil counts buffer", errs.ErrInvalidArgument)
	}

	if len(buf)%int(size) != 0 {
		return Array{}, fmt.Errorf("%w: buffer length %d is not a multiple of word size %d",
			errs.ErrInvalidArgument, len(buf), size)
	}

	if order == nil {
		order = endian.GetNativeEndianEngine()
	}

	return Array{kind: kindRaw, size: size, raw: buf, order: order}, nil
}

// Len returns the number of slots in the array.
func (a Array) Len() int {
	switch a.kind {
	case kindUint16:
		return len(a.u16)
	case kindUint32:
		return len(a.u32)
	case kindUint64:
		return len(a.u64)
	case kindRaw:
		return len(a.raw) / int(a.size)
	default:
		return 0
	}
}

// WordSize returns the width of each slot in bytes.
func (a Array) WordSize() format.WordSize {
	return a.size
}

// MaxValue returns the largest value a slot can hold.
func (a Array) MaxValue() uint64 {
	return a.size.MaxValue()
}

// Get returns the value at index widened to uint64.
// It panics if index is out of range.
func (a Array) Get(index int) uint64 {
	return a.slots().get(index)
}

// Set stores value at index.
//
// If value exceeds MaxValue, Set returns an error wrapping
// errs.ErrValueRangeOverflow and leaves the slot unmodified.
// It panics if index is out of range.
func (a Array) Set(index int, value uint64) error {
	if value > a.size.MaxValue() {
		return fmt.Errorf("%w: value %d exceeds %d-bit slot at index %d",
			errs.ErrValueRangeOverflow, value, a.size*8, index)
	}

	a.slots().put(index, value)

	return nil
}

// IsZero reports whether the array is the zero Array with no backing memory.
func (a Array) IsZero() bool {
	return a.kind == kindNone
}

// slots boxes the typed accessor behind the slots interface. Hot loops
// dispatch on kind instead so that each word width gets its own instantiation.
func (a Array) slots() slots {
	switch a.kind {
	case kindUint16:
		return words[uint16](a.u16)
	case kindUint32:
		return words[uint32](a.u32)
	case kindUint64:
		return words[uint64](a.u64)
	case kindRaw:
		return a.rawWords()
	default:
		return words[uint64](nil)
	}
}

func (a Array) rawWords() rawWords {
	return rawWords{b: a.raw, size: a.size, order: a.order}
}
