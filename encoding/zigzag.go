package encoding

import (
	"fmt"

	"github.com/arloliu/hdrv2/errs"
)

// MaxZigZagLen is the maximum number of bytes a single encoded value occupies.
const MaxZigZagLen = 9

const (
	continuationBit = 0x80
	groupMask       = 0x7f
	groupBits       = 7
)

// zigzag maps a signed value onto the unsigned space: 0→0, -1→1, 1→2, -2→3, ...
func zigzag(value int64) uint64 {
	return uint64((value << 1) ^ (value >> 63)) //nolint:gosec
}

// unzigzag reverses zigzag. An odd input yields the bitwise NOT of input>>1.
func unzigzag(z uint64) int64 {
	return int64(z>>1) ^ -int64(z&1) //nolint:gosec
}

// ZigZagLen returns the number of bytes PutZigZag writes for value.
func ZigZagLen(value int64) int {
	z := zigzag(value)
	n := 1
	for z > groupMask && n < MaxZigZagLen {
		z >>= groupBits
		n++
	}

	return n
}

// PutZigZag encodes value into buf and returns the number of bytes written.
//
// The encoding is minimal: 1 byte for values in [-64, 63], growing by one byte
// per 7 bits of ZigZag magnitude, up to MaxZigZagLen bytes. The ninth byte is
// written as a full byte with no continuation flag.
//
// PutZigZag panics if buf is too small, like binary.PutUvarint. Size buf with
// ZigZagLen or MaxZigZagLen.
func PutZigZag(buf []byte, value int64) int {
	z := zigzag(value)
	i := 0
	for z > groupMask && i < MaxZigZagLen-1 {
		buf[i] = byte(z) | continuationBit
		z >>= groupBits
		i++
	}
	buf[i] = byte(z)

	return i + 1
}

// AppendZigZag appends the encoding of value to dst and returns the extended slice.
func AppendZigZag(dst []byte, value int64) []byte {
	var tmp [MaxZigZagLen]byte
	n := PutZigZag(tmp[:], value)

	return append(dst, tmp[:n]...)
}

// ReadZigZag decodes one value from the start of buf.
//
// It returns the decoded value and the number of bytes consumed. Decoding stops
// at the first byte without a continuation flag, or at the ninth byte, which is
// always terminal and contributes all 8 of its bits.
//
// Errors:
//   - errs.ErrTruncated: buf ends before a terminating byte
//   - errs.ErrVarintOverflow: the value needs 64 or more significant bits
func ReadZigZag(buf []byte) (int64, int, error) {
	var acc uint64
	var shift uint

	for i, b := range buf {
		if i == MaxZigZagLen-1 {
			acc |= uint64(b) << shift
			return unzigzag(acc), i + 1, nil
		}

		acc |= uint64(b&groupMask) << shift
		if b&continuationBit == 0 {
			return unzigzag(acc), i + 1, nil
		}

		shift += groupBits
		if shift >= 64 {
			return 0, 0, fmt.Errorf("%w: shift %d after %d bytes", errs.ErrVarintOverflow, shift, i+1)
		}
	}

	return 0, 0, fmt.Errorf("%w: %d bytes without terminator", errs.ErrTruncated, len(buf))
}
