// Package hdrv2 encodes and decodes HdrHistogram counts arrays in the V2
// ZigZag LEB128 wire format, and merges counts arrays with overflow checks.
//
// # Core Features
//
//   - Zero runs compressed into a single negative varint
//   - 16, 32 and 64-bit counters, as typed slices or raw bytes in any byte order
//   - Decoding reports total count and the nonzero index range
//   - All-or-nothing array addition with per-slot wraparound detection
//   - Typed errors for truncation, overflow and destination overrun
//
// # Basic Usage
//
// Encoding a counts array:
//
//	import "github.com/arloliu/hdrv2"
//
//	counts := []uint16{5, 0, 0, 3}
//	data, err := hdrv2.Encode(hdrv2.NewUint16Array(counts))
//	// data == []byte{0x0A, 0x03, 0x06}
//
// Decoding into a caller-allocated array:
//
//	out := make([]uint16, 4)
//	stats, err := hdrv2.Decode(data, hdrv2.NewUint16Array(out))
//	// out == [5 0 0 3], stats.TotalCount == 8
//
// Merging two histograms with the same layout:
//
//	total, err := hdrv2.AddArrays(hdrv2.NewUint16Array(dst), hdrv2.NewUint16Array(src))
//	if errors.Is(err, errs.ErrValueRangeOverflow) {
//	    // dst is unchanged; widen the counters and retry
//	}
//
// # Package Structure
//
// This package wraps the counts package with functional options and an
// allocating Encode. Use the counts and encoding packages directly for
// positional, allocation-free calls.
package hdrv2

import (
	"fmt"

	"github.com/arloliu/hdrv2/counts"
	"github.com/arloliu/hdrv2/endian"
	"github.com/arloliu/hdrv2/errs"
	"github.com/arloliu/hdrv2/format"
	"github.com/arloliu/hdrv2/internal/pool"
)

type (
	// Array is a word-sized view over a caller-owned counts buffer.
	Array = counts.Array
	// Stats summarizes a decoded stream.
	Stats = counts.Stats
)

// NewUint16Array returns a 16-bit view over words.
func NewUint16Array(words []uint16) Array {
	return counts.NewUint16Array(words)
}

// NewUint32Array returns a 32-bit view over words.
func NewUint32Array(words []uint32) Array {
	return counts.NewUint32Array(words)
}

// NewUint64Array returns a 64-bit view over words.
func NewUint64Array(words []uint64) Array {
	return counts.NewUint64Array(words)
}

// NewRawArray returns a view over raw bytes holding slots of the given word
// size. A nil order selects the host byte order.
func NewRawArray(buf []byte, size format.WordSize, order endian.EndianEngine) (Array, error) {
	return counts.NewRawArray(buf, size, order)
}

// Wrap returns a view over a []uint16, []uint32 or []uint64. It is meant for
// binding layers that receive counters as an untyped value.
//
// Any other type fails with errs.ErrInvalidWordSize.
func Wrap(words any) (Array, error) {
	switch w := words.(type) {
	case []uint16:
		return counts.NewUint16Array(w), nil
	case []uint32:
		return counts.NewUint32Array(w), nil
	case []uint64:
		return counts.NewUint64Array(w), nil
	default:
		return Array{}, fmt.Errorf("%w: unsupported counts type %T", errs.ErrInvalidWordSize, words)
	}
}

// Encode encodes src and returns a newly allocated stream of exactly the
// encoded length, preceded by WithStartOffset reserved bytes if set.
//
// The worst-case scratch space is taken from a buffer pool, so the only
// allocation is the returned slice.
//
// Available options:
//   - WithMaxIndex(n): encode only slots [0, n)
//   - WithStartOffset(off): reserve off leading zero bytes in the result
func Encode(src Array, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(src.Len(), opts)
	if err != nil {
		return nil, err
	}

	bb := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(bb)

	bb.Resize(counts.EncodedLenBound(src.WordSize(), cfg.maxIndex))

	n, err := counts.EncodeTo(bb.B, src, cfg.maxIndex)
	if err != nil {
		return nil, err
	}

	out := make([]byte, cfg.startOffset+n)
	copy(out[cfg.startOffset:], bb.B[:n])

	return out, nil
}

// EncodeTo encodes src into dst and returns the stream length, not counting
// the WithStartOffset prefix. dst must hold the offset plus
// counts.EncodedLenBound bytes.
func EncodeTo(dst []byte, src Array, opts ...Option) (int, error) {
	cfg, err := newConfig(src.Len(), opts)
	if err != nil {
		return 0, err
	}

	if cfg.startOffset > len(dst) {
		return 0, fmt.Errorf("%w: start offset %d past destination of %d bytes",
			errs.ErrInvalidArgument, cfg.startOffset, len(dst))
	}

	return counts.EncodeTo(dst[cfg.startOffset:], src, cfg.maxIndex)
}

// Decode decodes data into dst. By default decoding starts at byte 0 and may
// fill every slot of dst.
//
// dst is written incrementally and may hold partial results on error. An
// overrun returns an *errs.IndexOverrunError; callers can retry with a larger
// array.
//
// Available options:
//   - WithMaxIndex(n): only slots [0, n) may be written
//   - WithStartOffset(off): skip off leading bytes of data
func Decode(data []byte, dst Array, opts ...Option) (Stats, error) {
	cfg, err := newConfig(dst.Len(), opts)
	if err != nil {
		return Stats{}, err
	}

	return counts.Decode(data, cfg.startOffset, dst, cfg.maxIndex)
}

// AddArrays adds src into dst element-wise and returns the sum of the added
// counts. Both arrays must share a word size. On overflow dst is unchanged.
//
// Available options:
//   - WithMaxIndex(n): add only slots [0, n); defaults to the length of dst
func AddArrays(dst, src Array, opts ...Option) (uint64, error) {
	cfg, err := newConfig(dst.Len(), opts)
	if err != nil {
		return 0, err
	}

	if cfg.startOffset != 0 {
		return 0, fmt.Errorf("%w: start offset does not apply to array addition", errs.ErrInvalidArgument)
	}

	return counts.Add(dst, src, cfg.maxIndex)
}
