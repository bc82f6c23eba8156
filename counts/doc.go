// Package counts implements the HdrHistogram V2 counts-array codec.
//
// A counts array is a fixed-length sequence of unsigned bucket counters,
// each 2, 4 or 8 bytes wide. The package never allocates or retains counts
// arrays: callers wrap their own memory in an Array view and pass it to
// EncodeTo, Decode or Add for the duration of one call.
//
// # Wire Format
//
// The encoded stream is a concatenation of ZigZag LEB128 varints (see the
// encoding package) with no header, padding or terminator:
//
//   - A positive value is the literal count of the bucket at the cursor.
//   - A negative value -n skips n consecutive zero buckets.
//
// For example, counts [5, 0, 0, 3] encode to the three bytes 0x0A 0x03 0x06.
// The stream is not self-delimiting; callers store its length out of band.
//
// # Usage
//
//	values := []uint16{5, 0, 0, 3}
//	src := counts.NewUint16Array(values)
//
//	buf := make([]byte, counts.EncodedLenBound(src.WordSize(), src.Len()))
//	n, err := counts.EncodeTo(buf, src, src.Len())
//
//	out := make([]uint16, 4)
//	stats, err := counts.Decode(buf[:n], 0, counts.NewUint16Array(out), len(out))
//	// stats.TotalCount == 8, stats.MinNonZeroIndex == 0, stats.MaxNonZeroIndex == 3
//
// # Error Semantics
//
// All errors wrap the sentinels in the errs package. Add validates every slot
// before writing, so a failed Add leaves its destination untouched. Decode
// writes incrementally and may leave partial results in the destination when
// it fails.
//
// # Thread Safety
//
// Functions hold no state between calls. Calls over disjoint arrays are safe
// to run concurrently; calls that write the same destination must be
// serialized by the caller.
package counts
