// Package encoding provides the ZigZag LEB128 varint codec used by the
// HdrHistogram V2 counts wire format.
//
// # Wire Format
//
// A signed 64-bit value is first mapped to an unsigned one with ZigZag
// encoding so that small magnitudes stay small regardless of sign:
//
//	 0 → 0
//	-1 → 1
//	 1 → 2
//	-2 → 3
//	 2 → 4
//
// The result is then written in 7-bit groups, least significant group first.
// Every byte except the last has its high bit set as a continuation flag:
//
//	Value 0-127:     0xxxxxxx                    (1 byte)
//	Value 128-16383: 1xxxxxxx 0xxxxxxx           (2 bytes)
//	Value 16384+:    1xxxxxxx 1xxxxxxx 0xxxxxxx  (3+ bytes)
//
// Unlike Protocol Buffers varints, which use up to 10 bytes for a 64-bit
// value, this format stops at 9 bytes: the ninth byte carries a full 8 bits
// with no continuation flag, since 8×7 + 8 = 64 bits exactly covers the
// value space.
//
// # Usage
//
//	buf := make([]byte, encoding.MaxZigZagLen)
//	n := encoding.PutZigZag(buf, -2)   // buf[:n] == []byte{0x03}
//
//	v, read, err := encoding.ReadZigZag(buf[:n])
//	// v == -2, read == 1
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use on disjoint buffers.
package encoding
