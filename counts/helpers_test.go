package counts

import (
	"testing"

	"github.com/arloliu/hdrv2/endian"
	"github.com/arloliu/hdrv2/format"
	"github.com/stretchr/testify/require"
)

// arrayVariant builds an empty Array of n slots for one backing layout.
type arrayVariant struct {
	name string
	size format.WordSize
	make func(t *testing.T, n int) Array
}

var allVariants = []arrayVariant{
	{"uint16", format.WordSize16, func(_ *testing.T, n int) Array { return NewUint16Array(make([]uint16, n)) }},
	{"uint32", format.WordSize32, func(_ *testing.T, n int) Array { return NewUint32Array(make([]uint32, n)) }},
	{"uint64", format.WordSize64, func(_ *testing.T, n int) Array { return NewUint64Array(make([]uint64, n)) }},
	{"raw16-little", format.WordSize16, rawVariant(format.WordSize16, endian.GetLittleEndianEngine())},
	{"raw32-big", format.WordSize32, rawVariant(format.WordSize32, endian.GetBigEndianEngine())},
	{"raw64-native", format.WordSize64, rawVariant(format.WordSize64, nil)},
}

func rawVariant(size format.WordSize, order endian.EndianEngine) func(t *testing.T, n int) Array {
	return func(t *testing.T, n int) Array {
		a, err := NewRawArray(make([]byte, n*int(size)), size, order)
		require.NoError(t, err)

		return a
	}
}

// fill builds an Array of the variant holding values.
func (v arrayVariant) fill(t *testing.T, values []uint64) Array {
	t.Helper()

	a := v.make(t, len(values))
	for i, value := range values {
		require.NoError(t, a.Set(i, value))
	}

	return a
}

func snapshot(a Array) []uint64 {
	out := make([]uint64, a.Len())
	for i := range out {
		out[i] = a.Get(i)
	}

	return out
}

func encodeAll(t *testing.T, a Array) []byte {
	t.Helper()

	buf := make([]byte, EncodedLenBound(a.WordSize(), a.Len()))
	n, err := EncodeTo(buf, a, a.Len())
	require.NoError(t, err)

	return buf[:n]
}
