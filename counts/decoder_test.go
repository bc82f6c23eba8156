package counts

import (
	"errors"
	"math"
	"testing"

	"github.com/arloliu/hdrv2/encoding"
	"github.com/arloliu/hdrv2/errs"
	"github.com/stretchr/testify/require"
)

func stream(values ...int64) []byte {
	var buf []byte
	for _, v := range values {
		buf = encoding.AppendZigZag(buf, v)
	}

	return buf
}

func TestDecode_Scenario(t *testing.T) {
	out := make([]uint16, 4)

	stats, err := Decode([]byte{0x0A, 0x03, 0x06}, 0, NewUint16Array(out), 4)
	require.NoError(t, err)
	require.Equal(t, []uint16{5, 0, 0, 3}, out)
	require.Equal(t, Stats{
		TotalCount:      8,
		MinNonZeroIndex: 0,
		MaxNonZeroIndex: 3,
		BytesRead:       3,
	}, stats)
}

func TestDecode_AllVariants(t *testing.T) {
	src := stream(-3, 9, 0, -2, 65535, 1)

	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			dst := v.make(t, 10)

			stats, err := Decode(src, 0, dst, dst.Len())
			require.NoError(t, err)
			require.Equal(t, []uint64{0, 0, 0, 9, 0, 0, 0, 65535, 1, 0}, snapshot(dst))
			require.Equal(t, uint64(65545), stats.TotalCount)
			require.Equal(t, int64(3), stats.MinNonZeroIndex)
			require.Equal(t, int64(8), stats.MaxNonZeroIndex)
			require.Equal(t, len(src), stats.BytesRead)
		})
	}
}

func TestDecode_AllZeroRun(t *testing.T) {
	out := []uint32{0, 0, 0, 0, 0}

	stats, err := Decode(stream(-5), 0, NewUint32Array(out), 5)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 0, 0, 0, 0}, out)
	require.Equal(t, int64(-1), stats.MinNonZeroIndex)
	require.Equal(t, int64(0), stats.MaxNonZeroIndex)
	require.Zero(t, stats.TotalCount)
}

func TestDecode_TrailingRunMayPassEnd(t *testing.T) {
	// The cursor may pass max index on the final varint; only bytes left
	// after that count as an overrun.
	out := make([]uint64, 4)

	stats, err := Decode(stream(1, -100), 0, NewUint64Array(out), 4)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 0, 0}, out)
	require.Equal(t, uint64(1), stats.TotalCount)
}

func TestDecode_LiteralZeroConsumesSlot(t *testing.T) {
	// EncodeTo never emits a literal 0, but Decode accepts it as a count of
	// zero occupying one slot.
	out := []uint16{0, 0, 0}

	stats, err := Decode(stream(0, 4), 0, NewUint16Array(out), 3)
	require.NoError(t, err)
	require.Equal(t, []uint16{0, 4, 0}, out)
	require.Equal(t, uint64(4), stats.TotalCount)
	require.Equal(t, int64(1), stats.MinNonZeroIndex)
	require.Equal(t, int64(1), stats.MaxNonZeroIndex)
}

func TestDecode_StartOffset(t *testing.T) {
	src := append([]byte{0xDE, 0xAD}, 0x0A, 0x03, 0x06)
	out := make([]uint16, 4)

	stats, err := Decode(src, 2, NewUint16Array(out), 4)
	require.NoError(t, err)
	require.Equal(t, []uint16{5, 0, 0, 3}, out)
	require.Equal(t, 3, stats.BytesRead)
}

func TestDecode_EmptyStream(t *testing.T) {
	out := []uint16{7, 7}

	for _, tc := range []struct {
		name   string
		src    []byte
		offset int
	}{
		{"nil", nil, 0},
		{"offset at end", []byte{0x0A, 0x03}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := Decode(tc.src, tc.offset, NewUint16Array(out), 2)
			require.NoError(t, err)
			require.Equal(t, Stats{MinNonZeroIndex: -1}, stats)
			require.Equal(t, []uint16{7, 7}, out, "destination must be untouched")
		})
	}
}

func TestDecode_IndexOverrun(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		maxIndex int
		index    int64
	}{
		{"values past end", stream(1, 2, 3), 2, 2},
		{"zero run to end", stream(-4, 1), 4, 4},
		{"zero run past end", stream(-10, 1), 4, 10},
		{"max index limits larger array", stream(1, 1, 1), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]uint32, 8)

			_, err := Decode(tt.src, 0, NewUint32Array(out), tt.maxIndex)
			require.ErrorIs(t, err, errs.ErrIndexOverrun)

			var overrun *errs.IndexOverrunError
			require.True(t, errors.As(err, &overrun))
			require.Equal(t, tt.index, overrun.Index)
			require.Equal(t, tt.maxIndex, overrun.MaxIndex)
		})
	}
}

func TestDecode_PartialWritesOnError(t *testing.T) {
	out := make([]uint16, 2)

	_, err := Decode(stream(1, 2, 3), 0, NewUint16Array(out), 2)
	require.Error(t, err)
	require.Equal(t, []uint16{1, 2}, out)
}

func TestDecode_ValueRangeOverflow(t *testing.T) {
	tests := []struct {
		name  string
		array Array
		value int64
	}{
		{"uint16", NewUint16Array(make([]uint16, 2)), math.MaxUint16 + 1},
		{"uint32", NewUint32Array(make([]uint32, 2)), math.MaxUint32 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(stream(tt.value), 0, tt.array, 2)
			require.ErrorIs(t, err, errs.ErrValueRangeOverflow)
			require.Equal(t, []uint64{0, 0}, snapshot(tt.array))
		})
	}

	out := make([]uint64, 1)
	_, err := Decode(stream(math.MaxInt64), 0, NewUint64Array(out), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxInt64), out[0])
}

func TestDecode_ZeroRunBeyond32Bits(t *testing.T) {
	out := make([]uint64, 4)

	_, err := Decode(stream(math.MinInt32), 0, NewUint64Array(out), 4)
	require.NoError(t, err)

	for _, run := range []int64{math.MinInt32 - 1, math.MinInt64} {
		_, err = Decode(stream(run, 1), 0, NewUint64Array(out), 4)
		require.ErrorIs(t, err, errs.ErrValueRangeOverflow, "run %d", run)
	}
}

func TestDecode_MalformedVarint(t *testing.T) {
	out := make([]uint64, 4)

	_, err := Decode([]byte{0x0A, 0x80}, 0, NewUint64Array(out), 4)
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.Contains(t, err.Error(), "byte 1")
}

func TestDecode_InvalidArguments(t *testing.T) {
	dst := NewUint16Array(make([]uint16, 4))
	src := []byte{0x0A}

	tests := []struct {
		name     string
		src      []byte
		offset   int
		dst      Array
		maxIndex int
	}{
		{"zero array", src, 0, Array{}, 4},
		{"negative offset", src, -1, dst, 4},
		{"offset past end", src, 2, dst, 4},
		{"zero max index", src, 0, dst, 0},
		{"negative max index", src, 0, dst, -1},
		{"max index past length", src, 0, dst, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.src, tt.offset, tt.dst, tt.maxIndex)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}
