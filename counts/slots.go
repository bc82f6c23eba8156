package counts

import (
	"github.com/arloliu/hdrv2/endian"
	"github.com/arloliu/hdrv2/format"
)

// Word is the set of unsigned types a counts slot can be stored as.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// slots is the unchecked element access used by the codec kernels.
// Range checks against the word size happen before put is called.
type slots interface {
	get(i int) uint64
	put(i int, v uint64)
}

type words[W Word] []W

func (w words[W]) get(i int) uint64 {
	return uint64(w[i])
}

func (w words[W]) put(i int, v uint64) {
	w[i] = W(v)
}

// rawWords reads and writes slots stored in a byte buffer.
type rawWords struct {
	b     []byte
	size  format.WordSize
	order endian.EndianEngine
}

func (r rawWords) get(i int) uint64 {
	switch r.size {
	case format.WordSize16:
		return uint64(r.order.Uint16(r.b[i*2:]))
	case format.WordSize32:
		return uint64(r.order.Uint32(r.b[i*4:]))
	default:
		return r.order.Uint64(r.b[i*8:])
	}
}

func (r rawWords) put(i int, v uint64) {
	switch r.size {
	case format.WordSize16:
		r.order.PutUint16(r.b[i*2:], uint16(v)) //nolint:gosec
	case format.WordSize32:
		r.order.PutUint32(r.b[i*4:], uint32(v)) //nolint:gosec
	default:
		r.order.PutUint64(r.b[i*8:], v)
	}
}
