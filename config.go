package hdrv2

import (
	"fmt"

	"github.com/arloliu/hdrv2/errs"
	"github.com/arloliu/hdrv2/internal/options"
)

// Config holds per-call settings for Encode, EncodeTo, Decode and AddArrays.
type Config struct {
	maxIndex    int
	hasMaxIndex bool
	startOffset int
}

// Option configures a single codec call.
type Option = options.Option[*Config]

// WithMaxIndex limits the call to slots [0, n) of the counts array.
// By default the whole array is used.
func WithMaxIndex(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative max index %d", errs.ErrInvalidArgument, n)
		}
		c.maxIndex = n
		c.hasMaxIndex = true

		return nil
	})
}

// WithStartOffset sets the byte offset of the stream inside the buffer.
//
// For Decode, decoding starts at that offset of the source. For Encode and
// EncodeTo, the stream is written after that many leading bytes, which
// callers typically reserve for a container header. AddArrays rejects it.
func WithStartOffset(offset int) Option {
	return options.New(func(c *Config) error {
		if offset < 0 {
			return fmt.Errorf("%w: negative start offset %d", errs.ErrInvalidArgument, offset)
		}
		c.startOffset = offset

		return nil
	})
}

// newConfig applies opts over the defaults for an array of arrayLen slots.
func newConfig(arrayLen int, opts []Option) (*Config, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !cfg.hasMaxIndex {
		cfg.maxIndex = arrayLen
	}

	return cfg, nil
}
