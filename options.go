package msbt

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/msbt/internal/options"
)

// ParseOption configures how a bundle is parsed.
type ParseOption = options.Option[*parseConfig]

type parseConfig struct {
	// expectedSize is the known total input length, or -1 when unknown.
	expectedSize  int64
	skipSizeCheck bool
	decompress    bool
	logger        zerolog.Logger
}

func newParseConfig(opts ...ParseOption) (*parseConfig, error) {
	cfg := &parseConfig{
		expectedSize: -1,
		decompress:   true,
		logger:       zerolog.Nop(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// sizeToCheck returns the input length to validate and whether to validate it.
func (c *parseConfig) sizeToCheck() (int64, bool) {
	if c.skipSizeCheck || c.expectedSize < 0 {
		return 0, false
	}

	return c.expectedSize, true
}

// WithExpectedSize declares the total input length.
//
// The length must be a multiple of 16 and equal to the file size declared in
// the message header; both checks run before any section is decoded.
// ParseBytes, ParseFile and Open set it automatically.
func WithExpectedSize(size int64) ParseOption {
	return options.New(func(c *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("expected size must not be negative: %d", size)
		}
		c.expectedSize = size

		return nil
	})
}

// WithoutSizeCheck disables the alignment and declared size checks.
func WithoutSizeCheck() ParseOption {
	return options.NoError(func(c *parseConfig) {
		c.skipSizeCheck = true
	})
}

// WithDecompression controls whether ParseBytes and Open detect and unwrap
// compressed containers before parsing. It is enabled by default.
func WithDecompression(enabled bool) ParseOption {
	return options.NoError(func(c *parseConfig) {
		c.decompress = enabled
	})
}

// WithLogger sets the logger receiving decoding debug events.
func WithLogger(logger zerolog.Logger) ParseOption {
	return options.NoError(func(c *parseConfig) {
		c.logger = logger
	})
}
