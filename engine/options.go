package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
	"github.com/arloliu/logpack/format"
	"github.com/arloliu/logpack/internal/options"
)

const (
	// DefaultBufferSize is the capacity of each of the two output buffers.
	DefaultBufferSize = 1 << 20

	// DefaultPollInterval bounds the idle wait between passes when no
	// producer has staged data.
	DefaultPollInterval = 100 * time.Microsecond

	// SectorSize is the alignment unit for direct writes. Submissions in
	// direct mode are zero-padded to a multiple of it.
	SectorSize = 512
)

type config struct {
	bufferSize   int
	pollInterval time.Duration
	directIO     bool
	blockComp    format.CompressionType
	engine       endian.EndianEngine
	logger       logrus.FieldLogger
	syncOnClose  bool
}

func defaultConfig() config {
	return config{
		bufferSize:   DefaultBufferSize,
		pollInterval: DefaultPollInterval,
		blockComp:    format.CompressionNone,
		engine:       endian.GetLittleEndianEngine(),
		logger:       logrus.StandardLogger(),
		syncOnClose:  true,
	}
}

// Option represents a functional option for configuring the Engine.
// This is a type alias for the generic Option interface specialized for
// the engine configuration.
type Option = options.Option[*config]

// WithBufferSize sets the capacity of each of the two output buffers.
//
// The size must be a positive multiple of SectorSize so direct submissions
// stay aligned, and it bounds the largest acceptable record: a record
// whose worst-case size exceeds an empty buffer is an invariant violation
// at runtime.
func WithBufferSize(size int) Option {
	return options.New(func(c *config) error {
		if size <= 0 || size%SectorSize != 0 {
			return fmt.Errorf("%w: %d is not a positive multiple of %d", errs.ErrInvalidBufferSize, size, SectorSize)
		}
		c.bufferSize = size

		return nil
	})
}

// WithPollInterval sets the bounded idle wait between passes. Shorter
// intervals lower the worst-case latency from staging a record to
// persisting it, at the cost of more wakeups on an idle system.
func WithPollInterval(interval time.Duration) Option {
	return options.New(func(c *config) error {
		if interval <= 0 {
			return fmt.Errorf("%w: %s", errs.ErrInvalidPollInterval, interval)
		}
		c.pollInterval = interval

		return nil
	})
}

// WithDirectIO bypasses the page cache on platforms that support it and
// pads every submission to the sector size. On platforms without an
// O_DIRECT equivalent only the padding takes effect.
func WithDirectIO(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.directIO = enabled
	})
}

// WithBlockCompression enables second-stage compression: each filled
// output buffer is compressed as a whole and framed behind a block header
// before it is written. The default is format.CompressionNone, which
// writes the raw record stream with no framing.
func WithBlockCompression(typ format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !typ.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, typ)
		}
		c.blockComp = typ

		return nil
	})
}

// WithLogger sets the logger for write failures and the shutdown report.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.New(func(c *config) error {
		if logger == nil {
			return errors.New("engine: nil logger")
		}
		c.logger = logger

		return nil
	})
}

// WithLittleEndian sets the byte order for record headers and block
// frames. It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets big-endian byte order. It rarely needs to be used
// unless interoperability with big-endian systems is required.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithSyncOnClose controls whether Close flushes the destination to
// stable storage before closing it. On by default; disable it for
// throwaway files where the page cache is durable enough.
func WithSyncOnClose(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.syncOnClose = enabled
	})
}
