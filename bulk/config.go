package bulk

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/options"
	"github.com/arloliu/grnbulk/value"
)

// RecordConstructor builds the value returned for a non-nil record id read from a
// table domain.
type RecordConstructor func(table domain.Descriptor, id format.ID) value.Value

// NewRecordValue is the default RecordConstructor. It returns a value.Record.
func NewRecordValue(table domain.Descriptor, id format.ID) value.Value {
	return value.Record{Table: table.ID, ID: id}
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	nativeEndianOpt endianness = iota
	littleEndianOpt
	bigEndianOpt
)

func (e endianness) engine() endian.EndianEngine {
	switch e {
	case littleEndianOpt:
		return endian.GetLittleEndianEngine()
	case bigEndianOpt:
		return endian.GetBigEndianEngine()
	default:
		return endian.GetNativeEngine()
	}
}

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	engine   endian.EndianEngine
	logger   *zap.Logger
	copyText bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{engine: endian.GetNativeEngine()}
}

// WithNativeEndian writes values in the host's byte order. It is the default.
func WithNativeEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = nativeEndianOpt.engine()
	})
}

// WithLittleEndian writes values in little-endian order regardless of the host.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = littleEndianOpt.engine()
	})
}

// WithBigEndian writes values in big-endian order regardless of the host.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = bigEndianOpt.engine()
	})
}

// WithTextCopy makes the encoder copy text into an owned buffer instead of borrowing
// the caller's bytes.
func WithTextCopy() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.copyText = true
	})
}

// WithLogger sets the encoder's logger. It overrides the package logger.
func WithLogger(l *zap.Logger) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l

		return nil
	})
}

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	engine    endian.EndianEngine
	registry  domain.Registry
	newRecord RecordConstructor
	logger    *zap.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

func newDecoderConfig(registry domain.Registry) *DecoderConfig {
	return &DecoderConfig{
		engine:    endian.GetNativeEngine(),
		registry:  registry,
		newRecord: NewRecordValue,
	}
}

// WithDecoderEndian sets the byte order the decoder expects. The default is the host's.
func WithDecoderEndian(engine endian.EndianEngine) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if engine == nil {
			return errors.New("endian engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithRecordConstructor replaces the function building record values.
func WithRecordConstructor(fn RecordConstructor) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if fn == nil {
			return errors.New("record constructor must not be nil")
		}
		c.newRecord = fn

		return nil
	})
}

// WithDecoderLogger sets the decoder's logger. It overrides the package logger.
func WithDecoderLogger(l *zap.Logger) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l

		return nil
	})
}

// FrameConfig holds the settings used by Marshal and Unmarshal.
type FrameConfig struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	logger      *zap.Logger
}

// FrameOption configures Marshal and Unmarshal.
type FrameOption = options.Option[*FrameConfig]

func newFrameConfig() *FrameConfig {
	return &FrameConfig{
		engine:      endian.GetNativeEngine(),
		compression: format.CompressionNone,
	}
}

// WithFrameCompression compresses the frame payload with comp.
func WithFrameCompression(comp format.CompressionType) FrameOption {
	return options.New(func(c *FrameConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("invalid frame compression: %v", comp)
		}
	})
}

// WithFrameEndian sets the payload byte order Unmarshal accepts. Marshal labels Void
// frames with it; every other object is labelled with the order it was written in.
// The default is the host's.
func WithFrameEndian(engine endian.EndianEngine) FrameOption {
	return options.New(func(c *FrameConfig) error {
		if engine == nil {
			return errors.New("endian engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithFrameLogger sets the logger used while framing.
func WithFrameLogger(l *zap.Logger) FrameOption {
	return options.NoError(func(c *FrameConfig) {
		c.logger = l
	})
}

func loggerOr(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}

	return Logger()
}
