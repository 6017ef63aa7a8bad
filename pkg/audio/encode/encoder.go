// ABOUTME: Encoder capability interface and shared configuration
// ABOUTME: Common contract implemented by all codec adapters
package encode

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all adapters. Adapters wrap these with
// codec-specific context; match with errors.Is.
var (
	// ErrNotImplemented marks an input variant an adapter does not
	// support by design, for example 16-bit packed input on FLAC.
	ErrNotImplemented = errors.New("not implemented")

	// ErrBufferTooSmall is returned when the caller-supplied output
	// buffer cannot hold the encoded data. No truncated output is
	// ever written; retry with a larger buffer.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrInvalidInput is returned when the input sample count does not
	// form whole frames (a multiple of the channel count).
	ErrInvalidInput = errors.New("invalid input")
)

// Encoder is the uniform contract for codec adapters. Callers can
// select an encoding backend without depending on codec-specific types.
//
// Both encode methods take interleaved samples (channel-count values
// per frame) and copy the encoded bytes into the caller-owned output
// buffer, returning the byte count written. Adapters may reject one of
// the two sample widths with ErrNotImplemented.
type Encoder interface {
	// Init opens the encoder's output stream. Must be called exactly
	// once before encoding; Reset re-arms it.
	Init() error

	// EncodeInt16 encodes interleaved 16-bit samples into output.
	EncodeInt16(input []int16, output []byte) (int, error)

	// EncodeInt32 encodes interleaved 32-bit samples into output.
	EncodeInt32(input []int32, output []byte) (int, error)

	// Reset finalizes the current stream and prepares the encoder for
	// a fresh one with the original configuration.
	Reset() error

	// Close releases encoder resources
	Close() error
}

// Config holds encoder settings, fixed for the lifetime of one encoder
// instance. Changing the stream format requires a new adapter.
type Config struct {
	SampleRate       int // Hz, > 0
	Channels         int // interleaved channel count, > 0
	BitsPerSample    int // 16, 24 or 32
	BlockSize        int // samples per block; 0 selects the engine default
	CompressionLevel int // engine-defined ordinal, 0 (fastest) to 8 (smallest)
}

// validate checks the fields every codec needs; adapters add their own
// codec-specific checks on top.
func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("invalid channel count: %d", c.Channels)
	}
	return nil
}

// New creates an encoder for the named codec.
func New(codec string, cfg Config) (Encoder, error) {
	switch codec {
	case "flac":
		return NewFLAC(cfg)
	case "opus":
		return NewOpus(cfg)
	case "pcm":
		return NewPCM(cfg)
	default:
		return nil, fmt.Errorf("unsupported codec: %s", codec)
	}
}
