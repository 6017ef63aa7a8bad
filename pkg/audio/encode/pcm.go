// ABOUTME: PCM audio encoder adapter
// ABOUTME: Packs samples to little-endian 16-bit or 24-bit PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

// PCMEncoder packs samples to little-endian PCM bytes. It is a
// stateless pass-through: no framing, no compression, so Init and
// Reset have nothing to do.
type PCMEncoder struct {
	cfg Config
}

// NewPCM creates a new PCM encoder
func NewPCM(cfg Config) (*PCMEncoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("pcm: %w", err)
	}
	if cfg.BitsPerSample != 16 && cfg.BitsPerSample != 24 {
		return nil, fmt.Errorf("pcm: unsupported bit depth: %d (supported: 16, 24)", cfg.BitsPerSample)
	}

	return &PCMEncoder{cfg: cfg}, nil
}

// Init is a no-op; PCM packing needs no stream setup.
func (e *PCMEncoder) Init() error {
	return nil
}

// EncodeInt16 packs 16-bit samples little-endian into output. Only
// valid for a 16-bit configuration; wider targets need EncodeInt32.
func (e *PCMEncoder) EncodeInt16(input []int16, output []byte) (int, error) {
	if e.cfg.BitsPerSample != 16 {
		return 0, fmt.Errorf("pcm: 16-bit input with %d-bit output: %w", e.cfg.BitsPerSample, ErrNotImplemented)
	}

	need := len(input) * 2
	if len(output) < need {
		return 0, fmt.Errorf("pcm: encoded data is %d bytes, output buffer holds %d: %w",
			need, len(output), ErrBufferTooSmall)
	}
	for i, sample := range input {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample))
	}
	return need, nil
}

// EncodeInt32 packs samples at the configured bit depth into output.
func (e *PCMEncoder) EncodeInt32(input []int32, output []byte) (int, error) {
	if e.cfg.BitsPerSample == 24 {
		// 24-bit PCM: 3 bytes per sample
		need := len(input) * 3
		if len(output) < need {
			return 0, fmt.Errorf("pcm: encoded data is %d bytes, output buffer holds %d: %w",
				need, len(output), ErrBufferTooSmall)
		}
		for i, sample := range input {
			b := audio.SampleTo24Bit(sample)
			output[i*3] = b[0]
			output[i*3+1] = b[1]
			output[i*3+2] = b[2]
		}
		return need, nil
	}

	// 16-bit PCM: 2 bytes per sample
	need := len(input) * 2
	if len(output) < need {
		return 0, fmt.Errorf("pcm: encoded data is %d bytes, output buffer holds %d: %w",
			need, len(output), ErrBufferTooSmall)
	}
	for i, sample := range input {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(audio.SampleToInt16(sample)))
	}
	return need, nil
}

// Reset is a no-op; every call already stands alone.
func (e *PCMEncoder) Reset() error {
	return nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
