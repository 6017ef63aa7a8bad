// ABOUTME: Opus audio encoder adapter
// ABOUTME: Encodes interleaved PCM samples to Opus packets
package encode

import (
	"fmt"
	"log"

	"github.com/tonewire/tonewire-go/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// OpusEncoder encodes interleaved PCM samples to Opus packets. Each
// encode call must carry exactly one Opus frame per channel (2.5 to
// 60 ms of audio; 960 frames at 48 kHz is the usual 20 ms).
type OpusEncoder struct {
	encoder *opus.Encoder
	cfg     Config
}

// NewOpus creates an Opus encoder adapter. BlockSize and
// CompressionLevel are ignored: Opus frames are sized per call and the
// codec trades rate for quality through its bitrate instead.
func NewOpus(cfg Config) (*OpusEncoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("opus: %w", err)
	}
	e := &OpusEncoder{cfg: cfg}
	if err := e.create(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *OpusEncoder) create() error {
	encoder, err := opus.NewEncoder(e.cfg.SampleRate, e.cfg.Channels, opus.AppAudio)
	if err != nil {
		return fmt.Errorf("opus: failed to create encoder: %w", err)
	}

	// 128 kbps for stereo, 64 kbps for mono
	bitrate := 64000 * e.cfg.Channels
	if err := encoder.SetBitrate(bitrate); err != nil {
		log.Printf("Warning: failed to set Opus bitrate: %v", err)
	}

	e.encoder = encoder
	return nil
}

// Init is a no-op: a libopus encoder is ready as soon as it exists.
// Kept so Opus satisfies the same lifecycle as stream codecs.
func (e *OpusEncoder) Init() error {
	return nil
}

// EncodeInt16 encodes one frame of interleaved 16-bit samples into
// output and returns the packet length.
func (e *OpusEncoder) EncodeInt16(input []int16, output []byte) (int, error) {
	if len(input)%e.cfg.Channels != 0 {
		return 0, fmt.Errorf("opus: input length %d is not a multiple of channel count %d: %w",
			len(input), e.cfg.Channels, ErrInvalidInput)
	}

	n, err := e.encoder.Encode(input, output)
	if err != nil {
		return 0, fmt.Errorf("opus: encode failed: %w", err)
	}
	return n, nil
}

// EncodeInt32 narrows interleaved samples at the configured bit depth
// to the 16-bit range Opus works in, then encodes them.
func (e *OpusEncoder) EncodeInt32(input []int32, output []byte) (int, error) {
	var shift uint
	if e.cfg.BitsPerSample > 16 {
		shift = uint(e.cfg.BitsPerSample - 16)
	}

	pcm := make([]int16, len(input))
	for i, sample := range input {
		if shift > 0 {
			pcm[i] = int16(sample >> shift)
		} else {
			pcm[i] = audio.SampleToInt16(sample)
		}
	}
	return e.EncodeInt16(pcm, output)
}

// Reset discards all codec state by recreating the underlying encoder
// with the original configuration.
func (e *OpusEncoder) Reset() error {
	if err := e.create(); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	return nil
}

// Close releases resources. The wrapped encoder is garbage collected;
// nothing to do.
func (e *OpusEncoder) Close() error {
	return nil
}
