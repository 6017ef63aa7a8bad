// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 audio to int32 samples
package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

// MP3Decoder decodes MP3 audio. Each Decode call takes a complete MP3
// stream; go-mp3 always emits 16-bit stereo at the stream's sample
// rate, upmixing mono sources.
type MP3Decoder struct{}

// NewMP3 creates a new MP3 decoder
func NewMP3(format audio.Format) (Decoder, error) {
	if format.Codec != "mp3" {
		return nil, fmt.Errorf("invalid codec for MP3 decoder: %s", format.Codec)
	}

	return &MP3Decoder{}, nil
}

// Decode converts an MP3 stream to int32 samples
func (d *MP3Decoder) Decode(data []byte) ([]int32, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	return audio.S16LEToInt32(pcm), nil
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}
