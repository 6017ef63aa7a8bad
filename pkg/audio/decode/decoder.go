// ABOUTME: Decoder interface definition and codec factory
// ABOUTME: Common interface for all audio decoders
package decode

import (
	"fmt"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

// Decoder decodes audio in various formats to interleaved int32 samples
type Decoder interface {
	// Decode converts encoded audio data to PCM samples
	Decode(data []byte) ([]int32, error)

	// Close releases decoder resources
	Close() error
}

// New creates a decoder for the format's codec.
func New(format audio.Format) (Decoder, error) {
	switch format.Codec {
	case "pcm":
		return NewPCM(format)
	case "opus":
		return NewOpus(format)
	case "flac":
		return NewFLAC(format)
	case "mp3":
		return NewMP3(format)
	default:
		return nil, fmt.Errorf("unsupported codec: %s", format.Codec)
	}
}
