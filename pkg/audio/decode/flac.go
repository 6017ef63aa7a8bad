// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC streams to int32 samples via mewkiz/flac
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct {
	format audio.Format
}

// NewFLAC creates a new FLAC decoder
func NewFLAC(format audio.Format) (Decoder, error) {
	if format.Codec != "flac" {
		return nil, fmt.Errorf("invalid codec for FLAC decoder: %s", format.Codec)
	}

	return &FLACDecoder{format: format}, nil
}

// Decode parses a FLAC stream (signature, STREAMINFO, audio frames)
// and returns its interleaved samples. A stream cut off mid-frame, for
// example one captured before the encoder flushed its last block,
// yields the samples of all complete frames.
func (d *FLACDecoder) Decode(data []byte) ([]int32, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse flac stream: %w", err)
	}
	defer stream.Close()

	var samples []int32
	for {
		f, err := stream.ParseNext()
		if err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("failed to parse flac frame: %w", err)
		}
		if len(f.Subframes) == 0 {
			continue
		}

		// Subframes hold one channel each; interleave them.
		n := len(f.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sub := range f.Subframes {
				samples = append(samples, sub.Samples[i])
			}
		}
	}
	return samples, nil
}

// Close releases decoder resources
func (d *FLACDecoder) Close() error {
	return nil
}
