// ABOUTME: Audio encoder package for encoding PCM to various formats
// ABOUTME: Provides the Encoder capability interface and FLAC, Opus, PCM adapters
// Package encode provides audio encoders for various codecs behind one
// capability interface.
//
// Supports: FLAC (via libFLAC), Opus, PCM (16-bit and 24-bit)
//
// Every adapter follows the same lifecycle: construct with a Config,
// Init once, feed interleaved samples to EncodeInt16/EncodeInt32 with a
// caller-owned output buffer, Reset to start a fresh stream, Close when
// done. Adapters are synchronous and single-threaded; use one adapter
// instance per concurrent stream.
//
// Example:
//
//	encoder, err := encode.NewFLAC(encode.Config{
//	    SampleRate:       44100,
//	    Channels:         2,
//	    BitsPerSample:    16,
//	    CompressionLevel: 5,
//	})
//	if err != nil {
//	    return err
//	}
//	defer encoder.Close()
//
//	if err := encoder.Init(); err != nil {
//	    return err
//	}
//	n, err := encoder.EncodeInt32(samples, output)
package encode
