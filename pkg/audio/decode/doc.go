// ABOUTME: Audio decoder package for multiple codec support
// ABOUTME: Provides Decoder interface and implementations for PCM, Opus, FLAC, MP3
// Package decode provides audio decoders for various codecs.
//
// Supports: PCM (16-bit and 24-bit), Opus, FLAC, MP3
//
// All decoders implement the Decoder interface and output interleaved
// int32 samples at the stream's native bit depth.
//
// Example:
//
//	decoder, err := decode.New(format)
//	samples, err := decoder.Decode(audioData)
package decode
