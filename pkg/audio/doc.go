// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and sample width conversion functions
// Package audio provides fundamental audio types and utilities for PCM processing.
//
// This package defines core types used throughout the tonewire library:
//   - Format: Describes audio stream format (codec, sample rate, channels, bit depth)
//
// It also provides utilities for converting between different sample widths.
// Samples are kept at their native bit depth: a 16-bit sample widened to
// int32 keeps its 16-bit magnitude, it is not left-justified or rescaled.
//
// Example:
//
//	format := audio.Format{
//	    Codec:      "flac",
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitDepth:   16,
//	}
//
//	// Widen a 16-bit sample for an int32 pipeline
//	sample32 := audio.SampleFromInt16(sample16)
package audio
