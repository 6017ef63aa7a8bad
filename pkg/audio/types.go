// ABOUTME: Audio type definitions
// ABOUTME: Defines stream formats and sample width conversions
package audio

import (
	"encoding/binary"
	"math"
)

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// SampleFromInt16 widens an int16 sample to int32 at its native magnitude
func SampleFromInt16(sample int16) int32 {
	return int32(sample)
}

// SampleToInt16 narrows an int32 sample to int16, clamping out-of-range values
func SampleToInt16(sample int32) int16 {
	if sample > math.MaxInt16 {
		return math.MaxInt16
	}
	if sample < math.MinInt16 {
		return math.MinInt16
	}
	return int16(sample)
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian, sign-extended)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}

// S16LEToInt32 widens a 16-bit little-endian PCM byte stream to int32 samples.
// Trailing bytes that do not form a whole sample are ignored.
func S16LEToInt32(data []byte) []int32 {
	samples := make([]int32, len(data)/2)
	for i := range samples {
		samples[i] = SampleFromInt16(int16(binary.LittleEndian.Uint16(data[i*2:])))
	}
	return samples
}

// S24LEToInt32 widens a 24-bit little-endian PCM byte stream to int32 samples
func S24LEToInt32(data []byte) []int32 {
	samples := make([]int32, len(data)/3)
	for i := range samples {
		samples[i] = SampleFrom24Bit([3]byte{data[i*3], data[i*3+1], data[i*3+2]})
	}
	return samples
}

// S32LEToInt32 reads a 32-bit little-endian PCM byte stream as int32 samples
func S32LEToInt32(data []byte) []int32 {
	samples := make([]int32, len(data)/4)
	for i := range samples {
		samples[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return samples
}
