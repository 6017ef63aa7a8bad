// ABOUTME: Tests for the PCM encoder adapter
// ABOUTME: Covers 16-bit and 24-bit packing and buffer handling
package encode

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

func TestNewPCM(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid 16-bit PCM",
			cfg: Config{
				SampleRate:    48000,
				Channels:      2,
				BitsPerSample: 16,
			},
			wantErr: false,
		},
		{
			name: "valid 24-bit PCM",
			cfg: Config{
				SampleRate:    48000,
				Channels:      2,
				BitsPerSample: 24,
			},
			wantErr: false,
		},
		{
			name: "unsupported bit depth",
			cfg: Config{
				SampleRate:    48000,
				Channels:      2,
				BitsPerSample: 32,
			},
			wantErr:     true,
			errContains: "unsupported bit depth",
		},
		{
			name: "zero channels",
			cfg: Config{
				SampleRate:    48000,
				Channels:      0,
				BitsPerSample: 16,
			},
			wantErr:     true,
			errContains: "invalid channel count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPCM() expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewPCM() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPCM() unexpected error = %v", err)
			}
			if encoder == nil {
				t.Fatal("NewPCM() returned nil encoder")
			}
		})
	}
}

func TestPCMEncoder_EncodeInt32_16Bit(t *testing.T) {
	encoder, err := NewPCM(Config{SampleRate: 48000, Channels: 2, BitsPerSample: 16})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int32{0, 32767, -32768, 0x1234, -0x1234, 1000000}
	output := make([]byte, len(samples)*2)

	n, err := encoder.EncodeInt32(samples, output)
	if err != nil {
		t.Fatalf("EncodeInt32() failed: %v", err)
	}
	if n != len(samples)*2 {
		t.Fatalf("EncodeInt32() byte count = %d, want %d", n, len(samples)*2)
	}

	for i, sample := range samples {
		expected := audio.SampleToInt16(sample)
		actual := int16(binary.LittleEndian.Uint16(output[i*2:]))
		if actual != expected {
			t.Errorf("sample %d: got %d, want %d", i, actual, expected)
		}
	}
}

func TestPCMEncoder_EncodeInt32_24Bit(t *testing.T) {
	encoder, err := NewPCM(Config{SampleRate: 48000, Channels: 2, BitsPerSample: 24})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int32{0, audio.Max24Bit, audio.Min24Bit, 0x123456, -0x123456}
	output := make([]byte, len(samples)*3)

	n, err := encoder.EncodeInt32(samples, output)
	if err != nil {
		t.Fatalf("EncodeInt32() failed: %v", err)
	}
	if n != len(samples)*3 {
		t.Fatalf("EncodeInt32() byte count = %d, want %d", n, len(samples)*3)
	}

	for i, sample := range samples {
		expected := audio.SampleTo24Bit(sample)
		actual := [3]byte{output[i*3], output[i*3+1], output[i*3+2]}
		if actual != expected {
			t.Errorf("sample %d: got %v, want %v", i, actual, expected)
		}
	}
}

func TestPCMEncoder_EncodeInt16(t *testing.T) {
	encoder, err := NewPCM(Config{SampleRate: 48000, Channels: 1, BitsPerSample: 16})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int16{0, 100, -100, 32767, -32768}
	output := make([]byte, len(samples)*2)

	n, err := encoder.EncodeInt16(samples, output)
	if err != nil {
		t.Fatalf("EncodeInt16() failed: %v", err)
	}
	if n != len(samples)*2 {
		t.Fatalf("EncodeInt16() byte count = %d, want %d", n, len(samples)*2)
	}

	decoded := audio.S16LEToInt32(output[:n])
	for i, sample := range samples {
		if decoded[i] != int32(sample) {
			t.Errorf("sample %d: got %d, want %d", i, decoded[i], sample)
		}
	}
}

func TestPCMEncoder_EncodeInt16_24BitTarget(t *testing.T) {
	encoder, err := NewPCM(Config{SampleRate: 48000, Channels: 1, BitsPerSample: 24})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	_, err = encoder.EncodeInt16([]int16{1, 2}, make([]byte, 64))
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("EncodeInt16() error = %v, want ErrNotImplemented", err)
	}
}

func TestPCMEncoder_BufferTooSmall(t *testing.T) {
	encoder, err := NewPCM(Config{SampleRate: 48000, Channels: 1, BitsPerSample: 16})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	_, err = encoder.EncodeInt32([]int32{1, 2, 3, 4}, make([]byte, 4))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("EncodeInt32() error = %v, want ErrBufferTooSmall", err)
	}
}
