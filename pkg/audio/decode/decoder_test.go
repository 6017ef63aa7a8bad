// ABOUTME: Tests for the decoder factory
// ABOUTME: Verifies codec selection and unknown codec handling
package decode

import (
	"strings"
	"testing"

	"github.com/tonewire/tonewire-go/pkg/audio"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		format      audio.Format
		wantErr     bool
		errContains string
	}{
		{
			name:   "pcm",
			format: audio.Format{Codec: "pcm", SampleRate: 48000, Channels: 2, BitDepth: 16},
		},
		{
			name:   "opus",
			format: audio.Format{Codec: "opus", SampleRate: 48000, Channels: 2, BitDepth: 16},
		},
		{
			name:   "flac",
			format: audio.Format{Codec: "flac", SampleRate: 44100, Channels: 2, BitDepth: 16},
		},
		{
			name:   "mp3",
			format: audio.Format{Codec: "mp3", SampleRate: 44100, Channels: 2, BitDepth: 16},
		},
		{
			name:        "unknown codec",
			format:      audio.Format{Codec: "vorbis", SampleRate: 48000, Channels: 2, BitDepth: 16},
			wantErr:     true,
			errContains: "unsupported codec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder, err := New(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New() expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("New() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}
			if decoder == nil {
				t.Fatal("New() returned nil decoder")
			}
			decoder.Close()
		})
	}
}
