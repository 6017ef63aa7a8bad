// ABOUTME: FLAC audio encoder backed by libFLAC's stream encoder
// ABOUTME: Drives the native engine lifecycle and collects callback output
package encode

/*
#cgo pkg-config: flac
#include <stdint.h>
#include <FLAC/stream_encoder.h>

extern FLAC__StreamEncoderWriteStatus tonewireFlacWrite(FLAC__StreamEncoder *encoder,
	FLAC__byte *buffer, size_t bytes, uint32_t samples, uint32_t current_frame,
	void *client_data);

// tonewire_flac_init registers the Go write trampoline and opens the
// stream. The sink handle travels as the callback's client_data.
static FLAC__StreamEncoderInitStatus tonewire_flac_init(FLAC__StreamEncoder *encoder, uintptr_t sink) {
	return FLAC__stream_encoder_init_stream(encoder,
		(FLAC__StreamEncoderWriteCallback)tonewireFlacWrite,
		NULL, NULL, NULL, (void *)sink);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// FLACEncoder encodes interleaved PCM samples to a FLAC stream using
// the native libFLAC stream encoder. It owns exactly one live engine
// handle at a time; the handle is created at construction and at Reset,
// and destroyed at Reset and Close.
//
// Sample values must lie within the configured bit depth; verification
// is enabled on the engine, so out-of-range input surfaces as an
// encode failure rather than silent corruption.
//
// Not safe for concurrent use; one instance per stream.
type FLACEncoder struct {
	handle      *C.FLAC__StreamEncoder
	cfg         Config
	sink        *byteSink
	sinkHandle  cgo.Handle
	header      []byte // stream signature + STREAMINFO, pending emission
	initialized bool
}

// NewFLAC creates a FLAC encoder adapter in the constructed state.
// Call Init before encoding.
func NewFLAC(cfg Config) (*FLACEncoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("flac: %w", err)
	}
	switch cfg.BitsPerSample {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("flac: unsupported bits per sample: %d (supported: 16, 24, 32)", cfg.BitsPerSample)
	}
	if cfg.CompressionLevel < 0 || cfg.CompressionLevel > 8 {
		return nil, fmt.Errorf("flac: compression level %d out of range 0-8", cfg.CompressionLevel)
	}
	if cfg.BlockSize < 0 {
		return nil, fmt.Errorf("flac: invalid block size: %d", cfg.BlockSize)
	}

	e := &FLACEncoder{
		cfg:  cfg,
		sink: &byteSink{},
	}
	if err := e.allocate(); err != nil {
		return nil, err
	}
	runtime.SetFinalizer(e, (*FLACEncoder).Close)
	return e, nil
}

// allocate creates a fresh engine handle and applies the full
// configuration to it.
func (e *FLACEncoder) allocate() error {
	handle := C.FLAC__stream_encoder_new()
	if handle == nil {
		return fmt.Errorf("flac: failed to allocate stream encoder")
	}
	C.FLAC__stream_encoder_set_verify(handle, C.FLAC__bool(1))
	C.FLAC__stream_encoder_set_compression_level(handle, C.uint32_t(e.cfg.CompressionLevel))
	C.FLAC__stream_encoder_set_channels(handle, C.uint32_t(e.cfg.Channels))
	C.FLAC__stream_encoder_set_bits_per_sample(handle, C.uint32_t(e.cfg.BitsPerSample))
	C.FLAC__stream_encoder_set_sample_rate(handle, C.uint32_t(e.cfg.SampleRate))
	C.FLAC__stream_encoder_set_blocksize(handle, C.uint32_t(e.cfg.BlockSize))
	e.handle = handle
	return nil
}

// initStream opens the output stream on the current handle. The engine
// pushes the stream signature and STREAMINFO through the callback while
// initializing; those bytes are stashed so the first encode call emits
// a decodable stream prefix, and the sink is restored to its invariant
// of only holding bytes from the current encode call.
func (e *FLACEncoder) initStream() error {
	if e.sinkHandle == 0 {
		e.sinkHandle = cgo.NewHandle(e.sink)
	}
	status := C.tonewire_flac_init(e.handle, C.uintptr_t(e.sinkHandle))
	if status != C.FLAC__STREAM_ENCODER_INIT_STATUS_OK {
		return fmt.Errorf("init status %d, encoder state: %s", int(status), e.stateString())
	}
	e.header = append(e.header[:0], e.sink.snapshot()...)
	e.sink.clear()
	e.initialized = true
	return nil
}

// stateString reports the engine's resolved state description,
// including the verify decoder's error when verification failed.
func (e *FLACEncoder) stateString() string {
	return C.GoString(C.FLAC__stream_encoder_get_resolved_state_string(e.handle))
}

// Init registers the write callback and opens the output stream.
// Precondition: at most one Init per engine instance. Calling Init
// again without an intervening Reset returns an error.
func (e *FLACEncoder) Init() error {
	if e.handle == nil {
		return fmt.Errorf("flac: encoder is closed")
	}
	if e.initialized {
		return fmt.Errorf("flac: encoder already initialized")
	}
	if err := e.initStream(); err != nil {
		return fmt.Errorf("flac: failed to initialize encoder: %w", err)
	}
	return nil
}

// EncodeInt16 is not supported for FLAC; pre-widen the samples to the
// int32 interleaved representation and use EncodeInt32.
func (e *FLACEncoder) EncodeInt16(input []int16, output []byte) (int, error) {
	return 0, fmt.Errorf("flac: 16-bit packed input: %w", ErrNotImplemented)
}

// EncodeInt32 submits interleaved samples to the engine and copies the
// compressed bytes it produced into output, returning the byte count.
// The engine buffers samples internally, so a call may legitimately
// produce zero bytes; output only ever holds whole encoded blocks.
func (e *FLACEncoder) EncodeInt32(input []int32, output []byte) (int, error) {
	if e.handle == nil {
		return 0, fmt.Errorf("flac: encoder is closed")
	}
	if !e.initialized {
		return 0, fmt.Errorf("flac: encoder not initialized")
	}
	if len(input)%e.cfg.Channels != 0 {
		return 0, fmt.Errorf("flac: input length %d is not a multiple of channel count %d: %w",
			len(input), e.cfg.Channels, ErrInvalidInput)
	}

	e.sink.clear()

	if len(input) > 0 {
		frames := len(input) / e.cfg.Channels
		ok := C.FLAC__stream_encoder_process_interleaved(e.handle,
			(*C.FLAC__int32)(unsafe.Pointer(&input[0])), C.uint32_t(frames))
		runtime.KeepAlive(input)
		if ok == 0 {
			return 0, fmt.Errorf("flac: failed to process samples, encoder state: %s", e.stateString())
		}
	}

	total := len(e.header) + e.sink.size()
	if len(output) < total {
		return 0, fmt.Errorf("flac: encoded data is %d bytes, output buffer holds %d (input length %d): %w",
			total, len(output), len(input), ErrBufferTooSmall)
	}
	n := copy(output, e.header)
	n += copy(output[n:], e.sink.snapshot())
	e.header = e.header[:0]
	return n, nil
}

// Reset finalizes and destroys the current engine instance, then
// builds a fresh one with the original configuration and re-opens the
// stream. After a successful Reset the adapter is ready for further
// encode calls; bytes the engine flushed while finishing the old
// stream are discarded with it.
func (e *FLACEncoder) Reset() error {
	if e.handle == nil {
		return fmt.Errorf("flac: encoder is closed")
	}
	C.FLAC__stream_encoder_finish(e.handle)
	C.FLAC__stream_encoder_delete(e.handle)
	e.handle = nil
	e.initialized = false
	e.header = e.header[:0]
	e.sink.clear()

	if err := e.allocate(); err != nil {
		return fmt.Errorf("flac: failed to reset encoder: %w", err)
	}
	if err := e.initStream(); err != nil {
		return fmt.Errorf("flac: failed to reset encoder: %w", err)
	}
	return nil
}

// Close finalizes and destroys the engine. It is safe to call in any
// state, including after a failed Init, and safe to call repeatedly.
// Finalization failures are discarded; there is no caller left to
// observe them.
func (e *FLACEncoder) Close() error {
	if e.handle != nil {
		C.FLAC__stream_encoder_finish(e.handle)
		C.FLAC__stream_encoder_delete(e.handle)
		e.handle = nil
	}
	if e.sinkHandle != 0 {
		e.sinkHandle.Delete()
		e.sinkHandle = 0
	}
	e.initialized = false
	runtime.SetFinalizer(e, nil)
	return nil
}
