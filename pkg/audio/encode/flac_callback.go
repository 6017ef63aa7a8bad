// ABOUTME: Write callback trampoline invoked by libFLAC during encoding
// ABOUTME: Forwards compressed byte chunks verbatim into the adapter's sink
package encode

/*
#cgo pkg-config: flac
#include <stdint.h>
#include <FLAC/stream_encoder.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// tonewireFlacWrite runs re-entrantly on the goroutine that called into
// the engine, both from FLAC__stream_encoder_process_interleaved and
// from stream initialization (which emits the stream header). It copies
// the chunk into the sink before returning and always reports success
// so the engine keeps processing; the adapter has no failure of its own
// to signal here.
//
//export tonewireFlacWrite
func tonewireFlacWrite(encoder *C.FLAC__StreamEncoder, buffer *C.FLAC__byte, bytes C.size_t,
	samples C.uint32_t, currentFrame C.uint32_t, clientData unsafe.Pointer) C.FLAC__StreamEncoderWriteStatus {
	if bytes > 0 {
		sink := cgo.Handle(uintptr(clientData)).Value().(*byteSink)
		sink.append(unsafe.Slice((*byte)(buffer), int(bytes)))
	}
	return C.FLAC__STREAM_ENCODER_WRITE_STATUS_OK
}
