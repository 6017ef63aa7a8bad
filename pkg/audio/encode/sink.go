// ABOUTME: Output accumulator shared between an adapter and its engine callback
// ABOUTME: Collects compressed bytes pushed during a single encode call
package encode

// byteSink accumulates the compressed bytes an encoder engine pushes
// through its write callback. The owning adapter clears it before
// submitting samples and snapshots it afterwards; the callback is the
// only writer in between. Single-threaded by contract: the callback
// runs re-entrantly on the goroutine that called encode.
type byteSink struct {
	buf []byte
}

// clear drops all held bytes, keeping the allocation for reuse.
func (s *byteSink) clear() {
	s.buf = s.buf[:0]
}

// append copies p onto the end of the sink. It must copy: the engine
// reuses its chunk buffer after the callback returns.
func (s *byteSink) append(p []byte) {
	s.buf = append(s.buf, p...)
}

// snapshot returns the current contents without mutating them. The
// slice is valid until the next clear or append.
func (s *byteSink) snapshot() []byte {
	return s.buf
}

func (s *byteSink) size() int {
	return len(s.buf)
}
