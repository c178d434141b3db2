package ports

// FrameSink abstracts the raw-pixel byte stream into the external
// video encoder. The sink owns the encoder process: Begin acquires it,
// End and Abort are the only two ways to release it.
type FrameSink interface {
	// Begin declares the fixed stream geometry and frame rate to the
	// encoder before any pixel data is sent.
	Begin(width, height int, fps float64) error

	// WriteFrame writes one full frame of width*height*4 bytes.
	// The buffer may be reused by the caller after WriteFrame returns.
	WriteFrame(buf []byte) error

	// End closes the stream and waits for the encoder to finish.
	End() error

	// Abort tears the encoder down without waiting for a clean finish.
	// Safe to call after End or a failed Begin.
	Abort()
}
