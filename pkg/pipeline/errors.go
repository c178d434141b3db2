package pipeline

import "fmt"

// DecodeError reports a source file that could not be opened, parsed,
// or that lacks the requested channel. Always fatal: a corrupt file
// anywhere invalidates the whole sequence.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RangeError reports that no valid sample was seen while scanning for
// the global range (empty sequence or all-invalid data).
type RangeError struct {
	Channel string
	Frames  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: no valid %q samples in %d frames", e.Channel, e.Frames)
}

// GeometryError reports a frame whose dimensions differ from the
// canonical geometry established by the first frame.
type GeometryError struct {
	Path  string
	Index int // Position in the ordered sequence, zero-based
	Got   Dimension
	Want  Dimension
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: frame %d (%s) is %s, expected %s",
		e.Index, e.Path, e.Got, e.Want)
}

// EncoderError reports a failure at the external encoder boundary: the
// sink could not be opened or written to, or the encoder process exited
// with a non-zero status.
type EncoderError struct {
	Op  string // "start", "write", "finish"
	Err error
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("encoder error: %s: %v", e.Op, e.Err)
}

func (e *EncoderError) Unwrap() error {
	return e.Err
}
