package pipeline

import (
	"fmt"

	"github.com/user/depthreel/pkg/codec"
)

// Dimension represents a frame's width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// String formats the dimension as "WxH".
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// FrameBytes returns the packed byte size of one frame.
func (d Dimension) FrameBytes() int {
	return d.Width * d.Height * codec.BytesPerSample
}

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for the global range scan.
type ScanInput struct {
	Paths   []string // Ordered frame file paths
	Channel string   // Channel to extract from every file
}

// ScanResult contains the computed global range.
type ScanResult struct {
	Range   codec.Range
	Samples int64 // Total samples observed across all frames
}

// =============================================================================
// Stream Stage Types
// =============================================================================

// StreamInput contains parameters for streaming frames to the encoder.
type StreamInput struct {
	Paths   []string // Ordered frame file paths
	Channel string
	FPS     float64
	Encoder *codec.FrameEncoder
}

// StreamResult contains the outcome of a completed stream.
type StreamResult struct {
	Geometry Dimension // Canonical geometry taken from the first frame
	Frames   int       // Frames written to the sink
	Bytes    int64     // Total pixel bytes written
}
