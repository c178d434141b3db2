// Package codec implements the float32-to-pixel packing at the heart
// of the pipeline. Each 32-bit sample is reinterpreted as four 8-bit
// pixel components (R, G, B, A) in little-endian byte order, so the
// packed stream is byte-order-stable regardless of host endianness and
// every frame can be recovered bit-exactly from the video.
package codec

import (
	"encoding/binary"
	"math"
)

// BytesPerSample is the size of one packed pixel quad.
const BytesPerSample = 4

// PackSample reinterprets the IEEE-754 bits of v as a 4-byte pixel
// quad, least-significant byte first. Total and lossless: NaN and Inf
// bit patterns pass through unchanged.
func PackSample(v float32) [BytesPerSample]byte {
	var q [BytesPerSample]byte
	binary.LittleEndian.PutUint32(q[:], math.Float32bits(v))
	return q
}

// UnpackSample is the exact inverse of PackSample.
func UnpackSample(q [BytesPerSample]byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(q[:]))
}

// Range is the global minimum and maximum sample value across a frame
// sequence. It is computed once per run and immutable afterwards.
type Range struct {
	Min float64
	Max float64
}

// EmptyRange returns the "not computed" sentinel: min at +Inf, max at
// -Inf, so that any observed sample narrows it.
func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Observe widens the range to include v. NaN samples are ignored since
// they compare false against any bound.
func (r *Range) Observe(v float32) {
	f := float64(v)
	if f < r.Min {
		r.Min = f
	}
	if f > r.Max {
		r.Max = f
	}
}

// Computed reports whether at least one sample was observed.
func (r Range) Computed() bool {
	return r.Min <= r.Max
}

// Normalize maps v into [0, 1] against the range. A degenerate range
// (max <= min) maps every sample to exactly 0. Values outside the
// range are not clamped; feeding samples the range was not computed
// over is a precondition violation.
func (r Range) Normalize(v float32) float32 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return float32((float64(v) - r.Min) / span)
}

// FrameEncoder packs a frame's raw samples into a contiguous pixel
// buffer, optionally normalizing each sample against a global range
// first. Encoding is deterministic: the same samples and mode always
// produce byte-identical output.
type FrameEncoder struct {
	normalize bool
	rng       Range
}

// NewRawEncoder returns an encoder that packs each sample's bit
// pattern directly.
func NewRawEncoder() *FrameEncoder {
	return &FrameEncoder{}
}

// NewNormalizedEncoder returns an encoder that normalizes every sample
// against rng before packing.
func NewNormalizedEncoder(rng Range) *FrameEncoder {
	return &FrameEncoder{normalize: true, rng: rng}
}

// Normalized reports whether the encoder normalizes before packing.
func (e *FrameEncoder) Normalized() bool {
	return e.normalize
}

// Range returns the global range of a normalizing encoder. Zero value
// for raw encoders.
func (e *FrameEncoder) Range() Range {
	return e.rng
}

// Encode packs samples into dst and returns the resulting buffer,
// growing dst as needed. dst may be nil or a buffer from a previous
// call; its contents are overwritten.
func (e *FrameEncoder) Encode(samples []float32, dst []byte) []byte {
	need := len(samples) * BytesPerSample
	if cap(dst) < need {
		dst = make([]byte, 0, need)
	}
	dst = dst[:0]
	if e.normalize {
		for _, v := range samples {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(e.rng.Normalize(v)))
		}
		return dst
	}
	for _, v := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
