// Package exrdecoder reads single-channel float32 planes from OpenEXR
// files using github.com/mrjoshuak/go-openexr.
package exrdecoder

import (
	"fmt"

	exr "github.com/mrjoshuak/go-openexr/exr"
	"github.com/user/depthreel/pkg/ports"
)

// Decoder implements ports.DepthDecoder for scanline EXR files.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeChannel reads the named channel of the EXR file at path into a
// row-major float32 plane. Half and uint channels are promoted to
// float32 by the reader; the data window defines the frame geometry.
func (d *Decoder) DecodeChannel(path, channel string) (*ports.DepthFrame, error) {
	f, err := exr.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open exr: %w", err)
	}
	defer f.Close()

	reader, err := exr.NewScanlineReader(f)
	if err != nil {
		return nil, fmt.Errorf("read exr header: %w", err)
	}

	channels := reader.Header().Channels()
	found := false
	for i := 0; i < channels.Len(); i++ {
		if channels.At(i).Name == channel {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("channel %q not present in %s", channel, path)
	}

	dw := reader.DataWindow()
	width := int(dw.Width())
	height := int(dw.Height())

	data := make([]float32, width*height)
	fb := exr.NewFrameBuffer()
	if err := fb.Insert(channel, exr.NewSliceFromFloat32(data, width, height).WithOrigin(int(dw.Min.X), int(dw.Min.Y))); err != nil {
		return nil, fmt.Errorf("insert channel %q: %w", channel, err)
	}
	reader.SetFrameBuffer(fb)

	if err := reader.ReadPixels(int(dw.Min.Y), int(dw.Max.Y)); err != nil {
		return nil, fmt.Errorf("read exr pixels: %w", err)
	}

	slice := fb.Get(channel)
	if slice == nil {
		return nil, fmt.Errorf("channel %q missing from frame buffer", channel)
	}

	samples := make([]float32, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples = append(samples, slice.GetFloat32(x+int(dw.Min.X), y+int(dw.Min.Y)))
		}
	}

	return &ports.DepthFrame{
		Path:    path,
		Width:   width,
		Height:  height,
		Samples: samples,
	}, nil
}

// Ensure Decoder implements ports.DepthDecoder
var _ ports.DepthDecoder = (*Decoder)(nil)
