// Package mocks provides hand-written mocks of the ports interfaces
// for stage and orchestrator tests.
package mocks

import (
	"fmt"

	"github.com/user/depthreel/pkg/ports"
)

// DepthDecoder is a mock implementation of ports.DepthDecoder backed
// by a fixed set of frames.
type DepthDecoder struct {
	Frames map[string]*ports.DepthFrame
	// FailPaths return an error instead of a frame.
	FailPaths map[string]error

	// DecodedPaths records every DecodeChannel call in order.
	DecodedPaths []string
	// Channels records the channel argument of every call.
	Channels []string
}

// NewDepthDecoder creates a mock decoder with no frames.
func NewDepthDecoder() *DepthDecoder {
	return &DepthDecoder{
		Frames:    make(map[string]*ports.DepthFrame),
		FailPaths: make(map[string]error),
	}
}

// AddFrame registers a frame for path.
func (m *DepthDecoder) AddFrame(path string, width, height int, samples []float32) {
	m.Frames[path] = &ports.DepthFrame{
		Path:    path,
		Width:   width,
		Height:  height,
		Samples: samples,
	}
}

func (m *DepthDecoder) DecodeChannel(path, channel string) (*ports.DepthFrame, error) {
	m.DecodedPaths = append(m.DecodedPaths, path)
	m.Channels = append(m.Channels, channel)

	if err, ok := m.FailPaths[path]; ok {
		return nil, err
	}
	frame, ok := m.Frames[path]
	if !ok {
		return nil, fmt.Errorf("no frame registered for %s", path)
	}
	return frame, nil
}

var _ ports.DepthDecoder = (*DepthDecoder)(nil)
