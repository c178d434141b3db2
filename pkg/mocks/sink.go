package mocks

import (
	"github.com/user/depthreel/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink that records
// the full lifecycle and every written frame.
type FrameSink struct {
	BeginFunc func(width, height int, fps float64) error
	WriteFunc func(buf []byte) error
	EndFunc   func() error

	BeginCalled bool
	Width       int
	Height      int
	FPS         float64

	// Written holds a copy of every frame buffer, in write order.
	// Copies matter: the pipeline reuses its buffer between frames.
	Written [][]byte

	EndCalled   bool
	AbortCalled bool
}

func (m *FrameSink) Begin(width, height int, fps float64) error {
	m.BeginCalled = true
	m.Width = width
	m.Height = height
	m.FPS = fps
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, fps)
	}
	return nil
}

func (m *FrameSink) WriteFrame(buf []byte) error {
	if m.WriteFunc != nil {
		if err := m.WriteFunc(buf); err != nil {
			return err
		}
	}
	frame := make([]byte, len(buf))
	copy(frame, buf)
	m.Written = append(m.Written, frame)
	return nil
}

func (m *FrameSink) End() error {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

func (m *FrameSink) Abort() {
	m.AbortCalled = true
}

var _ ports.FrameSink = (*FrameSink)(nil)
