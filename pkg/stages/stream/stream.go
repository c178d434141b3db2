// Package stream implements the frame streaming stage: decode each
// frame in sequence order, pack it, and write it to the encoder sink.
package stream

import (
	"context"
	"fmt"

	"github.com/user/depthreel/pkg/pipeline"
	"github.com/user/depthreel/pkg/ports"
)

// Stage streams packed frames into a FrameSink in strict sequence
// order. The stage owns the sink lifecycle: Begin is called with the
// geometry of the first frame, End after the last frame, and Abort on
// every failure path so the encoder process is never left dangling.
type Stage struct {
	decoder ports.DepthDecoder
	sink    ports.FrameSink
	logger  ports.Logger
}

// New creates a new stream stage.
func New(decoder ports.DepthDecoder, sink ports.FrameSink, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		sink:    sink,
		logger:  logger.WithComponent("stream"),
	}
}

// Execute streams all frames to the sink. The first frame establishes
// the canonical geometry; every later frame must match it exactly or
// the run aborts with a GeometryError. Frame N is fully written before
// frame N+1 is decoded, so sink backpressure throttles the pipeline
// naturally.
func (s *Stage) Execute(ctx context.Context, input pipeline.StreamInput) (pipeline.StreamResult, error) {
	result := pipeline.StreamResult{}

	if len(input.Paths) == 0 {
		return result, fmt.Errorf("no frames to stream")
	}

	first, err := s.decoder.DecodeChannel(input.Paths[0], input.Channel)
	if err != nil {
		return result, &pipeline.DecodeError{Path: input.Paths[0], Err: err}
	}
	geometry := pipeline.Dimension{Width: first.Width, Height: first.Height}
	result.Geometry = geometry

	if err := s.sink.Begin(geometry.Width, geometry.Height, input.FPS); err != nil {
		return result, &pipeline.EncoderError{Op: "start", Err: err}
	}

	// Release the encoder process on every path that does not reach
	// a clean End.
	finished := false
	defer func() {
		if !finished {
			s.sink.Abort()
		}
	}()

	buf := make([]byte, 0, geometry.FrameBytes())

	buf = input.Encoder.Encode(first.Samples, buf)
	if err := s.sink.WriteFrame(buf); err != nil {
		return result, &pipeline.EncoderError{Op: "write", Err: err}
	}
	result.Frames = 1
	result.Bytes = int64(len(buf))
	s.logger.Debug("Wrote frame %d/%d (%d bytes)", 1, len(input.Paths), len(buf))

	for i, path := range input.Paths[1:] {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame, err := s.decoder.DecodeChannel(path, input.Channel)
		if err != nil {
			return result, &pipeline.DecodeError{Path: path, Err: err}
		}

		if frame.Width != geometry.Width || frame.Height != geometry.Height {
			return result, &pipeline.GeometryError{
				Path:  path,
				Index: i + 1,
				Got:   pipeline.Dimension{Width: frame.Width, Height: frame.Height},
				Want:  geometry,
			}
		}

		buf = input.Encoder.Encode(frame.Samples, buf)
		if err := s.sink.WriteFrame(buf); err != nil {
			return result, &pipeline.EncoderError{Op: "write", Err: err}
		}
		result.Frames++
		result.Bytes += int64(len(buf))
		s.logger.Debug("Wrote frame %d/%d (%d bytes)", i+2, len(input.Paths), len(buf))
	}

	// A failed finish does not retroactively invalidate frames already
	// written, but it still fails the run.
	if err := s.sink.End(); err != nil {
		finished = true
		return result, &pipeline.EncoderError{Op: "finish", Err: err}
	}
	finished = true

	s.logger.Debug("Encoder finished")
	return result, nil
}
