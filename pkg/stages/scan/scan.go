// Package scan implements the global range scan stage.
//
// In normalized mode every frame is decoded once up front to find the
// minimum and maximum sample across the whole sequence. The scan must
// complete in full before any frame is packed: the range is a
// precondition for every subsequent encode.
package scan

import (
	"context"

	"github.com/user/depthreel/pkg/codec"
	"github.com/user/depthreel/pkg/pipeline"
	"github.com/user/depthreel/pkg/ports"
)

// Stage computes the global sample range over a frame sequence.
type Stage struct {
	decoder ports.DepthDecoder
	logger  ports.Logger
}

// New creates a new scan stage.
func New(decoder ports.DepthDecoder, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		logger:  logger.WithComponent("scan"),
	}
}

// Execute decodes every frame's channel and tracks the running
// min/max. Fails fast with a DecodeError on the first undecodable
// file, and with a RangeError if no valid sample was observed.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	result := pipeline.ScanResult{Range: codec.EmptyRange()}

	for _, path := range input.Paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame, err := s.decoder.DecodeChannel(path, input.Channel)
		if err != nil {
			return result, &pipeline.DecodeError{Path: path, Err: err}
		}

		for _, v := range frame.Samples {
			result.Range.Observe(v)
		}
		result.Samples += int64(len(frame.Samples))

		s.logger.Debug("Scanned %s: %d samples", path, len(frame.Samples))
	}

	if !result.Range.Computed() {
		return result, &pipeline.RangeError{Channel: input.Channel, Frames: len(input.Paths)}
	}

	s.logger.Debug("Range scan completed over %d samples", result.Samples)
	return result, nil
}
