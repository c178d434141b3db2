package scan

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/user/depthreel/pkg/adapters/logger"
	"github.com/user/depthreel/pkg/mocks"
	"github.com/user/depthreel/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	decoder := mocks.NewDepthDecoder()
	decoder.AddFrame("a.exr", 2, 2, []float32{0, 1, 2, 3})
	decoder.AddFrame("b.exr", 2, 2, []float32{1, 2, 3, 4})

	stage := New(decoder, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ScanInput{
		Paths:   []string{"a.exr", "b.exr"},
		Channel: "Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Range.Min != 0 || result.Range.Max != 4 {
		t.Errorf("range = (%g, %g), want (0, 4)", result.Range.Min, result.Range.Max)
	}
	if result.Samples != 8 {
		t.Errorf("samples = %d, want 8", result.Samples)
	}
	if len(decoder.DecodedPaths) != 2 {
		t.Errorf("expected 2 decodes, got %d", len(decoder.DecodedPaths))
	}
	if decoder.Channels[0] != "Z" {
		t.Errorf("channel = %q, want Z", decoder.Channels[0])
	}
}

func TestStage_Execute_DecodeFailureHaltsScan(t *testing.T) {
	decoder := mocks.NewDepthDecoder()
	decoder.AddFrame("a.exr", 2, 2, []float32{0, 1, 2, 3})
	decoder.FailPaths["b.exr"] = errors.New("corrupt header")
	decoder.AddFrame("c.exr", 2, 2, []float32{1, 2, 3, 4})

	stage := New(decoder, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ScanInput{
		Paths:   []string{"a.exr", "b.exr", "c.exr"},
		Channel: "Z",
	})

	var decodeErr *pipeline.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Path != "b.exr" {
		t.Errorf("offending path = %q, want b.exr", decodeErr.Path)
	}
	// Fail-fast: c.exr must never be decoded.
	if len(decoder.DecodedPaths) != 2 {
		t.Errorf("expected scan to halt after 2 decodes, got %d", len(decoder.DecodedPaths))
	}
}

func TestStage_Execute_EmptySequence(t *testing.T) {
	stage := New(mocks.NewDepthDecoder(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ScanInput{
		Paths:   nil,
		Channel: "Z",
	})

	var rangeErr *pipeline.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
}

func TestStage_Execute_AllInvalidSamples(t *testing.T) {
	nan := float32(math.NaN())
	decoder := mocks.NewDepthDecoder()
	decoder.AddFrame("a.exr", 2, 1, []float32{nan, nan})

	stage := New(decoder, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ScanInput{
		Paths:   []string{"a.exr"},
		Channel: "Z",
	})

	var rangeErr *pipeline.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError for all-NaN data, got %v", err)
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	decoder := mocks.NewDepthDecoder()
	decoder.AddFrame("a.exr", 1, 1, []float32{1})

	stage := New(decoder, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.ScanInput{
		Paths:   []string{"a.exr"},
		Channel: "Z",
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
