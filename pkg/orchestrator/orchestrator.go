// Package orchestrator coordinates the scan and stream stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/depthreel/pkg/codec"
	"github.com/user/depthreel/pkg/pipeline"
	"github.com/user/depthreel/pkg/ports"
)

// Config contains all configuration for a pipeline run.
type Config struct {
	// Input
	InputDir string
	FileExt  string // Frame file extension, including the dot
	Channel  string

	// Output
	OutputPath string
	FPS        float64

	// Normalize enables the two-pass global range normalization.
	Normalize bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FileExt:    ".exr",
		Channel:    "Z",
		OutputPath: "output.mkv",
		FPS:        30.0,
	}
}

// RunResult summarizes a completed run.
type RunResult struct {
	Frames     int
	Geometry   pipeline.Dimension
	Bytes      int64
	Range      codec.Range // Zero value unless Normalize was set
	Normalized bool
	OutputPath string
}

// Orchestrator wires file discovery, the optional range scan, and the
// frame stream together.
type Orchestrator struct {
	scanStage   pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	streamStage pipeline.Stage[pipeline.StreamInput, pipeline.StreamResult]
	fs          ports.FileSystem
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	streamStage pipeline.Stage[pipeline.StreamInput, pipeline.StreamResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:   scanStage,
		streamStage: streamStage,
		fs:          fs,
		logger:      logger,
	}
}

// Run executes the complete pipeline: resolve the ordered frame list,
// optionally scan for the global range, then stream every frame to the
// encoder. All errors are fatal; there is no partial-success mode.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{OutputPath: config.OutputPath, Normalized: config.Normalize}

	paths, err := o.fs.ListFiles(config.InputDir, config.FileExt)
	if err != nil {
		return result, fmt.Errorf("list input files: %w", err)
	}
	if len(paths) == 0 {
		return result, fmt.Errorf("no %s files found in %s", config.FileExt, config.InputDir)
	}
	o.logger.Info(l10n.F("Found %d frame files in %s", len(paths), config.InputDir))

	encoder := codec.NewRawEncoder()
	if config.Normalize {
		// The scan must finish before any frame is packed: the range
		// is read-only shared state for the rest of the run.
		o.logger.Info(l10n.F("Scanning %d frames for global range", len(paths)))
		scanned, err := o.scanStage.Execute(ctx, pipeline.ScanInput{
			Paths:   paths,
			Channel: config.Channel,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to scan range: %s", err))
			return result, fmt.Errorf("scan stage: %w", err)
		}
		o.logger.Info(l10n.F("Global range: min=%g max=%g", scanned.Range.Min, scanned.Range.Max))
		result.Range = scanned.Range
		encoder = codec.NewNormalizedEncoder(scanned.Range)
	}

	o.logger.Info(l10n.F("Streaming %d frames at %.1f fps", len(paths), config.FPS))
	streamed, err := o.streamStage.Execute(ctx, pipeline.StreamInput{
		Paths:   paths,
		Channel: config.Channel,
		FPS:     config.FPS,
		Encoder: encoder,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to stream frames: %s", err))
		return result, fmt.Errorf("stream stage: %w", err)
	}

	result.Frames = streamed.Frames
	result.Geometry = streamed.Geometry
	result.Bytes = streamed.Bytes

	o.logger.Info(l10n.F("Encoded %d frames (%d bytes) to %s",
		result.Frames, result.Bytes, config.OutputPath))
	return result, nil
}
