// Package main provides the CLI entry point for depthreel.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/depthreel/pkg/adapters/exrdecoder"
	"github.com/user/depthreel/pkg/adapters/ffv1encoder"
	"github.com/user/depthreel/pkg/adapters/logger"
	"github.com/user/depthreel/pkg/adapters/osfilesystem"
	"github.com/user/depthreel/pkg/config"
	"github.com/user/depthreel/pkg/orchestrator"
	"github.com/user/depthreel/pkg/ports"
	"github.com/user/depthreel/pkg/stages/scan"
	"github.com/user/depthreel/pkg/stages/stream"
)

// CLI defines the command-line interface.
type CLI struct {
	// Positional arguments
	InputDir string `arg:"" help:"Directory containing the EXR frame sequence."`
	Output   string `arg:"" optional:"" help:"Output video path (default: output.mkv)."`
	Channel  string `arg:"" optional:"" help:"Channel to extract (default: Z)."`

	// Encoding options
	Normalize  bool    `short:"n" help:"Normalize all frames against the global sample range (two-pass)."`
	FPS        float64 `help:"Nominal frame rate declared to the encoder (default: 30)."`
	FFmpegPath string  `help:"Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)."`

	// Config file
	Config string `short:"c" help:"YAML config file path."`

	// Logging options
	LogLevel string           `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool             `short:"Q" help:"Suppress all log output."`
	Version  kong.VersionFlag `help:"Show version information."`
}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("depthreel"),
		kong.Description(l10n.T("Encode float32 EXR frame sequences into a lossless FFV1 video.")),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := cli.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the encode pipeline.
func (cmd *CLI) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()

	isDir, err := fs.IsDir(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("stat input directory: %w", err)
	}
	if !isDir {
		return errors.New(l10n.F("%s is not a directory", cfg.InputDir))
	}

	decoder := exrdecoder.New()
	sink := ffv1encoder.New(cfg.OutputPath, log)
	if cmd.FFmpegPath != "" {
		sink.SetFFmpegPath(cmd.FFmpegPath)
	}

	// Create stages
	scanStage := scan.New(decoder, log)
	streamStage := stream.New(decoder, sink, log)

	// Create orchestrator
	orch := orchestrator.New(scanStage, streamStage, fs, log)

	result, err := orch.Run(ctx, cfg)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", result.OutputPath))
	return nil
}

// buildConfig merges defaults, the optional config file, and CLI
// arguments, in increasing precedence.
func (cmd *CLI) buildConfig() (orchestrator.Config, error) {
	fileCfg := config.Config{}
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return orchestrator.Config{}, err
		}
		fileCfg = loaded
	}

	cfg := fileCfg.ToOrchestratorConfig(cmd.InputDir)

	if cmd.Output != "" {
		cfg.OutputPath = cmd.Output
	}
	if cmd.Channel != "" {
		cfg.Channel = cmd.Channel
	}
	if cmd.FPS > 0 {
		cfg.FPS = cmd.FPS
	}
	if cmd.Normalize {
		cfg.Normalize = true
	}
	if cmd.FFmpegPath == "" && fileCfg.FFmpegPath != "" {
		cmd.FFmpegPath = fileCfg.FFmpegPath
	}

	return cfg, nil
}
