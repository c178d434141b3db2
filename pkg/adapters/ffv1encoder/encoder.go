// Package ffv1encoder streams raw RGBA frames into an external ffmpeg
// process that encodes them losslessly with FFV1 into a Matroska file.
package ffv1encoder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/user/depthreel/pkg/codec"
	"github.com/user/depthreel/pkg/ports"
)

var (
	// ErrNotStarted is returned when the sink is used before Begin.
	ErrNotStarted = errors.New("ffv1encoder: encoder not started")

	// ErrFFmpegNotFound is returned when no ffmpeg executable could be located.
	ErrFFmpegNotFound = errors.New("ffv1encoder: ffmpeg not found")
)

// Encoder implements ports.FrameSink over a piped ffmpeg process.
// The process and its stdin pipe are acquired together in Begin and
// released on every exit path: End closes and waits, Abort kills.
type Encoder struct {
	outputPath string
	ffmpegPath string // Optional explicit override
	logger     ports.Logger

	mu         sync.Mutex
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	frameSize  int
	frameCount int
	closed     bool
}

// New creates an encoder writing to outputPath. An existing file at
// outputPath is overwritten.
func New(outputPath string, logger ports.Logger) *Encoder {
	return &Encoder{
		outputPath: outputPath,
		logger:     logger.WithComponent("ffv1"),
	}
}

// SetFFmpegPath overrides ffmpeg discovery with an explicit path.
func (e *Encoder) SetFFmpegPath(path string) {
	e.ffmpegPath = path
}

// FindFFmpeg searches for ffmpeg.
// Priority: 1) FFMPEG_PATH env, 2) PATH, 3) common locations.
func FindFFmpeg() (string, error) {
	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// IsFFmpegAvailable checks if ffmpeg is available on the system.
func IsFFmpegAvailable() bool {
	_, err := FindFFmpeg()
	return err == nil
}

// buildArgs assembles the ffmpeg command line: raw RGBA frames on
// stdin, FFV1 level 3 in a Matroska container on the output side.
func buildArgs(width, height int, fps float64, outputPath string) []string {
	return []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
		"-c:v", "ffv1",
		"-level", "3",
		outputPath,
	}
}

// Begin starts the ffmpeg process and declares the stream geometry.
func (e *Encoder) Begin(width, height int, fps float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ffmpegPath := e.ffmpegPath
	if ffmpegPath == "" {
		found, err := FindFFmpeg()
		if err != nil {
			return err
		}
		ffmpegPath = found
	}

	e.frameSize = width * height * codec.BytesPerSample
	e.frameCount = 0
	e.closed = false
	e.stderr.Reset()

	args := buildArgs(width, height, fps, e.outputPath)
	e.logger.Debug("Running encoder command: %s", ffmpegPath+" "+strings.Join(args, " "))

	e.cmd = exec.Command(ffmpegPath, args...)
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("get stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		e.stdin.Close()
		e.stdin = nil
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	return nil
}

// WriteFrame writes one packed frame to the encoder's stdin. The call
// blocks while the encoder's input buffer is full, which is exactly the
// backpressure the pipeline wants.
func (e *Encoder) WriteFrame(buf []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return ErrNotStarted
	}
	if len(buf) != e.frameSize {
		return fmt.Errorf("frame is %d bytes, expected %d", len(buf), e.frameSize)
	}

	if _, err := e.stdin.Write(buf); err != nil {
		return fmt.Errorf("write frame %d: %w\nstderr: %s", e.frameCount, err, e.stderr.String())
	}

	e.frameCount++
	return nil
}

// End closes the input stream and waits for ffmpeg to finish. A
// non-zero exit is an error carrying ffmpeg's stderr.
func (e *Encoder) End() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return ErrNotStarted
	}

	e.stdin.Close()
	e.stdin = nil
	e.closed = true

	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg exited abnormally: %w\nstderr: %s", err, e.stderr.String())
	}

	e.logger.Debug("Encoder finished")
	return nil
}

// Abort tears the encoder down without waiting for a clean finish.
// Safe to call whether or not Begin or End succeeded.
func (e *Encoder) Abort() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin != nil && !e.closed {
		e.stdin.Close()
		e.stdin = nil
	}

	if e.cmd != nil && e.cmd.Process != nil && !e.closed {
		e.cmd.Process.Kill()
		e.cmd.Wait()
	}

	e.closed = true
}

// FrameCount returns the number of frames written so far.
func (e *Encoder) FrameCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameCount
}

// Ensure Encoder implements ports.FrameSink
var _ ports.FrameSink = (*Encoder)(nil)
