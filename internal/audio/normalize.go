package audio

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ConversionError reports a failed decode/resample, carrying the underlying
// cause so it can be surfaced to the user.
type ConversionError struct {
	Input string
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert audio %s: %v", e.Input, e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// Normalizer converts arbitrary input audio to the canonical waveform the
// recognition service expects: WAV, mono, 16 kHz. Decoding and resampling are
// delegated to ffmpeg.
type Normalizer struct {
	ffmpeg  string
	workDir string
}

// NewNormalizer locates ffmpeg on PATH and prepares the working directory.
func NewNormalizer(workDir string) (*Normalizer, error) {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	return &Normalizer{ffmpeg: ffmpeg, workDir: workDir}, nil
}

// Normalize decodes the input file and re-exports it as 16 kHz mono WAV,
// returning the path of the normalized file. The input is re-encoded even when
// it already carries a .wav extension; sample rate and channel count are
// enforced, never assumed from the filename.
//
// Each invocation writes to its own uniquely named file so concurrent requests
// cannot clobber one another. The caller owns the returned file and must
// delete it when the run is over.
func (n *Normalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	outPath := filepath.Join(n.workDir, "norm_"+uuid.NewString()+".wav")

	cmd := exec.CommandContext(ctx, n.ffmpeg,
		"-y",
		"-i", inputPath,
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// ffmpeg may leave a partial output behind; the cleanup invariant
		// covers the returned path only, so remove it here.
		os.Remove(outPath)
		cause := fmt.Errorf("%v: %s", err, lastStderrLine(stderr.String()))
		return "", &ConversionError{Input: filepath.Base(inputPath), Cause: cause}
	}

	log.Printf("[Audio] Converted %s to %s (16kHz, mono)", inputPath, outPath)
	return outPath, nil
}

// lastStderrLine picks the final non-empty line of ffmpeg's stderr, which is
// where it states the actual error.
func lastStderrLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return "unknown ffmpeg error"
}
