package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("invalid data found when processing input")
	err := &ConversionError{Input: "clip.mp3", Cause: cause}

	assert.Contains(t, err.Error(), "failed to convert audio clip.mp3")
	assert.Contains(t, err.Error(), "invalid data found")
	assert.ErrorIs(t, err, cause)
}

func TestNormalize_ConverterFailureYieldsConversionError(t *testing.T) {
	// "false" stands in for a converter that exits non-zero
	n := &Normalizer{ffmpeg: "false", workDir: t.TempDir()}

	path, err := n.Normalize(context.Background(), "whatever.mp3")
	require.Error(t, err)
	assert.Empty(t, path)

	var convErr *ConversionError
	assert.ErrorAs(t, err, &convErr)
}

func TestNormalize_NoPartialOutputLeftBehind(t *testing.T) {
	workDir := t.TempDir()
	n := &Normalizer{ffmpeg: "false", workDir: workDir}

	_, err := n.Normalize(context.Background(), "whatever.mp3")
	require.Error(t, err)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewNormalizer_CreatesWorkDir(t *testing.T) {
	if _, err := os.Stat("/usr/bin/ffmpeg"); err != nil {
		if _, err := os.Stat("/usr/local/bin/ffmpeg"); err != nil {
			t.Skip("ffmpeg not installed")
		}
	}

	workDir := filepath.Join(t.TempDir(), "work")
	_, err := NewNormalizer(workDir)
	require.NoError(t, err)
	assert.DirExists(t, workDir)
}
