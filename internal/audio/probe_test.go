package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal 16-bit mono RIFF/WAVE file with the given
// sample rate and payload seconds.
func buildWAV(sampleRate int, seconds int) []byte {
	byteRate := sampleRate * 2
	dataSize := byteRate * seconds

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+dataSize))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	binary.Write(&b, binary.LittleEndian, uint16(2))  // block align
	binary.Write(&b, binary.LittleEndian, uint16(16)) // bits per sample

	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(dataSize))
	b.Write(make([]byte, dataSize))
	return b.Bytes()
}

func TestProbeDuration_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, buildWAV(16000, 3), 0644))

	dur, err := ProbeDuration(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, dur)
}

func TestProbeDuration_NotAWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not riff data"), 0644))

	_, err := ProbeDuration(path)
	assert.Error(t, err)
}

func TestProbeDuration_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.ogg")
	require.NoError(t, os.WriteFile(path, []byte("OggS"), 0644))

	_, err := ProbeDuration(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestProbeDuration_MissingFile(t *testing.T) {
	_, err := ProbeDuration(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}
