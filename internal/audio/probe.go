package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// ProbeDuration returns the playing time of an uploaded audio file. It is
// best-effort bookkeeping for the recording store, not part of the pipeline
// contract: unsupported containers return an error and callers carry on.
func ProbeDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(f)
	case ".wav":
		return wavDuration(f)
	default:
		return 0, fmt.Errorf("duration probe not supported for %s", filepath.Ext(path))
	}
}

func mp3Duration(r io.Reader) (time.Duration, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, fmt.Errorf("failed to decode mp3: %w", err)
	}
	// Length reports decoded PCM bytes: 16-bit samples, two channels.
	samples := dec.Length() / 4
	if dec.SampleRate() <= 0 {
		return 0, fmt.Errorf("mp3 reports invalid sample rate")
	}
	return time.Duration(samples) * time.Second / time.Duration(dec.SampleRate()), nil
}

// wavDuration walks the RIFF chunks for "fmt " (byte rate) and "data" (payload
// size); duration is data size over byte rate.
func wavDuration(r io.Reader) (time.Duration, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return 0, fmt.Errorf("failed to read RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a RIFF/WAVE file")
	}

	var byteRate uint32
	var dataSize uint32
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			break
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return 0, fmt.Errorf("truncated fmt chunk: %w", err)
			}
			if len(body) >= 12 {
				byteRate = binary.LittleEndian.Uint32(body[8:12])
			}
		case "data":
			dataSize = size
			// data payload itself is not needed
			io.CopyN(io.Discard, r, int64(size))
		default:
			io.CopyN(io.Discard, r, int64(size))
		}

		if byteRate > 0 && dataSize > 0 {
			break
		}
	}

	if byteRate == 0 || dataSize == 0 {
		return 0, fmt.Errorf("missing fmt or data chunk")
	}
	return time.Duration(dataSize) * time.Second / time.Duration(byteRate), nil
}
