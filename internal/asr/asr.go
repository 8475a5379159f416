package asr

import (
	"context"
	"strings"
)

// Sentinel substituted when recognition yields no usable text.
const SentinelNoSpeech = "(No speech detected or transcription failed.)"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe transcribes a normalized (16 kHz mono WAV) audio file
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the name of the provider (e.g., "paraformer", "whisper")
	Name() string
}

// Result represents the result of a speech-to-text transcription
type Result struct {
	Text        string // the transcribed text, post-processed (never empty)
	Provider    string // the provider used
	RawResponse string // raw response from the provider (for debugging/logging)
}

// cleanTranscript trims surrounding whitespace and substitutes the sentinel
// when nothing remains.
func cleanTranscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return SentinelNoSpeech
	}
	return text
}
