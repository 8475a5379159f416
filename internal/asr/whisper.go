package asr

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"
)

// WhisperProvider implements STT via the OpenAI audio transcription API. It is
// the fallback for deployments without a local Paraformer endpoint.
type WhisperProvider struct {
	client *openai.Client
	model  string
}

// NewWhisperProvider creates a new Whisper STT provider
func NewWhisperProvider(apiKey string) *WhisperProvider {
	return &WhisperProvider{
		client: openai.NewClient(apiKey),
		model:  openai.Whisper1,
	}
}

// Name returns the provider name
func (w *WhisperProvider) Name() string {
	return "whisper"
}

// Transcribe sends the audio file to the Whisper API and returns the transcript
func (w *WhisperProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := time.Now()

	log.Printf("[ASR] Transcribing %s with %s", audioPath, w.model)

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Language: "zh",
	})
	if err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w", err)
	}

	text := cleanTranscript(resp.Text)

	log.Printf("[ASR] Transcription successful: length=%d, duration=%v", len(text), time.Since(startTime))

	return &Result{
		Text:        text,
		Provider:    w.Name(),
		RawResponse: resp.Text,
	}, nil
}
