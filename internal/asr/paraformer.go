package asr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ParaformerProvider implements STT against a ModelScope Paraformer inference
// endpoint. The request carries the normalized waveform plus a model
// identifier and a device hint; the response shape varies (see shape.go).
type ParaformerProvider struct {
	url    string
	model  string
	device string
	client *http.Client
}

// NewParaformerProvider creates a new Paraformer STT provider
func NewParaformerProvider(url, model, device string) *ParaformerProvider {
	return &ParaformerProvider{
		url:    url,
		model:  model,
		device: device,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

// Name returns the provider name
func (p *ParaformerProvider) Name() string {
	return "paraformer"
}

// Transcribe sends the audio file to the Paraformer endpoint and returns the
// transcript. Failures are not retried; they propagate to the orchestrator.
func (p *ParaformerProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := time.Now()

	audioBytes, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	log.Printf("[ASR] Processing audio file: %s, size: %d bytes, model: %s, device: %s",
		audioPath, len(audioBytes), p.model, p.device)

	// A 16 kHz mono WAV this small is empty or corrupted
	if len(audioBytes) < 1000 {
		return nil, fmt.Errorf("audio file too small (%d bytes), may be empty or corrupted", len(audioBytes))
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if _, err := part.Write(audioBytes); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	mw.WriteField("model", p.model)
	mw.WriteField("device", p.device)
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to ASR service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ASR] API error: Status %d, Body: %s", resp.StatusCode, truncate(string(respBody), 500))
		return nil, fmt.Errorf("ASR service returned status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	text := cleanTranscript(extractText(respBody))

	log.Printf("[ASR] Transcription successful: length=%d, duration=%v", len(text), time.Since(startTime))

	return &Result{
		Text:        text,
		Provider:    p.Name(),
		RawResponse: string(respBody),
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
