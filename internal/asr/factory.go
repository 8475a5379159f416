package asr

import (
	"fmt"
	"log"
	"strings"

	"audioscribe/internal/config"
)

// CreateProvider creates an STT provider based on configuration
func CreateProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(cfg.ASRProvider)

	// Default to Paraformer if not specified
	if providerName == "" {
		providerName = "paraformer"
		log.Printf("[ASR Factory] ASR_PROVIDER not set, defaulting to 'paraformer'")
	}

	switch providerName {
	case "paraformer":
		if cfg.ASRAPIURL == "" {
			return nil, fmt.Errorf("ASR_API_URL is required for the paraformer provider")
		}
		log.Printf("[ASR Factory] Creating Paraformer STT provider (%s)", cfg.ASRAPIURL)
		return NewParaformerProvider(cfg.ASRAPIURL, cfg.ASRModel, PickDevice(cfg.ASRDevice)), nil
	case "whisper":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set (required for the whisper provider)")
		}
		log.Printf("[ASR Factory] Creating Whisper STT provider")
		return NewWhisperProvider(cfg.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: paraformer, whisper", providerName)
	}
}
