package ai

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"audioscribe/internal/config"
)

// Sampling parameters and token-budget knobs for the translation call. The
// budget heuristic is floor 512, scale 1.3 of the input length, cap 2048.
const (
	minOutputTokens = 512
	maxOutputTokens = 2048
	outputScale     = 1.3
	temperature     = 0.7
	topP            = 0.9
)

// Translator translates Chinese text to English through an OpenAI-compatible
// chat-completion endpoint (DashScope / Qwen).
type Translator struct {
	client *openai.Client
	model  string
}

// NewTranslator creates a translator bound to the configured endpoint
func NewTranslator(cfg *config.Config) *Translator {
	clientConfig := openai.DefaultConfig(cfg.DashScopeKey)
	if cfg.DashScopeBaseURL != "" {
		clientConfig.BaseURL = cfg.DashScopeBaseURL
	}
	return &Translator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.TranslateModel,
	}
}

// Result carries either the translated text or the failure that replaced it.
// The adapter never lets an error escape its boundary: callers that need the
// report string use Output, which folds a failure into
// "Translation failed: <cause>".
type Result struct {
	Text  string
	Usage openai.Usage
	Err   error
}

// Output returns the user-facing translation slot for this result.
func (r Result) Output() string {
	if r.Err != nil {
		return "Translation failed: " + r.Err.Error()
	}
	return r.Text
}

// TokenBudget estimates the completion length for a source text:
// clamp(max(512, round(len*1.3)), 2048), with len counted in runes.
func TokenBudget(text string) int {
	est := int(math.Round(float64(utf8.RuneCountInString(text)) * outputScale))
	if est < minOutputTokens {
		est = minOutputTokens
	}
	if est > maxOutputTokens {
		est = maxOutputTokens
	}
	return est
}

// Translate submits the fixed instruction plus source text and extracts the
// completion. Network, authentication and malformed-response failures all
// collapse into the Result's Err; the caller never needs to distinguish them.
func (t *Translator) Translate(ctx context.Context, text string) Result {
	budget := TokenBudget(text)
	log.Printf("[Translate] Translating %d chars (max_tokens: %d)", utf8.RuneCountInString(text), budget)

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(text),
			},
		},
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   budget,
	})
	if err != nil {
		log.Printf("[Translate] API error: %v", err)
		return Result{Err: err}
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("translation service returned no choices")
		log.Printf("[Translate] %v", err)
		return Result{Err: err}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)

	if resp.Usage.TotalTokens > 0 {
		log.Printf("[Translate] Usage - Prompt tokens: %d, Completion tokens: %d, Total tokens: %d",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	}

	return Result{Text: translated, Usage: resp.Usage}
}
