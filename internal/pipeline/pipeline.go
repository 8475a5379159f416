package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"

	"audioscribe/internal/ai"
	"audioscribe/internal/asr"
	"audioscribe/internal/model"
)

// PromptUploadFile is returned in the transcript slot when no file was
// supplied; the pipeline itself is never entered.
const PromptUploadFile = "Please upload an audio file."

// Normalizer converts an uploaded file to 16 kHz mono WAV and returns the
// path of the normalized artifact.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}

// Translator turns Chinese text into English, folding every failure into its
// Result rather than returning an error.
type Translator interface {
	Translate(ctx context.Context, text string) ai.Result
}

// Reporter writes the markdown report; nil translation means not requested.
type Reporter interface {
	Generate(audioFilename, transcript string, translation *string) (string, error)
}

// Pipeline runs one submission end to end: normalize, transcribe, optionally
// translate, report, clean up. Synchronous and blocking; each call is an
// independent run with no shared state.
type Pipeline struct {
	normalizer Normalizer
	recognizer asr.Provider
	translator Translator
	reporter   Reporter
}

func New(normalizer Normalizer, recognizer asr.Provider, translator Translator, reporter Reporter) *Pipeline {
	return &Pipeline{
		normalizer: normalizer,
		recognizer: recognizer,
		translator: translator,
		reporter:   reporter,
	}
}

// Process runs the full pipeline for one job. Fatal failures (conversion,
// recognition, report write) come back as a single descriptive string in the
// transcript slot with no report; a translation failure is non-fatal and
// flows into the translation slot as if it were a translation. The normalized
// audio artifact is removed on every exit path.
func (p *Pipeline) Process(ctx context.Context, job model.Job) model.Outcome {
	if job.AudioPath == "" {
		return model.Outcome{Transcript: PromptUploadFile}
	}

	log.Printf("[Pipeline] Starting audio processing: %s (translate=%v)", job.DisplayName, job.Translate)

	wavPath, err := p.normalizer.Normalize(ctx, job.AudioPath)
	if wavPath != "" {
		defer func() {
			if rmErr := os.Remove(wavPath); rmErr == nil {
				log.Printf("[Pipeline] Cleaned up temporary file %s", wavPath)
			}
		}()
	}
	if err != nil {
		return failure(err)
	}

	result, err := p.recognizer.Transcribe(ctx, wavPath)
	if err != nil {
		return failure(err)
	}
	transcript := result.Text

	translation := ""
	var reportTranslation *string
	if job.Translate {
		r := p.translator.Translate(ctx, transcript)
		translation = r.Output()
		reportTranslation = &translation
	} else {
		log.Printf("[Pipeline] Translation skipped (user choice)")
	}

	reportPath, err := p.reporter.Generate(job.DisplayName, transcript, reportTranslation)
	if err != nil {
		return failure(err)
	}

	log.Printf("[Pipeline] Processing completed successfully: %s", reportPath)

	return model.Outcome{
		Transcript:  transcript,
		Translation: translation,
		ReportPath:  reportPath,
	}
}

func failure(err error) model.Outcome {
	msg := fmt.Sprintf("Processing failed: %v", err)
	log.Printf("[Pipeline] %s", msg)
	return model.Outcome{Transcript: msg, Failed: true}
}
