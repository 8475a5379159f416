package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Generator assembles the markdown report from a finished run. Reports are
// named transcript_<unix-seconds>.md; two runs within the same second collide,
// which is a documented limitation rather than something silently corrected.
type Generator struct {
	Dir              string
	ASRModel         string
	TranslationModel string

	now func() time.Time
}

// NewGenerator creates a generator writing into dir with the default model
// identifiers for the metadata block.
func NewGenerator(dir string) *Generator {
	return &Generator{
		Dir:              dir,
		ASRModel:         "`speech_paraformer-large` (ModelScope)",
		TranslationModel: "`qwen-plus` (DashScope API via OpenAI Wrapper)",
		now:              time.Now,
	}
}

// Generate writes the report and returns its path. A nil translation means
// translation was not requested: the translation section and its metadata
// line are omitted entirely. A non-nil empty string still renders the section.
func (g *Generator) Generate(audioFilename, transcript string, translation *string) (string, error) {
	now := g.now()

	var b strings.Builder
	b.WriteString("# Audio Transcription Report\n\n")
	fmt.Fprintf(&b, "**Audio File**: `%s`\n", audioFilename)
	fmt.Fprintf(&b, "**Generated On**: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("**Model Used**:\n")
	fmt.Fprintf(&b, "- ASR: %s\n", g.ASRModel)
	if translation != nil {
		fmt.Fprintf(&b, "- Translation: %s\n", g.TranslationModel)
	}

	b.WriteString("\n---\n\n## 🇨🇳 Chinese Transcript\n")
	b.WriteString(transcript)
	b.WriteString("\n\n")

	if translation != nil {
		b.WriteString("---\n\n## 🇬🇧 English Translation\n")
		b.WriteString(*translation)
		b.WriteString("\n\n")
	}

	b.WriteString("---\n*Generated by Qwen + ModelScope Pipeline*\n")

	path := filepath.Join(g.Dir, fmt.Sprintf("transcript_%d.md", now.Unix()))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	log.Printf("[Report] Markdown file saved: %s", path)
	return path, nil
}
