package ai

// BuildPrompt wraps the source text in the fixed translation instruction. The
// wording is part of the output contract and must not drift.
func BuildPrompt(text string) string {
	return "Translate the following Chinese text into fluent, natural English. Be complete and do not summarize:\n\n" + text
}
