package asr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_SingleObject(t *testing.T) {
	body := []byte(`{"text": "今天天气很好"}`)
	assert.Equal(t, "今天天气很好", extractText(body))
}

func TestExtractText_SegmentList(t *testing.T) {
	body := []byte(`[{"text": "今天"}, {"text": "天气"}, {"text": "很好"}]`)
	// segments concatenate in order with no separator
	assert.Equal(t, "今天天气很好", extractText(body))
}

func TestExtractText_EmptySegmentList(t *testing.T) {
	assert.Equal(t, "", extractText([]byte(`[]`)))
}

func TestExtractText_QuotedString(t *testing.T) {
	assert.Equal(t, "你好", extractText([]byte(`"你好"`)))
}

func TestExtractText_FallbackToRaw(t *testing.T) {
	// unrecognized shapes are coerced to their string representation
	assert.Equal(t, "plain text response", extractText([]byte("plain text response")))
	assert.Equal(t, "42", extractText([]byte("42")))
}

func TestExtractText_ObjectWithoutTextField(t *testing.T) {
	assert.Equal(t, "", extractText([]byte(`{"status": "ok"}`)))
}

func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText([]byte("  \n ")))
}

func TestCleanTranscript_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "你好", cleanTranscript("  你好 \n"))
}

func TestCleanTranscript_SentinelOnEmpty(t *testing.T) {
	assert.Equal(t, SentinelNoSpeech, cleanTranscript(""))
	assert.Equal(t, SentinelNoSpeech, cleanTranscript("   \t\n  "))
}
