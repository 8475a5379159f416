package asr

import (
	"bytes"
	"encoding/json"
	"strings"
)

// The recognition service answers in one of several shapes: a single object
// with a text field, an ordered list of segment objects each with a text
// field, or occasionally a bare string. extractText is total over all of
// them; an unrecognized payload is coerced to its string representation
// rather than failing the run.

type segment struct {
	Text string `json:"text"`
}

func extractText(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		var obj segment
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			return obj.Text
		}
	case '[':
		var segs []segment
		if err := json.Unmarshal(trimmed, &segs); err == nil {
			// segment texts concatenate in order, no separator
			var b strings.Builder
			for _, s := range segs {
				b.WriteString(s.Text)
			}
			return b.String()
		}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}

	return string(trimmed)
}
