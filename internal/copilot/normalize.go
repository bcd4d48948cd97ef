package copilot

import (
	"encoding/json"
	"strings"
)

// Normalize recovers structured JSON from the model's free-text reply.
// A leading ```json or ``` fence and a trailing ``` fence are stripped
// (exact prefix/suffix only, no nested fences), then the remainder must
// parse as JSON. Parse failure is not an error: the caller gets a
// {"raw": <original text>} envelope and renders a fallback state.
func Normalize(text string) any {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}
	cleaned = strings.TrimSpace(cleaned)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return map[string]any{"raw": text}
	}
	return parsed
}
