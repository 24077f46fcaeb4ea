package llm

import (
	"encoding/json"
	"strings"
)

const maxSuggestions = 5

// ParseSuggestions turns raw model output into a short list of
// follow-up items. A JSON list is decoded as-is; anything else is
// split on newlines with blank lines dropped. The result is capped
// at five entries either way.
func ParseSuggestions(text string) []string {
	var suggestions []string
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		suggestions = suggestions[:0]
		for _, line := range strings.Split(text, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				suggestions = append(suggestions, s)
			}
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
