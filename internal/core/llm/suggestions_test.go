package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestions_JSONList(t *testing.T) {
	got := ParseSuggestions(`["Drink more water", "Sleep 8 hours", "See a doctor"]`)
	assert.Equal(t, []string{"Drink more water", "Sleep 8 hours", "See a doctor"}, got)
}

func TestParseSuggestions_JSONListTruncated(t *testing.T) {
	got := ParseSuggestions(`["a", "b", "c", "d", "e", "f", "g"]`)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestParseSuggestions_PlainLines(t *testing.T) {
	text := "First tip\n\n  Second tip  \nThird tip\n"
	got := ParseSuggestions(text)
	assert.Equal(t, []string{"First tip", "Second tip", "Third tip"}, got)
}

func TestParseSuggestions_PlainLinesTruncated(t *testing.T) {
	text := "1\n2\n3\n4\n5\n6\n7"
	got := ParseSuggestions(text)
	assert.Len(t, got, 5)
	assert.Equal(t, "5", got[4])
}

func TestParseSuggestions_Empty(t *testing.T) {
	assert.Empty(t, ParseSuggestions(""))
	assert.Empty(t, ParseSuggestions("\n\n\n"))
}
