package llm

import "fmt"

// Prompt builders for the three assistant call sites. Category and
// user text are interpolated verbatim.

func ChatPrompt(category, message string) string {
	return fmt.Sprintf("You are a helpful AI health assistant. Category: %s. User says: %s.", category, message)
}

func SymptomPrompt(symptoms string) string {
	return fmt.Sprintf("You are a medical assistant. A user reports the following symptoms: %s. "+
		"Suggest possible conditions (non-diagnostic), precautions, and next steps.", symptoms)
}

func SuggestionsPrompt(conversation string) string {
	return fmt.Sprintf("You are an AI assistant. Based on this user conversation: %q, "+
		"suggest 3-5 relevant follow-up questions or tips in short phrases. Respond only with a JSON list.", conversation)
}
