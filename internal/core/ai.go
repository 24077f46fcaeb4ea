package core

import "context"

type LLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
