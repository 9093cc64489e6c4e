package llm

import "context"

// Generator is the minimal text-generation surface the pipeline needs from
// a model backend. Implementations must be safe for concurrent calls with
// distinct inputs.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}
