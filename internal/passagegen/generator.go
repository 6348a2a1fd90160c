package passagegen

import "context"

// Generator produces the raw text of a reading passage.
type Generator interface {
	// Generate produces one passage for the given input context and
	// returns its raw text. Validation happens in the orchestrator, not
	// here.
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
