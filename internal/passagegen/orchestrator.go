package passagegen

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/keremugurlu/readingen/internal/passage"
)

// Orchestrator drives the generate-validate-retry loop around a Generator.
type Orchestrator struct {
	gen       Generator
	validator *passage.Validator
	config    Config
}

// NewOrchestrator builds an orchestrator that validates every attempt
// against the config's policy.
func NewOrchestrator(gen Generator, cfg Config) *Orchestrator {
	return &Orchestrator{
		gen:       gen,
		validator: passage.NewValidator(cfg.Policy),
		config:    cfg,
	}
}

// Generate produces one passage, retrying invalid attempts up to the
// configured budget with a fixed delay between attempts. When the budget
// runs out, the last attempt is delivered with NeedsRegeneration set
// rather than discarded. Provider failures abort immediately with a
// *GenerationError.
func (o *Orchestrator) Generate(ctx context.Context, input GenerateInput) (*GeneratedPassage, error) {
	var last *GeneratedPassage

	for attempt := 0; attempt <= o.config.MaxRetries; attempt++ {
		input.Attempt = attempt

		raw, err := o.gen.Generate(ctx, input)
		if err != nil {
			return nil, classify(err)
		}

		report := o.validator.Validate(raw)
		last = &GeneratedPassage{
			ID:      uuid.New(),
			Topic:   input.Topic,
			Domain:  input.Domain,
			Raw:     raw,
			Parsed:  passage.ParseLenient(raw),
			Report:  report,
			Retries: attempt,
		}
		if report.IsValid {
			return last, nil
		}

		// Feed this attempt's failures into the next prompt.
		input.Corrections = report.Issues

		if attempt == o.config.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(o.config.RetryDelay):
		}
	}

	last.NeedsRegeneration = true
	return last, nil
}

// GenerateBatch produces count passages sequentially. For batches larger
// than one, each passage draws a fresh random topic so the set varies.
// A given-up passage (NeedsRegeneration) stays in the batch; a provider
// failure aborts and returns what was produced so far alongside the error.
func (o *Orchestrator) GenerateBatch(ctx context.Context, count int, input GenerateInput) ([]*GeneratedPassage, error) {
	if count < 1 {
		count = 1
	}

	passages := make([]*GeneratedPassage, 0, count)
	for i := 0; i < count; i++ {
		item := input
		if count > 1 {
			t := RandomTopic()
			item.Topic, item.Domain = t.Topic, t.Domain
		}

		p, err := o.Generate(ctx, item)
		if err != nil {
			return passages, err
		}
		passages = append(passages, p)
	}
	return passages, nil
}
