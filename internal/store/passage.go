package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/keremugurlu/readingen/ent"
	"github.com/keremugurlu/readingen/ent/passagerecord"
)

// passageRepo implements PassageRepo backed by ent.
type passageRepo struct {
	client *ent.Client
}

func (r *passageRepo) SavePassage(ctx context.Context, data PassageRecordData) (int, error) {
	builder := r.client.PassageRecord.Create().
		SetTopic(data.Topic).
		SetDomain(data.Domain).
		SetTitle(data.Title).
		SetRaw(data.Raw).
		SetLevel(data.Level).
		SetLength(data.Length).
		SetScore(data.Score).
		SetValid(data.Valid).
		SetRetries(data.Retries).
		SetNeedsRegeneration(data.NeedsRegeneration)

	if data.PassageID != uuid.Nil {
		builder = builder.SetPassageID(data.PassageID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save passage: %w", err)
	}
	return rec.ID, nil
}

func (r *passageRepo) ListPassages(ctx context.Context, limit int) ([]StoredPassage, error) {
	query := r.client.PassageRecord.Query().
		Order(ent.Desc(passagerecord.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list passages: %w", err)
	}

	out := make([]StoredPassage, len(rows))
	for i, rec := range rows {
		out[i] = toStoredPassage(rec)
	}
	return out, nil
}

func (r *passageRepo) GetPassage(ctx context.Context, id int) (*StoredPassage, error) {
	rec, err := r.client.PassageRecord.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get passage %d: %w", id, err)
	}
	sp := toStoredPassage(rec)
	return &sp, nil
}

func toStoredPassage(rec *ent.PassageRecord) StoredPassage {
	return StoredPassage{
		ID:                rec.ID,
		PassageID:         rec.PassageID,
		CreatedAt:         rec.CreatedAt,
		Topic:             rec.Topic,
		Domain:            rec.Domain,
		Title:             rec.Title,
		Raw:               rec.Raw,
		Level:             rec.Level,
		Length:            rec.Length,
		Score:             rec.Score,
		Valid:             rec.Valid,
		Retries:           rec.Retries,
		NeedsRegeneration: rec.NeedsRegeneration,
	}
}
