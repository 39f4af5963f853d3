package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cardvault/constants"
	"cardvault/gen/ent"
	entfield "cardvault/gen/ent/cardfield"
	"cardvault/internal/common"
	"cardvault/internal/entity"
)

// FieldInsert is one extracted entity to persist for a card.
type FieldInsert struct {
	Category  constants.Category
	RawText   string
	Value     string
	SpanStart int
	SpanEnd   int
}

// FieldRepository is the store boundary for extracted card fields.
type FieldRepository interface {
	Insert(ctx context.Context, cardID uuid.UUID, f FieldInsert) (*entity.Field, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Field, error)
	DeleteByCard(ctx context.Context, cardID uuid.UUID) (int, error)
}

type fieldRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFieldRepository(entc *ent.Client, log *slog.Logger) FieldRepository {
	if log == nil {
		log = slog.Default()
	}
	return &fieldRepo{ent: entc, log: log}
}

func (r *fieldRepo) Insert(ctx context.Context, cardID uuid.UUID, f FieldInsert) (*entity.Field, error) {
	row, err := r.ent.CardField.
		Create().
		SetCardID(cardID).
		SetCategory(string(f.Category)).
		SetRawText(f.RawText).
		SetValue(f.Value).
		SetSpanStart(f.SpanStart).
		SetSpanEnd(f.SpanEnd).
		Save(ctx)
	if err != nil {
		r.log.Error("field insert failed", "card_id", cardID, "category", f.Category, "err", err)
		return nil, common.WrapError(err, "insert field")
	}
	return toField(row), nil
}

func (r *fieldRepo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Field, error) {
	rows, err := r.ent.CardField.
		Query().
		Where(entfield.CardID(cardID)).
		Order(ent.Asc(entfield.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list fields")
	}
	out := make([]*entity.Field, 0, len(rows))
	for _, row := range rows {
		out = append(out, toField(row))
	}
	return out, nil
}

func (r *fieldRepo) DeleteByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	n, err := r.ent.CardField.
		Delete().
		Where(entfield.CardID(cardID)).
		Exec(ctx)
	if err != nil {
		r.log.Error("field delete failed", "card_id", cardID, "err", err)
		return 0, common.WrapError(err, "delete fields")
	}
	return n, nil
}

func toField(row *ent.CardField) *entity.Field {
	return &entity.Field{
		ID:        row.ID,
		CardID:    row.CardID,
		Category:  row.Category,
		RawText:   row.RawText,
		Value:     row.Value,
		SpanStart: row.SpanStart,
		SpanEnd:   row.SpanEnd,
		CreatedAt: row.CreatedAt,
	}
}
