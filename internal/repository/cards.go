package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cardvault/gen/ent"
	entcard "cardvault/gen/ent/card"
	"cardvault/internal/common"
	"cardvault/internal/entity"
)

// CardRepository is the store boundary for captured cards. The pipeline and
// server depend on this interface, never on ent types.
type CardRepository interface {
	Create(ctx context.Context, displayName string, image []byte, imageExt string) (*entity.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)
	// Image loads only the raw image bytes for a card.
	Image(ctx context.Context, id uuid.UUID) ([]byte, error)
	List(ctx context.Context) ([]*entity.Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCardRepository(entc *ent.Client, log *slog.Logger) CardRepository {
	if log == nil {
		log = slog.Default()
	}
	return &cardRepo{ent: entc, log: log}
}

func (r *cardRepo) Create(ctx context.Context, displayName string, image []byte, imageExt string) (*entity.Card, error) {
	row, err := r.ent.Card.
		Create().
		SetDisplayName(displayName).
		SetImage(image).
		SetImageExt(imageExt).
		Save(ctx)
	if err != nil {
		r.log.Error("card create failed", "err", err)
		return nil, common.WrapError(err, "create card")
	}
	r.log.Info("card created", "card_id", row.ID, "image_bytes", len(image))
	return toCard(row), nil
}

func (r *cardRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	row, err := r.ent.Card.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "card not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get card")
	}
	return toCard(row), nil
}

func (r *cardRepo) Image(ctx context.Context, id uuid.UUID) ([]byte, error) {
	row, err := r.ent.Card.
		Query().
		Where(entcard.ID(id)).
		Select(entcard.FieldImage).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "card not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "load card image")
	}
	return row.Image, nil
}

func (r *cardRepo) List(ctx context.Context) ([]*entity.Card, error) {
	rows, err := r.ent.Card.
		Query().
		Order(ent.Desc(entcard.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list cards")
	}
	out := make([]*entity.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCard(row))
	}
	return out, nil
}

func (r *cardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Card.DeleteOneID(id).Exec(ctx); err != nil {
		r.log.Error("card delete failed", "card_id", id, "err", err)
		return common.WrapError(err, "delete card")
	}
	r.log.Info("card deleted", "card_id", id)
	return nil
}

func toCard(row *ent.Card) *entity.Card {
	return &entity.Card{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		Image:       row.Image,
		ImageExt:    row.ImageExt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
