package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardvault/constants"
	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/common"
	"cardvault/internal/entity"
)

func toProtoCard(c *entity.Card) *cardsv1.Card {
	return &cardsv1.Card{
		Id:          c.ID.String(),
		DisplayName: c.DisplayName,
		ImageExt:    c.ImageExt,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toProtoField(f *entity.Field) *cardsv1.Field {
	return &cardsv1.Field{
		Id:        f.ID.String(),
		CardId:    f.CardID.String(),
		Category:  f.Category,
		RawText:   f.RawText,
		Value:     f.Value,
		SpanStart: int32(f.SpanStart),
		SpanEnd:   int32(f.SpanEnd),
	}
}

func parseCardID(raw string) (uuid.UUID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return uuid.Nil, common.InvalidArgumentError("card_id is required")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("card_id must be a UUID")
	}
	return parsed, nil
}

// CreateCard implements cardsv1.CardServiceServer
func (s *CardService) CreateCard(ctx context.Context, req *cardsv1.CreateCardRequest) (*cardsv1.CreateCardResponse, error) {
	if len(req.GetImage()) == 0 {
		s.logger.Error("create card request missing image")
		return nil, common.InvalidArgumentError("image is required")
	}
	ext := constants.NormalizeExt(req.GetImageExt())
	if !constants.IsAllowedExt(ext) {
		return nil, common.InvalidArgumentError("image_ext must be one of: "+strings.Join(constants.AllowedExtList(), ", "))
	}

	card, err := s.cards.Create(ctx, strings.TrimSpace(req.GetDisplayName()), req.GetImage(), ext)
	if err != nil {
		s.logger.Error("create card failed", "error", err)
		return nil, common.InternalError("create card failed")
	}
	s.logger.Info("card.created", "card_id", card.ID, "bytes", len(req.GetImage()), "ext", ext)

	return &cardsv1.CreateCardResponse{Card: toProtoCard(card)}, nil
}

func (s *CardService) ListCards(ctx context.Context, _ *cardsv1.ListCardsRequest) (*cardsv1.ListCardsResponse, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		s.logger.Error("list cards failed", "error", err)
		return nil, common.InternalError("list cards failed")
	}
	out := make([]*cardsv1.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, toProtoCard(c))
	}
	return &cardsv1.ListCardsResponse{Cards: out}, nil
}

func (s *CardService) ListFields(ctx context.Context, req *cardsv1.ListFieldsRequest) (*cardsv1.ListFieldsResponse, error) {
	cardID, err := parseCardID(req.GetCardId())
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.ListByCard(ctx, cardID)
	if err != nil {
		s.logger.Error("list fields failed", "card_id", cardID, "error", err)
		return nil, common.InternalError("list fields failed")
	}
	out := make([]*cardsv1.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, toProtoField(f))
	}
	return &cardsv1.ListFieldsResponse{Fields: out}, nil
}

func (s *CardService) DeleteCard(ctx context.Context, req *cardsv1.DeleteCardRequest) (*cardsv1.DeleteCardResponse, error) {
	cardID, err := parseCardID(req.GetCardId())
	if err != nil {
		return nil, err
	}
	if _, err := s.fields.DeleteByCard(ctx, cardID); err != nil {
		s.logger.Error("delete card fields failed", "card_id", cardID, "error", err)
		return nil, common.InternalError("delete card failed")
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		s.logger.Error("delete card failed", "card_id", cardID, "error", err)
		return nil, common.InternalError("delete card failed")
	}
	s.logger.Info("card.deleted", "card_id", cardID)
	return &cardsv1.DeleteCardResponse{}, nil
}
