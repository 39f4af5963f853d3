package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/common"
)

// ExportCards implements cardsv1.CardServiceServer
func (s *CardService) ExportCards(ctx context.Context, req *cardsv1.ExportCardsRequest) (*cardsv1.ExportCardsResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.GetCardIds()))
	for _, raw := range req.GetCardIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("card id %q must be a UUID", raw)
		}
		ids = append(ids, id)
	}

	switch req.GetFormat() {
	case cardsv1.ExportFormat_EXPORT_FORMAT_XLSX, cardsv1.ExportFormat_EXPORT_FORMAT_UNSPECIFIED:
		content, err := s.exporter.ExportContactsXLSX(ctx, ids)
		if err != nil {
			s.logger.Error("export xlsx failed", "cards", len(ids), "error", err)
			return nil, common.InternalError("export failed")
		}
		name := "contacts-" + time.Now().UTC().Format("20060102-150405") + ".xlsx"
		return &cardsv1.ExportCardsResponse{Content: content, Filename: name}, nil

	case cardsv1.ExportFormat_EXPORT_FORMAT_VCARD:
		if len(ids) == 0 {
			cards, err := s.cards.List(ctx)
			if err != nil {
				s.logger.Error("export vcard list failed", "error", err)
				return nil, common.InternalError("export failed")
			}
			for _, c := range cards {
				ids = append(ids, c.ID)
			}
		}
		var buf []byte
		for _, id := range ids {
			rec, err := s.exporter.ExportVCard(ctx, id)
			if err != nil {
				s.logger.Error("export vcard failed", "card_id", id, "error", err)
				return nil, common.InternalError("export failed")
			}
			buf = append(buf, rec...)
		}
		name := "contacts-" + time.Now().UTC().Format("20060102-150405") + ".vcf"
		return &cardsv1.ExportCardsResponse{Content: buf, Filename: name}, nil

	default:
		return nil, common.InvalidArgumentError("unknown export format")
	}
}
