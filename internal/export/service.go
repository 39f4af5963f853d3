package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"cardvault/constants"
	"cardvault/internal/entity"
	"cardvault/internal/repository"
)

// Service is a tiny façade over repositories that renders scanned contacts
// as XLSX workbooks or vCard text.
type Service struct {
	cards  repository.CardRepository
	fields repository.FieldRepository
	logger *slog.Logger
}

func NewService(cards repository.CardRepository, fields repository.FieldRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cards: cards, fields: fields, logger: logger}
}

// Contact is one card's extracted fields grouped for rendering.
type Contact struct {
	Card   *entity.Card
	Fields []*entity.Field
}

// first returns the preferred rendering of the first field of cat: the
// normalized value when present, the raw matched text otherwise.
func (c Contact) first(cat constants.Category) string {
	for _, f := range c.Fields {
		if f.Category != string(cat) {
			continue
		}
		if f.Value != "" {
			return f.Value
		}
		return f.RawText
	}
	return ""
}

func (c Contact) all(cat constants.Category) []string {
	var out []string
	for _, f := range c.Fields {
		if f.Category != string(cat) {
			continue
		}
		if f.Value != "" {
			out = append(out, f.Value)
		} else {
			out = append(out, f.RawText)
		}
	}
	return out
}

func (s *Service) contact(ctx context.Context, cardID uuid.UUID) (Contact, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return Contact{}, fmt.Errorf("load card: %w", err)
	}
	fields, err := s.fields.ListByCard(ctx, cardID)
	if err != nil {
		return Contact{}, fmt.Errorf("load fields: %w", err)
	}
	return Contact{Card: card, Fields: fields}, nil
}

// ExportContactsXLSX returns an XLSX workbook (as bytes) with one row per
// card. Cards with no cardIDs filter exports everything in the store.
func (s *Service) ExportContactsXLSX(ctx context.Context, cardIDs []uuid.UUID) ([]byte, error) {
	start := time.Now()

	if len(cardIDs) == 0 {
		cards, err := s.cards.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cards: %w", err)
		}
		for _, c := range cards {
			cardIDs = append(cardIDs, c.ID)
		}
	}

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Name",
		"Organization",
		"Phone",
		"Email",
		"Website",
		"Address",
		"Scanned At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 0
	for _, id := range cardIDs {
		c, err := s.contact(ctx, id)
		if err != nil {
			s.logger.Warn("export.contact.skipped", "card_id", id, "error", err)
			continue
		}
		row++
		values := []string{
			c.first(constants.Person),
			c.first(constants.Organization),
			c.first(constants.PhoneNumber),
			c.first(constants.Email),
			c.first(constants.URL),
			c.first(constants.PostalAddress),
			c.Card.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"cards", len(cardIDs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportVCard renders one card as a vCard 3.0 record.
func (s *Service) ExportVCard(ctx context.Context, cardID uuid.UUID) (string, error) {
	c, err := s.contact(ctx, cardID)
	if err != nil {
		return "", err
	}
	return renderVCard(c), nil
}
