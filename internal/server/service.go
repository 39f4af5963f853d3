// Package server exposes the card vault over gRPC.
package server

import (
	"log/slog"

	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/export"
	"cardvault/internal/pipeline"
	"cardvault/internal/repository"
	"cardvault/internal/task"
)

type CardService struct {
	cardsv1.UnimplementedCardServiceServer
	cards    repository.CardRepository
	fields   repository.FieldRepository
	jobs     repository.ScanJobRepository
	pipeline *pipeline.Pipeline
	queue    *task.Queue
	exporter *export.Service
	logger   *slog.Logger
}

func NewCardService(
	cards repository.CardRepository,
	fields repository.FieldRepository,
	jobs repository.ScanJobRepository,
	pipe *pipeline.Pipeline,
	queue *task.Queue,
	exporter *export.Service,
	logger *slog.Logger,
) *CardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardService{
		cards:    cards,
		fields:   fields,
		jobs:     jobs,
		pipeline: pipe,
		queue:    queue,
		exporter: exporter,
		logger:   logger,
	}
}
