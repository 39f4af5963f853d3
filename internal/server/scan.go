package server

import (
	"context"
	"strings"
	"time"

	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cardvault/constants"
	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/common"
	"cardvault/internal/entity"
)

func toProtoScanJob(j *entity.ScanJob) *cardsv1.ScanJob {
	out := &cardsv1.ScanJob{
		Id:          j.ID.String(),
		CardId:      j.CardID.String(),
		Status:      j.Status,
		NeedsReview: j.NeedsReview,
		FieldCount:  int32(j.FieldCount),
		StartedAt:   j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}

// ScanCard implements cardsv1.CardServiceServer. The scan itself runs on
// the task queue; the returned job starts PENDING and is advanced by the
// pipeline.
func (s *CardService) ScanCard(ctx context.Context, req *cardsv1.ScanCardRequest) (*cardsv1.ScanCardResponse, error) {
	cardID, err := parseCardID(req.GetCardId())
	if err != nil {
		return nil, err
	}
	if _, err := s.cards.GetByID(ctx, cardID); err != nil {
		s.logger.Error("card lookup for scan failed", "card_id", cardID, "error", err)
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("card not found")
		}
		return nil, common.InternalError("scan card failed")
	}

	tk, job, err := s.pipeline.NewScan(context.Background(), cardID, func(st constants.ScanStatus) {
		s.logger.Info("scan.progress", "card_id", cardID, "status", st)
	})
	if err != nil {
		s.logger.Error("start scan failed", "card_id", cardID, "error", err)
		return nil, common.InternalError("start scan failed")
	}
	if !s.queue.Add(tk) {
		return nil, status.Error(codes.Unavailable, "scan queue is shut down")
	}
	s.logger.Info("scan.enqueued", "card_id", cardID, "job_id", job.ID)

	return &cardsv1.ScanCardResponse{Job: toProtoScanJob(job)}, nil
}

func (s *CardService) GetScanJob(ctx context.Context, req *cardsv1.GetScanJobRequest) (*cardsv1.GetScanJobResponse, error) {
	raw := strings.TrimSpace(req.GetJobId())
	if raw == "" {
		return nil, common.InvalidArgumentError("job_id is required")
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		s.logger.Error("get scan job failed", "job_id", jobID, "error", err)
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("scan job not found")
		}
		return nil, common.InternalError("get scan job failed")
	}
	return &cardsv1.GetScanJobResponse{Job: toProtoScanJob(job)}, nil
}
