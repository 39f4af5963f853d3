package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cardvault/constants"
	"cardvault/gen/ent"
	entjob "cardvault/gen/ent/scanjob"
	"cardvault/internal/common"
	"cardvault/internal/entity"
)

// ScanJobRepository is the store boundary for scan pipeline invocations.
type ScanJobRepository interface {
	Start(ctx context.Context, cardID uuid.UUID) (*entity.ScanJob, error)
	MarkActive(ctx context.Context, jobID uuid.UUID) error
	// Finish records the terminal COMPLETED state. A scan that obtained
	// only partial data still finishes; errorMessage carries the last
	// logged sub-step failure, if any.
	Finish(ctx context.Context, jobID uuid.UUID, ocrText string, fieldCount int, needsReview bool, errorMessage string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error)
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Start(ctx context.Context, cardID uuid.UUID) (*entity.ScanJob, error) {
	row, err := r.ent.ScanJob.
		Create().
		SetCardID(cardID).
		SetStatus(string(constants.ScanStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "card_id", cardID, "err", err)
		return nil, common.WrapError(err, "start scan job")
	}
	r.log.Info("scan_job started", "job_id", row.ID, "card_id", cardID)
	return toScanJob(row), nil
}

func (r *scanJobRepo) MarkActive(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.ScanStatusActive)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job activate failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "activate scan job")
	}
	return nil
}

func (r *scanJobRepo) Finish(ctx context.Context, jobID uuid.UUID, ocrText string, fieldCount int, needsReview bool, errorMessage string) error {
	upd := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.ScanStatusCompleted)).
		SetFinishedAt(time.Now()).
		SetNeedsReview(needsReview).
		SetFieldCount(fieldCount)
	if ocrText != "" {
		upd.SetOcrText(ocrText)
	}
	if errorMessage != "" {
		upd.SetErrorMessage(errorMessage)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("scan_job finish failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "finish scan job")
	}
	r.log.Info("scan_job finished", "job_id", jobID, "fields", fieldCount, "needs_review", needsReview)
	return nil
}

func (r *scanJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error) {
	row, err := r.ent.ScanJob.Query().Where(entjob.ID(jobID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "scan job not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get scan job")
	}
	return toScanJob(row), nil
}

func toScanJob(row *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:           row.ID,
		CardID:       row.CardID,
		Status:       row.Status,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
		ErrorMessage: row.ErrorMessage,
		NeedsReview:  row.NeedsReview,
		OCRText:      row.OcrText,
		FieldCount:   row.FieldCount,
	}
}
