package server

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/common"
	"cardvault/internal/entity"
	"cardvault/internal/repository"
)

type fakeCards struct {
	card *entity.Card
	err  error
}

func (f *fakeCards) Create(ctx context.Context, displayName string, image []byte, imageExt string) (*entity.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Card{ID: uuid.New(), DisplayName: displayName, ImageExt: imageExt}, nil
}

func (f *fakeCards) GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.card, nil
}

func (f *fakeCards) Image(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return nil, f.err
}

func (f *fakeCards) List(ctx context.Context) ([]*entity.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeCards) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

type fakeFields struct{ err error }

func (f *fakeFields) Insert(ctx context.Context, cardID uuid.UUID, in repository.FieldInsert) (*entity.Field, error) {
	return nil, f.err
}

func (f *fakeFields) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeFields) DeleteByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	return 0, f.err
}

type fakeJobs struct {
	job *entity.ScanJob
	err error
}

func (f *fakeJobs) Start(ctx context.Context, cardID uuid.UUID) (*entity.ScanJob, error) {
	return f.job, f.err
}

func (f *fakeJobs) MarkActive(ctx context.Context, jobID uuid.UUID) error { return f.err }

func (f *fakeJobs) Finish(ctx context.Context, jobID uuid.UUID, ocrText string, fieldCount int, needsReview bool, errorMessage string) error {
	return f.err
}

func (f *fakeJobs) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.job, nil
}

func newTestService(cards *fakeCards, fields *fakeFields, jobs *fakeJobs) *CardService {
	return NewCardService(cards, fields, jobs, nil, nil, nil, nil)
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := status.Code(err); got != want {
		t.Errorf("grpc code: got %s, want %s (err: %v)", got, want, err)
	}
}

func TestCreateCardRejectsBadInput(t *testing.T) {
	svc := newTestService(&fakeCards{}, &fakeFields{}, &fakeJobs{})

	_, err := svc.CreateCard(context.Background(), &cardsv1.CreateCardRequest{ImageExt: "jpg"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.CreateCard(context.Background(), &cardsv1.CreateCardRequest{
		Image:    []byte("img"),
		ImageExt: "exe",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestScanCardMapsMissingCardToNotFound(t *testing.T) {
	cards := &fakeCards{err: common.NewAppError("NOT_FOUND", "card not found", common.ErrNotFound)}
	svc := newTestService(cards, &fakeFields{}, &fakeJobs{})

	_, err := svc.ScanCard(context.Background(), &cardsv1.ScanCardRequest{CardId: uuid.NewString()})
	wantCode(t, err, codes.NotFound)
}

func TestScanCardMapsStoreFailureToInternal(t *testing.T) {
	cards := &fakeCards{err: errors.New("connection refused")}
	svc := newTestService(cards, &fakeFields{}, &fakeJobs{})

	_, err := svc.ScanCard(context.Background(), &cardsv1.ScanCardRequest{CardId: uuid.NewString()})
	wantCode(t, err, codes.Internal)
}

func TestGetScanJobCodes(t *testing.T) {
	jobs := &fakeJobs{err: common.NewAppError("NOT_FOUND", "scan job not found", common.ErrNotFound)}
	svc := newTestService(&fakeCards{}, &fakeFields{}, jobs)

	_, err := svc.GetScanJob(context.Background(), &cardsv1.GetScanJobRequest{JobId: "not-a-uuid"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.GetScanJob(context.Background(), &cardsv1.GetScanJobRequest{JobId: uuid.NewString()})
	wantCode(t, err, codes.NotFound)
}

func TestListFieldsMapsStoreFailureToInternal(t *testing.T) {
	svc := newTestService(&fakeCards{}, &fakeFields{err: errors.New("connection refused")}, &fakeJobs{})

	_, err := svc.ListFields(context.Background(), &cardsv1.ListFieldsRequest{CardId: uuid.NewString()})
	wantCode(t, err, codes.Internal)
}
