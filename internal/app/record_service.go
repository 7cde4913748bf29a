package app

import (
	"context"
	"math"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

// RecordService encapsulates weight-record use cases. Records are
// append-only: there is no update or delete.
type RecordService struct {
	records domain.RecordRepository
	users   domain.UserRepository
}

// NewRecordService creates a RecordService backed by the given repositories.
func NewRecordService(records domain.RecordRepository, users domain.UserRepository) *RecordService {
	return &RecordService{records: records, users: users}
}

// CreateRecordInput carries an admin weight-entry submission. CreatedBy
// is the resolved caller, set by the HTTP adapter.
type CreateRecordInput struct {
	UserID    int64
	Weight    float64
	Date      string
	Notes     string
	CreatedBy int64
}

// Create validates and stores a new weight record. The work type is
// copied from the target user's profile at creation time.
func (s *RecordService) Create(ctx context.Context, in CreateRecordInput) (*domain.WeightRecord, error) {
	var fields []string
	if in.UserID <= 0 {
		fields = append(fields, "userId")
	}
	if in.Weight <= 0 {
		fields = append(fields, "weight")
	}
	if !domain.ValidDay(in.Date) {
		fields = append(fields, "date")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	target, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	return s.records.Create(ctx, &domain.WeightRecord{
		UserID:    in.UserID,
		Weight:    roundWeight(in.Weight),
		Date:      in.Date,
		Notes:     in.Notes,
		WorkType:  target.WorkType,
		CreatedBy: in.CreatedBy,
	})
}

// List returns a user's records, optionally bounded by an inclusive
// date range. The filter applies only when both bounds are supplied;
// a single bound yields the all-time listing (see RecordRepository).
func (s *RecordService) List(ctx context.Context, userID int64, start, end string) ([]domain.WeightRecord, error) {
	if start != "" && end != "" {
		if !domain.ValidDay(start) || !domain.ValidDay(end) {
			return nil, &ValidationError{Fields: []string{"start", "end"}}
		}
	}
	return s.records.ListByUser(ctx, userID, start, end)
}

// roundWeight normalises a weight to the two-decimal storage precision.
func roundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}
