package domain

import (
	"context"
	"time"
)

// DayFormat is the date-only layout used everywhere a calendar day is
// exchanged. Zero-padded ISO dates sort correctly as plain strings.
const DayFormat = "2006-01-02"

// WeightRecord is one production-weight observation for a worker.
// Records are immutable once created. CreatedBy is the admin who
// entered the record and may differ from UserID.
type WeightRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	WorkType  string    `json:"workType,omitempty"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordRepository is the port for weight-record persistence.
//
// The start/end parameters are inclusive DayFormat bounds. The filter
// is applied only when BOTH bounds are non-empty; supplying a single
// bound yields the unfiltered all-time listing. Listings are ordered
// by date descending, then creation time descending.
type RecordRepository interface {
	Create(ctx context.Context, r *WeightRecord) (*WeightRecord, error)
	ListByUser(ctx context.Context, userID int64, start, end string) ([]WeightRecord, error)
	ListAll(ctx context.Context, start, end string) ([]WeightRecord, error)
}
