package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

// RecordRepo implements weight-record repository operations on DB.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo wraps a DB as a RecordRepository.
func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

const recordColumns = "id, user_id, weight, date, COALESCE(notes, ''), work_type, created_by, created_at"

func scanRecord(row interface{ Scan(...any) error }) (*domain.WeightRecord, error) {
	var r domain.WeightRecord
	var date time.Time
	var workType sql.NullString
	err := row.Scan(&r.ID, &r.UserID, &r.Weight, &date, &r.Notes, &workType, &r.CreatedBy, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Date = date.Format(domain.DayFormat)
	r.WorkType = workType.String
	return &r, nil
}

// Create inserts a new weight record.
func (rr *RecordRepo) Create(ctx context.Context, r *domain.WeightRecord) (*domain.WeightRecord, error) {
	return scanRecord(rr.db.sql.QueryRowContext(ctx,
		`INSERT INTO weight_records (user_id, weight, date, notes, work_type, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+recordColumns,
		r.UserID, r.Weight, r.Date, nullable(r.Notes), nullable(r.WorkType), r.CreatedBy, time.Now()))
}

// ListByUser returns a user's records ordered by date descending then
// creation time descending. The date filter applies only when both
// bounds are supplied (see domain.RecordRepository).
func (rr *RecordRepo) ListByUser(ctx context.Context, userID int64, start, end string) ([]domain.WeightRecord, error) {
	query := "SELECT " + recordColumns + " FROM weight_records WHERE user_id = $1"
	args := []any{userID}
	if start != "" && end != "" {
		query += " AND date >= $2 AND date <= $3"
		args = append(args, start, end)
	}
	query += " ORDER BY date DESC, created_at DESC"
	return rr.listRecords(ctx, query, args...)
}

// ListAll returns every user's records with the same optional range
// filter and ordering as ListByUser.
func (rr *RecordRepo) ListAll(ctx context.Context, start, end string) ([]domain.WeightRecord, error) {
	query := "SELECT " + recordColumns + " FROM weight_records"
	var args []any
	if start != "" && end != "" {
		query += " WHERE date >= $1 AND date <= $2"
		args = append(args, start, end)
	}
	query += " ORDER BY date DESC, created_at DESC"
	return rr.listRecords(ctx, query, args...)
}

func (rr *RecordRepo) listRecords(ctx context.Context, query string, args ...any) ([]domain.WeightRecord, error) {
	rows, err := rr.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WeightRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}
