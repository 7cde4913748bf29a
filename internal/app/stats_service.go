package app

import (
	"context"
	"sort"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

// StatsService computes the derived daily/monthly/dashboard reports.
// Row sets are fetched whole from the repositories and reduced here.
// The "today" parameters are local-day strings supplied by the caller,
// which keeps the service clock-free.
type StatsService struct {
	records domain.RecordRepository
	users   domain.UserRepository
}

// NewStatsService creates a StatsService backed by the given repositories.
func NewStatsService(records domain.RecordRepository, users domain.UserRepository) *StatsService {
	return &StatsService{records: records, users: users}
}

// DailyStats is the per-user single-day report.
type DailyStats struct {
	Date        string                `json:"date"`
	TotalWeight float64               `json:"totalWeight"`
	RecordCount int                   `json:"recordCount"`
	Records     []domain.WeightRecord `json:"records"`
}

// DayTotal is one grouped entry of a monthly report.
type DayTotal struct {
	Date        string  `json:"date"`
	Weight      float64 `json:"weight"`
	RecordCount int     `json:"recordCount"`
}

// MonthlyStats is the per-user month report with a per-day breakdown.
type MonthlyStats struct {
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	TotalWeight float64    `json:"totalWeight"`
	RecordCount int        `json:"recordCount"`
	DailyTotals []DayTotal `json:"dailyTotals"`
}

// DashboardStats is the org-wide report, admin-only.
type DashboardStats struct {
	TotalToday  float64 `json:"totalToday"`
	ActiveUsers int     `json:"activeUsers"`
	AvgDaily    float64 `json:"avgDaily"`
	TotalMonth  float64 `json:"totalMonth"`
}

// SummaryStats is the per-user today/month/average report.
type SummaryStats struct {
	TotalToday float64 `json:"totalToday"`
	TotalMonth float64 `json:"totalMonth"`
	AvgDaily   float64 `json:"avgDaily"`
}

// Daily returns a user's records and totals for one calendar day,
// records ordered by creation time descending. A day with no records
// yields zero totals and an empty slice.
func (s *StatsService) Daily(ctx context.Context, userID int64, date string) (*DailyStats, error) {
	if !domain.ValidDay(date) {
		return nil, &ValidationError{Fields: []string{"date"}}
	}
	records, err := s.records.ListByUser(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	out := &DailyStats{Date: date, Records: records}
	if out.Records == nil {
		out.Records = []domain.WeightRecord{}
	}
	for _, r := range records {
		out.TotalWeight += r.Weight
		out.RecordCount++
	}
	return out, nil
}

// Monthly returns a user's totals for one month plus a per-day
// breakdown sorted ascending by date string.
func (s *StatsService) Monthly(ctx context.Context, userID int64, year, month int) (*MonthlyStats, error) {
	if month < 1 || month > 12 {
		return nil, &ValidationError{Fields: []string{"month"}}
	}
	if year < 1 {
		return nil, &ValidationError{Fields: []string{"year"}}
	}

	start, end := domain.MonthBounds(year, month)
	records, err := s.records.ListByUser(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	out := &MonthlyStats{Year: year, Month: month, DailyTotals: []DayTotal{}}
	byDay := make(map[string]*DayTotal)
	for _, r := range records {
		out.TotalWeight += r.Weight
		out.RecordCount++
		day, ok := byDay[r.Date]
		if !ok {
			day = &DayTotal{Date: r.Date}
			byDay[r.Date] = day
		}
		day.Weight += r.Weight
		day.RecordCount++
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	// Lexicographic sort is chronological for zero-padded ISO dates.
	sort.Strings(days)
	for _, d := range days {
		out.DailyTotals = append(out.DailyTotals, *byDay[d])
	}
	return out, nil
}

// Dashboard returns the org-wide totals for the given local day and
// its month. AvgDaily divides by the full month length, not by the
// days elapsed so far.
func (s *StatsService) Dashboard(ctx context.Context, today string) (*DashboardStats, error) {
	year, month, err := parseDay(today)
	if err != nil {
		return nil, err
	}

	todayRecords, err := s.records.ListAll(ctx, today, today)
	if err != nil {
		return nil, err
	}

	start, end := domain.MonthBounds(year, month)
	monthRecords, err := s.records.ListAll(ctx, start, end)
	if err != nil {
		return nil, err
	}

	active, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	out := &DashboardStats{ActiveUsers: active}
	for _, r := range todayRecords {
		out.TotalToday += r.Weight
	}
	for _, r := range monthRecords {
		out.TotalMonth += r.Weight
	}
	out.AvgDaily = out.TotalMonth / float64(domain.DaysInMonth(year, month))
	return out, nil
}

// Summary returns one user's totals for the given local day and its
// month, with the same full-month average as the dashboard.
func (s *StatsService) Summary(ctx context.Context, userID int64, today string) (*SummaryStats, error) {
	year, month, err := parseDay(today)
	if err != nil {
		return nil, err
	}

	todayRecords, err := s.records.ListByUser(ctx, userID, today, today)
	if err != nil {
		return nil, err
	}

	start, end := domain.MonthBounds(year, month)
	monthRecords, err := s.records.ListByUser(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	out := &SummaryStats{}
	for _, r := range todayRecords {
		out.TotalToday += r.Weight
	}
	for _, r := range monthRecords {
		out.TotalMonth += r.Weight
	}
	out.AvgDaily = out.TotalMonth / float64(domain.DaysInMonth(year, month))
	return out, nil
}

func parseDay(day string) (year, month int, err error) {
	t, err := time.Parse(domain.DayFormat, day)
	if err != nil {
		return 0, 0, &ValidationError{Fields: []string{"date"}}
	}
	return t.Year(), int(t.Month()), nil
}
