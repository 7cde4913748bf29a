package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/app"
)

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := int64Query(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	if !app.CanAccessUser(userFromContext(r), userID) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = localDayString(time.Now())
	}

	stats, err := s.stats.Daily(r.Context(), userID, date)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := int64Query(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	if !app.CanAccessUser(userFromContext(r), userID) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	now := time.Now().In(time.Local)
	year := intQuery(r, "year", now.Year())
	month := intQuery(r, "month", int(now.Month()))

	stats, err := s.stats.Monthly(r.Context(), userID, year, month)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSummaryStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := int64Query(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	if !app.CanAccessUser(userFromContext(r), userID) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	stats, err := s.stats.Summary(r.Context(), userID, localDayString(time.Now()))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !app.IsAdmin(userFromContext(r)) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	stats, err := s.stats.Dashboard(r.Context(), localDayString(time.Now()))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
