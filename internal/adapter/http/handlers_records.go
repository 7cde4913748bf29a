package adapthttp

import (
	"errors"
	"net/http"

	"github.com/FeliCaldas/WeightTrackPro/internal/app"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	caller := userFromContext(r)

	switch r.Method {
	case http.MethodPost:
		if !app.IsAdmin(caller) {
			writeError(w, http.StatusForbidden, app.ErrForbidden)
			return
		}
		var req struct {
			UserID int64   `json:"userId"`
			Weight float64 `json:"weight"`
			Date   string  `json:"date"`
			Notes  string  `json:"notes"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		record, err := s.records.Create(r.Context(), app.CreateRecordInput{
			UserID:    req.UserID,
			Weight:    req.Weight,
			Date:      req.Date,
			Notes:     req.Notes,
			CreatedBy: caller.ID,
		})
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"record": record})

	case http.MethodGet:
		userID, ok := int64Query(r, "userId")
		if !ok {
			writeError(w, http.StatusBadRequest, errors.New("userId is required"))
			return
		}
		if !app.CanAccessUser(caller, userID) {
			writeError(w, http.StatusForbidden, app.ErrForbidden)
			return
		}
		records, err := s.records.List(r.Context(), userID,
			r.URL.Query().Get("start"), r.URL.Query().Get("end"))
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"records": records})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
