package adapthttp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/FeliCaldas/WeightTrackPro/internal/app"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	caller := userFromContext(r)
	if !app.IsAdmin(caller) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	switch r.Method {
	case http.MethodGet:
		users, err := s.users.ListAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"users": users})

	case http.MethodPost:
		var in app.CreateUserInput
		if err := parseJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		user, err := s.users.Create(r.Context(), in)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"user": user})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	caller := userFromContext(r)
	if !app.IsAdmin(caller) {
		writeError(w, http.StatusForbidden, app.ErrForbidden)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/users/"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	var in app.UpdateUserInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.users.Update(r.Context(), id, in)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleActiveWorkers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	users, err := s.users.ListActiveWorkers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// handleRoster is public: it only ever exposes the safe projection.
func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	roster, err := s.users.Roster(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": roster})
}
