package handler

import (
	"net/http"

	"github.com/pkordes/travel-approval/internal/domain"
)

const profileNotFound = "profile not found"

// ListProfiles handles GET /profiles.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListProfiles(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	result, err := s.profiles.ListPaged(r.Context(), domain.NewPaginationParams(page, limit))
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetProfile handles GET /profiles/{id}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	p, err := s.profiles.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, profileNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SaveProfile handles PUT /profiles.
// The body is a TripConfiguration; any earlier profile for the same
// university is replaced. Responds with the stored profile.
func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var cfg domain.TripConfiguration
	if !s.decodeBody(w, r, &cfg) {
		return
	}

	saved, err := s.profiles.Save(r.Context(), cfg)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteProfile handles DELETE /profiles/{id}.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	if err := s.profiles.Delete(r.Context(), id); err != nil {
		s.respondErr(w, r, err, profileNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
