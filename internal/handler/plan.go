package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-approval/internal/document"
	"github.com/pkordes/travel-approval/internal/domain"
)

// CreatePlan handles POST /plans.
// The body is a TripConfiguration; the response is the computed TravelPlan.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var cfg domain.TripConfiguration
	if !s.decodeBody(w, r, &cfg) {
		return
	}

	plan, err := s.plans.Generate(r.Context(), cfg)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// RenderPlan handles POST /plans/document?format=html|text.
// The document is rendered into memory first so a failure still produces a
// JSON error instead of a truncated document. The email subject line is
// returned in the X-Email-Subject header.
func (s *Server) RenderPlan(w http.ResponseWriter, r *http.Request) {
	raw, err := queryString(r, "format")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	format, err := document.ParseFormat(raw)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	var cfg domain.TripConfiguration
	if !s.decodeBody(w, r, &cfg) {
		return
	}

	var buf bytes.Buffer
	plan, err := s.plans.Render(r.Context(), &buf, cfg, format)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Email-Subject", document.Subject(plan))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
