package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/transfer"
)

// DeriveRequest is the body of POST /config/derive: the form state before
// and after one user edit.
type DeriveRequest struct {
	Previous domain.TripConfiguration `json:"previous"`
	Next     domain.TripConfiguration `json:"next"`
}

// ImportRequest is the body of POST /config/import. Data holds the raw file
// content; it is applied over Base, or over the defaults when Base is absent.
type ImportRequest struct {
	Base *domain.TripConfiguration `json:"base"`
	Data string                    `json:"data"`
}

// GetDefaults handles GET /config/defaults.
func (s *Server) GetDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.config.Defaults())
}

// ListUniversities handles GET /universities.
func (s *Server) ListUniversities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.config.Universities())
}

// DeriveConfig handles POST /config/derive.
func (s *Server) DeriveConfig(w http.ResponseWriter, r *http.Request) {
	var req DeriveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.config.Derive(req.Previous, req.Next))
}

// ImportConfig handles POST /config/import?format=csv|json.
// A file that cannot be decoded is a 422; nothing is merged in that case.
func (s *Server) ImportConfig(w http.ResponseWriter, r *http.Request) {
	format, ok := s.transferFormat(w, r)
	if !ok {
		return
	}

	var req ImportRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	base := s.config.Defaults()
	if req.Base != nil {
		base = *req.Base
	}

	cfg, err := s.config.Import(r.Context(), base, strings.NewReader(req.Data), format)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// ExportConfig handles POST /config/export?format=csv|json.
// The body is the configuration to export; the response is the file,
// served as an attachment.
func (s *Server) ExportConfig(w http.ResponseWriter, r *http.Request) {
	format, ok := s.transferFormat(w, r)
	if !ok {
		return
	}

	var cfg domain.TripConfiguration
	if !s.decodeBody(w, r, &cfg) {
		return
	}

	var buf bytes.Buffer
	if err := s.config.Export(r.Context(), &buf, cfg, format); err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="travel-config.`+string(format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) transferFormat(w http.ResponseWriter, r *http.Request) (transfer.Format, bool) {
	raw, err := queryString(r, "format")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return "", false
	}
	f, err := transfer.ParseFormat(raw)
	if err != nil {
		s.respondErr(w, r, err, "")
		return "", false
	}
	return f, true
}
