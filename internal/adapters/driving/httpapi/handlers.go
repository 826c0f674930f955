package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

// apiError is the failure envelope for every endpoint.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// searchResponse is the /api/search success envelope.
type searchResponse struct {
	Count   int                       `json:"count"`
	Results []domain.TranscriptRecord `json:"results"`
}

// handleExport triggers one export run.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid export request", err.Error())
		return
	}

	summary, err := s.export.Run(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, summary)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid export request", err.Error())
	case errors.Is(err, domain.ErrNoRecords):
		writeError(w, http.StatusNotFound, "No results found to add to the sheet", "")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to add to the sheet", err.Error())
	}
}

// handleSearch returns the raw matching documents without touching the
// sheet.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid search request", err.Error())
		return
	}

	records, err := s.search.Search(r.Context(), req)
	switch {
	case err == nil:
		if records == nil {
			records = []domain.TranscriptRecord{}
		}
		writeJSON(w, http.StatusOK, searchResponse{Count: len(records), Results: records})
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid search request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Search failed", err.Error())
	}
}

// handleTestAuth lets the login form validate credentials cheaply.
func (s *Server) handleTestAuth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Authentication successful"})
}

// parseRequest reads the shared query parameters: fromDate and toDate are
// required ISO-8601 values, env and agents optional.
func parseRequest(r *http.Request) (domain.ExportRequest, error) {
	q := r.URL.Query()

	fromRaw := q.Get("fromDate")
	toRaw := q.Get("toDate")
	if fromRaw == "" || toRaw == "" {
		return domain.ExportRequest{}, fmt.Errorf("fromDate and toDate are required")
	}

	from, err := parseBound(fromRaw, false)
	if err != nil {
		return domain.ExportRequest{}, fmt.Errorf("fromDate: %w", err)
	}
	to, err := parseBound(toRaw, true)
	if err != nil {
		return domain.ExportRequest{}, fmt.Errorf("toDate: %w", err)
	}
	if to.Before(from) {
		return domain.ExportRequest{}, fmt.Errorf("toDate precedes fromDate")
	}

	req := domain.ExportRequest{
		Namespace: q.Get("env"),
		From:      from,
		To:        to,
	}
	if agents := strings.TrimSpace(q.Get("agents")); agents != "" {
		for _, agent := range strings.Split(agents, ",") {
			if agent = strings.TrimSpace(agent); agent != "" {
				req.Agents = append(req.Agents, agent)
			}
		}
	}
	return req, nil
}

// parseBound accepts a full RFC 3339 instant or a bare calendar date.
// Bounds are inclusive, so a bare date used as the upper bound covers the
// whole day.
func parseBound(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", raw)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t.UTC(), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, apiError{Error: message, Details: details})
}
