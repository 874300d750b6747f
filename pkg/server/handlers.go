package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/catalog"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/costmodel"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

type reportResponse struct {
	Scores *interfaces.ScoreResult   `json:"scores"`
	Report *interfaces.MissionReport `json:"report"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	var p interfaces.MissionParameters
	if !decode(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Hints(p))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var p interfaces.MissionParameters
	if !decode(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.Score(&p))
}

// handleCost accepts a partial cost input; missing fields take their defaults.
func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	var in costmodel.Input
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.Cost(in))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var p interfaces.MissionParameters
	if !decode(w, r, &p) {
		return
	}
	rpt, scores, err := s.pipeline.Report(r.Context(), &p)
	if err != nil {
		slog.Error("report failed", "error", err)
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Scores: scores, Report: rpt})
}

// handleAnalyze prices the mission from the cost fields present in the body,
// so absent ones take their defaults and explicit zeros stay zero.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	var m planner.Mission
	var in costmodel.Input
	if err := json.Unmarshal(body, &m.Params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	m.Cost = &in

	a, err := s.pipeline.RunMission(r.Context(), m)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// readBody reads the size-limited body, writing a 400 on failure.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return nil, false
	}
	return body, true
}

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 rather than a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("server: encoding response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "response could not be encoded"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Debug("server: writing response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
