package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sozercan/feedbacklens/apimodels"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !req.Kind.Valid() {
		http.Error(w, fmt.Sprintf("unknown analysis kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	slog.Debug("received analysis request", "kind", req.Kind, "inputs", len(req.Inputs))

	result, err := s.analyzer.Analyze(r.Context(), req, nil)
	if err != nil {
		slog.Error("analysis request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.analyzer.Status())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
