package server

import (
	"encoding/json"
	"net/http"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// handleCalculate runs one tax calculation. Every field of the body is
// optional and a malformed body degrades to an all-defaults input: the
// endpoint always answers 200 with a fully-formed result.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req domain.TaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Debug().Err(err).Msg("malformed calculation body, using defaults")
		req = domain.TaxRequest{}
	}

	result := s.engine.Calculate(req.Normalize())
	s.writeJSON(w, http.StatusOK, result)
}

// handleHealthz reports liveness. The calculator has no dependencies to
// probe, so alive means ready.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}
