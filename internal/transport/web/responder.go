package web

import (
	"net/http"

	"github.com/goccy/go-json"
)

type errorResponse struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	Message    string              `json:"message,omitempty"`
	Fields     map[string][]string `json:"fields,omitempty"`
	Suggestion string              `json:"suggestion,omitempty"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, resp errorResponse) {
	resp.Success = false
	s.writeJSON(w, status, resp)
}
