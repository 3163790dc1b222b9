package api

import "net/http"

// Health reports whether each monitored resource is reachable
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.Status(r.Context()))
}
