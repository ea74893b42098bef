package web

import (
	"net/http"

	"tipfolio/models"
)

func (s *Server) handleListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := s.reference.ListSports(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sports == nil {
		sports = []*models.Sport{}
	}
	writeJSON(w, http.StatusOK, sports)
}

func (s *Server) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.reference.ListLeagues(r.Context(), r.URL.Query().Get("sportId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if leagues == nil {
		leagues = []*models.League{}
	}
	writeJSON(w, http.StatusOK, leagues)
}
