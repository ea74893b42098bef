package web

import (
	"net/http"

	"tipfolio/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreatePick(w http.ResponseWriter, r *http.Request) {
	tipster := s.ownedTipster(w, r)
	if tipster == nil {
		return
	}

	var req createPickRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pick := &models.Pick{
		TipsterID:  tipster.ID,
		Event:      req.Event,
		Market:     req.Market,
		Selection:  req.Selection,
		Odds:       req.Odds,
		SportID:    req.SportID,
		LeagueID:   req.LeagueID,
		Bookmaker:  req.Bookmaker,
		Analysis:   req.Analysis,
		Confidence: req.Confidence,
		StakeUnits: req.StakeUnits,
		IsPremium:  req.IsPremium,
		EventDate:  req.EventDate,
	}

	created, err := s.picks.CreatePick(r.Context(), pick)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListPicks(w http.ResponseWriter, r *http.Request) {
	tipster, err := s.tipsters.GetTipster(r.Context(), chi.URLParam(r, "tipsterID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tipster == nil {
		writeError(w, http.StatusNotFound, "tipster not found")
		return
	}

	opts := models.PickListOptions{
		IncludeSettled: r.URL.Query().Get("includeSettled") == "true",
		Limit:          queryInt(r, "limit"),
		Offset:         queryInt(r, "offset"),
	}

	picks, err := s.picks.ListTipsterPicks(r.Context(), tipster.ID, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if picks == nil {
		picks = []*models.Pick{}
	}
	writeJSON(w, http.StatusOK, picks)
}

// ownedPick loads a pick and verifies the caller owns the publishing
// tipster profile. Writes the response on failure and returns nil.
func (s *Server) ownedPick(w http.ResponseWriter, r *http.Request) *models.Pick {
	pick, err := s.picks.GetPick(r.Context(), chi.URLParam(r, "pickID"))
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if pick == nil {
		writeError(w, http.StatusNotFound, "pick not found")
		return nil
	}

	tipster, err := s.tipsters.GetTipster(r.Context(), pick.TipsterID)
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if tipster == nil || tipster.UserID != userIDFromContext(r.Context()) {
		writeError(w, http.StatusNotFound, "pick not found")
		return nil
	}
	return pick
}

func (s *Server) handleGetPick(w http.ResponseWriter, r *http.Request) {
	pick, err := s.picks.GetPick(r.Context(), chi.URLParam(r, "pickID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if pick == nil {
		writeError(w, http.StatusNotFound, "pick not found")
		return
	}
	writeJSON(w, http.StatusOK, pick)
}

func (s *Server) handleUpdatePick(w http.ResponseWriter, r *http.Request) {
	pick := s.ownedPick(w, r)
	if pick == nil {
		return
	}

	var req updatePickRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := models.PickPatch{
		Event:      req.Event,
		Market:     req.Market,
		Selection:  req.Selection,
		Odds:       req.Odds,
		SportID:    req.SportID,
		LeagueID:   req.LeagueID,
		Bookmaker:  req.Bookmaker,
		Analysis:   req.Analysis,
		Confidence: req.Confidence,
		StakeUnits: req.StakeUnits,
		IsPremium:  req.IsPremium,
		EventDate:  req.EventDate,
	}

	updated, err := s.picks.UpdatePick(r.Context(), pick.ID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "pick not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePick(w http.ResponseWriter, r *http.Request) {
	pick := s.ownedPick(w, r)
	if pick == nil {
		return
	}

	deleted, err := s.picks.DeletePick(r.Context(), pick.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "pick not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
