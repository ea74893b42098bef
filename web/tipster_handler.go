package web

import (
	"net/http"

	"tipfolio/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateTipster(w http.ResponseWriter, r *http.Request) {
	var req createTipsterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tipster := &models.Tipster{
		UserID:            userIDFromContext(r.Context()),
		DisplayName:       req.DisplayName,
		Bio:               req.Bio,
		AvatarURL:         req.AvatarURL,
		SubscriptionPrice: req.SubscriptionPrice,
	}

	created, err := s.tipsters.CreateTipster(r.Context(), tipster)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTipsters(w http.ResponseWriter, r *http.Request) {
	opts := models.TipsterListOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	// The directory only shows public profiles unless explicitly asked.
	if r.URL.Query().Get("includePrivate") != "true" {
		public := true
		opts.IsPublic = &public
	}

	tipsters, err := s.tipsters.ListTipsters(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tipsters == nil {
		tipsters = []*models.Tipster{}
	}
	writeJSON(w, http.StatusOK, tipsters)
}

func (s *Server) handleGetOwnTipster(w http.ResponseWriter, r *http.Request) {
	tipster, err := s.tipsters.GetUserTipster(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tipster == nil {
		writeError(w, http.StatusNotFound, "tipster profile not found")
		return
	}
	writeJSON(w, http.StatusOK, tipster)
}

func (s *Server) handleGetTipster(w http.ResponseWriter, r *http.Request) {
	tipster, err := s.tipsters.GetTipster(r.Context(), chi.URLParam(r, "tipsterID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tipster == nil {
		writeError(w, http.StatusNotFound, "tipster not found")
		return
	}
	writeJSON(w, http.StatusOK, tipster)
}

// ownedTipster loads a tipster and verifies the caller owns the profile.
// Writes the response on failure and returns nil.
func (s *Server) ownedTipster(w http.ResponseWriter, r *http.Request) *models.Tipster {
	tipster, err := s.tipsters.GetTipster(r.Context(), chi.URLParam(r, "tipsterID"))
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if tipster == nil || tipster.UserID != userIDFromContext(r.Context()) {
		writeError(w, http.StatusNotFound, "tipster not found")
		return nil
	}
	return tipster
}

func (s *Server) handleUpdateTipster(w http.ResponseWriter, r *http.Request) {
	tipster := s.ownedTipster(w, r)
	if tipster == nil {
		return
	}

	var req updateTipsterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := models.TipsterPatch{
		DisplayName:       req.DisplayName,
		Bio:               req.Bio,
		AvatarURL:         req.AvatarURL,
		SubscriptionPrice: req.SubscriptionPrice,
		IsPublic:          req.IsPublic,
	}

	updated, err := s.tipsters.UpdateTipster(r.Context(), tipster.ID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "tipster not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
