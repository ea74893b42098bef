package web

import (
	"encoding/json"
	"io"
	"net/http"

	"tipfolio/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleFollowTipster(w http.ResponseWriter, r *http.Request) {
	// The body is optional; an empty one means a free follow.
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	follow := &models.Follow{
		UserID:           userIDFromContext(r.Context()),
		TipsterID:        chi.URLParam(r, "tipsterID"),
		SubscriptionType: models.SubscriptionType(req.SubscriptionType),
	}

	created, err := s.follows.Follow(r.Context(), follow)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUnfollowTipster(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.follows.Unfollow(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "tipsterID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "follow not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListFollows(w http.ResponseWriter, r *http.Request) {
	follows, err := s.follows.ListUserFollows(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if follows == nil {
		follows = []*models.Follow{}
	}
	writeJSON(w, http.StatusOK, follows)
}

func (s *Server) handleListFollowers(w http.ResponseWriter, r *http.Request) {
	tipster := s.ownedTipster(w, r)
	if tipster == nil {
		return
	}

	followers, err := s.follows.ListTipsterFollowers(r.Context(), tipster.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if followers == nil {
		followers = []*models.Follow{}
	}
	writeJSON(w, http.StatusOK, followers)
}
