package web

import (
	"net/http"

	"tipfolio/models"
)

// handleRegisterUser creates the account record for the authenticated
// identity. The user id comes from the token subject, never the body.
func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user := &models.User{
		ID:          userIDFromContext(r.Context()),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}

	created, err := s.users.Register(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByID(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := models.UserPatch{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}

	user, err := s.users.UpdateProfile(r.Context(), userIDFromContext(r.Context()), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
