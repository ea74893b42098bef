package web

import (
	"net/http"

	"tipfolio/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateBank(w http.ResponseWriter, r *http.Request) {
	var req createBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bank := &models.Bank{
		UserID:         userIDFromContext(r.Context()),
		Name:           req.Name,
		Currency:       req.Currency,
		InitialBalance: req.InitialBalance,
	}

	created, err := s.banks.CreateBank(r.Context(), bank)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := s.banks.ListUserBanks(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if banks == nil {
		banks = []*models.Bank{}
	}
	writeJSON(w, http.StatusOK, banks)
}

// ownedBank loads a bank and verifies it belongs to the caller. Writes the
// response on failure and returns nil.
func (s *Server) ownedBank(w http.ResponseWriter, r *http.Request) *models.Bank {
	bank, err := s.banks.GetBank(r.Context(), chi.URLParam(r, "bankID"))
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if bank == nil || bank.UserID != userIDFromContext(r.Context()) {
		writeError(w, http.StatusNotFound, "bank not found")
		return nil
	}
	return bank
}

func (s *Server) handleGetBank(w http.ResponseWriter, r *http.Request) {
	bank := s.ownedBank(w, r)
	if bank == nil {
		return
	}
	writeJSON(w, http.StatusOK, bank)
}

func (s *Server) handleUpdateBank(w http.ResponseWriter, r *http.Request) {
	bank := s.ownedBank(w, r)
	if bank == nil {
		return
	}

	var req updateBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := models.BankPatch{
		Name:           req.Name,
		Currency:       req.Currency,
		InitialBalance: req.InitialBalance,
		IsActive:       req.IsActive,
	}

	updated, err := s.banks.UpdateBank(r.Context(), bank.ID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "bank not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBank(w http.ResponseWriter, r *http.Request) {
	bank := s.ownedBank(w, r)
	if bank == nil {
		return
	}

	deleted, err := s.banks.DeleteBank(r.Context(), bank.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "bank not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
