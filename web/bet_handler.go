package web

import (
	"net/http"

	"tipfolio/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateBet(w http.ResponseWriter, r *http.Request) {
	var req createBetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID := userIDFromContext(r.Context())

	// A bet may only be staked against one of the caller's own banks.
	bank, err := s.banks.GetBank(r.Context(), req.BankID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if bank == nil || bank.UserID != userID {
		writeError(w, http.StatusBadRequest, "bank not found")
		return
	}

	bet := &models.Bet{
		UserID:     userID,
		BankID:     req.BankID,
		Event:      req.Event,
		Market:     req.Market,
		Selection:  req.Selection,
		Odds:       req.Odds,
		Stake:      req.Stake,
		SportID:    req.SportID,
		LeagueID:   req.LeagueID,
		Bookmaker:  req.Bookmaker,
		Notes:      req.Notes,
		Confidence: req.Confidence,
		Tags:       req.Tags,
		EventDate:  req.EventDate,
	}

	created, err := s.bets.CreateBet(r.Context(), bet)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListBets(w http.ResponseWriter, r *http.Request) {
	opts := models.BetListOptions{
		BankID: r.URL.Query().Get("bankId"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	bets, err := s.bets.ListUserBets(r.Context(), userIDFromContext(r.Context()), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if bets == nil {
		bets = []*models.Bet{}
	}
	writeJSON(w, http.StatusOK, bets)
}

// ownedBet loads a bet and verifies it belongs to the caller. Writes the
// response on failure and returns nil.
func (s *Server) ownedBet(w http.ResponseWriter, r *http.Request) *models.Bet {
	bet, err := s.bets.GetBet(r.Context(), chi.URLParam(r, "betID"))
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if bet == nil || bet.UserID != userIDFromContext(r.Context()) {
		writeError(w, http.StatusNotFound, "bet not found")
		return nil
	}
	return bet
}

func (s *Server) handleGetBet(w http.ResponseWriter, r *http.Request) {
	bet := s.ownedBet(w, r)
	if bet == nil {
		return
	}
	writeJSON(w, http.StatusOK, bet)
}

func (s *Server) handleUpdateBet(w http.ResponseWriter, r *http.Request) {
	bet := s.ownedBet(w, r)
	if bet == nil {
		return
	}

	var req updateBetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.BankID != nil {
		// A bet may only be moved onto another of the caller's own banks.
		bank, err := s.banks.GetBank(r.Context(), *req.BankID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if bank == nil || bank.UserID != userIDFromContext(r.Context()) {
			writeError(w, http.StatusBadRequest, "bank not found")
			return
		}
	}

	patch := models.BetPatch{
		BankID:     req.BankID,
		Event:      req.Event,
		Market:     req.Market,
		Selection:  req.Selection,
		Odds:       req.Odds,
		Stake:      req.Stake,
		SportID:    req.SportID,
		LeagueID:   req.LeagueID,
		Bookmaker:  req.Bookmaker,
		Notes:      req.Notes,
		Confidence: req.Confidence,
		Tags:       req.Tags,
		EventDate:  req.EventDate,
	}

	updated, err := s.bets.UpdateBet(r.Context(), bet.ID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "bet not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBet(w http.ResponseWriter, r *http.Request) {
	bet := s.ownedBet(w, r)
	if bet == nil {
		return
	}

	deleted, err := s.bets.DeleteBet(r.Context(), bet.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "bet not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetUserBetStats(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
