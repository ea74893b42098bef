package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tipfolio/models"
	"tipfolio/repository/memstore"
	"tipfolio/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer() *Server {
	factory := memstore.NewUnitOfWorkFactory(memstore.New())
	return NewServer(
		testSecret,
		service.NewUserService(factory),
		service.NewBankService(factory),
		service.NewBetService(factory),
		service.NewStatsService(factory),
		service.NewTipsterService(factory),
		service.NewPickService(factory),
		service.NewFollowService(factory),
		service.NewReferenceService(factory),
	)
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the handler, optionally authenticated,
// and decodes the JSON response into out when non-nil.
func doJSON(t *testing.T, handler http.Handler, method, path, userID string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func registerUser(t *testing.T, handler http.Handler, userID string) {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/users", userID, map[string]any{
		"email": userID + "@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_AuthRequired(t *testing.T) {
	handler := newTestServer().Router()

	rec := doJSON(t, handler, http.MethodGet, "/api/banks", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ReferenceDataIsPublic(t *testing.T) {
	handler := newTestServer().Router()

	var sports []*models.Sport
	rec := doJSON(t, handler, http.MethodGet, "/api/sports", "", nil, &sports)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sports, 3)

	var leagues []*models.League
	rec = doJSON(t, handler, http.MethodGet, "/api/leagues?sportId=football", "", nil, &leagues)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, leagues, 2)
}

func TestServer_UserLifecycle(t *testing.T) {
	handler := newTestServer().Router()

	t.Run("register takes the id from the token", func(t *testing.T) {
		var user models.User
		rec := doJSON(t, handler, http.MethodPost, "/api/users", "uid-1", map[string]any{
			"email":       "one@example.com",
			"displayName": "One",
		}, &user)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "uid-1", user.ID)
		assert.False(t, user.IsPremium)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/users", "uid-2", map[string]any{
			"email": "not-an-email",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("me returns the caller's record", func(t *testing.T) {
		var user models.User
		rec := doJSON(t, handler, http.MethodGet, "/api/users/me", "uid-1", nil, &user)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "one@example.com", user.Email)
	})

	t.Run("unregistered caller gets 404", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/users/me", "stranger", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_BankOwnership(t *testing.T) {
	handler := newTestServer().Router()
	registerUser(t, handler, "alice")
	registerUser(t, handler, "bob")

	var bank models.Bank
	rec := doJSON(t, handler, http.MethodPost, "/api/banks", "alice", map[string]any{
		"name":           "Main",
		"currency":       "EUR",
		"initialBalance": "500",
	}, &bank)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, bank.CurrentBalance.Equal(bank.InitialBalance))

	t.Run("owner can read it", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/banks/"+bank.ID, "alice", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("another user cannot", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/banks/"+bank.ID, "bob", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("another user cannot delete it either", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodDelete, "/api/banks/"+bank.ID, "bob", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, handler, http.MethodGet, "/api/banks/"+bank.ID, "alice", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_BetFlow(t *testing.T) {
	handler := newTestServer().Router()
	registerUser(t, handler, "alice")

	var bank models.Bank
	rec := doJSON(t, handler, http.MethodPost, "/api/banks", "alice", map[string]any{
		"name":           "Main",
		"currency":       "EUR",
		"initialBalance": "500",
	}, &bank)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("create requires a valid payload", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/bets", "alice", map[string]any{
			"bankId": bank.ID,
			"event":  "Derby",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("confidence outside 1-5 is rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/bets", "alice", map[string]any{
			"bankId":     bank.ID,
			"event":      "Derby",
			"market":     "1X2",
			"selection":  "1",
			"odds":       "2.10",
			"stake":      "25",
			"confidence": 7,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	var bet models.Bet
	rec = doJSON(t, handler, http.MethodPost, "/api/bets", "alice", map[string]any{
		"bankId":    bank.ID,
		"event":     "Derby",
		"market":    "1X2",
		"selection": "1",
		"odds":      "2.10",
		"stake":     "25",
	}, &bet)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.BetStatusPending, bet.Status)

	t.Run("list returns the caller's bets", func(t *testing.T) {
		var bets []*models.Bet
		rec := doJSON(t, handler, http.MethodGet, "/api/bets", "alice", nil, &bets)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, bets, 1)
	})

	t.Run("stats cover the caller's bets", func(t *testing.T) {
		var stats models.BetStats
		rec := doJSON(t, handler, http.MethodGet, "/api/stats", "alice", nil, &stats)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, stats.TotalBets)
		// Pending bets contribute nothing financially.
		assert.True(t, stats.TotalStaked.IsZero())
	})
}

func TestServer_NumericBounds(t *testing.T) {
	handler := newTestServer().Router()
	registerUser(t, handler, "alice")

	t.Run("negative initial balance is rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/banks", "alice", map[string]any{
			"name":           "Bad",
			"currency":       "EUR",
			"initialBalance": "-100",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero initial balance is fine", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/banks", "alice", map[string]any{
			"name":           "Empty",
			"currency":       "EUR",
			"initialBalance": "0",
		}, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	var bank models.Bank
	rec := doJSON(t, handler, http.MethodPost, "/api/banks", "alice", map[string]any{
		"name":           "Main",
		"currency":       "EUR",
		"initialBalance": "500",
	}, &bank)
	require.Equal(t, http.StatusCreated, rec.Code)

	betPayload := func(odds, stake string) map[string]any {
		return map[string]any{
			"bankId":    bank.ID,
			"event":     "Derby",
			"market":    "1X2",
			"selection": "1",
			"odds":      odds,
			"stake":     stake,
		}
	}

	t.Run("odds below 1.01 are rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/bets", "alice", betPayload("1.00", "25"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero or negative stakes are rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/bets", "alice", betPayload("2.10", "0"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, handler, http.MethodPost, "/api/bets", "alice", betPayload("2.10", "-25"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	var bet models.Bet
	rec = doJSON(t, handler, http.MethodPost, "/api/bets", "alice", betPayload("1.01", "25"), &bet)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("updates honor the same bounds", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPut, "/api/bets/"+bet.ID, "alice", map[string]any{
			"odds": "1.00",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, handler, http.MethodPut, "/api/bets/"+bet.ID, "alice", map[string]any{
			"stake": "-5",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pick odds carry the same floor", func(t *testing.T) {
		var tipster models.Tipster
		rec := doJSON(t, handler, http.MethodPost, "/api/tipsters", "alice", map[string]any{
			"displayName": "The Oracle",
		}, &tipster)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, handler, http.MethodPost, "/api/tipsters/"+tipster.ID+"/picks", "alice", map[string]any{
			"event":      "Final",
			"market":     "Moneyline",
			"selection":  "Home",
			"odds":       "1.00",
			"confidence": 4,
			"stakeUnits": 2,
			"eventDate":  "2026-09-01T18:00:00Z",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_TipsterAndFollowFlow(t *testing.T) {
	handler := newTestServer().Router()
	registerUser(t, handler, "owner")
	registerUser(t, handler, "fan")

	var tipster models.Tipster
	rec := doJSON(t, handler, http.MethodPost, "/api/tipsters", "owner", map[string]any{
		"displayName": "The Oracle",
	}, &tipster)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("one profile per user", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/tipsters", "owner", map[string]any{
			"displayName": "Second",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("follow bumps the counter", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/tipsters/"+tipster.ID+"/follow", "fan", nil, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var after models.Tipster
		rec = doJSON(t, handler, http.MethodGet, "/api/tipsters/"+tipster.ID, "fan", nil, &after)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, after.FollowerCount)
	})

	t.Run("double follow is rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/tipsters/"+tipster.ID+"/follow", "fan", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("only the owner publishes picks", func(t *testing.T) {
		payload := map[string]any{
			"event":      "Final",
			"market":     "Moneyline",
			"selection":  "Home",
			"odds":       "1.80",
			"confidence": 4,
			"stakeUnits": 2,
			"eventDate":  "2026-09-01T18:00:00Z",
		}

		rec := doJSON(t, handler, http.MethodPost, "/api/tipsters/"+tipster.ID+"/picks", "fan", payload, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, handler, http.MethodPost, "/api/tipsters/"+tipster.ID+"/picks", "owner", payload, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unfollow drops the counter", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodDelete, "/api/tipsters/"+tipster.ID+"/follow", "fan", nil, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		var after models.Tipster
		rec = doJSON(t, handler, http.MethodGet, "/api/tipsters/"+tipster.ID, "fan", nil, &after)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, after.FollowerCount)
	})
}
