package web

import (
	"net/http"
	"time"

	"tipfolio/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds the HTTP handlers and their service dependencies.
type Server struct {
	jwtSecret string

	users     *service.UserService
	banks     *service.BankService
	bets      *service.BetService
	stats     *service.StatsService
	tipsters  *service.TipsterService
	picks     *service.PickService
	follows   *service.FollowService
	reference *service.ReferenceService
}

// NewServer creates a server exposing the API over the given services.
func NewServer(
	jwtSecret string,
	users *service.UserService,
	banks *service.BankService,
	bets *service.BetService,
	stats *service.StatsService,
	tipsters *service.TipsterService,
	picks *service.PickService,
	follows *service.FollowService,
	reference *service.ReferenceService,
) *Server {
	return &Server{
		jwtSecret: jwtSecret,
		users:     users,
		banks:     banks,
		bets:      bets,
		stats:     stats,
		tipsters:  tipsters,
		picks:     picks,
		follows:   follows,
		reference: reference,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public reference data
		r.Get("/sports", s.handleListSports)
		r.Get("/leagues", s.handleListLeagues)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Post("/users", s.handleRegisterUser)
			r.Get("/users/me", s.handleGetCurrentUser)
			r.Put("/users/me", s.handleUpdateCurrentUser)

			r.Post("/banks", s.handleCreateBank)
			r.Get("/banks", s.handleListBanks)
			r.Get("/banks/{bankID}", s.handleGetBank)
			r.Put("/banks/{bankID}", s.handleUpdateBank)
			r.Delete("/banks/{bankID}", s.handleDeleteBank)

			r.Post("/bets", s.handleCreateBet)
			r.Get("/bets", s.handleListBets)
			r.Get("/bets/{betID}", s.handleGetBet)
			r.Put("/bets/{betID}", s.handleUpdateBet)
			r.Delete("/bets/{betID}", s.handleDeleteBet)

			r.Get("/stats", s.handleGetStats)

			r.Post("/tipsters", s.handleCreateTipster)
			r.Get("/tipsters", s.handleListTipsters)
			r.Get("/tipsters/me", s.handleGetOwnTipster)
			r.Get("/tipsters/{tipsterID}", s.handleGetTipster)
			r.Put("/tipsters/{tipsterID}", s.handleUpdateTipster)

			r.Post("/tipsters/{tipsterID}/picks", s.handleCreatePick)
			r.Get("/tipsters/{tipsterID}/picks", s.handleListPicks)
			r.Get("/picks/{pickID}", s.handleGetPick)
			r.Put("/picks/{pickID}", s.handleUpdatePick)
			r.Delete("/picks/{pickID}", s.handleDeletePick)

			r.Post("/tipsters/{tipsterID}/follow", s.handleFollowTipster)
			r.Delete("/tipsters/{tipsterID}/follow", s.handleUnfollowTipster)
			r.Get("/tipsters/{tipsterID}/followers", s.handleListFollowers)
			r.Get("/follows", s.handleListFollows)
		})
	})

	return r
}
