// Package memstore is the in-process reference storage backend: one map per
// entity kind behind a store-wide mutex. A unit of work holds the mutex from
// Begin until Commit or Rollback, so a cross-entity mutation pair (follow
// insert + follower-count change) is never observed half-applied by another
// caller.
package memstore

import (
	"sync"

	"tipfolio/models"
)

// Store holds every record of every entity kind, keyed by id.
type Store struct {
	mu sync.Mutex

	users    map[string]*models.User
	banks    map[string]*models.Bank
	sports   map[string]*models.Sport
	leagues  map[string]*models.League
	bets     map[string]*models.Bet
	tipsters map[string]*models.Tipster
	picks    map[string]*models.Pick
	follows  map[string]*models.Follow

	// Insertion sequence numbers break creation-time ties so list ordering
	// stays deterministic.
	seq     uint64
	betSeq  map[string]uint64
	pickSeq map[string]uint64
}

// New creates an empty store pre-seeded with the sports and leagues
// reference data.
func New() *Store {
	s := &Store{
		users:    make(map[string]*models.User),
		banks:    make(map[string]*models.Bank),
		sports:   make(map[string]*models.Sport),
		leagues:  make(map[string]*models.League),
		bets:     make(map[string]*models.Bet),
		tipsters: make(map[string]*models.Tipster),
		picks:    make(map[string]*models.Pick),
		follows:  make(map[string]*models.Follow),
		betSeq:   make(map[string]uint64),
		pickSeq:  make(map[string]uint64),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	for _, sport := range []*models.Sport{
		{ID: "football", Name: "Football", Slug: "football"},
		{ID: "basketball", Name: "Basketball", Slug: "basketball"},
		{ID: "tennis", Name: "Tennis", Slug: "tennis"},
	} {
		s.sports[sport.ID] = sport
	}
	for _, league := range []*models.League{
		{ID: "la-liga", SportID: "football", Name: "La Liga", Slug: "la-liga", Country: "Spain"},
		{ID: "premier-league", SportID: "football", Name: "Premier League", Slug: "premier-league", Country: "England"},
		{ID: "acb", SportID: "basketball", Name: "Liga ACB", Slug: "acb", Country: "Spain"},
		{ID: "nba", SportID: "basketball", Name: "NBA", Slug: "nba", Country: "United States"},
	} {
		s.leagues[league.ID] = league
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// Record clones keep callers from mutating store state through returned
// pointers. Slices are copied; pointed-to values are treated as immutable.

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneBank(b *models.Bank) *models.Bank {
	c := *b
	return &c
}

func cloneBet(b *models.Bet) *models.Bet {
	c := *b
	if b.Tags != nil {
		c.Tags = append([]string(nil), b.Tags...)
	}
	return &c
}

func cloneTipster(t *models.Tipster) *models.Tipster {
	c := *t
	return &c
}

func clonePick(p *models.Pick) *models.Pick {
	c := *p
	return &c
}

func cloneFollow(f *models.Follow) *models.Follow {
	c := *f
	return &c
}
