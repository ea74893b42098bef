package memstore

import (
	"context"
	"sort"

	"tipfolio/models"
)

// SportRepository reads the seeded sports reference data
type SportRepository struct {
	store *Store
}

// GetByID retrieves a sport by id, returning nil when absent
func (r *SportRepository) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	sport, ok := r.store.sports[id]
	if !ok {
		return nil, nil
	}
	c := *sport
	return &c, nil
}

// List returns all sports, ordered by name
func (r *SportRepository) List(ctx context.Context) ([]*models.Sport, error) {
	sports := make([]*models.Sport, 0, len(r.store.sports))
	for _, sport := range r.store.sports {
		c := *sport
		sports = append(sports, &c)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i].Name < sports[j].Name })
	return sports, nil
}

// LeagueRepository reads the seeded leagues reference data
type LeagueRepository struct {
	store *Store
}

// GetByID retrieves a league by id, returning nil when absent
func (r *LeagueRepository) GetByID(ctx context.Context, id string) (*models.League, error) {
	league, ok := r.store.leagues[id]
	if !ok {
		return nil, nil
	}
	c := *league
	return &c, nil
}

// List returns all leagues, or only those of one sport when sportID is
// non-empty; ordered by name
func (r *LeagueRepository) List(ctx context.Context, sportID string) ([]*models.League, error) {
	var leagues []*models.League
	for _, league := range r.store.leagues {
		if sportID != "" && league.SportID != sportID {
			continue
		}
		c := *league
		leagues = append(leagues, &c)
	}
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].Name < leagues[j].Name })
	return leagues, nil
}
