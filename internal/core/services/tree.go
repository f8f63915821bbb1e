package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
	"github.com/rootline/research-sources/internal/core/ports/driving"
	"github.com/rootline/research-sources/internal/logger"
)

// Ensure TreeService implements the interface.
var _ driving.TreeService = (*TreeService)(nil)

// TreeService provides collaborative-tree search and profile retrieval.
type TreeService struct {
	provider driven.TreeProvider
	matches  driven.MatchStore
}

// NewTreeService creates a tree service.
func NewTreeService(provider driven.TreeProvider, matches driven.MatchStore) *TreeService {
	return &TreeService{provider: provider, matches: matches}
}

// SearchPersons searches tree profiles and caches every hit with the
// fixed tree-match score.
func (s *TreeService) SearchPersons(ctx context.Context, params domain.TreeSearch) ([]domain.TreePerson, error) {
	logger.Debug("Tree search: first=%q last=%q birth=%q death=%q",
		params.FirstName, params.LastName, params.BirthDate, params.DeathDate)

	persons, err := s.provider.SearchPersons(ctx, params)
	if err != nil {
		return nil, err
	}

	for _, person := range persons {
		if err := s.matches.Upsert(ctx, domain.TreeMatch("", person)); err != nil {
			return nil, fmt.Errorf("caching tree match: %w", err)
		}
	}

	logger.Debug("Tree search: %d profiles cached", len(persons))
	return persons, nil
}

// GetPerson fetches one profile by its tree identifier.
// Returns domain.ErrNotFound when the profile does not exist.
func (s *TreeService) GetPerson(ctx context.Context, treeID string) (*domain.TreePerson, error) {
	if strings.TrimSpace(treeID) == "" {
		return nil, fmt.Errorf("%w: tree id is required", domain.ErrInvalidInput)
	}

	person, err := s.provider.GetPerson(ctx, treeID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, fmt.Errorf("person %q: %w", treeID, domain.ErrNotFound)
	}
	return person, nil
}
