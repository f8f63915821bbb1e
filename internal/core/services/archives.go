package services

import (
	"context"
	"fmt"

	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
	"github.com/rootline/research-sources/internal/core/ports/driving"
	"github.com/rootline/research-sources/internal/logger"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService provides European civil-record search.
type ArchiveService struct {
	provider driven.ArchiveProvider
	matches  driven.MatchStore
}

// NewArchiveService creates an archive service.
func NewArchiveService(provider driven.ArchiveProvider, matches driven.MatchStore) *ArchiveService {
	return &ArchiveService{provider: provider, matches: matches}
}

// SearchRecords searches civil/church/notary records and caches every
// hit with the fixed civil-archive score.
func (s *ArchiveService) SearchRecords(ctx context.Context, params domain.ArchiveSearch) ([]domain.ArchiveRecord, error) {
	logger.Debug("Archive search: name=%q place=%q years=%q..%q type=%q country=%q",
		params.Name, params.Place, params.YearFrom, params.YearTo, params.RecordType, params.CountryCode)

	records, err := s.provider.SearchRecords(ctx, params)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := s.matches.Upsert(ctx, domain.ArchiveMatch("", record)); err != nil {
			return nil, fmt.Errorf("caching archive match: %w", err)
		}
	}

	logger.Debug("Archive search: %d records cached", len(records))
	return records, nil
}
