package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
	"github.com/rootline/research-sources/internal/core/ports/driving"
	"github.com/rootline/research-sources/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// ResearchService orchestrates a person query across all applicable
// sources. Providers are invoked concurrently and independently: one
// provider's failure never cancels or fails the others, it only shows
// up as that source's error entry in the aggregate report.
type ResearchService struct {
	newspapers driven.NewspaperProvider
	tree       driven.TreeProvider
	archive    driven.ArchiveProvider
	matches    driven.MatchStore
}

// NewResearchService creates the cross-reference orchestrator.
func NewResearchService(
	newspapers driven.NewspaperProvider,
	tree driven.TreeProvider,
	archive driven.ArchiveProvider,
	matches driven.MatchStore,
) *ResearchService {
	return &ResearchService{
		newspapers: newspapers,
		tree:       tree,
		archive:    archive,
		matches:    matches,
	}
}

// CrossReference fans the query out to every applicable source, caches
// each successful result under the caller's person id, and assembles
// the aggregate report once all calls have settled.
func (s *ResearchService) CrossReference(ctx context.Context, query domain.PersonQuery, sources domain.SourceSelector) (*domain.AggregateReport, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: given name and surname are required", err)
	}
	if !sources.Valid() {
		return nil, fmt.Errorf("%w: unknown source selector", domain.ErrInvalidInput)
	}

	logger.Section("Cross Reference")
	logger.Debug("Person: %q, selector: %v", query.FullName(), sources)

	// Applicability gates. Newspapers and the tree are applicable
	// whenever selected; the civil archive only covers NL/BE/FR, so a
	// non-European query skips the call entirely.
	searchNewspapers := sources.Includes(domain.SourceNewspapers)
	searchTree := sources.Includes(domain.SourceWikiTree)
	searchArchive := sources.Includes(domain.SourceOpenArch) &&
		domain.IsEuropeanLocation(query.BirthPlace, query.DeathPlace)

	report := &domain.AggregateReport{
		GivenName: query.GivenName,
		Surname:   query.Surname,
		BirthYear: query.BirthYear,
		DeathYear: query.DeathYear,
	}

	var (
		wg        sync.WaitGroup
		cacheMu   sync.Mutex
		cacheErrs []error
	)
	recordCacheErr := func(err error) {
		cacheMu.Lock()
		cacheErrs = append(cacheErrs, err)
		cacheMu.Unlock()
	}

	if searchNewspapers {
		report.Newspapers.Searched = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.newspapers.SearchPages(ctx, domain.NewspaperSearch{
				Query:     query.FullName(),
				State:     domain.ExtractUSState(query.BirthPlace),
				StartDate: domain.StartOfYear(query.BirthYear),
				EndDate:   domain.EndOfYear(query.DeathYear),
			})
			if err != nil {
				logger.Warn("Newspaper search failed: %v", err)
				report.Newspapers.Err = err
				return
			}
			report.Newspapers.Items = results.Items
			for _, item := range results.Items {
				if cerr := s.matches.Upsert(ctx, domain.NewspaperMatch(query.PersonID, item)); cerr != nil {
					recordCacheErr(fmt.Errorf("caching newspaper match: %w", cerr))
					return
				}
			}
		}()
	}

	if searchTree {
		report.Tree.Searched = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			persons, err := s.tree.SearchPersons(ctx, domain.TreeSearch{
				FirstName:     query.GivenName,
				LastName:      query.Surname,
				BirthDate:     query.BirthYear,
				DeathDate:     query.DeathYear,
				BirthLocation: query.BirthPlace,
				DeathLocation: query.DeathPlace,
			})
			if err != nil {
				logger.Warn("Tree search failed: %v", err)
				report.Tree.Err = err
				return
			}
			report.Tree.Persons = persons
			for _, person := range persons {
				if cerr := s.matches.Upsert(ctx, domain.TreeMatch(query.PersonID, person)); cerr != nil {
					recordCacheErr(fmt.Errorf("caching tree match: %w", cerr))
					return
				}
			}
		}()
	}

	if searchArchive {
		report.Archive.Searched = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			place := query.BirthPlace
			if place == "" {
				place = query.DeathPlace
			}
			records, err := s.archive.SearchRecords(ctx, domain.ArchiveSearch{
				Name:     query.FullName(),
				YearFrom: query.BirthYear,
				YearTo:   query.DeathYear,
				Place:    place,
			})
			if err != nil {
				logger.Warn("Archive search failed: %v", err)
				report.Archive.Err = err
				return
			}
			report.Archive.Records = records
			for _, record := range records {
				if cerr := s.matches.Upsert(ctx, domain.ArchiveMatch(query.PersonID, record)); cerr != nil {
					recordCacheErr(fmt.Errorf("caching archive match: %w", cerr))
					return
				}
			}
		}()
	}

	// Join, not race: a fast-failing source never cancels the others.
	wg.Wait()

	if len(cacheErrs) > 0 {
		// A cache write failure indicates a storage problem; it fails
		// the whole operation, unlike a provider failure.
		return nil, cacheErrs[0]
	}

	if report.Newspapers.Searched {
		report.SourcesSearched = append(report.SourcesSearched, domain.SourceNewspapers)
		if report.Newspapers.Err == nil {
			report.TotalResults += len(report.Newspapers.Items)
		}
	}
	if report.Tree.Searched {
		report.SourcesSearched = append(report.SourcesSearched, domain.SourceWikiTree)
		if report.Tree.Err == nil {
			report.TotalResults += len(report.Tree.Persons)
		}
	}
	if report.Archive.Searched {
		report.SourcesSearched = append(report.SourcesSearched, domain.SourceOpenArch)
		if report.Archive.Err == nil {
			report.TotalResults += len(report.Archive.Records)
		}
	}

	logger.Debug("Cross reference: %d results across %v", report.TotalResults, report.SourcesSearched)
	return report, nil
}

// Matches returns previously cached matches for a person, optionally
// filtered to one cache source name.
func (s *ResearchService) Matches(ctx context.Context, personID, source string) ([]domain.Match, error) {
	if personID == "" {
		return nil, fmt.Errorf("%w: person id is required", domain.ErrInvalidInput)
	}
	switch source {
	case "", domain.CacheSourceNewspapers, domain.CacheSourceWikiTree, domain.CacheSourceOpenArch:
	default:
		return nil, fmt.Errorf("%q: %w", source, domain.ErrUnknownSource)
	}
	return s.matches.ByPerson(ctx, personID, source)
}
