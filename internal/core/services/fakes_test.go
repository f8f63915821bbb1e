package services

import (
	"context"
	"sync"

	"github.com/rootline/research-sources/internal/core/domain"
)

// fakeNewspaperProvider returns canned newspaper results.
type fakeNewspaperProvider struct {
	results    domain.NewspaperResults
	page       domain.NewspaperPage
	err        error
	lastSearch domain.NewspaperSearch
}

func (f *fakeNewspaperProvider) SearchPages(_ context.Context, params domain.NewspaperSearch) (domain.NewspaperResults, error) {
	f.lastSearch = params
	if f.err != nil {
		return domain.NewspaperResults{}, f.err
	}
	return f.results, nil
}

func (f *fakeNewspaperProvider) GetPage(_ context.Context, _ domain.NewspaperPageRequest) (domain.NewspaperPage, error) {
	if f.err != nil {
		return domain.NewspaperPage{}, f.err
	}
	return f.page, nil
}

// fakeTreeProvider returns canned tree profiles.
type fakeTreeProvider struct {
	persons    []domain.TreePerson
	person     *domain.TreePerson
	err        error
	lastSearch domain.TreeSearch
}

func (f *fakeTreeProvider) SearchPersons(_ context.Context, params domain.TreeSearch) ([]domain.TreePerson, error) {
	f.lastSearch = params
	if f.err != nil {
		return nil, f.err
	}
	return f.persons, nil
}

func (f *fakeTreeProvider) GetPerson(_ context.Context, _ string) (*domain.TreePerson, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.person, nil
}

// fakeArchiveProvider returns canned archive records.
type fakeArchiveProvider struct {
	records    []domain.ArchiveRecord
	err        error
	called     bool
	lastSearch domain.ArchiveSearch
}

func (f *fakeArchiveProvider) SearchRecords(_ context.Context, params domain.ArchiveSearch) ([]domain.ArchiveRecord, error) {
	f.called = true
	f.lastSearch = params
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeMatchStore records upserts in memory. Safe for concurrent use,
// the orchestrator caches from several goroutines.
type fakeMatchStore struct {
	mu        sync.Mutex
	upserted  []domain.Match
	upsertErr error
	byPerson  []domain.Match
	queryErr  error
}

func (f *fakeMatchStore) Upsert(_ context.Context, match domain.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, match)
	return nil
}

func (f *fakeMatchStore) ByPerson(_ context.Context, personID, source string) ([]domain.Match, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.byPerson, nil
}

func (f *fakeMatchStore) matches() []domain.Match {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Match, len(f.upserted))
	copy(out, f.upserted)
	return out
}
