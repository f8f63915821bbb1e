package mcp

import (
	"context"

	"github.com/rootline/research-sources/internal/core/domain"
)

// mockNewspaperService implements driving.NewspaperService for testing.
type mockNewspaperService struct {
	results domain.NewspaperResults
	page    domain.NewspaperPageView
	err     error
}

func (m *mockNewspaperService) SearchNewspapers(_ context.Context, _ domain.NewspaperSearch) (domain.NewspaperResults, error) {
	if m.err != nil {
		return domain.NewspaperResults{}, m.err
	}
	return m.results, nil
}

func (m *mockNewspaperService) GetNewspaperPage(_ context.Context, _ domain.NewspaperPageRequest) (domain.NewspaperPageView, error) {
	if m.err != nil {
		return domain.NewspaperPageView{}, m.err
	}
	return m.page, nil
}

// mockTreeService implements driving.TreeService for testing.
type mockTreeService struct {
	persons   []domain.TreePerson
	person    *domain.TreePerson
	personErr error
	err       error
}

func (m *mockTreeService) SearchPersons(_ context.Context, _ domain.TreeSearch) ([]domain.TreePerson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.persons, nil
}

func (m *mockTreeService) GetPerson(_ context.Context, _ string) (*domain.TreePerson, error) {
	if m.personErr != nil {
		return nil, m.personErr
	}
	return m.person, nil
}

// mockArchiveService implements driving.ArchiveService for testing.
type mockArchiveService struct {
	records []domain.ArchiveRecord
	err     error
}

func (m *mockArchiveService) SearchRecords(_ context.Context, _ domain.ArchiveSearch) ([]domain.ArchiveRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// mockResearchService implements driving.ResearchService for testing.
type mockResearchService struct {
	report  *domain.AggregateReport
	matches []domain.Match
	err     error
}

func (m *mockResearchService) CrossReference(_ context.Context, _ domain.PersonQuery, _ domain.SourceSelector) (*domain.AggregateReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockResearchService) Matches(_ context.Context, _, _ string) ([]domain.Match, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.matches, nil
}
