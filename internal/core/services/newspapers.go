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

// ocrTextMaxLen caps the full-page OCR text handed to callers.
// The true length is still reported so callers know what was cut.
const ocrTextMaxLen = 5000

// Ensure NewspaperService implements the interface.
var _ driving.NewspaperService = (*NewspaperService)(nil)

// NewspaperService provides historic newspaper search backed by the
// match cache. Direct searches cache hits as unassociated matches.
type NewspaperService struct {
	provider driven.NewspaperProvider
	matches  driven.MatchStore
}

// NewNewspaperService creates a newspaper service.
func NewNewspaperService(provider driven.NewspaperProvider, matches driven.MatchStore) *NewspaperService {
	return &NewspaperService{provider: provider, matches: matches}
}

// SearchNewspapers searches one page of newspaper results and caches
// every hit with the fixed newspaper-mention score.
func (s *NewspaperService) SearchNewspapers(ctx context.Context, params domain.NewspaperSearch) (domain.NewspaperResults, error) {
	if strings.TrimSpace(params.Query) == "" {
		return domain.NewspaperResults{}, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}

	logger.Debug("Newspaper search: %q state=%q dates=%q..%q page=%d",
		params.Query, params.State, params.StartDate, params.EndDate, params.Page)

	results, err := s.provider.SearchPages(ctx, params)
	if err != nil {
		return domain.NewspaperResults{}, err
	}

	for _, item := range results.Items {
		// Open-ended search: no person to associate the match with.
		if err := s.matches.Upsert(ctx, domain.NewspaperMatch("", item)); err != nil {
			return domain.NewspaperResults{}, fmt.Errorf("caching newspaper match: %w", err)
		}
	}

	logger.Debug("Newspaper search: %d of %d total cached", len(results.Items), results.TotalItems)
	return results, nil
}

// GetNewspaperPage fetches one page's OCR text. The text is truncated
// here, at the orchestration boundary, while OCRLength carries the
// true untruncated length.
func (s *NewspaperService) GetNewspaperPage(ctx context.Context, req domain.NewspaperPageRequest) (domain.NewspaperPageView, error) {
	if req.LCCN == "" || req.Date == "" || req.Page < 1 {
		return domain.NewspaperPageView{}, fmt.Errorf("%w: lccn, date and page are required", domain.ErrInvalidInput)
	}

	page, err := s.provider.GetPage(ctx, req)
	if err != nil {
		return domain.NewspaperPageView{}, err
	}

	runes := []rune(page.OCRText)
	text := page.OCRText
	if len(runes) > ocrTextMaxLen {
		text = string(runes[:ocrTextMaxLen])
	}

	return domain.NewspaperPageView{
		URL:       page.URL,
		ImageURL:  page.ImageURL,
		OCRText:   text,
		OCRLength: len(runes),
	}, nil
}
