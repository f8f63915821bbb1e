package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rootline/research-sources/internal/connectors/findagrave"
	"github.com/rootline/research-sources/internal/core/domain"
)

// SearchNewspapersInput is the input schema for the search_newspapers tool.
type SearchNewspapersInput struct {
	Query     string `json:"query" jsonschema:"search query (person name, event, etc.)"`
	State     string `json:"state,omitempty" jsonschema:"US state name (e.g. California, Texas)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"end date (YYYY-MM-DD)"`
	Page      int    `json:"page,omitempty" jsonschema:"result page number (default 1)"`
}

// NewspaperEntry is one newspaper hit, or a source-level error slot.
type NewspaperEntry struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Page    int    `json:"page,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchNewspapersOutput is the output schema for the search_newspapers tool.
type SearchNewspapersOutput struct {
	Total int              `json:"total"`
	Count int              `json:"count"`
	Page  int              `json:"page"`
	Items []NewspaperEntry `json:"items"`
}

// GetNewspaperPageInput is the input schema for the get_newspaper_page tool.
type GetNewspaperPageInput struct {
	LCCN    string `json:"lccn" jsonschema:"Library of Congress Control Number (LCCN)"`
	Date    string `json:"date" jsonschema:"date of publication (YYYY-MM-DD)"`
	Page    int    `json:"page" jsonschema:"page number"`
	Edition int    `json:"edition,omitempty" jsonschema:"edition number (default 1)"`
}

// GetNewspaperPageOutput is the output schema for the get_newspaper_page tool.
type GetNewspaperPageOutput struct {
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
	OCRText  string `json:"ocr_text"`

	// OCRLength is the untruncated OCR text length.
	OCRLength int `json:"ocr_length"`
}

// SearchWikiTreeInput is the input schema for the search_wikitree tool.
type SearchWikiTreeInput struct {
	FirstName     string `json:"first_name,omitempty" jsonschema:"first/given name"`
	LastName      string `json:"last_name,omitempty" jsonschema:"last/surname"`
	BirthDate     string `json:"birth_date,omitempty" jsonschema:"birth year (YYYY)"`
	DeathDate     string `json:"death_date,omitempty" jsonschema:"death year (YYYY)"`
	BirthLocation string `json:"birth_location,omitempty" jsonschema:"birth location"`
	DeathLocation string `json:"death_location,omitempty" jsonschema:"death location"`
	Limit         int    `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

// TreePersonEntry is one tree profile, or a source-level error slot.
type TreePersonEntry struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	DeathDate     string `json:"death_date,omitempty"`
	BirthLocation string `json:"birth_location,omitempty"`
	DeathLocation string `json:"death_location,omitempty"`
	URL           string `json:"url,omitempty"`
	Privacy       int    `json:"privacy,omitempty"`
	Error         string `json:"error,omitempty"`
}

// SearchWikiTreeOutput is the output schema for the search_wikitree tool.
type SearchWikiTreeOutput struct {
	Count   int               `json:"count"`
	Results []TreePersonEntry `json:"results"`
}

// GetWikiTreePersonInput is the input schema for the get_wikitree_person tool.
type GetWikiTreePersonInput struct {
	WikiTreeID string `json:"wikitree_id" jsonschema:"WikiTree person ID (e.g. Smith-12345)"`
}

// SearchOpenArchivesInput is the input schema for the search_open_archives tool.
type SearchOpenArchivesInput struct {
	Name        string `json:"name,omitempty" jsonschema:"person name to search"`
	BirthYear   string `json:"birth_year,omitempty" jsonschema:"birth year (YYYY)"`
	DeathYear   string `json:"death_year,omitempty" jsonschema:"death year (YYYY)"`
	Place       string `json:"place,omitempty" jsonschema:"place name"`
	SourceType  string `json:"source_type,omitempty" jsonschema:"record type: civil, church, notary or all (default all)"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"country code (NL=Netherlands, BE=Belgium, FR=France)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

// ArchiveEntry is one civil-record hit, or a source-level error slot.
type ArchiveEntry struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Date        string   `json:"date,omitempty"`
	Place       string   `json:"place,omitempty"`
	SourceType  string   `json:"source_type,omitempty"`
	PersonNames []string `json:"person_names,omitempty"`
	URL         string   `json:"url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// SearchOpenArchivesOutput is the output schema for the search_open_archives tool.
type SearchOpenArchivesOutput struct {
	Count   int            `json:"count"`
	Results []ArchiveEntry `json:"results"`
}

// CrossReferenceInput is the input schema for the cross_reference_person tool.
type CrossReferenceInput struct {
	GivenName  string   `json:"given_name" jsonschema:"given/first name"`
	Surname    string   `json:"surname" jsonschema:"surname/last name"`
	BirthYear  string   `json:"birth_year,omitempty" jsonschema:"birth year (YYYY)"`
	BirthPlace string   `json:"birth_place,omitempty" jsonschema:"birth place"`
	DeathYear  string   `json:"death_year,omitempty" jsonschema:"death year (YYYY)"`
	DeathPlace string   `json:"death_place,omitempty" jsonschema:"death place"`
	Sources    []string `json:"sources_to_search,omitempty" jsonschema:"which sources to search: newspapers, wikitree, openarch or all (default all)"`
	PersonID   string   `json:"person_id,omitempty" jsonschema:"person ID to associate results with"`
}

// CrossReferencePerson echoes the queried person in the report.
type CrossReferencePerson struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
	BirthYear string `json:"birth_year,omitempty"`
	DeathYear string `json:"death_year,omitempty"`
}

// CrossReferenceResults carries each searched source's results or its
// single error entry. Sources that were not searched are omitted.
type CrossReferenceResults struct {
	Newspapers *[]NewspaperEntry  `json:"newspapers,omitempty"`
	WikiTree   *[]TreePersonEntry `json:"wikitree,omitempty"`
	OpenArch   *[]ArchiveEntry    `json:"openarch,omitempty"`
}

// CrossReferenceOutput is the output schema for the cross_reference_person tool.
type CrossReferenceOutput struct {
	Person          CrossReferencePerson  `json:"person"`
	SourcesSearched []string              `json:"sources_searched"`
	Results         CrossReferenceResults `json:"results"`
	TotalResults    int                   `json:"total_results"`
}

// FindAGraveURLInput is the input schema for the get_findagrave_url tool.
type FindAGraveURLInput struct {
	MemorialID string `json:"memorial_id,omitempty" jsonschema:"Find A Grave memorial ID"`
	RecordID   string `json:"record_id,omitempty" jsonschema:"FamilySearch record ID to extract the memorial ID from"`
}

// FindAGraveURLOutput is the output schema for the get_findagrave_url tool.
type FindAGraveURLOutput struct {
	MemorialID string `json:"memorial_id"`
	URL        string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	if s.ports.Newspapers != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_newspapers",
			Description: "Search Chronicling America (Library of Congress) historic newspapers (1789-1963)",
		}, s.handleSearchNewspapers)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_newspaper_page",
			Description: "Get full OCR text and image for a specific newspaper page",
		}, s.handleGetNewspaperPage)
	}
	if s.ports.Tree != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_wikitree",
			Description: "Search WikiTree collaborative genealogy tree",
		}, s.handleSearchWikiTree)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_wikitree_person",
			Description: "Get detailed profile for a WikiTree person",
		}, s.handleGetWikiTreePerson)
	}
	if s.ports.Archive != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_open_archives",
			Description: "Search Open Archives (Dutch, Belgian, French historical records)",
		}, s.handleSearchOpenArchives)
	}
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cross_reference_person",
		Description: "Search ALL external sources in parallel for a person (newspapers, WikiTree, Open Archives)",
	}, s.handleCrossReferencePerson)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_findagrave_url",
		Description: "Construct a Find A Grave memorial URL from a memorial or FamilySearch record ID",
	}, s.handleFindAGraveURL)
}

// handleSearchNewspapers handles the search_newspapers tool invocation.
func (s *Server) handleSearchNewspapers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNewspapersInput,
) (*mcp.CallToolResult, SearchNewspapersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	results, err := s.ports.Newspapers.SearchNewspapers(ctx, domain.NewspaperSearch{
		Query:     input.Query,
		State:     input.State,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Page:      page,
	})
	if err != nil {
		return nil, SearchNewspapersOutput{}, err
	}

	output := SearchNewspapersOutput{
		Total: results.TotalItems,
		Count: len(results.Items),
		Page:  page,
		Items: newspaperEntries(results.Items),
	}
	return nil, output, nil
}

// handleGetNewspaperPage handles the get_newspaper_page tool invocation.
func (s *Server) handleGetNewspaperPage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNewspaperPageInput,
) (*mcp.CallToolResult, GetNewspaperPageOutput, error) {
	page, err := s.ports.Newspapers.GetNewspaperPage(ctx, domain.NewspaperPageRequest{
		LCCN:    input.LCCN,
		Date:    input.Date,
		Edition: input.Edition,
		Page:    input.Page,
	})
	if err != nil {
		return nil, GetNewspaperPageOutput{}, err
	}

	return nil, GetNewspaperPageOutput{
		URL:       page.URL,
		ImageURL:  page.ImageURL,
		OCRText:   page.OCRText,
		OCRLength: page.OCRLength,
	}, nil
}

// handleSearchWikiTree handles the search_wikitree tool invocation.
func (s *Server) handleSearchWikiTree(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchWikiTreeInput,
) (*mcp.CallToolResult, SearchWikiTreeOutput, error) {
	persons, err := s.ports.Tree.SearchPersons(ctx, domain.TreeSearch{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		BirthDate:     input.BirthDate,
		DeathDate:     input.DeathDate,
		BirthLocation: input.BirthLocation,
		DeathLocation: input.DeathLocation,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, SearchWikiTreeOutput{}, err
	}

	return nil, SearchWikiTreeOutput{
		Count:   len(persons),
		Results: treePersonEntries(persons),
	}, nil
}

// handleGetWikiTreePerson handles the get_wikitree_person tool invocation.
// A missing profile is reported as a structured error entry, not a tool
// failure.
func (s *Server) handleGetWikiTreePerson(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetWikiTreePersonInput,
) (*mcp.CallToolResult, TreePersonEntry, error) {
	person, err := s.ports.Tree.GetPerson(ctx, input.WikiTreeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, TreePersonEntry{Error: "Person not found"}, nil
	}
	if err != nil {
		return nil, TreePersonEntry{}, err
	}

	return nil, treePersonEntry(*person), nil
}

// handleSearchOpenArchives handles the search_open_archives tool invocation.
func (s *Server) handleSearchOpenArchives(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchOpenArchivesInput,
) (*mcp.CallToolResult, SearchOpenArchivesOutput, error) {
	recordType := input.SourceType
	if recordType == "" {
		recordType = domain.RecordTypeAll
	}

	records, err := s.ports.Archive.SearchRecords(ctx, domain.ArchiveSearch{
		Name:        input.Name,
		YearFrom:    input.BirthYear,
		YearTo:      input.DeathYear,
		Place:       input.Place,
		RecordType:  recordType,
		CountryCode: input.CountryCode,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, SearchOpenArchivesOutput{}, err
	}

	return nil, SearchOpenArchivesOutput{
		Count:   len(records),
		Results: archiveEntries(records),
	}, nil
}

// handleCrossReferencePerson handles the cross_reference_person tool invocation.
func (s *Server) handleCrossReferencePerson(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CrossReferenceInput,
) (*mcp.CallToolResult, CrossReferenceOutput, error) {
	report, err := s.ports.Research.CrossReference(ctx, domain.PersonQuery{
		GivenName:  input.GivenName,
		Surname:    input.Surname,
		BirthYear:  input.BirthYear,
		BirthPlace: input.BirthPlace,
		DeathYear:  input.DeathYear,
		DeathPlace: input.DeathPlace,
		PersonID:   input.PersonID,
	}, domain.SourceSelector(input.Sources))
	if err != nil {
		return nil, CrossReferenceOutput{}, err
	}

	output := CrossReferenceOutput{
		Person: CrossReferencePerson{
			GivenName: report.GivenName,
			Surname:   report.Surname,
			BirthYear: report.BirthYear,
			DeathYear: report.DeathYear,
		},
		SourcesSearched: report.SourcesSearched,
		TotalResults:    report.TotalResults,
	}

	if report.Newspapers.Searched {
		entries := newspaperEntries(report.Newspapers.Items)
		if report.Newspapers.Err != nil {
			entries = []NewspaperEntry{{Error: report.Newspapers.Err.Error()}}
		}
		output.Results.Newspapers = &entries
	}
	if report.Tree.Searched {
		entries := treePersonEntries(report.Tree.Persons)
		if report.Tree.Err != nil {
			entries = []TreePersonEntry{{Error: report.Tree.Err.Error()}}
		}
		output.Results.WikiTree = &entries
	}
	if report.Archive.Searched {
		entries := archiveEntries(report.Archive.Records)
		if report.Archive.Err != nil {
			entries = []ArchiveEntry{{Error: report.Archive.Err.Error()}}
		}
		output.Results.OpenArch = &entries
	}

	return nil, output, nil
}

// handleFindAGraveURL handles the get_findagrave_url tool invocation.
func (s *Server) handleFindAGraveURL(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FindAGraveURLInput,
) (*mcp.CallToolResult, FindAGraveURLOutput, error) {
	memorialID := input.MemorialID
	if memorialID == "" {
		id, err := findagrave.MemorialIDFromRecord(input.RecordID)
		if err != nil {
			return nil, FindAGraveURLOutput{}, err
		}
		memorialID = id
	}

	return nil, FindAGraveURLOutput{
		MemorialID: memorialID,
		URL:        findagrave.MemorialURL(memorialID),
	}, nil
}

func newspaperEntries(items []domain.NewspaperItem) []NewspaperEntry {
	entries := make([]NewspaperEntry, len(items))
	for i, item := range items {
		entries[i] = NewspaperEntry{
			ID:      item.ID,
			Title:   item.Title,
			Date:    item.Date,
			Page:    item.Page,
			URL:     item.URL,
			Snippet: item.Snippet,
		}
	}
	return entries
}

func treePersonEntry(p domain.TreePerson) TreePersonEntry {
	return TreePersonEntry{
		ID:            p.ID,
		Name:          p.Name,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		BirthDate:     p.BirthDate,
		DeathDate:     p.DeathDate,
		BirthLocation: p.BirthLocation,
		DeathLocation: p.DeathLocation,
		URL:           p.URL,
		Privacy:       p.Privacy,
	}
}

func treePersonEntries(persons []domain.TreePerson) []TreePersonEntry {
	entries := make([]TreePersonEntry, len(persons))
	for i, person := range persons {
		entries[i] = treePersonEntry(person)
	}
	return entries
}

func archiveEntries(records []domain.ArchiveRecord) []ArchiveEntry {
	entries := make([]ArchiveEntry, len(records))
	for i, record := range records {
		entries[i] = ArchiveEntry{
			ID:          record.ID,
			Title:       record.Title,
			Date:        record.Date,
			Place:       record.Place,
			SourceType:  record.RecordType,
			PersonNames: record.PersonNames,
			URL:         record.ArchiveURL,
			ImageURL:    record.ImageURL,
		}
	}
	return entries
}
