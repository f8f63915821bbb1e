package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rootline/research-sources/internal/core/domain"
)

var (
	crossrefBirthYear  string
	crossrefBirthPlace string
	crossrefDeathYear  string
	crossrefDeathPlace string
	crossrefSources    []string
	crossrefPersonID   string
	crossrefJSON       bool
)

var crossrefCmd = &cobra.Command{
	Use:   "crossref [given-name] [surname]",
	Short: "Search all applicable sources for a person",
	Long: `Searches every applicable external source concurrently and caches
the match candidates. One source failing does not abort the others;
its error is reported in the output instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runCrossref,
}

func init() {
	crossrefCmd.Flags().StringVar(&crossrefBirthYear, "birth-year", "", "birth year (YYYY)")
	crossrefCmd.Flags().StringVar(&crossrefBirthPlace, "birth-place", "", "birth place")
	crossrefCmd.Flags().StringVar(&crossrefDeathYear, "death-year", "", "death year (YYYY)")
	crossrefCmd.Flags().StringVar(&crossrefDeathPlace, "death-place", "", "death place")
	crossrefCmd.Flags().StringSliceVar(&crossrefSources, "sources", []string{domain.SelectorAll},
		"sources to search: newspapers, wikitree, openarch or all")
	crossrefCmd.Flags().StringVar(&crossrefPersonID, "person-id", "", "person ID to associate results with")
	crossrefCmd.Flags().BoolVar(&crossrefJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(crossrefCmd)
}

func runCrossref(cmd *cobra.Command, args []string) error {
	app, err := buildServices()
	if err != nil {
		return err
	}

	report, err := app.research.CrossReference(cmd.Context(), domain.PersonQuery{
		GivenName:  args[0],
		Surname:    args[1],
		BirthYear:  crossrefBirthYear,
		BirthPlace: crossrefBirthPlace,
		DeathYear:  crossrefDeathYear,
		DeathPlace: crossrefDeathPlace,
		PersonID:   crossrefPersonID,
	}, domain.SourceSelector(crossrefSources))
	if err != nil {
		return fmt.Errorf("cross reference failed: %w", err)
	}

	if crossrefJSON {
		return outputReportJSON(cmd, report)
	}
	return outputReportText(cmd, report)
}

// reportJSON mirrors the MCP report shape for CLI consumers.
type reportJSON struct {
	GivenName       string   `json:"given_name"`
	Surname         string   `json:"surname"`
	SourcesSearched []string `json:"sources_searched"`
	Newspapers      any      `json:"newspapers,omitempty"`
	WikiTree        any      `json:"wikitree,omitempty"`
	OpenArch        any      `json:"openarch,omitempty"`
	TotalResults    int      `json:"total_results"`
}

func outputReportJSON(cmd *cobra.Command, report *domain.AggregateReport) error {
	out := reportJSON{
		GivenName:       report.GivenName,
		Surname:         report.Surname,
		SourcesSearched: report.SourcesSearched,
		TotalResults:    report.TotalResults,
	}
	if report.Newspapers.Searched {
		out.Newspapers = sourceSlot(report.Newspapers.Err, report.Newspapers.Items)
	}
	if report.Tree.Searched {
		out.WikiTree = sourceSlot(report.Tree.Err, report.Tree.Persons)
	}
	if report.Archive.Searched {
		out.OpenArch = sourceSlot(report.Archive.Err, report.Archive.Records)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// sourceSlot renders one source's results, or its error entry.
func sourceSlot[T any](err error, items []T) any {
	if err != nil {
		return []map[string]string{{"error": err.Error()}}
	}
	return items
}

func outputReportText(cmd *cobra.Command, report *domain.AggregateReport) error {
	cmd.Printf("Searched %v for %s %s\n", report.SourcesSearched, report.GivenName, report.Surname)

	if report.Newspapers.Searched {
		if report.Newspapers.Err != nil {
			cmd.Printf("  newspapers: error: %v\n", report.Newspapers.Err)
		} else {
			cmd.Printf("  newspapers: %d results\n", len(report.Newspapers.Items))
		}
	}
	if report.Tree.Searched {
		if report.Tree.Err != nil {
			cmd.Printf("  wikitree: error: %v\n", report.Tree.Err)
		} else {
			cmd.Printf("  wikitree: %d results\n", len(report.Tree.Persons))
		}
	}
	if report.Archive.Searched {
		if report.Archive.Err != nil {
			cmd.Printf("  openarch: error: %v\n", report.Archive.Err)
		} else {
			cmd.Printf("  openarch: %d results\n", len(report.Archive.Records))
		}
	}

	cmd.Printf("Total: %d results\n", report.TotalResults)
	return nil
}
