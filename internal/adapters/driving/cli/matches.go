package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	matchesSource string
	matchesJSON   bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches [person-id]",
	Short: "List cached matches for a person",
	Long: `Lists previously cached external match candidates for a person,
ordered by descending confidence score.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&matchesSource, "source", "",
		"filter to one source: chronicling_america, wikitree or openarch")
	matchesCmd.Flags().BoolVar(&matchesJSON, "json", false, "output matches as JSON")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	app, err := buildServices()
	if err != nil {
		return err
	}

	matches, err := app.research.Matches(cmd.Context(), args[0], matchesSource)
	if err != nil {
		return fmt.Errorf("listing matches: %w", err)
	}

	if matchesJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No cached matches.")
		return nil
	}

	for _, match := range matches {
		cmd.Printf("[%.1f] %s %s - %s\n", match.Score, match.Source, match.ExternalID, match.Title)
		if match.Snippet != "" {
			cmd.Printf("      %s\n", match.Snippet)
		}
	}
	return nil
}
