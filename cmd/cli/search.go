package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/api"
	"github.com/manthan-io/cli/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search issues, people, topics and locations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {

	query := strings.Join(args, " ")
	searchType, _ := cmd.Flags().GetString("type")

	if suggest, _ := cmd.Flags().GetBool("suggest"); suggest {
		suggestions, err := api.Suggestions(cmd.Context(), apiClient, query)
		if err != nil {
			return err
		}
		for _, suggestion := range suggestions {
			fmt.Println(suggestion)
		}
		return nil
	}

	results, err := api.Search(cmd.Context(), apiClient, query, models.SearchType(searchType))
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Results for %q", query)))
	fmt.Println()

	total := 0

	if len(results.Issues) > 0 {
		fmt.Println(titleStyle.Render("Issues"))
		for _, issue := range results.Issues {
			fmt.Printf("  %v  %s %s\n",
				issue.ID,
				issue.Title,
				mutedStyle.Render(fmt.Sprintf("(%d votes, %d comments)", issue.Votes, issue.Comments)))
		}
		fmt.Println()
		total += len(results.Issues)
	}

	if len(results.People) > 0 {
		fmt.Println(titleStyle.Render("People"))
		for _, person := range results.People {
			line := fmt.Sprintf("  %s", person.Name)
			if len(person.Username) > 0 {
				line += mutedStyle.Render(" @" + person.Username)
			}
			fmt.Println(line)
		}
		fmt.Println()
		total += len(results.People)
	}

	if len(results.Topics) > 0 {
		fmt.Println(titleStyle.Render("Topics"))
		for _, topic := range results.Topics {
			fmt.Printf("  %s %s\n", topic.Name, mutedStyle.Render(fmt.Sprintf("(%d)", topic.Count)))
		}
		fmt.Println()
		total += len(results.Topics)
	}

	if len(results.Locations) > 0 {
		fmt.Println(titleStyle.Render("Locations"))
		for _, location := range results.Locations {
			fmt.Printf("  %s %s\n", location.Name, mutedStyle.Render(fmt.Sprintf("(%d)", location.Count)))
		}
		fmt.Println()
		total += len(results.Locations)
	}

	if total == 0 {
		fmt.Println(infoStyle.Render("No results."))

		suggestions, err := api.Suggestions(cmd.Context(), apiClient, query)
		if err == nil && len(suggestions) > 0 {
			fmt.Println()
			fmt.Println(mutedStyle.Render("Did you mean: " + strings.Join(suggestions, ", ")))
		}
	}

	return nil
}

func init() {

	searchCmd.Flags().String("type", string(models.SearchAll), "Result type: all, issues, people, topics or locations")
	searchCmd.Flags().Bool("suggest", false, "Print completion suggestions for the query instead of results")

	rootCmd.AddCommand(searchCmd)
}
