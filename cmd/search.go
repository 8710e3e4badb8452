package cmd

import (
	"fmt"
	"strings"

	"github.com/internquest/internquest/internal/matcher"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search reference option lists",
	Long:  "Fuzzy-search the canonical program and field lists used in profile setup",
}

var searchProgramsCmd = &cobra.Command{
	Use:   "programs <query>",
	Short: "Search degree programs",
	Args:  cobra.MinimumNArgs(1),
	Example: `  internquest search programs "bs it"
  internquest search programs nursing`,
	Run: func(cmd *cobra.Command, args []string) {
		renderMatches("Programs", matcher.Programs, strings.Join(args, " "))
	},
}

var searchFieldsCmd = &cobra.Command{
	Use:   "fields <query>",
	Short: "Search internship fields",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		renderMatches("Fields", matcher.Fields, strings.Join(args, " "))
	},
}

// renderMatches prints matches in reference-list order; no ranking is
// applied.
func renderMatches(title string, options []string, query string) {
	matched := matcher.Filter(options, query)
	if len(matched) == 0 {
		fmt.Printf("No %s match %q\n", strings.ToLower(title), query)
		return
	}

	fmt.Println(titleStyle.Render(title))
	for i, opt := range matched {
		fmt.Printf("%d. %s\n", i+1, opt)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchProgramsCmd)
	searchCmd.AddCommand(searchFieldsCmd)
}
