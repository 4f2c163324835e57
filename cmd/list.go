package cmd

import (
	"fmt"

	"github.com/inovacc/gradients/internal/filter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var listCriteria filter.Criteria

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gradients",
	Long: `List the gradient catalog, optionally filtered.

The query matches name, description and category (case-insensitive). Category
and favorite filters are combined with the query.

Examples:
  gradients list
  gradients list --query ocean
  gradients list --category Nature --category Sky
  gradients list --favorites`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd.Flags(), &listCriteria)
}

// addFilterFlags binds the filter criteria flags shared by list and browse.
func addFilterFlags(fs *pflag.FlagSet, c *filter.Criteria) {
	fs.StringVarP(&c.Query, "query", "q", "", "Search by name, description or category")
	fs.StringArrayVarP(&c.Categories, "category", "c", nil, "Only show this category (repeatable)")
	fs.BoolVar(&c.FavoritesOnly, "favorites", false, "Only show favorite gradients")
}

func runList(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := g.Visible(listCriteria)

	for _, e := range entries {
		_, _ = fmt.Fprintf(out, "%s%s\n", swatchFor(out, e), gradientLine(e, g.Favorites.Contains(e.ID)))
	}

	if len(entries) == 0 {
		if listCriteria.Active() {
			_, _ = fmt.Fprintln(out, "No gradients found. Try adjusting your search or filters.")
		} else {
			printEmptyResult(out, "gradients", "gradients create <name>")
		}

		return nil
	}

	_, _ = fmt.Fprintf(out, "\n%s found\n", countLabel(len(entries), "gradient"))

	return nil
}
