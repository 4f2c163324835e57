package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite [id]",
	Short: "Toggle a gradient's favorite flag",
	Long: `Add a gradient to favorites, or remove it when it already is one.

Without an id, list the favorites in the order they were added.

Examples:
  gradients favorite 4
  gradients favorite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFavorite,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		ids := g.Favorites.IDs()
		if len(ids) == 0 {
			printEmptyResult(out, "favorites", "gradients favorite <id>")

			return nil
		}

		for _, id := range ids {
			// Ids unknown to the catalog are skipped.
			if entry, ok := g.Catalog.Get(id); ok {
				_, _ = fmt.Fprintf(out, "%s%s\n", swatchFor(out, entry), gradientLine(entry, true))
			}
		}

		return nil
	}

	id, err := parseGradientID(args[0])
	if err != nil {
		return err
	}

	added, err := g.ToggleFavorite(id)
	if err != nil {
		return err
	}

	entry, _ := g.Catalog.Get(id)
	if added {
		_, _ = fmt.Fprintf(out, "✓ Added %s to favorites\n", entry.Name)
	} else {
		_, _ = fmt.Fprintf(out, "✓ Removed %s from favorites\n", entry.Name)
	}

	return nil
}
