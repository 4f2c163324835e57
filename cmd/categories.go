package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List gradient categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := openGallery()
		if err != nil {
			return err
		}

		for _, c := range g.Catalog.Categories() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
