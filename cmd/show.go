package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/gradients/internal/core"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a gradient card",
	Long: `Show the details of one gradient: colors, CSS, favorite flag and the
collections it belongs to.

Example:
  gradients show 3`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseGradientID(args[0])
	if err != nil {
		return err
	}

	g, err := openGallery()
	if err != nil {
		return err
	}

	d, err := g.Detail(id)
	if err != nil {
		return err
	}

	printDetail(cmd.OutOrStdout(), d)

	return nil
}

func printDetail(w io.Writer, d core.Detail) {
	names := make([]string, len(d.Collections))
	for i, c := range d.Collections {
		names[i] = c.Name
	}

	favorite := "no"
	if d.Favorite {
		favorite = "yes"
	}

	kind := "custom"
	if d.Gradient.IsBuiltin() {
		kind = "built-in"
	}

	collections := strings.Join(names, ", ")
	if collections == "" {
		collections = "-"
	}

	if swatch := swatchFor(w, d.Gradient); swatch != "" {
		_, _ = fmt.Fprintln(w, swatch)
	}

	printInfoBox(w, d.Gradient.Name, map[string]string{
		"ID":          fmt.Sprint(d.Gradient.ID),
		"Kind":        kind,
		"Category":    d.Gradient.Category,
		"Description": d.Gradient.Description,
		"Colors":      strings.Join(d.Gradient.Colors, ", "),
		"Favorite":    favorite,
		"Collections": collections,
	}, []string{"ID", "Kind", "Category", "Description", "Colors", "Favorite", "Collections"})

	_, _ = fmt.Fprintf(w, "background: %s;\n", d.Gradient.Gradient)
}
