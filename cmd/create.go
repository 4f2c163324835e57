package cmd

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/inovacc/gradients/internal/model"
	"github.com/spf13/cobra"
)

var (
	createColor1      string
	createColor2      string
	createDirection   string
	createCategory    string
	createDescription string
	createRandom      bool
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a custom gradient",
	Long: `Create a custom two-color linear gradient and add it to the catalog.

Examples:
  gradients create "Warm" --color1 "#ff0000" --color2 "#ffaa00"
  gradients create "Night Drive" --random --category Sky --direction 90deg`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createColor1, "color1", "#667eea", "First color (hex)")
	createCmd.Flags().StringVar(&createColor2, "color2", "#764ba2", "Second color (hex)")
	createCmd.Flags().StringVar(&createDirection, "direction", model.DirectionDiagonal,
		"Direction: "+strings.Join(model.Directions(), ", "))
	createCmd.Flags().StringVar(&createCategory, "category", model.DefaultCategory,
		"Category: "+strings.Join(model.CreatorCategories(), ", "))
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description (optional)")
	createCmd.Flags().BoolVar(&createRandom, "random", false, "Pick both colors from the palette at random")
}

// randomColors picks two palette colors independently.
func randomColors() []string {
	palette := model.CreatorPalette()

	return []string{palette[rand.IntN(len(palette))], palette[rand.IntN(len(palette))]}
}

func runCreate(cmd *cobra.Command, args []string) error {
	if !slices.Contains(model.Directions(), createDirection) {
		return fmt.Errorf("unsupported direction %q (want one of %s)", createDirection, strings.Join(model.Directions(), ", "))
	}

	colors := []string{createColor1, createColor2}
	if createRandom {
		colors = randomColors()
	}

	g, err := openGallery()
	if err != nil {
		return err
	}

	created, err := g.Catalog.Create(model.GradientDraft{
		Name:        args[0],
		Colors:      colors,
		Direction:   createDirection,
		Category:    createCategory,
		Description: createDescription,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created gradient #%d %s\n", created.ID, created.Name)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  background: %s;\n", created.Gradient)

	return nil
}
