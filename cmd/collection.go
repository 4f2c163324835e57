package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/service"
	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"collections"},
	Short:   "Manage gradient collections",
	Long: `Manage collections for organizing gradients.

Collections are named, colored groupings of gradients. They can be referenced
by id or by name (case-insensitive).`,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty collection",
	Long: `Create a new, empty collection.

Examples:
  gradients collection create "Brand"
  gradients collection create "Night" --description "Dark moods" --color "#6a11cb"`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionCreate,
}

var collectionQuickCmd = &cobra.Command{
	Use:   "quick <gradient-id> <name>",
	Short: "Create a collection holding one gradient",
	Long: `Create a collection that starts with one gradient. The collection color
defaults to the gradient's first color.

Example:
  gradients collection quick 3 "Greens"`,
	Args: cobra.ExactArgs(2),
	RunE: runCollectionQuick,
}

var collectionEditCmd = &cobra.Command{
	Use:   "edit <collection>",
	Short: "Edit a collection's name, description or color",
	Long: `Edit a collection. Only the flags you pass are changed.

Example:
  gradients collection edit Brand --name "Brand 2025" --color "#fa709a"`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionEdit,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Delete a collection",
	Long: `Delete a collection. The gradients it held are not affected.

Example:
  gradients collection delete Brand`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionDelete,
}

var collectionToggleCmd = &cobra.Command{
	Use:   "toggle <collection> <gradient-id>",
	Short: "Add a gradient to a collection, or remove it",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollectionToggle,
}

var collectionMembersCmd = &cobra.Command{
	Use:   "members <collection>",
	Short: "List the gradients in a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionMembers,
}

var (
	collectionDescription string
	collectionColor       string
	collectionName        string
)

func init() {
	rootCmd.AddCommand(collectionCmd)

	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionQuickCmd)
	collectionCmd.AddCommand(collectionEditCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionToggleCmd)
	collectionCmd.AddCommand(collectionMembersCmd)

	palette := strings.Join(model.CollectionPalette(), " ")

	for _, c := range []*cobra.Command{collectionCreateCmd, collectionQuickCmd, collectionEditCmd} {
		c.Flags().StringVar(&collectionDescription, "description", "", "Description of the collection")
		c.Flags().StringVar(&collectionColor, "color", "", "Accent color, e.g. one of "+palette)
	}

	collectionEditCmd.Flags().StringVar(&collectionName, "name", "", "New name")
}

func runCollectionList(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	collections := g.Collections.List()

	if len(collections) == 0 {
		printEmptyResult(out, "collections", "gradients collection create <name>")

		return nil
	}

	for _, c := range collections {
		_, _ = fmt.Fprintf(out, "%-24s %s  %-8s %s\n",
			truncateString(c.Name, 24), c.ID, c.Color, countLabel(len(c.GradientIDs), "gradient"))

		if c.Description != "" {
			_, _ = fmt.Fprintf(out, "    %s\n", c.Description)
		}
	}

	return nil
}

func runCollectionCreate(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	c, err := g.Collections.Create(model.CollectionDraft{
		Name:        args[0],
		Description: collectionDescription,
		Color:       collectionColor,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created collection %s (%s)\n", c.Name, c.ID)

	return nil
}

func runCollectionQuick(cmd *cobra.Command, args []string) error {
	id, err := parseGradientID(args[0])
	if err != nil {
		return err
	}

	g, err := openGallery()
	if err != nil {
		return err
	}

	c, err := g.Collections.CreateWithMember(model.CollectionDraft{
		Name:        args[1],
		Description: collectionDescription,
		Color:       collectionColor,
	}, id)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created collection %s with gradient #%d (%s)\n", c.Name, id, c.Color)

	return nil
}

func runCollectionEdit(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	c, err := g.ResolveCollection(args[0])
	if err != nil {
		return err
	}

	var patch model.CollectionPatch

	flags := cmd.Flags()

	if flags.Changed("name") {
		patch.Name = &collectionName
	}

	if flags.Changed("description") {
		patch.Description = &collectionDescription
	}

	if flags.Changed("color") {
		patch.Color = &collectionColor
	}

	if patch == (model.CollectionPatch{}) {
		return fmt.Errorf("nothing to change: pass --name, --description or --color")
	}

	updated, err := g.Collections.Update(c.ID, patch)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated collection %s\n", updated.Name)

	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	c, err := g.ResolveCollection(args[0])
	if service.IsNotFound(err) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No collection %q, nothing to delete\n", args[0])

		return nil
	}

	if err != nil {
		return err
	}

	if err := g.Collections.Delete(c.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted collection %s\n", c.Name)

	return nil
}

func runCollectionToggle(cmd *cobra.Command, args []string) error {
	id, err := parseGradientID(args[1])
	if err != nil {
		return err
	}

	g, err := openGallery()
	if err != nil {
		return err
	}

	c, added, err := g.ToggleMember(args[0], id)
	if err != nil {
		return err
	}

	if added {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added gradient #%d to %s\n", id, c.Name)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed gradient #%d from %s\n", id, c.Name)
	}

	return nil
}

func runCollectionMembers(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	c, err := g.ResolveCollection(args[0])
	if err != nil {
		return err
	}

	members, err := g.Collections.MembersOf(c.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(members) == 0 {
		_, _ = fmt.Fprintf(out, "%s is empty.\n", c.Name)
		_, _ = fmt.Fprintln(out, "Add gradients with: gradients collection toggle <collection> <gradient-id>")

		return nil
	}

	_, _ = fmt.Fprintf(out, "%s (%s)\n", c.Name, countLabel(len(members), "gradient"))

	for _, m := range members {
		_, _ = fmt.Fprintf(out, "%s%s\n", swatchFor(out, m), gradientLine(m, g.Favorites.Contains(m.ID)))
	}

	return nil
}
