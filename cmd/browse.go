package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/gradients/internal/cli"
	"github.com/inovacc/gradients/internal/filter"
	"github.com/spf13/cobra"
)

var browseCriteria filter.Criteria

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse gradients",
	Long: `Browse the gallery in an interactive list.

Keys:
  /      filter the list
  f      toggle favorite on the selected gradient
  *      show only favorites / show everything
  c      copy the selected gradient's CSS
  tab    focus the next category
  t      toggle the focused category filter
  enter  print the selected gradient's card and exit
  q      quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	addFilterFlags(browseCmd.Flags(), &browseCriteria)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	m := cli.NewBrowser(g, browseCriteria)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	browser := finalModel.(cli.BrowserModel)

	selected := browser.Selected()
	if selected == nil {
		return nil
	}

	d, err := g.Detail(selected.ID)
	if err != nil {
		return err
	}

	printDetail(cmd.OutOrStdout(), d)

	return nil
}
