package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyPrint bool

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a gradient's CSS to the clipboard",
	Long: `Copy "background: <gradient>;" for a gradient to the system clipboard.

Use --print to write it to stdout instead, e.g. on a headless machine.

Example:
  gradients copy 2
  gradients copy 2 --print`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseGradientID(args[0])
		if err != nil {
			return err
		}

		g, err := openGallery()
		if err != nil {
			return err
		}

		if copyPrint {
			text, err := g.CopyText(id)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)

			return nil
		}

		text, err := g.Copy(id)
		if err != nil {
			return fmt.Errorf("%w (use --print to write it to stdout)", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Copied to clipboard: %s\n", text)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().BoolVar(&copyPrint, "print", false, "Print the CSS instead of copying it")
}
