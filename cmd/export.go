package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/gradients/internal/core"
	"github.com/inovacc/gradients/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportWidth    int
	exportHeight   int
	exportVariable string
	exportOutput   string
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a gradient as PNG, SVG or CSS",
	Long: `Export a gradient to a file.

Width and height default to the configured export size. The file is written to
the export directory as <name>.<format> unless --output is given.

Examples:
  gradients export 1 --format png --width 1920 --height 1080
  gradients export 1 --format svg --var brand
  gradients export 7 --format css --output ./styles/aurora.css`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatPNG), "Format: "+strings.Join(formats, ", "))
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "Width in pixels (png and svg)")
	exportCmd.Flags().IntVar(&exportHeight, "height", 0, "Height in pixels (png and svg)")
	exportCmd.Flags().StringVar(&exportVariable, "var", "", "CSS variable / SVG id stem (defaults to the gradient name)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	id, err := parseGradientID(args[0])
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	req := core.ExportRequest{
		GradientID:   id,
		Format:       format,
		Width:        exportWidth,
		Height:       exportHeight,
		VariableName: strings.TrimSpace(exportVariable),
	}

	if exportOutput != "" {
		out, err := expandPath(exportOutput)
		if err != nil {
			return err
		}

		req.Output = out
	}

	g, err := openGallery()
	if err != nil {
		return err
	}

	path, err := g.Export(req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s\n", path)

	return nil
}
