package core

import (
	"github.com/inovacc/gradients/internal/encoding"
	"github.com/inovacc/gradients/internal/export"
)

// ExportRequest describes one export. Zero sizes fall back to the configured
// defaults and an empty Output writes <variable-name>.<ext> into the export
// directory.
type ExportRequest struct {
	GradientID   int
	Format       export.Format
	Width        int
	Height       int
	VariableName string
	Output       string
}

// Export renders the requested gradient and writes it to disk, returning the
// path written.
func (g *Gallery) Export(req ExportRequest) (string, error) {
	entry, err := g.Gradient(req.GradientID)
	if err != nil {
		return "", err
	}

	opts := export.Options{
		Width:        req.Width,
		Height:       req.Height,
		VariableName: req.VariableName,
	}

	if opts.Width == 0 {
		opts.Width = g.cfg.ExportWidth
	}

	if opts.Height == 0 {
		opts.Height = g.cfg.ExportHeight
	}

	data, err := export.Render(export.Renderer{}, entry, req.Format, opts)
	if err != nil {
		return "", err
	}

	path, err := g.exportPath(req.Output, export.FileName(entry.Name, req.Format))
	if err != nil {
		return "", err
	}

	if err := encoding.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	g.log.Debug("gradient exported", "id", entry.ID, "format", req.Format, "path", path, "bytes", len(data))

	return path, nil
}
