// Package export renders a gradient to PNG, SVG or CSS.
//
// All renderers are pure functions of the gradient and the caller's
// parameters; writing the result somewhere is the caller's job.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inovacc/gradients/internal/model"
)

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatCSS Format = "css"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatCSS}
}

// ParseFormat converts a user string to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG, FormatCSS:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want png, svg or css)", s)
	}
}

// Exporter renders a single gradient.
type Exporter interface {
	Raster(g model.Gradient, width, height int) ([]byte, error)
	Vector(g model.Gradient, width, height int, variableName string) (string, error)
	Stylesheet(g model.Gradient, variableName string) string
}

// Renderer is the default Exporter.
type Renderer struct{}

var _ Exporter = Renderer{}

var (
	whitespace    = regexp.MustCompile(`\s+`)
	nonIdentifier = regexp.MustCompile(`[^a-z0-9-]`)
)

// VariableName derives the CSS variable / SVG id stem from a gradient name.
func VariableName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// SanitizeVariable lowercases s and replaces every character outside
// [a-z0-9-] with "-", so the result is safe as an SVG id and a CSS
// identifier.
func SanitizeVariable(s string) string {
	return nonIdentifier.ReplaceAllString(strings.ToLower(s), "-")
}

// FileName returns the download name for a gradient called name in format f.
// The stem never contains a path separator or a dot.
func FileName(name string, f Format) string {
	stem := strings.Trim(SanitizeVariable(VariableName(name)), "-")
	if stem == "" {
		stem = "gradient"
	}

	return stem + "." + string(f)
}

// variableFor picks the sanitized variable stem for g.
func variableFor(g model.Gradient, requested string) string {
	if v := SanitizeVariable(strings.TrimSpace(requested)); v != "" {
		return v
	}

	return SanitizeVariable(VariableName(g.Name))
}

// Options carry the caller-supplied export parameters.
type Options struct {
	Width        int
	Height       int
	VariableName string
}

// Render dispatches to the renderer for f.
func Render(e Exporter, g model.Gradient, f Format, opts Options) ([]byte, error) {
	variable := variableFor(g, opts.VariableName)

	switch f {
	case FormatPNG:
		return e.Raster(g, opts.Width, opts.Height)
	case FormatSVG:
		svg, err := e.Vector(g, opts.Width, opts.Height, variable)
		if err != nil {
			return nil, err
		}

		return []byte(svg), nil
	case FormatCSS:
		return []byte(e.Stylesheet(g, variable)), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// stopOffset returns the position of stop i out of n in [0, 1].
func stopOffset(i, n int) float64 {
	if n < 2 {
		return 0
	}

	return float64(i) / float64(n-1)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid export size %dx%d: width and height must be positive", width, height)
	}

	return nil
}

func checkColors(g model.Gradient) error {
	if len(g.Colors) == 0 {
		return fmt.Errorf("gradient %q has no colors", g.Name)
	}

	return nil
}
