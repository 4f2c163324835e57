package export

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/inovacc/gradients/internal/model"
)

// Raster paints g diagonally from the top-left to the bottom-right corner and
// encodes the result as PNG.
func (Renderer) Raster(g model.Gradient, width, height int) ([]byte, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	if err := checkColors(g); err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, float64(width), float64(height))
	for i, hex := range g.Colors {
		c, err := parseHex(hex)
		if err != nil {
			return nil, err
		}

		grad.AddColorStop(stopOffset(i, len(g.Colors)), c)
	}

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
