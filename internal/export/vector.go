package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inovacc/gradients/internal/model"
)

// Vector returns SVG markup filling the whole canvas with g.
func (Renderer) Vector(g model.Gradient, width, height int, variableName string) (string, error) {
	if err := checkSize(width, height); err != nil {
		return "", err
	}

	if err := checkColors(g); err != nil {
		return "", err
	}

	variableName = variableFor(g, variableName)

	stops := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		offset := strconv.FormatFloat(stopOffset(i, len(g.Colors))*100, 'f', -1, 64)
		stops[i] = fmt.Sprintf(`<stop offset="%s%%" style="stop-color:%s;stop-opacity:1" />`, offset, c)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n", width, height)
	b.WriteString("  <defs>\n")
	fmt.Fprintf(&b, "    <linearGradient id=\"%s\" x1=\"0%%\" y1=\"0%%\" x2=\"100%%\" y2=\"100%%\">\n", variableName)
	b.WriteString("      " + strings.Join(stops, "\n      ") + "\n")
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	fmt.Fprintf(&b, "  <rect width=\"100%%\" height=\"100%%\" fill=\"url(#%s)\" />\n", variableName)
	b.WriteString("</svg>")

	return b.String(), nil
}
