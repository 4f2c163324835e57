package export

import (
	"fmt"
	"strings"

	"github.com/inovacc/gradients/internal/model"
)

// Stylesheet returns CSS custom properties for g plus usage classes.
func (Renderer) Stylesheet(g model.Gradient, variableName string) string {
	variableName = variableFor(g, variableName)
	prop := "--gradient-" + variableName

	colorVars := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		colorVars[i] = fmt.Sprintf("%s-color-%d: %s;", prop, i+1, c)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "/* %s - %s */\n", commentSafe(g.Name), commentSafe(g.Description))
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  %s: %s;\n", prop, g.Gradient)
	if len(colorVars) > 0 {
		b.WriteString("  " + strings.Join(colorVars, "\n  ") + "\n")
	}
	b.WriteString("}\n\n")
	b.WriteString("/* Usage examples */\n")
	fmt.Fprintf(&b, ".gradient-%s {\n  background: var(%s);\n}\n\n", variableName, prop)
	fmt.Fprintf(&b, ".gradient-%s-fallback {\n", variableName)
	fmt.Fprintf(&b, "  background: %s; /* Fallback for older browsers */\n", g.FirstColor())
	fmt.Fprintf(&b, "  background: var(%s);\n}", prop)

	return b.String()
}

// BackgroundRule is the one-line declaration copied from a gradient card.
func BackgroundRule(g model.Gradient) string {
	return "background: " + g.Gradient + ";"
}

// commentSafe keeps text from closing the surrounding CSS comment.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
