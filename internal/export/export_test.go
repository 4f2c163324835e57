package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/inovacc/gradients/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oceanBreeze(t *testing.T) model.Gradient {
	t.Helper()

	return model.Builtins()[0]
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{" SVG ", FormatSVG, false},
		{"css", FormatCSS, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVariableNameAndFileName(t *testing.T) {
	assert.Equal(t, "ocean-breeze", VariableName("Ocean Breeze"))
	assert.Equal(t, "a-b-c", VariableName("A  B\tC"))
	assert.Equal(t, "deep-space.png", FileName("Deep Space", FormatPNG))
	assert.Equal(t, "mine.css", FileName("Mine", FormatCSS))
}

func TestFileName_StaysInDirectory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"../../escaped", "escaped.css"},
		{"Sky/Sea", "sky-sea.css"},
		{"..", "gradient.css"},
		{"   ", "gradient.css"},
		{"a\\b", "a-b.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(tt.name, FormatCSS)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, "\\")
		})
	}
}

func TestSanitizeVariable(t *testing.T) {
	tests := map[string]string{
		"brand":              "brand",
		"My Brand":           "my-brand",
		"ok-123":             "ok-123",
		`x" onload="alert(1)`: "x--onload--alert-1-",
		"a;b{c}":             "a-b-c-",
	}

	for in, want := range tests {
		assert.Equal(t, want, SanitizeVariable(in), in)
	}
}

func TestRender_SanitizesVariable(t *testing.T) {
	g := oceanBreeze(t)

	svg, err := Render(Renderer{}, g, FormatSVG, Options{Width: 10, Height: 10, VariableName: `x" onload="alert(1)`})
	require.NoError(t, err)
	assert.NotContains(t, string(svg), "onload=")
	assert.Contains(t, string(svg), `id="x--onload--alert-1-"`)
	assert.Contains(t, string(svg), `fill="url(#x--onload--alert-1-)"`)

	css, err := Render(Renderer{}, g, FormatCSS, Options{VariableName: "a}b"})
	require.NoError(t, err)
	assert.Contains(t, string(css), "--gradient-a-b:")
	assert.NotContains(t, string(css), "a}b")

	g.Name = "Evil */ body{}"
	css, err = Render(Renderer{}, g, FormatCSS, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(css[:strings.Index(string(css), ":root")]), "*/"))
	assert.Contains(t, string(css), "--gradient-evil----body--:")
}

func TestRaster(t *testing.T) {
	data, err := Renderer{}.Raster(oceanBreeze(t), 40, 30)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	// Top-left is close to the first stop (#667eea), bottom-right to the last (#764ba2).
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.InDelta(t, 0x66, r>>8, 8)
	assert.InDelta(t, 0x7e, g>>8, 8)
	assert.InDelta(t, 0xea, b>>8, 8)

	r, g, b, _ = img.At(39, 29).RGBA()
	assert.InDelta(t, 0x76, r>>8, 8)
	assert.InDelta(t, 0x4b, g>>8, 8)
	assert.InDelta(t, 0xa2, b>>8, 8)
}

func TestRaster_Errors(t *testing.T) {
	_, err := Renderer{}.Raster(oceanBreeze(t), 0, 10)
	assert.Error(t, err)

	_, err = Renderer{}.Raster(model.Gradient{Name: "empty"}, 10, 10)
	assert.Error(t, err)

	_, err = Renderer{}.Raster(model.Gradient{Name: "bad", Colors: []string{"#zzzzzz"}}, 10, 10)
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := parseHex("#fa709a")
	require.NoError(t, err)

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xfa), r>>8)
	assert.Equal(t, uint32(0x70), g>>8)
	assert.Equal(t, uint32(0x9a), b>>8)
	assert.Equal(t, uint32(0xff), a>>8)

	c, err = parseHex("#fff")
	require.NoError(t, err)

	r, _, _, _ = c.RGBA()
	assert.Equal(t, uint32(0xff), r>>8)

	_, err = parseHex("#12345")
	assert.Error(t, err)
}

func TestVector(t *testing.T) {
	svg, err := Renderer{}.Vector(oceanBreeze(t), 800, 600, "ocean-breeze")
	require.NoError(t, err)

	want := `<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="ocean-breeze" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#667eea;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#764ba2;stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect width="100%" height="100%" fill="url(#ocean-breeze)" />
</svg>`

	assert.Equal(t, want, svg)
}

func TestVector_ThreeStops(t *testing.T) {
	g := model.Gradient{Name: "Tri", Colors: []string{"#000", "#888", "#fff"}}

	svg, err := Renderer{}.Vector(g, 10, 10, "tri")
	require.NoError(t, err)
	assert.Contains(t, svg, `<stop offset="50%" style="stop-color:#888;stop-opacity:1" />`)

	_, err = Renderer{}.Vector(g, 10, -1, "tri")
	assert.Error(t, err)
}

func TestStylesheet(t *testing.T) {
	css := Renderer{}.Stylesheet(oceanBreeze(t), "ocean-breeze")

	want := `/* Ocean Breeze - A calming blue-purple gradient reminiscent of ocean depths */
:root {
  --gradient-ocean-breeze: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  --gradient-ocean-breeze-color-1: #667eea;
  --gradient-ocean-breeze-color-2: #764ba2;
}

/* Usage examples */
.gradient-ocean-breeze {
  background: var(--gradient-ocean-breeze);
}

.gradient-ocean-breeze-fallback {
  background: #667eea; /* Fallback for older browsers */
  background: var(--gradient-ocean-breeze);
}`

	assert.Equal(t, want, css)
}

func TestRender(t *testing.T) {
	g := oceanBreeze(t)

	css, err := Render(Renderer{}, g, FormatCSS, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(css), "--gradient-ocean-breeze:")

	svg, err := Render(Renderer{}, g, FormatSVG, Options{Width: 10, Height: 20, VariableName: "custom"})
	require.NoError(t, err)
	assert.Contains(t, string(svg), `id="custom"`)

	pngData, err := Render(Renderer{}, g, FormatPNG, Options{Width: 4, Height: 4})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pngData, []byte("\x89PNG")))

	_, err = Render(Renderer{}, g, Format("gif"), Options{})
	assert.Error(t, err)
}

func TestBackgroundRule(t *testing.T) {
	assert.Equal(t, "background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);", BackgroundRule(oceanBreeze(t)))
}
