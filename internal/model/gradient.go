package model

// Gradient is one gradient preset in the catalog.
type Gradient struct {
	// ID is unique and never reused. Built-ins occupy 1..BuiltinCount.
	ID int `json:"id"`

	// Name is the display name (e.g., "Ocean Breeze")
	Name string `json:"name"`

	// Gradient is the rendering descriptor, a CSS gradient expression
	Gradient string `json:"gradient"`

	// Colors are the hex color stops in order
	Colors []string `json:"colors"`

	// Description may be empty
	Description string `json:"description"`

	// Category groups gradients in the filter toolbar (e.g., "Nature")
	Category string `json:"category"`
}

// BuiltinCount is the number of built-in gradients. Ids above it are custom.
const BuiltinCount = 8

// IsBuiltin reports whether the gradient ships with the application.
func (g Gradient) IsBuiltin() bool {
	return g.ID >= 1 && g.ID <= BuiltinCount
}

// FirstColor returns the first color stop or "" when there is none.
func (g Gradient) FirstColor() string {
	if len(g.Colors) == 0 {
		return ""
	}

	return g.Colors[0]
}

// GradientDraft is the input for creating a custom gradient.
type GradientDraft struct {
	Name        string
	Colors      []string
	Direction   string
	Category    string
	Description string
}

// Gradient directions offered by the creator.
const (
	DirectionDiagonal        = "135deg"
	DirectionHorizontal      = "90deg"
	DirectionVertical        = "180deg"
	DirectionDiagonalReverse = "45deg"
)

// DefaultCategory is used when a draft names no category.
const DefaultCategory = "Custom"

// Directions lists the creator directions in display order.
func Directions() []string {
	return []string{DirectionDiagonal, DirectionHorizontal, DirectionVertical, DirectionDiagonalReverse}
}

// CreatorCategories lists the categories offered by the creator.
func CreatorCategories() []string {
	return []string{"Nature", "Sky", "Space", DefaultCategory}
}

// CreatorPalette is the pool used when randomizing creator colors.
func CreatorPalette() []string {
	return []string{
		"#667eea", "#764ba2", "#f093fb", "#f5576c", "#43e97b",
		"#38f9d7", "#4facfe", "#00f2fe", "#a8edea", "#fed6e3",
	}
}

// Builtins returns a fresh copy of the built-in gradients.
func Builtins() []Gradient {
	return []Gradient{
		{
			ID:          1,
			Name:        "Ocean Breeze",
			Gradient:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			Colors:      []string{"#667eea", "#764ba2"},
			Description: "A calming blue-purple gradient reminiscent of ocean depths",
			Category:    "Nature",
		},
		{
			ID:          2,
			Name:        "Sunset Glow",
			Gradient:    "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
			Colors:      []string{"#f093fb", "#f5576c"},
			Description: "Warm pink to coral transition capturing golden hour magic",
			Category:    "Nature",
		},
		{
			ID:          3,
			Name:        "Forest Dream",
			Gradient:    "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
			Colors:      []string{"#43e97b", "#38f9d7"},
			Description: "Fresh green to aqua blend inspired by lush forests",
			Category:    "Nature",
		},
		{
			ID:          4,
			Name:        "Midnight Sky",
			Gradient:    "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
			Colors:      []string{"#4facfe", "#00f2fe"},
			Description: "Deep blue to cyan evoking clear night skies",
			Category:    "Sky",
		},
		{
			ID:          5,
			Name:        "Lavender Fields",
			Gradient:    "linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
			Colors:      []string{"#a8edea", "#fed6e3"},
			Description: "Soft mint to blush pink like endless lavender fields",
			Category:    "Nature",
		},
		{
			ID:          6,
			Name:        "Golden Hour",
			Gradient:    "linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)",
			Colors:      []string{"#ffecd2", "#fcb69f"},
			Description: "Warm cream to peach capturing the perfect golden hour",
			Category:    "Nature",
		},
		{
			ID:          7,
			Name:        "Aurora Borealis",
			Gradient:    "linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
			Colors:      []string{"#fa709a", "#fee140"},
			Description: "Vibrant pink to yellow like dancing northern lights",
			Category:    "Sky",
		},
		{
			ID:          8,
			Name:        "Deep Space",
			Gradient:    "linear-gradient(135deg, #6a11cb 0%, #2575fc 100%)",
			Colors:      []string{"#6a11cb", "#2575fc"},
			Description: "Purple to blue gradient reminiscent of cosmic nebulae",
			Category:    "Space",
		},
	}
}
