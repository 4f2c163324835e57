package model

import (
	"slices"
	"time"
)

// Collection is a user-defined named grouping of gradients
type Collection struct {
	// ID is the unique identifier for this collection
	ID string `json:"id"`

	// Name is the display name, never empty once saved
	Name string `json:"name"`

	// Description is an optional description of the collection
	Description string `json:"description"`

	// GradientIDs are the member gradient ids. Ids may outlive their gradient.
	GradientIDs []int `json:"gradientIds"`

	// Color is the accent color shown next to the collection
	Color string `json:"color"`

	// CreatedAt is when the collection was created
	CreatedAt time.Time `json:"createdAt"`
}

// Has reports whether gradientID is a member of the collection.
func (c Collection) Has(gradientID int) bool {
	return slices.Contains(c.GradientIDs, gradientID)
}

// CollectionDraft is the input for creating a collection.
type CollectionDraft struct {
	Name        string
	Description string
	Color       string
}

// CollectionPatch carries the fields an edit replaces. Nil fields keep their
// stored value.
type CollectionPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// DefaultCollectionColor is used when a collection is created without a color.
const DefaultCollectionColor = "#667eea"

// CollectionPalette returns the colors offered for collections.
func CollectionPalette() []string {
	return []string{
		"#667eea", "#f093fb", "#43e97b", "#4facfe",
		"#a8edea", "#ffecd2", "#fa709a", "#6a11cb",
	}
}
