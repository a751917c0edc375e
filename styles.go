package envbadge

import "github.com/dmitrymomot/envbadge/pkg/environment"

// Position is the screen corner the badge is pinned to.
type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

// Valid reports whether p is one of the four recognized positions.
func (p Position) Valid() bool {
	switch p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

// Size is the badge size category.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Valid reports whether s is one of the three recognized sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Default visual identity per environment. Overridable per badge through
// options or a theme file.
var (
	defaultColors = map[environment.Environment]string{
		environment.Development: "#4caf50",
		environment.Production:  "#f44336",
		environment.Staging:     "#ff9800",
		environment.Test:        "#9c27b0",
	}

	defaultLabels = map[environment.Environment]string{
		environment.Development: "DEV",
		environment.Production:  "PROD",
		environment.Staging:     "STAGING",
		environment.Test:        "TEST",
	}
)

type sizeStyle struct {
	fontSize string
	padding  string
}

var sizeStyles = map[Size]sizeStyle{
	SizeSmall:  {fontSize: "10px", padding: "2px 6px"},
	SizeMedium: {fontSize: "12px", padding: "4px 8px"},
	SizeLarge:  {fontSize: "14px", padding: "6px 12px"},
}

type positionStyle struct {
	// edges are the two corner offsets set to zero, e.g. bottom and right
	// for the bottom-right corner.
	edges [2]string
	// borderRadius rounds only the corner facing the page interior.
	borderRadius string
}

var positionStyles = map[Position]positionStyle{
	TopLeft:     {edges: [2]string{"top", "left"}, borderRadius: "0 0 6px 0"},
	TopRight:    {edges: [2]string{"top", "right"}, borderRadius: "0 0 0 6px"},
	BottomLeft:  {edges: [2]string{"bottom", "left"}, borderRadius: "0 6px 0 0"},
	BottomRight: {edges: [2]string{"bottom", "right"}, borderRadius: "6px 0 0 0"},
}
