package layout

import "fmt"

// Size is the natural (unscaled) pixel size of a source image.
type Size struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an axis-aligned placement rectangle in canvas pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixels. Renderers skip
// empty slots.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// CanvasSpec is the size of the drawing surface.
type CanvasSpec struct {
	Width  int
	Height int
}

// RowSpec describes a horizontal strip of images sharing one height.
// Items keep their order left to right.
type RowSpec struct {
	TargetHeight int
	Spacing      int
	Items        []Size
}

// Margins are the vertical gaps between the stacked slots.
type Margins struct {
	HeaderToRow int
	RowToFooter int
	FooterToBar int
}
