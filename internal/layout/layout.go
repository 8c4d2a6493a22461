// Package layout computes where the splash images go on the canvas.
//
// All scaling and centering uses integer division, which truncates toward
// zero. A scene is therefore reproducible pixel for pixel, at the cost of the
// occasional one pixel asymmetry when the free space is odd.
package layout

import "fmt"

// ScaleToHeight fixes the height at targetHeight and derives the width from
// the aspect ratio of size. The returned rect sits at the origin.
func ScaleToHeight(size Size, targetHeight int) (Rect, error) {
	if !size.Valid() {
		return Rect{}, fmt.Errorf("%w: source size %s", ErrInvalidDimension, size)
	}
	if targetHeight <= 0 {
		return Rect{}, fmt.Errorf("%w: target height %d", ErrInvalidDimension, targetHeight)
	}
	w := size.Width * targetHeight / size.Height
	return Rect{Width: atLeastOne(w), Height: targetHeight}, nil
}

// ScaleToWidth fixes the width at targetWidth and derives the height.
func ScaleToWidth(size Size, targetWidth int) (Rect, error) {
	if !size.Valid() {
		return Rect{}, fmt.Errorf("%w: source size %s", ErrInvalidDimension, size)
	}
	if targetWidth <= 0 {
		return Rect{}, fmt.Errorf("%w: target width %d", ErrInvalidDimension, targetWidth)
	}
	h := size.Height * targetWidth / size.Width
	return Rect{Width: targetWidth, Height: atLeastOne(h)}, nil
}

// CenterHorizontally returns the x that centers an item of itemWidth on a
// canvas of canvasWidth. Items wider than the canvas get a negative x.
func CenterHorizontally(itemWidth, canvasWidth int) int {
	return (canvasWidth - itemWidth) / 2
}

// LayoutHeader scales size to targetHeight and centers it at y = topMargin.
func LayoutHeader(size Size, canvas CanvasSpec, targetHeight, topMargin int) (Rect, error) {
	r, err := ScaleToHeight(size, targetHeight)
	if err != nil {
		return Rect{}, fmt.Errorf("header: %w", err)
	}
	r.X = CenterHorizontally(r.Width, canvas.Width)
	r.Y = topMargin
	return r, nil
}

// LayoutRow places the row items left to right at y, each scaled to the row
// height and separated by exactly spec.Spacing pixels. The row as a whole is
// centered on the canvas. An empty row yields an empty, non-nil slice.
func LayoutRow(spec RowSpec, canvas CanvasSpec, y int) ([]Rect, error) {
	rects := make([]Rect, 0, len(spec.Items))
	if len(spec.Items) == 0 {
		return rects, nil
	}

	total := 0
	for i, item := range spec.Items {
		r, err := ScaleToHeight(item, spec.TargetHeight)
		if err != nil {
			return nil, fmt.Errorf("row item %d: %w", i, err)
		}
		rects = append(rects, r)
		total += r.Width
	}
	total += spec.Spacing * (len(rects) - 1)

	x := CenterHorizontally(total, canvas.Width)
	for i := range rects {
		rects[i].X = x
		rects[i].Y = y
		x += rects[i].Width + spec.Spacing
	}
	return rects, nil
}

// LayoutFooter scales size to targetWidth and centers it at y.
func LayoutFooter(size Size, canvas CanvasSpec, targetWidth, y int) (Rect, error) {
	r, err := ScaleToWidth(size, targetWidth)
	if err != nil {
		return Rect{}, fmt.Errorf("footer: %w", err)
	}
	r.X = CenterHorizontally(r.Width, canvas.Width)
	r.Y = y
	return r, nil
}

// LayoutProgressBar centers a fixed-size bar at y.
func LayoutProgressBar(canvas CanvasSpec, width, height, y int) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, fmt.Errorf("%w: progress bar %dx%d", ErrInvalidDimension, width, height)
	}
	return Rect{
		X:      CenterHorizontally(width, canvas.Width),
		Y:      y,
		Width:  width,
		Height: height,
	}, nil
}

// atLeastOne keeps extreme aspect ratios from truncating to a zero-width
// slot.
func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
