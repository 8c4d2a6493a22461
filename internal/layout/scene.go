package layout

import "fmt"

// SceneSpec is the static description of the splash scene: natural sizes of
// the images plus the target dimensions and gaps from configuration.
type SceneSpec struct {
	Header       Size
	HeaderHeight int
	HeaderTop    int

	Row RowSpec

	Footer      Size
	FooterWidth int

	Bar     Size
	Margins Margins
}

func (s SceneSpec) key() string {
	return fmt.Sprintf("%+v", s)
}

// PreparedSpec is a SceneSpec with its cache key computed once, for callers
// that ask for the same scene every frame.
type PreparedSpec struct {
	spec SceneSpec
	key  string
}

// Prepare snapshots spec. Later changes to the caller's Items slice do not
// affect the prepared copy.
func Prepare(spec SceneSpec) PreparedSpec {
	spec.Row.Items = append([]Size(nil), spec.Row.Items...)
	return PreparedSpec{spec: spec, key: spec.key()}
}

// Spec returns the prepared scene description.
func (p PreparedSpec) Spec() SceneSpec { return p.spec }

// Scene holds the resolved rectangles for every slot, top to bottom.
type Scene struct {
	Header Rect
	Row    []Rect
	// RowItems maps each Row rect back to its index in RowSpec.Items.
	// Items with invalid sizes are left out of the row.
	RowItems []int
	Footer   Rect
	Bar      Rect
}

// BarFill is the foreground of the progress bar for a filled width.
func (s Scene) BarFill(filledWidth int) Rect {
	fill := s.Bar
	fill.Width = max(0, min(filledWidth, s.Bar.Width))
	return fill
}

// Rects flattens the scene in draw order: header, row items, footer,
// progress bar background and progress bar foreground.
func (s Scene) Rects(filledWidth int) []Rect {
	out := make([]Rect, 0, len(s.Row)+4)
	out = append(out, s.Header)
	out = append(out, s.Row...)
	out = append(out, s.Footer, s.Bar, s.BarFill(filledWidth))
	return out
}

// ComposeVerticalStack resolves the y positions of the slots in the fixed
// order header, row, footer, bar. Each slot starts at the bottom of the
// previous one plus its margin. The header keeps its own y. The row band is
// as tall as its tallest item, zero when the row is empty. RowItems maps
// each row rect to its position in row.
func ComposeVerticalStack(canvas CanvasSpec, header Rect, row []Rect, footer Rect, bar Size, m Margins) (Scene, error) {
	scene := Scene{Header: header}

	rowY := header.Bottom() + m.HeaderToRow
	band := 0
	scene.Row = make([]Rect, len(row))
	scene.RowItems = make([]int, len(row))
	for i, r := range row {
		r.Y = rowY
		scene.Row[i] = r
		scene.RowItems[i] = i
		band = max(band, r.Height)
	}

	scene.Footer = footer
	scene.Footer.Y = rowY + band + m.RowToFooter

	b, err := LayoutProgressBar(canvas, bar.Width, bar.Height, scene.Footer.Bottom()+m.FooterToBar)
	if err != nil {
		return Scene{}, err
	}
	scene.Bar = b
	return scene, nil
}

// ComposeScene lays out the whole splash scene on canvas. Images whose
// natural size is invalid become empty slots (or are dropped from the row)
// so one broken asset never takes down the composition. Invalid target
// dimensions are configuration errors and are returned.
func ComposeScene(canvas CanvasSpec, spec SceneSpec) (Scene, error) {
	header := Rect{Y: spec.HeaderTop}
	if spec.Header.Valid() {
		r, err := LayoutHeader(spec.Header, canvas, spec.HeaderHeight, spec.HeaderTop)
		if err != nil {
			return Scene{}, err
		}
		header = r
	}

	items := make([]Size, 0, len(spec.Row.Items))
	indices := make([]int, 0, len(spec.Row.Items))
	for i, item := range spec.Row.Items {
		if item.Valid() {
			items = append(items, item)
			indices = append(indices, i)
		}
	}
	row, err := LayoutRow(RowSpec{
		TargetHeight: spec.Row.TargetHeight,
		Spacing:      spec.Row.Spacing,
		Items:        items,
	}, canvas, 0)
	if err != nil {
		return Scene{}, err
	}

	var footer Rect
	if spec.Footer.Valid() {
		footer, err = LayoutFooter(spec.Footer, canvas, spec.FooterWidth, 0)
		if err != nil {
			return Scene{}, err
		}
	}

	scene, err := ComposeVerticalStack(canvas, header, row, footer, spec.Bar, spec.Margins)
	if err != nil {
		return Scene{}, err
	}
	scene.RowItems = indices
	return scene, nil
}
