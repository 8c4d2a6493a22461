package gamemode

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nights/internal/entity"
	"nights/internal/layout"
	"nights/internal/splash"
)

var (
	ColBarBg   = color.RGBA{50, 50, 50, 255}
	ColBarFill = color.RGBA{255, 255, 0, 255}
	ColLabel   = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
)

const labelMargin = 8

// LoadingMode draws the composed splash scene over the progress bar.
type LoadingMode struct {
	driver      *splash.Driver
	header      *entity.Sprite
	row         []*entity.Sprite // indexed like the row spec items
	footer      *entity.Sprite
	showPercent bool

	frame splash.Frame
}

func NewLoadingMode(driver *splash.Driver, header *entity.Sprite, row []*entity.Sprite, footer *entity.Sprite, showPercent bool) *LoadingMode {
	return &LoadingMode{
		driver:      driver,
		header:      header,
		row:         row,
		footer:      footer,
		showPercent: showPercent,
	}
}

// Start begins timing; call it when the mode becomes active.
func (m *LoadingMode) Start() {
	m.driver.Start()
}

// Update runs one frame. It reports true when the splash is finished.
func (m *LoadingMode) Update(canvas layout.CanvasSpec, quit bool) (bool, error) {
	frame, done, err := m.driver.Step(canvas, quit)
	if err != nil {
		return false, fmt.Errorf("loading: %w", err)
	}
	m.frame = frame
	return done, nil
}

func (m *LoadingMode) Draw(screen *ebiten.Image) {
	scene := m.frame.Scene

	m.header.Draw(screen, scene.Header)
	for i, r := range scene.Row {
		if idx := scene.RowItems[i]; idx < len(m.row) {
			m.row[idx].Draw(screen, r)
		}
	}
	m.footer.Draw(screen, scene.Footer)

	fillRect(screen, scene.Bar, ColBarBg)
	fillRect(screen, m.frame.Fill, ColBarFill)

	if m.showPercent && !scene.Bar.Empty() {
		label := fmt.Sprintf("Loading %d%%", m.frame.Percent)
		cx := scene.Bar.X + scene.Bar.Width/2
		drawCentered(screen, label, cx, scene.Bar.Bottom()+labelMargin, ColLabel)
	}
}

func fillRect(screen *ebiten.Image, r layout.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
