package gamemode

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"nights/internal/layout"
	"nights/internal/notice"
)

var (
	ColPanel       = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	ColButton      = color.RGBA{0x55, 0x55, 0x55, 0xff}
	ColButtonHover = color.RGBA{0x77, 0x77, 0x66, 0xff}
	ColText        = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

const (
	buttonPadX    = 14
	buttonPadY    = 8
	buttonSpacing = 16
	panelPad      = 24
)

const viewingMessage = "The full notice was opened in your browser.\n\nPress any key or click to return."

// NoticeMode shows the legal notice dialog inside the game window.
type NoticeMode struct {
	dialog  *notice.Dialog
	buttons []notice.Button

	canvas  layout.CanvasSpec
	panel   layout.Rect
	rects   []layout.Rect
	hovered int
}

func NewNoticeMode(dialog *notice.Dialog) *NoticeMode {
	return &NoticeMode{dialog: dialog, buttons: notice.Buttons(), hovered: -1}
}

// Update reads input and returns the dialog state afterwards.
func (m *NoticeMode) Update(canvas layout.CanvasSpec, quit bool) (notice.State, error) {
	if canvas != m.canvas || m.rects == nil {
		if err := m.relayout(canvas); err != nil {
			return m.dialog.State(), err
		}
	}
	if quit {
		return m.dialog.Handle(notice.Exit), nil
	}

	cx, cy := ebiten.CursorPosition()
	m.hovered = -1
	for i, r := range m.rects {
		if r.Contains(cx, cy) {
			m.hovered = i
		}
	}
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch m.dialog.State() {
	case notice.Shown:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			m.dialog.Handle(notice.Acknowledge)
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			m.dialog.Handle(notice.ViewNotice)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			m.dialog.Handle(notice.Exit)
		case clicked && m.hovered >= 0:
			m.dialog.Handle(m.buttons[m.hovered].Event)
		}
	case notice.ViewingNotice:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			m.dialog.Handle(notice.Exit)
		case clicked || len(inpututil.AppendJustPressedKeys(nil)) > 0:
			m.dialog.Handle(notice.Return)
		}
	}
	return m.dialog.State(), nil
}

// relayout centers the panel and lays the buttons out as a row.
func (m *NoticeMode) relayout(canvas layout.CanvasSpec) error {
	sizes := make([]layout.Size, len(m.buttons))
	for i, b := range m.buttons {
		w, h := measure(b.Label)
		sizes[i] = layout.Size{Width: w + 2*buttonPadX, Height: h + 2*buttonPadY}
	}
	buttonHeight := sizes[0].Height

	_, titleH := measure(m.dialog.Title)
	msgW, msgH := measure(m.dialog.Message)
	panelH := panelPad + titleH + panelPad/2 + msgH + panelPad + buttonHeight + panelPad
	panelW := msgW + 2*panelPad
	panel := layout.Rect{
		X:      layout.CenterHorizontally(panelW, canvas.Width),
		Y:      (canvas.Height - panelH) / 2,
		Width:  panelW,
		Height: panelH,
	}

	rects, err := layout.LayoutRow(layout.RowSpec{
		TargetHeight: buttonHeight,
		Spacing:      buttonSpacing,
		Items:        sizes,
	}, canvas, panel.Bottom()-panelPad-buttonHeight)
	if err != nil {
		return err
	}

	m.canvas = canvas
	m.panel = panel
	m.rects = rects
	return nil
}

func (m *NoticeMode) Draw(screen *ebiten.Image) {
	fillRect(screen, m.panel, ColPanel)
	cx := m.panel.X + m.panel.Width/2
	y := m.panel.Y + panelPad

	drawCentered(screen, m.dialog.Title, cx, y, ColText)
	_, titleH := measure(m.dialog.Title)
	y += titleH + panelPad/2

	if m.dialog.State() == notice.ViewingNotice {
		drawCentered(screen, viewingMessage, cx, y, ColText)
		return
	}
	drawCentered(screen, m.dialog.Message, cx, y, ColText)

	for i, r := range m.rects {
		clr := ColButton
		if i == m.hovered {
			clr = ColButtonHover
		}
		fillRect(screen, r, clr)
		drawCentered(screen, m.buttons[i].Label, r.X+r.Width/2, r.Y+buttonPadY, ColText)
	}
}
