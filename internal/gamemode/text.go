package gamemode

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const lineSpacing = 16

var face = text.NewGoXFace(basicfont.Face7x13)

// measure returns the pixel size of s in the UI face.
func measure(s string) (int, int) {
	w, h := text.Measure(s, face, lineSpacing)
	return int(w), int(h)
}

// drawCentered draws s with its top edge at y, each line centered on cx.
func drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
