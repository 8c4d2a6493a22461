package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"nights/internal/assets"
	"nights/internal/layout"
)

// Sprite is a static image that is drawn stretched into a layout slot.
type Sprite struct {
	Name  string
	image *ebiten.Image
}

// NewSprite uploads the asset to the GPU. A placeholder asset gives a sprite
// that draws nothing.
func NewSprite(a *assets.Asset) *Sprite {
	s := &Sprite{Name: a.Name}
	if !a.Missing() {
		s.image = ebiten.NewImageFromImage(a.Image)
	}
	return s
}

// NewSprites converts assets in order.
func NewSprites(list []*assets.Asset) []*Sprite {
	out := make([]*Sprite, len(list))
	for i, a := range list {
		out[i] = NewSprite(a)
	}
	return out
}

func (s *Sprite) Draw(screen *ebiten.Image, r layout.Rect) {
	if s == nil || s.image == nil || r.Empty() {
		return
	}
	b := s.image.Bounds()

	op := &ebiten.DrawImageOptions{}
	// Scale first, then move into place.
	op.GeoM.Scale(float64(r.Width)/float64(b.Dx()), float64(r.Height)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(s.image, op)
}
