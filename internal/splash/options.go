package splash

import (
	"nights/internal/config"
	"nights/internal/layout"
)

// Images are the natural sizes of the scene images, as loaded.
type Images struct {
	Header layout.Size
	Row    []layout.Size
	Footer layout.Size
}

// NewOptions builds driver options from configuration and image sizes.
func NewOptions(cfg *config.Config, images Images) Options {
	l := cfg.Layout
	return Options{
		Spec: layout.SceneSpec{
			Header:       images.Header,
			HeaderHeight: l.HeaderHeight,
			HeaderTop:    l.HeaderTop,
			Row: layout.RowSpec{
				TargetHeight: l.RowHeight,
				Spacing:      l.RowSpacing,
				Items:        images.Row,
			},
			Footer:      images.Footer,
			FooterWidth: l.FooterWidth,
			Bar:         layout.Size{Width: l.BarWidth, Height: l.BarHeight},
			Margins: layout.Margins{
				HeaderToRow: l.HeaderToRow,
				RowToFooter: l.RowToFooter,
				FooterToBar: l.FooterToBar,
			},
		},
		Rate:           cfg.Loading.Rate,
		ExitOnComplete: cfg.Loading.ExitOnComplete,
		Linger:         cfg.Loading.Linger,
		CacheSize:      l.CacheSize,
	}
}

// Canvas is the configured canvas size.
func Canvas(cfg *config.Config) layout.CanvasSpec {
	return layout.CanvasSpec{Width: cfg.Window.Width, Height: cfg.Window.Height}
}
