package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"nights/internal/assets"
	"nights/internal/config"
	"nights/internal/entity"
	"nights/internal/gamemode"
	"nights/internal/layout"
	"nights/internal/notice"
	"nights/internal/splash"
)

// Define Modes
type GameMode int

const (
	ModeNotice GameMode = iota
	ModeLoading
)

var ColBg = color.RGBA{30, 30, 30, 0xff}

// Game routes ebiten's callbacks to the active mode.
type Game struct {
	CurrentMode GameMode
	Tick        int

	canvas     layout.CanvasSpec
	responsive bool
	debug      bool

	notice  *gamemode.NoticeMode
	loading *gamemode.LoadingMode
	logger  *zap.Logger
}

func NewGame(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	mgr := assets.NewManager(os.DirFS(cfg.Assets.Dir), logger)
	fallback := layout.Size{Width: cfg.Assets.FallbackWidth, Height: cfg.Assets.FallbackHeight}

	// Header and footer have no fallback: a missing one leaves an empty slot.
	header := mgr.LoadOrPlaceholder(cfg.Assets.Header, layout.Size{})
	row := mgr.LoadAll(cfg.Assets.Row, fallback)
	footer := mgr.LoadOrPlaceholder(cfg.Assets.Footer, layout.Size{})

	opts := splash.NewOptions(cfg, splash.Images{
		Header: header.Size,
		Row:    assets.Sizes(row),
		Footer: footer.Size,
	})
	driver, err := splash.NewDriver(opts, splash.SystemClock{}, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		CurrentMode: ModeLoading,
		canvas:      splash.Canvas(cfg),
		responsive:  cfg.Window.Responsive,
		debug:       cfg.Window.Debug,
		loading: gamemode.NewLoadingMode(driver,
			entity.NewSprite(header), entity.NewSprites(row), entity.NewSprite(footer),
			cfg.Loading.ShowPercent),
		logger: logger.Named("game"),
	}

	if cfg.Notice.Enabled {
		dialog := notice.NewDialog(cfg.Notice.Title, cfg.Notice.Message, cfg.Notice.URL, notice.SystemOpener{}, logger)
		g.notice = gamemode.NewNoticeMode(dialog)
		g.CurrentMode = ModeNotice
	}
	// Without the notice the first Step starts the clock, so window start-up
	// does not count as progress.
	return g, nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++
	quit := ebiten.IsWindowBeingClosed()

	switch g.CurrentMode {
	case ModeNotice:
		state, err := g.notice.Update(g.canvas, quit)
		if err != nil {
			return err
		}
		switch state {
		case notice.ExitRequested:
			g.logger.Info("Exit chosen at legal notice")
			return ebiten.Termination
		case notice.Acknowledged:
			g.logger.Info("Legal notice acknowledged")
			g.CurrentMode = ModeLoading
			g.loading.Start()
		}

	case ModeLoading:
		quit = quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		done, err := g.loading.Update(g.canvas, quit)
		if err != nil {
			return err
		}
		if done {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	switch g.CurrentMode {
	case ModeNotice:
		g.notice.Draw(screen)
	case ModeLoading:
		g.loading.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nFPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout: a fixed canvas scaled by ebiten, unless responsive, in which case
// the canvas follows the window and the scene is laid out again.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.responsive && outsideWidth > 0 && outsideHeight > 0 {
		g.canvas = layout.CanvasSpec{Width: outsideWidth, Height: outsideHeight}
	}
	return g.canvas.Width, g.canvas.Height
}
