package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"nights/internal/assets"
	"nights/internal/config"
	"nights/internal/layout"
	"nights/internal/observability"
	"nights/internal/progress"
	"nights/internal/splash"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.1.0"

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "nights",
	Short:        "Splash screen for FNaF N.I.G.H.T.S.",
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "nights"})
			return err
		}
		cfg = c
		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Info("Starting", zap.String("version", Version))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplash(cfg, observability.GetLogger())
	},
}

var layoutAt float64

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the scene rectangles without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLayout(cmd, cfg, observability.GetLogger())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	flags.String("assets", "assets", "directory holding the images")
	flags.Float64("rate", 0.2, "progress per second")
	flags.Bool("notice", true, "show the legal notice first")
	flags.Bool("responsive", false, "lay the scene out again when the window is resized")
	_ = v.BindPFlag("assets.dir", flags.Lookup("assets"))
	_ = v.BindPFlag("loading.rate", flags.Lookup("rate"))
	_ = v.BindPFlag("notice.enabled", flags.Lookup("notice"))
	_ = v.BindPFlag("window.responsive", flags.Lookup("responsive"))

	layoutCmd.Flags().Float64Var(&layoutAt, "at", 0, "seconds of progress to show in the bar fill")
	rootCmd.AddCommand(layoutCmd)
}

func runSplash(cfg *config.Config, logger *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable || cfg.Window.Responsive {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("Splash finished")
	return nil
}

// printLayout composes the scene from image headers only and prints it.
func printLayout(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	mgr := assets.NewManager(os.DirFS(cfg.Assets.Dir), logger)
	probe := func(name string, fallback layout.Size) layout.Size {
		size, err := mgr.Probe(name)
		if err != nil {
			logger.Warn("Using fallback size", zap.String("name", name), zap.Error(err))
			return fallback
		}
		return size
	}

	fallback := layout.Size{Width: cfg.Assets.FallbackWidth, Height: cfg.Assets.FallbackHeight}
	images := splash.Images{
		Header: probe(cfg.Assets.Header, layout.Size{}),
		Footer: probe(cfg.Assets.Footer, layout.Size{}),
	}
	for _, name := range cfg.Assets.Row {
		images.Row = append(images.Row, probe(name, fallback))
	}

	opts := splash.NewOptions(cfg, images)
	scene, err := layout.ComposeScene(splash.Canvas(cfg), opts.Spec)
	if err != nil {
		return err
	}

	anim := progress.NewAnimator()
	if err := anim.Advance(layoutAt, opts.Rate); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), splash.LayoutTable(scene, cfg.Assets.Header, cfg.Assets.Row, cfg.Assets.Footer, anim.FilledWidth(scene.Bar.Width)))
	fmt.Fprintf(cmd.OutOrStdout(), "progress after %.2fs: %d%%\n", layoutAt, anim.Percent())
	return nil
}

func main() {
	err := rootCmd.Execute()
	observability.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
