// Package config loads the splash screen settings through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Layout  LayoutConfig  `mapstructure:"layout" yaml:"layout"`
	Loading LoadingConfig `mapstructure:"loading" yaml:"loading"`
	Assets  AssetsConfig  `mapstructure:"assets" yaml:"assets"`
	Notice  NoticeConfig  `mapstructure:"notice" yaml:"notice"`
}

// LoggerConfig controls the zap logger and its optional rotated file sink.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

type WindowConfig struct {
	Title     string `mapstructure:"title" yaml:"title"`
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
	// Responsive makes the logical canvas follow the window size instead of
	// letting ebiten scale a fixed canvas.
	Responsive bool `mapstructure:"responsive" yaml:"responsive"`
	// Debug prints TPS/FPS in the corner.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// LayoutConfig carries the target dimensions and gaps of the scene.
type LayoutConfig struct {
	HeaderHeight int `mapstructure:"header_height" yaml:"header_height"`
	HeaderTop    int `mapstructure:"header_top" yaml:"header_top"`
	RowHeight    int `mapstructure:"row_height" yaml:"row_height"`
	RowSpacing   int `mapstructure:"row_spacing" yaml:"row_spacing"`
	FooterWidth  int `mapstructure:"footer_width" yaml:"footer_width"`
	BarWidth     int `mapstructure:"bar_width" yaml:"bar_width"`
	BarHeight    int `mapstructure:"bar_height" yaml:"bar_height"`
	HeaderToRow  int `mapstructure:"header_to_row" yaml:"header_to_row"`
	RowToFooter  int `mapstructure:"row_to_footer" yaml:"row_to_footer"`
	FooterToBar  int `mapstructure:"footer_to_bar" yaml:"footer_to_bar"`
	CacheSize    int `mapstructure:"cache_size" yaml:"cache_size"`
}

type LoadingConfig struct {
	// Rate is the fraction of the bar filled per second.
	Rate           float64       `mapstructure:"rate" yaml:"rate"`
	ExitOnComplete bool          `mapstructure:"exit_on_complete" yaml:"exit_on_complete"`
	Linger         time.Duration `mapstructure:"linger" yaml:"linger"`
	ShowPercent    bool          `mapstructure:"show_percent" yaml:"show_percent"`
}

// AssetsConfig names the images relative to Dir.
type AssetsConfig struct {
	Dir            string   `mapstructure:"dir" yaml:"dir"`
	Header         string   `mapstructure:"header" yaml:"header"`
	Row            []string `mapstructure:"row" yaml:"row"`
	Footer         string   `mapstructure:"footer" yaml:"footer"`
	FallbackWidth  int      `mapstructure:"fallback_width" yaml:"fallback_width"`
	FallbackHeight int      `mapstructure:"fallback_height" yaml:"fallback_height"`
}

type NoticeConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Title   string `mapstructure:"title" yaml:"title"`
	Message string `mapstructure:"message" yaml:"message"`
	URL     string `mapstructure:"url" yaml:"url"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "nights")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Window --
	v.SetDefault("window.title", "FNaF N.I.G.H.T.S.")
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 1000)
	v.SetDefault("window.resizable", false)
	v.SetDefault("window.responsive", false)
	v.SetDefault("window.debug", false)

	// -- Layout --
	v.SetDefault("layout.header_height", 300)
	v.SetDefault("layout.header_top", 50)
	v.SetDefault("layout.row_height", 150)
	v.SetDefault("layout.row_spacing", 20)
	v.SetDefault("layout.footer_width", 400)
	v.SetDefault("layout.bar_width", 300)
	v.SetDefault("layout.bar_height", 20)
	v.SetDefault("layout.header_to_row", 30)
	v.SetDefault("layout.row_to_footer", 20)
	v.SetDefault("layout.footer_to_bar", 20)
	v.SetDefault("layout.cache_size", 8)

	// -- Loading --
	v.SetDefault("loading.rate", 0.2)
	v.SetDefault("loading.exit_on_complete", true)
	v.SetDefault("loading.linger", "1s")
	v.SetDefault("loading.show_percent", true)

	// -- Assets --
	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.header", "sprites/endo.png")
	v.SetDefault("assets.row", []string{
		"sprites/freddy.png",
		"sprites/bonnie.png",
		"sprites/chica.png",
		"sprites/foxy.png",
		"sprites/golden_freddy.png",
	})
	v.SetDefault("assets.footer", "nights_logo.png")
	v.SetDefault("assets.fallback_width", 100)
	v.SetDefault("assets.fallback_height", 100)

	// -- Notice --
	v.SetDefault("notice.enabled", true)
	v.SetDefault("notice.title", "Legal Notice")
	v.SetDefault("notice.message",
		"Five Nights at Freddy's is a copyrighted property of Scott Cawthon.\n"+
			"Fan-made projects must remain free and non-commercial.\n\n"+
			"Select 'View Full Notice' to read the complete policy on GitHub.")
	v.SetDefault("notice.url", "https://github.com/rilwag2612/nights#legal-notice")
}

// NewDefaultConfig returns the configuration with nothing but defaults
// applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("config: defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads the configuration into v: defaults, then the config file
// (file, or ./config.yaml when file is empty and it exists), then NIGHTS_*
// environment variables.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout configuration invalid: %w", err)
	}
	if c.Loading.Rate < 0 {
		return fmt.Errorf("loading.rate must not be negative, got %v", c.Loading.Rate)
	}
	if c.Loading.Linger < 0 {
		return fmt.Errorf("loading.linger must not be negative, got %v", c.Loading.Linger)
	}
	if c.Assets.FallbackWidth < 0 || c.Assets.FallbackHeight < 0 {
		return fmt.Errorf("assets.fallback_width and assets.fallback_height must not be negative")
	}
	if c.Notice.Enabled && c.Notice.URL == "" {
		return fmt.Errorf("notice.url is required when the notice is enabled")
	}
	return nil
}

// Validate checks the layout targets. Margins may be zero or negative
// (overlap), target sizes may not.
func (l *LayoutConfig) Validate() error {
	positive := []struct {
		key string
		val int
	}{
		{"header_height", l.HeaderHeight},
		{"row_height", l.RowHeight},
		{"footer_width", l.FooterWidth},
		{"bar_width", l.BarWidth},
		{"bar_height", l.BarHeight},
		{"cache_size", l.CacheSize},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %d", p.key, p.val)
		}
	}
	if l.RowSpacing < 0 {
		return fmt.Errorf("row_spacing must not be negative, got %d", l.RowSpacing)
	}
	return nil
}
