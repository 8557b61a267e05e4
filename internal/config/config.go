package config

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Particle Field"

	// Whole-surface opacity of the backdrop
	DefaultOpacity = 0.4

	// Snapshot defaults
	SnapshotWidth  = 1280
	SnapshotHeight = 720
	SnapshotFrames = 120

	EnvPrefix = "PARTICLES_"
)

// Theme selects where the colour scheme comes from.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Window configures the desktop host.
type Window struct {
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
	Title  string `koanf:"title" yaml:"title"`
	// Overlay turns the window into an undecorated, transparent,
	// click-through layer covering the whole monitor.
	Overlay bool `koanf:"overlay" yaml:"overlay"`
}

// Config is the full runtime configuration.
type Config struct {
	Theme    Theme   `koanf:"theme" yaml:"theme"`
	Opacity  float64 `koanf:"opacity" yaml:"opacity"`
	Seed     uint64  `koanf:"seed" yaml:"seed"`
	LogLevel string  `koanf:"log_level" yaml:"log_level"`
	Debug    bool    `koanf:"debug" yaml:"debug"`
	Window   Window  `koanf:"window" yaml:"window"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Theme:    ThemeSystem,
		Opacity:  DefaultOpacity,
		LogLevel: "info",
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
	}
}
