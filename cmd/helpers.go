package cmd

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = config.Theme(themeFlag)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// themeSource picks where the dark mode flag comes from. A theme forced on
// the command line or through the environment is fixed; one set in the
// config file follows edits to that file; "system" asks the desktop portal
// and falls back to light mode without one.
func themeSource(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (theme.Source, func()) {
	noop := func() {}

	if cfg.Theme != config.ThemeSystem {
		_, fromEnv := os.LookupEnv(config.EnvPrefix + "THEME")
		if cmd.Flags().Changed("theme") || fromEnv || !fileExists(cfgFile) {
			return theme.Static(theme.ParseScheme(string(cfg.Theme))), noop
		}
		logger.Debug("following theme in config file", "path", cfgFile)
		return theme.NewConfigFile(cfgFile), noop
	}

	p, err := theme.NewPortal()
	if err != nil {
		logger.Debug("desktop portal unavailable, using light mode", "err", err)
		return theme.Static(theme.NoPreference), noop
	}
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Debug("closing session bus", "err", err)
		}
	}
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
