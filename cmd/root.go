package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/theme"
)

var (
	cfgFile   string
	themeFlag string
	seedFlag  uint64
	verbose   bool

	overlay bool
	debug   bool
	opacity float64
)

var rootCmd = &cobra.Command{
	Use:   "particlefield",
	Short: "Animated particle backdrop",
	Long: `particlefield draws a field of slowly drifting particles joined by
fading lines over a light or dark gradient. It follows the desktop colour
scheme unless a theme is forced, and can run as a transparent click-through
overlay covering the whole monitor.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "particles.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "colour scheme: system, light or dark (overrides config)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "random seed, 0 picks one")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().BoolVar(&overlay, "overlay", false, "transparent click-through window over the whole monitor")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show FPS and particle count")
	rootCmd.Flags().Float64Var(&opacity, "opacity", 0, "opacity of the backdrop, in (0, 1]")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("overlay") {
		cfg.Window.Overlay = overlay
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if cmd.Flags().Changed("opacity") {
		cfg.Opacity = opacity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc := themeSource(cmd, cfg, logger)
	defer closeSrc()
	watcher := theme.NewWatcher(src, logger)
	watcher.Start(ctx)

	g := game.NewGame(game.Options{
		Config: cfg,
		Theme:  watcher,
		Rand:   newRand(cfg.Seed),
		Logger: logger,
	})
	err = game.Run(ctx, g)

	stop()
	watcher.Wait()
	return err
}
