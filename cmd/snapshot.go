package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/snapshot"
	"github.com/iburimskiy/particle-field/internal/theme"
)

var (
	snapWidth  int
	snapHeight int
	snapFrames int
	snapOut    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the backdrop headlessly and save it as a PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		src, closeSrc := themeSource(cmd, cfg, logger)
		defer closeSrc()
		watcher := theme.NewWatcher(src, logger)
		watcher.Start(ctx)

		img, err := snapshot.Render(snapshot.Options{
			Width:  snapWidth,
			Height: snapHeight,
			Frames: snapFrames,
			Theme:  watcher,
			Rand:   newRand(cfg.Seed),
			Logger: logger,
		})
		cancel()
		watcher.Wait()
		if err != nil {
			return err
		}

		if err := snapshot.WritePNG(snapOut, img); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", snapOut, "width", snapWidth, "height", snapHeight, "dark", watcher.Dark())
		return nil
	},
}

func init() {
	snapshotCmd.Flags().IntVar(&snapWidth, "width", config.SnapshotWidth, "surface width in pixels")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", config.SnapshotHeight, "surface height in pixels")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", config.SnapshotFrames, "frames to run before capturing")
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "particles.png", "output PNG path")
	rootCmd.AddCommand(snapshotCmd)
}
