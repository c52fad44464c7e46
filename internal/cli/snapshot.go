package cli

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/logging"
	"github.com/iburimskiy/spiral-animation/internal/render"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Snapshot() *cobra.Command {
	var (
		output string
		ticks  int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a frame to PNG without opening a window",
		Long:  `Build the configured spiral, advance the animation by a number of ticks and write the frame as PNG`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
			if err != nil {
				return err
			}
			defer closeLog()
			if ticks < 0 {
				return fmt.Errorf("ticks must not be negative, got %d", ticks)
			}
			return snapshot(cfg.Width, cfg.Height, cfg.Params(), ticks, output,
				anim.WithStepDegrees(cfg.StepDegrees),
				anim.WithPointRadius(cfg.PointRadius),
				anim.WithMaxPoints(cfg.MaxPoints),
			)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "spiral.png", "output PNG path")
	cmd.Flags().IntVarP(&ticks, "ticks", "", 0, "animation ticks to run before capturing")
	return cmd
}

func snapshot(width, height int, params anim.Params, ticks int, output string, opts ...anim.Option) error {
	raster := render.NewRaster(width, height, color.Black)
	clock := anim.NewFrameClock()
	ctrl := anim.New(raster, clock, params, opts...)
	ctrl.Restart()
	for i := 0; i < ticks; i++ {
		clock.Advance(params.RefreshInterval)
	}
	ctrl.Stop()

	if err := raster.WriteFile(output); err != nil {
		return err
	}
	log.Info().Str("path", output).Int("ticks", ticks).Int("visible", ctrl.Spiral().Visible()).Msg("snapshot written")
	return nil
}
