package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iburimskiy/spiral-animation/internal/audio"
	"github.com/iburimskiy/spiral-animation/internal/config"
	"github.com/iburimskiy/spiral-animation/internal/game"
	"github.com/iburimskiy/spiral-animation/internal/logging"
	"github.com/iburimskiy/spiral-animation/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Root builds the command tree.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spirals",
		Short:         "Animated parametric spirals",
		Long:          "Draws Archimedean, hyperbolic and logarithmic spirals and keeps them rotating.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(logging.Options{
				Level: cfg.LogLevel,
				File:  cfg.LogFile,
				Quiet: cfg.Backend == config.BackendTerminal,
			})
			if err != nil {
				return err
			}
			defer closeLog()

			log.Info().Str("backend", cfg.Backend).Stringer("family", cfg.Family).Int("points", cfg.Points).Msg("starting")
			if cfg.Backend == config.BackendTerminal {
				return runTerminal(cmd.Context(), cfg)
			}
			return runWindow(cfg)
		},
	}
	config.AddFlags(rootCmd)
	rootCmd.AddCommand(Snapshot(), Version())
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	return config.Load(cmd, configFile)
}

func runWindow(cfg config.Config) error {
	var cue game.Cue
	if cfg.Chime {
		chime := audio.NewChime(cfg.ChimeVolume)
		if err := chime.Init(); err != nil {
			// Non-fatal, the animation runs without sound
			log.Warn().Err(err).Msg("audio cue disabled")
		} else {
			cue = chime
		}
	}
	return game.Run(game.New(cfg, cue))
}

func runTerminal(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return terminal.New(cfg, screen).Run(ctx)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := Root().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
