package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pixecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/pixecs/ecs/debugui/ebiten"
	"github.com/plus3/pixecs/playfield"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

const windowTitle = "pixecs"

func newRunCmd(root *rootOptions) *cobra.Command {
	var debugUI bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the playfield window and drive it with the keyboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.logLevel)
			if err != nil {
				return err
			}

			cfg, err := playfield.LoadConfig(root.configPath)
			if err != nil {
				return err
			}

			engine, err := playfield.NewEngine(cfg, playfield.DefaultLayout(cfg), playfield.WithLogger(logger))
			if err != nil {
				return err
			}

			g := newGame(engine)
			if debugUI {
				g.imgui = debugui_ebiten.NewImguiBackend(windowTitle, cfg.ScreenWidth, cfg.ScreenHeight)
				g.overlay = debugui.NewOverlay(120, 50)
			} else {
				ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
				ebiten.SetWindowTitle(windowTitle)
			}
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(ticksPerSecond(cfg.TickInterval))

			logger.Info().Dur("tick", cfg.TickInterval).Bool("debug_ui", debugUI).Msg("starting window")
			if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
				return eris.Wrap(err, "game loop failed")
			}
			logger.Info().Uint64("ticks", engine.Ticks()).Msg("window closed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugUI, "debug-ui", false, "show the Dear ImGui debug overlay")
	return cmd
}

func ticksPerSecond(interval time.Duration) int {
	return max(int(time.Second/interval), 1)
}
