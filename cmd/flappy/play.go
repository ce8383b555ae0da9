package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Ferlinnnnn/flappy-Game/internal/audio"
	"github.com/Ferlinnnnn/flappy-Game/internal/config"
	"github.com/Ferlinnnnn/flappy-Game/internal/platform/tui"
	"github.com/Ferlinnnnn/flappy-Game/internal/storage"
)

var (
	flagConfig  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up   - Flap
  P/Enter    - Start (menu) / play again (game over)
  R          - Restart (after game over)
  M          - Toggle sound effects
  B          - Toggle background music
  Q/Ctrl+C   - Quit
  Mouse      - Click the on-screen buttons

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --no-audio`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable the audio backend entirely")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Warn when the terminal cannot fit the playfield.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Field.Width || h < cfg.Field.Height {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, playfield needs %dx%d; the view will be clipped\n",
				w, h, cfg.Field.Width, cfg.Field.Height)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		FPS:    flagFPS,
		Store:  store,
	}

	if !flagNoAudio {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})
		player := audio.New(logger)
		defer player.Close()
		opts.Audio = player
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
