package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/platform/tui"
	"github.com/pingpongcat/sky-over-kharkov/internal/storage"
)

var (
	flagConfig        string
	flagLevel         int
	flagPlayer        string
	flagAllowNegative bool
	flagBreakdown     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a match in the current terminal.

Controls:
  Mouse      - Aim (move) and fire (left click)
  WASD/Arrows - Nudge the crosshair
  Space/F    - Fire at the crosshair
  1/2/3      - Pick a level on the start screen
  B          - Toggle the solution breakdown hint
  N          - Toggle negative subtraction answers
  P/Esc      - Pause
  R          - Restart (after game over)
  Tab        - High scores (when no match is running)
  Q/Ctrl+C   - Quit

Levels:
  1 - Addition and subtraction
  2 - Adds multiplication, larger operands
  3 - Adds division

Examples:
  skyover play
  skyover play --level 3
  skyover play --allow-negative
  skyover play --config ./my-skyover.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (0 = pick on the start screen)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the leaderboard (default: $USER)")
	playCmd.Flags().BoolVar(&flagAllowNegative, "allow-negative", false, "Allow negative subtraction answers")
	playCmd.Flags().BoolVar(&flagBreakdown, "breakdown", false, "Show the solution breakdown hint")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags beat the config file, but only when actually given.
	if cmd.Flags().Changed("level") {
		cfg.Options.DefaultLevel = flagLevel
	}
	if cmd.Flags().Changed("allow-negative") {
		cfg.Options.AllowNegative = flagAllowNegative
	}
	if cmd.Flags().Changed("breakdown") {
		cfg.Options.ShowBreakdown = flagBreakdown
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}
	if player == "" {
		player = "local"
	}

	runErr := tui.Run(&cfg, store, tui.Options{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   player,
		ScreenW:  width,
		ScreenH:  height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
