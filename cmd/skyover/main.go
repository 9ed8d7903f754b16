// skyover is a terminal math-shooter: knock down the drone whose number
// answers the equation on the HUD.
//
// Usage:
//
//	skyover play              - Play locally in the current terminal
//	skyover serve             - Start SSH server for remote play
//	skyover scores            - Show the high score table
//	skyover levels            - List the difficulty curriculum
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyover/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyover",
	Short: "Sky Over Kharkiv - arithmetic target practice in your terminal",
	Long: `Sky Over Kharkiv is a terminal game that drills mental arithmetic.
An equation sits on the HUD, numbered drones drift across the sky, and
the turret fires at whichever one you pick. Hit the drone carrying the
right answer before it escapes off the left edge.

Available commands:
  play     - Play locally in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the high score table
  levels   - Show what each difficulty level asks

Examples:
  skyover play
  skyover play --level 2
  skyover serve --ssh :2222
  skyover scores --level 1
  skyover levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyover/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
