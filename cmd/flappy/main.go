// flappy is a terminal side-scroller: guide the dragon through the
// gaps, one flap at a time.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy scores            - Show the high-score table
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set UI tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
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
	Use:   "flappy",
	Short: "Flappy Dragon - a side-scroller in your terminal",
	Long: `Flappy Dragon is a terminal game: gravity pulls the dragon down,
flapping lifts it up, and the obstacle gaps get narrower the longer
you survive.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score table
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --seed 42
  flappy scores
  flappy serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
