// microsprite is a terminal simulator for a small sprite engine aimed at
// microcontroller pixel displays.
//
// Usage:
//
//	microsprite list              - List available apps
//	microsprite play <app>        - Run an app in the terminal simulator
//	microsprite serve             - Start SSH server for remote sessions
//	microsprite scores <app>      - Show high scores for an app
//
// Global flags:
//
//	--fps <rate>    - Override the tick rate
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.microsprite/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import apps to register them
	_ "github.com/vovakirdan/microsprite/internal/apps/beans"
	_ "github.com/vovakirdan/microsprite/internal/apps/bounce"
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
	Use:   "microsprite",
	Short: "Microsprite - A sprite engine simulator in your terminal",
	Long: `Microsprite runs a tick-driven sprite engine for small pixel
displays, simulated in the terminal.

Available commands:
  list     - Show all available apps
  play     - Run a specific app in the simulator
  serve    - Start SSH server for remote sessions
  scores   - View high scores

Examples:
  microsprite list
  microsprite play beans
  microsprite play bounce --fps 30
  microsprite serve --ssh :2222 --app bounce
  microsprite scores beans`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use engine config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.microsprite/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
