package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/microsprite/internal/apps/beans"
	"github.com/vovakirdan/microsprite/internal/apps/bounce"
	"github.com/vovakirdan/microsprite/internal/config"
	platform "github.com/vovakirdan/microsprite/internal/platform/term"
	"github.com/vovakirdan/microsprite/internal/registry"
	"github.com/vovakirdan/microsprite/internal/storage"
)

var (
	flagConfig       string
	flagEngineConfig string
)

var playCmd = &cobra.Command{
	Use:   "play <app>",
	Short: "Run an app in the terminal simulator",
	Long: `Start the specified app on the simulated pixel display.

Controls:
  Arrows/WASD  - Directional keys
  Enter/Space  - Action key
  B/Esc        - Back key (apps usually exit on it)
  Q/Ctrl+C     - Quit the simulator

Examples:
  microsprite play beans
  microsprite play bounce --fps 30
  microsprite play beans --seed 42
  microsprite play beans --config ./my-beans.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom app config YAML")
	playCmd.Flags().StringVar(&flagEngineConfig, "engine-config", "", "Path to custom engine config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	appID := args[0]

	// Check if app exists
	if !registry.Exists(appID) {
		fmt.Fprintf(os.Stderr, "Error: unknown app %q\n", appID)
		fmt.Fprintln(os.Stderr, "Run 'microsprite list' to see available apps.")
		os.Exit(1)
	}

	// Load the simulated display configuration
	engCfg, err := config.LoadEngine(flagEngineConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		engCfg.TickRate = flagFPS
	}

	// Warn when the terminal cannot fit the display (2 cells per pixel).
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < engCfg.Screen.Width*2 || h < engCfg.Screen.Height {
			fmt.Fprintf(os.Stderr,
				"Warning: terminal %dx%d is smaller than the %dx%d display needs (%dx%d)\n",
				w, h, engCfg.Screen.Width, engCfg.Screen.Height,
				engCfg.Screen.Width*2, engCfg.Screen.Height)
		}
	}

	// Set config path for apps before creation
	switch appID {
	case "beans":
		beans.SetConfigPath(flagConfig)
	case "bounce":
		bounce.SetConfigPath(flagConfig)
	}

	// Create app instance
	app, err := registry.Create(appID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating app: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the app still works
		store = nil
	}

	rc := registry.RunConfig{
		Seed:     flagSeed,
		TickRate: engCfg.TickRate,
	}
	runErr := platform.Run(app, store, engCfg, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", runErr)
		os.Exit(1)
	}
}
