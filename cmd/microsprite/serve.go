package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microsprite/internal/config"
	platform "github.com/vovakirdan/microsprite/internal/platform/term"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeApp    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simulator SSH server",
	Long: `Start an SSH server that gives every connection its own simulated
display running the configured app. Scores are stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.microsprite/host_key

Examples:
  microsprite serve                          # Serve "beans" on :23234
  microsprite serve --ssh :2222 --app bounce
  microsprite serve --host-key ./my_host_key
  microsprite serve --db ./scores.db

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeApp, "app", "beans", "App every session runs")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagEngineConfig, "engine-config", "", "Path to custom engine config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	engCfg, err := config.LoadEngine(flagEngineConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		engCfg.TickRate = flagFPS
	}

	cfg := platform.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		AppID:       flagServeApp,
		Engine:      engCfg,
	}

	server, err := platform.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting microsprite SSH server on %s (app: %s)\n", cfg.Address, cfg.AppID)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
