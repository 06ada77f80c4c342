// invaders is a terminal invader-shooting game.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play a game
//	invaders controls        - Show the key bindings
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
//	--seed <value>  - Set RNG seed for reproducible explosion cues
//	--debug         - Log at debug level
//	--mute          - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDebug  bool
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bottom row in your terminal",
	Long: `Invaders is a terminal game: steer a ship along the bottom row and shoot
down the swarm before it lands.

Available commands:
  play      - Play a game (default)
  controls  - Show the key bindings

Examples:
  invaders
  invaders play --mute
  invaders controls --config ./my-invaders.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
}
