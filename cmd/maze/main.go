// maze is a terminal maze game: navigate the grid, collect the stars,
// dodge the traps, and reach the exit before the timer runs out.
//
// Usage:
//
//	maze play                - Start a run directly
//	maze menu                - Interactive menu (play, scores, quit)
//	maze levels list         - List the built-in campaign levels
//	maze levels validate     - Validate a directory of custom levels
//	maze serve               - Start SSH server for remote play
//	maze scores [profile]    - Show high scores
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.maze/scores.db)
//	--config <path>  - Path to a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Quest - a grid maze game in your terminal",
	Long: `Maze Quest is a terminal game: guide your avatar through a maze,
collect every star, avoid the traps, and reach the exit before the
level timer expires.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu (play, scores, quit)
  levels   - Inspect built-in or custom level packs
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  maze play
  maze play --level 3 --input tilt
  maze menu
  maze serve --ssh :2222
  maze scores alice`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
