package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayudkin/tui-maze/internal/config"
	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/platform/tui"
	"github.com/ayudkin/tui-maze/internal/storage"
)

var flagMenuProfile string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. New runs ask for
your name unless --profile is given. After a run ends you return to
the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  maze menu
  maze menu --profile alice
  maze menu --fps 30
  maze menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuProfile, "profile", "", "Player name (skips the name prompt)")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Menu loop; remember the entered name across runs
	profile := flagMenuProfile
	for {
		menuResult, err := tui.RunMenu(store, cfg, profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}
		if menuResult.Profile != "" {
			profile = menuResult.Profile
		}

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard

		case tui.MenuChoicePlay:
			game, gameErr := newConfiguredGame(gameCfg, "", "")
			if gameErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", gameErr)
				continue
			}

			if err := tui.Run(game, store, cfg, menuResult.Profile); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			// Loop back to menu
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
