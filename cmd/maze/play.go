package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ayudkin/tui-maze/internal/config"
	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/input"
	"github.com/ayudkin/tui-maze/internal/levels"
	"github.com/ayudkin/tui-maze/internal/maze"
	"github.com/ayudkin/tui-maze/internal/platform/tui"
	"github.com/ayudkin/tui-maze/internal/storage"
)

var (
	flagProfile   string
	flagLevel     int
	flagInput     string
	flagLevelsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a maze run",
	Long: `Start playing immediately, skipping the menu.

Controls:
  WASD/Arrows - Move
  Enter       - Continue after clearing a level
  P           - Pause
  R           - Restart (after the run ends)
  Q/Ctrl+C    - Quit

Input methods:
  keyboard - Standard key input (default)
  tilt     - Tilt sensor, if one is installed

Examples:
  maze play
  maze play --profile alice
  maze play --level 5
  maze play --input tilt
  maze play --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "player", "Player name for the scoreboard")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
	playCmd.Flags().StringVar(&flagInput, "input", "", "Input method: keyboard or tilt (overrides config)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom YAML levels (overrides config)")
}

// newConfiguredGame builds a game from the loaded config plus any CLI
// overrides. Shared by play, menu, and serve.
func newConfiguredGame(cfg config.MazeConfig, inputOverride, levelsOverride string) (*maze.Game, error) {
	game := maze.New()

	game.SetRules(maze.Rules{
		InitialLives:        cfg.Rules.InitialLives,
		CollectiblePoints:   cfg.Rules.CollectiblePoints,
		CollectibleBonus:    cfg.Rules.CollectibleBonus,
		TimeBonusMultiplier: cfg.Rules.TimeBonusMultiplier,
		LifeLostTicks:       cfg.Rules.LifeLostTicks,
	})

	src, err := buildSource(cfg, inputOverride)
	if err != nil {
		return nil, err
	}
	game.SetSource(src)

	dir := cfg.Levels.Dir
	if levelsOverride != "" {
		dir = levelsOverride
	}
	if dir != "" {
		pack, loadErr := levels.NewLoader(dir).LoadAll()
		if loadErr != nil {
			return nil, fmt.Errorf("cannot load levels from %s: %w", dir, loadErr)
		}
		if len(pack) == 0 {
			return nil, fmt.Errorf("no playable levels found in %s", dir)
		}
		game.SetLevels(pack)
	}

	return game, nil
}

// buildSource creates the input source named by the config or override.
func buildSource(cfg config.MazeConfig, override string) (input.Source, error) {
	method := cfg.Input.Method
	if override != "" {
		method = override
	}

	if method == "tilt" {
		opts := input.TiltOptions{
			DeadzoneDeg: cfg.Input.Tilt.DeadzoneDeg,
			Smoothing:   cfg.Input.Tilt.Smoothing,
		}
		return input.NewDefaultTilt(opts), nil
	}

	src, err := input.New(method)
	if err != nil {
		return nil, fmt.Errorf("unknown input method %q (available: %v)", method, input.List())
	}
	return src, nil
}

// selectStartLevel validates the 1-based level choice and arms the next
// run to start there. A custom pack skips the campaign range check; its
// size is only known after loading.
func selectStartLevel(level int, customPack bool) error {
	if level < 1 {
		return fmt.Errorf("--level must be 1 or higher")
	}
	if !customPack && level > maze.LevelCount() {
		return fmt.Errorf("--level %d is out of range (campaign has %d levels)", level, maze.LevelCount())
	}
	maze.SetStartLevel(level)
	return nil
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := newConfiguredGame(gameCfg, flagInput, flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	customPack := flagLevelsDir != "" || gameCfg.Levels.Dir != ""
	if err := selectStartLevel(flagLevel, customPack); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagProfile)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
