package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ayudkin/tui-maze/internal/levels"
	"github.com/ayudkin/tui-maze/internal/maze"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect built-in or custom level packs",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in campaign levels",
	Long:  `Shows every level of the built-in campaign with its size, item counts, and time limit.`,
	Run:   runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a directory of custom YAML levels",
	Long: `Checks every level file in the directory: grid shape, start and exit
markers, item placement, and that the exit is reachable.

Examples:
  maze levels validate ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevelsList(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in campaign:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-9s  %-6s  %-6s  %s\n", "#", "Name", "Size", "Stars", "Traps", "Time")
	fmt.Printf("  %-3s  %-20s  %-9s  %-6s  %-6s  %s\n", "-", "----", "----", "-----", "-----", "----")

	for i := 0; i < maze.LevelCount(); i++ {
		lvl, err := maze.GetLevel(i)
		if err != nil {
			continue
		}
		size := fmt.Sprintf("%dx%d", len(lvl.Grid[0]), len(lvl.Grid))
		fmt.Printf("  %-3d  %-20s  %-9s  %-6d  %-6d  %ds\n",
			i+1, lvl.Name, size, len(lvl.Collectibles), len(lvl.Obstacles), lvl.TimeLimit)
	}

	fmt.Println()
	fmt.Println("Run 'maze play --level <#>' to start from a specific level.")
}

func runLevelsValidate(cmd *cobra.Command, args []string) {
	dir := args[0]
	loader := levels.NewLoader(dir)

	broken, err := loader.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", dir, err)
		os.Exit(1)
	}

	pack, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Printf("Checked %s: %d playable, %d broken\n", dir, len(pack), len(broken))

	if len(broken) > 0 {
		fmt.Println()
		files := make([]string, 0, len(broken))
		for f := range broken {
			files = append(files, f)
		}
		sort.Strings(files)
		for _, f := range files {
			fmt.Printf("  %s: %v\n", f, broken[f])
		}
		os.Exit(1)
	}
}
