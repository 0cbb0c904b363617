package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/platform/tui"
	"github.com/vovakirdan/rotary/internal/solver"
)

var (
	flagSolutionPlay   bool
	flagSolutionVerify bool
)

var solutionCmd = &cobra.Command{
	Use:   "solution <pack> <level>",
	Short: "Show, verify or play back a stored solution",
	Long: `Prints the stored solution for a level as action codes:
  U R D L  move up, right, down, left
  RL RR    rotate the current tile left or right
  A        activate the current tile

With --play, steps through the solution on the board; press space or
right to apply the next move and r to start over.

Examples:
  rotary solution basic 2
  rotary solution basic 2 --verify
  rotary solution basic 2 --play`,
	Args: cobra.ExactArgs(2),
	Run:  runSolution,
}

func init() {
	solutionCmd.Flags().BoolVar(&flagSolutionPlay, "play", false, "Step through the solution interactively")
	solutionCmd.Flags().BoolVar(&flagSolutionVerify, "verify", false, "Replay the solution and check that it finishes the level")
}

func runSolution(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	pack := a.mustPack(args[0])
	level := parseLevel(pack, args[1])

	store := a.mustStore()
	defer store.Close()

	rec, err := store.Solution(pack.ID, level)
	if err != nil {
		fail("loading solution: %v", err)
	}
	if rec == nil {
		fmt.Printf("No solution stored for %s level %d.\n", pack.ID, level)
		fmt.Printf("Run 'rotary solve %s %d' to find one.\n", pack.ID, level)
		return
	}

	grid, err := pack.Level(level)
	if err != nil {
		fail("%v", err)
	}
	if !rec.Matches(grid) {
		a.logger.Warn("level changed since the solution was stored", "pack", pack.ID, "level", level)
	}

	name := pack.Levels[level].Name
	switch {
	case flagSolutionVerify:
		if err := solver.Verify(grid, rec.Actions); err != nil {
			fmt.Fprintf(os.Stderr, "%s: solution does not work: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("%s: solution verified (%d moves)\n", name, rec.Moves())
	case flagSolutionPlay:
		if !interactive() {
			fail("--play needs a terminal")
		}
		title := fmt.Sprintf("%s / %d: %s", pack.ID, level, name)
		if err := tui.RunSolution(grid, rec.Actions, title, tui.DefaultTheme()); err != nil {
			fail("%v", err)
		}
	default:
		printSolution(grid, rec.Actions, name)
	}
}

func printSolution(g *core.Grid, actions []core.Action, name string) {
	fmt.Printf("%s (%d moves)\n", name, len(actions))
	fmt.Println()
	fmt.Println(core.RenderASCII(g))
	fmt.Println()
	if len(actions) == 0 {
		fmt.Println("The level is already complete.")
		return
	}
	fmt.Printf("  %s\n", core.FormatActions(actions))
	fmt.Println()
	for i, act := range actions {
		fmt.Printf("  %3d  %-2s  %s\n", i+1, act.Code(), act)
	}
}
