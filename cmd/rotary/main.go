// rotary solves Rotary puzzle levels and plays back their solutions in the
// terminal.
//
// Usage:
//
//	rotary list [pack]                  - List packs, or the levels of a pack
//	rotary solve <pack> [level]         - Solve one level, or every level
//	rotary solution <pack> <level>      - Show or play back a stored solution
//	rotary check [pack]                 - Look for problems in level packs
//	rotary stats <pack>                 - Show solve history for a pack
//	rotary forget <pack> [level]        - Delete stored solutions
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.rotary, ./configs)
//	--db <path>         - SQLite database path (default: ~/.rotary/solutions.db)
//	--levels <dir>      - Level pack directory (default: ./levels)
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rotary",
	Short: "Rotary - solve rotating tile puzzles in your terminal",
	Long: `Rotary finds the shortest sequence of moves, rotations and tile
activations that walks the player onto a finish tile, stores it, and
plays it back step by step.

Available commands:
  list       - Show level packs or the levels of one pack
  solve      - Run the solver on one level or a whole pack
  solution   - Show, verify or play back a stored solution
  check      - Validate level packs
  stats      - Show stored solutions and solve history
  forget     - Delete stored solutions

Examples:
  rotary list
  rotary list basic
  rotary solve basic 2
  rotary solve basic --all --plain
  rotary solution basic 2 --play
  rotary check`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solutions database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level pack directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(solutionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(forgetCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
