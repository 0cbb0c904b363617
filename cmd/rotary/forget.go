package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget <pack> [level]",
	Short: "Delete stored solutions",
	Long: `Deletes the stored solution of one level, or of every level in a pack
when no level is given. Solve history is kept.

Examples:
  rotary forget basic 2
  rotary forget basic`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runForget,
}

func runForget(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	pack := a.mustPack(args[0])

	store := a.mustStore()
	defer store.Close()

	if len(args) == 2 {
		level := parseLevel(pack, args[1])
		if err := store.DeleteSolution(pack.ID, level); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Deleted solution for %s level %d.\n", pack.ID, level)
		return
	}

	if err := store.ClearSolutions(pack.ID); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted all solutions for %s.\n", pack.ID)
}
