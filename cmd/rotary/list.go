package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rotary/internal/levels"
	"github.com/vovakirdan/rotary/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list [pack]",
	Short: "List level packs, or the levels of one pack",
	Long: `Without arguments, shows every level pack found in the levels directory.
With a pack ID, shows its levels and whether a solution is stored for each.

Examples:
  rotary list
  rotary list basic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	// Solutions are optional here; list works without a database.
	store, err := a.openStore()
	if err != nil {
		a.logger.Warn("could not open solutions database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if len(args) == 1 {
		listLevels(a.mustPack(args[0]), store)
		return
	}

	packs, err := a.loader.LoadAll()
	if err != nil {
		fail("%v", err)
	}
	if len(packs) == 0 {
		fmt.Printf("No level packs found in %s.\n", a.cfg.Levels.Dir)
		return
	}

	fmt.Println("Level packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Solved", "Name")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "--", "------", "------", "----")
	for _, p := range packs {
		solved := "-"
		if store != nil {
			if sols, err := store.ListSolutions(p.ID); err == nil {
				solved = fmt.Sprintf("%d", len(sols))
			}
		}
		fmt.Printf("  %-*s  %-6d  %-6s  %s\n", maxIDLen, p.ID, p.Len(), solved, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'rotary list <pack>' to see its levels.")
}

func listLevels(pack levels.Pack, store *storage.Store) {
	solutions := map[int]storage.SolutionRecord{}
	if store != nil {
		if sols, err := store.ListSolutions(pack.ID); err == nil {
			for _, s := range sols {
				solutions[s.Level] = s
			}
		}
	}

	fmt.Printf("%s (%s)\n", pack.Name, pack.ID)
	fmt.Println()
	fmt.Printf("  %-3s  %-7s  %-8s  %s\n", "#", "Size", "Solution", "Name")
	fmt.Printf("  %-3s  %-7s  %-8s  %s\n", "-", "----", "--------", "----")
	for i, l := range pack.Levels {
		status := "-"
		if s, ok := solutions[i]; ok {
			status = fmt.Sprintf("%d moves", s.Moves())
			if !s.Matches(l.Grid) {
				status = "stale"
			}
		}
		size := fmt.Sprintf("%dx%d", l.Grid.W, l.Grid.H)
		fmt.Printf("  %-3d  %-7s  %-8s  %s\n", i, size, status, l.Name)
	}

	fmt.Println()
	fmt.Printf("Run 'rotary solve %s <level>' to solve a level.\n", pack.ID)
}
