package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats <pack>",
	Short: "Show stored solutions and solve history for a pack",
	Long: `Display how many levels of a pack have stored solutions, a summary of
past solver runs and the most recent runs.

Examples:
  rotary stats basic
  rotary stats basic --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent runs to show")
}

func runStats(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	pack := a.mustPack(args[0])

	store := a.mustStore()
	defer store.Close()

	stats, err := store.PackStats(pack.ID)
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Printf("Solve History - %s\n", pack.Name)
	fmt.Println()
	fmt.Printf("  Solutions:   %d of %d levels\n", stats.Solutions, pack.Len())
	if stats.Solutions > 0 {
		fmt.Printf("  Avg moves:   %.1f\n", stats.AvgMoves)
	}
	fmt.Printf("  Runs:        %d (%d solved, %d unsolvable)\n", stats.Runs, stats.Solved, stats.Unsolvable)
	fmt.Printf("  Solve time:  %s\n", stats.TotalTime.Round(time.Millisecond))
	if !stats.LastRun.IsZero() {
		fmt.Printf("  Last run:    %s\n", stats.LastRun.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()

	runs, err := store.RecentRuns(pack.ID, flagStatsLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'rotary solve %s --all' to solve every level.\n", pack.ID)
		return
	}

	fmt.Printf("  %-5s  %-10s  %-5s  %-8s  %-9s  %s\n", "Level", "Outcome", "Moves", "States", "Time", "Date")
	fmt.Printf("  %-5s  %-10s  %-5s  %-8s  %-9s  %s\n", "-----", "-------", "-----", "------", "----", "----")
	for _, r := range runs {
		moves := "-"
		if r.Moves > 0 {
			moves = fmt.Sprintf("%d", r.Moves)
		}
		fmt.Printf("  %-5d  %-10s  %-5s  %-8d  %-9s  %s\n",
			r.Level, r.Outcome, moves, r.States,
			r.Duration.Round(time.Millisecond), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
