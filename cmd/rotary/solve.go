package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rotary/internal/autosolve"
	"github.com/vovakirdan/rotary/internal/core"
	"github.com/vovakirdan/rotary/internal/platform/tui"
)

var (
	flagSolveAll   bool
	flagSolvePlain bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <pack> [level]",
	Short: "Solve one level, or every level of a pack",
	Long: `Runs the solver in the background and stores the shortest solution it
finds. On a terminal a progress screen is shown; press q or esc to stop.
With --plain, or when output is not a terminal, progress is logged and the
result printed as text; Ctrl+C stops the search.

Examples:
  rotary solve basic 2
  rotary solve basic --all
  rotary solve basic --all --plain`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "Solve every level of the pack")
	solveCmd.Flags().BoolVar(&flagSolvePlain, "plain", false, "Plain text output, no progress screen")
}

func runSolve(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	pack := a.mustPack(args[0])

	var targets []int
	switch {
	case len(args) == 2 && flagSolveAll:
		fail("give either a level or --all, not both")
	case len(args) == 2:
		targets = []int{parseLevel(pack, args[1])}
	case flagSolveAll:
		for i := range pack.Levels {
			targets = append(targets, i)
		}
	default:
		fail("give a level number or --all")
	}

	store := a.mustStore()
	defer store.Close()

	ctrl := autosolve.NewController(a.controllerConfig(), &pack, store)
	ctrl.SetRunRecorder(store)

	plain := flagSolvePlain || !interactive()
	theme := tui.DefaultTheme()

	// Ctrl+C stops the running search in plain mode; the progress screen
	// handles its own keys.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, i := range targets {
		if ctx.Err() != nil {
			break
		}
		title := fmt.Sprintf("%s / %d: %s", pack.ID, i, pack.Levels[i].Name)

		var timer *time.Timer
		if a.cfg.Solver.Timeout > 0 {
			timer = time.AfterFunc(a.cfg.Solver.Timeout, ctrl.TerminateSolving)
		}

		report, err := solveLevel(ctx, ctrl, i, title, plain, theme)
		if timer != nil {
			timer.Stop()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", title, err)
			failed++
			continue
		}
		if plain {
			fmt.Printf("%s: %s\n", title, plainOutcome(report))
		}

		switch report.Outcome {
		case autosolve.OutcomeFailed:
			failed++
		case autosolve.OutcomeCancelled:
			if !plain && a.cfg.Solver.Timeout == 0 {
				// Leaving the progress screen stops the whole batch.
				return
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// solveLevel solves one level, on the progress screen unless plain is set.
// In plain mode cancelling ctx stops the search.
func solveLevel(ctx context.Context, ctrl *autosolve.Controller, level int, title string, plain bool, theme tui.Theme) (autosolve.Report, error) {
	if !plain {
		return tui.RunSolve(ctrl, level, title, theme)
	}
	if err := ctrl.Solve(level); err != nil {
		return autosolve.Report{}, err
	}
	select {
	case <-ctrl.Done():
	case <-ctx.Done():
		ctrl.TerminateSolving()
	}
	return ctrl.Wait(), nil
}

func plainOutcome(r autosolve.Report) string {
	switch r.Outcome {
	case autosolve.OutcomeSolved:
		return fmt.Sprintf("solved in %d moves (%d states, %s): %s",
			len(r.Actions), r.Stats.Visited, r.Stats.Elapsed.Round(time.Millisecond), core.FormatActions(r.Actions))
	case autosolve.OutcomeUnsolvable:
		return fmt.Sprintf("no solution (%d states searched)", r.Stats.Visited)
	case autosolve.OutcomeCancelled:
		return "cancelled"
	default:
		if errors.Is(r.Err, core.ErrMalformed) {
			return fmt.Sprintf("malformed level: %v", r.Err)
		}
		return fmt.Sprintf("failed: %v", r.Err)
	}
}
