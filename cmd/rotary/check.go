package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rotary/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [pack]",
	Short: "Look for problems in level packs",
	Long: `Loads level packs and reports levels that are malformed or cannot be
finished: missing finish tiles, key tiles without locks, transporters
without a partner and similar mistakes. Exits with status 1 if any error
is found.

Examples:
  rotary check
  rotary check basic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.close()

	var packs []levels.Pack
	if len(args) == 1 {
		packs = []levels.Pack{a.mustPack(args[0])}
	} else {
		all, err := a.loader.LoadAll()
		if err != nil {
			fail("%v", err)
		}
		packs = all
	}

	errorCount, warnCount := 0, 0
	for i := range packs {
		p := &packs[i]
		issues := levels.Check(p)
		if len(issues) == 0 {
			fmt.Printf("%s: ok (%d levels)\n", p.ID, p.Len())
			continue
		}
		fmt.Printf("%s:\n", p.ID)
		for _, issue := range issues {
			fmt.Printf("  %s\n", issue)
			if issue.Severity == levels.SeverityError {
				errorCount++
			} else {
				warnCount++
			}
		}
	}

	fmt.Println()
	fmt.Printf("%d pack(s), %d error(s), %d warning(s)\n", len(packs), errorCount, warnCount)
	if errorCount > 0 {
		os.Exit(1)
	}
}
