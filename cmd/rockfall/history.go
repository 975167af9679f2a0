package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockfall/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "Show recorded runs",
	Long: `Display recorded runs. With a pattern file, only runs for that
pattern are shown, largest rock count first, followed by a summary.

Examples:
  rockfall history
  rockfall history input.txt --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum runs to show")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	// History is explicit here; open regardless of storage.enabled.
	cfg.Storage.Enabled = true
	store := openStore(cfg, newLogger(cfg))
	if store == nil {
		fail(fmt.Errorf("cannot open run history at %s", cfg.Storage.Path))
	}
	defer store.Close()

	var (
		runs []storage.Run
		hash string
	)
	if len(args) > 0 {
		pattern, perr := readPattern(args)
		if perr != nil {
			fail(perr)
		}
		hash = storage.HashPattern(pattern.String())
		runs, err = store.RunsForPattern(hash, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fail(err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'rockfall solve <file>' to record one.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-15s  %-15s  %-6s  %s\n", "Pattern", "Strategy", "Rocks", "Height", "Cycle", "Date")
	fmt.Printf("  %-16s  %-8s  %-15s  %-15s  %-6s  %s\n", "-------", "--------", "-----", "------", "-----", "----")

	for _, r := range runs {
		cycle := "-"
		if r.CycleLength > 0 {
			cycle = fmt.Sprintf("%d", r.CycleLength)
		}
		if r.Verified {
			cycle += "*"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8s  %-15d  %-15d  %-6s  %s\n", r.PatternHash, r.Strategy, r.Pieces, r.Height, cycle, dateStr)
	}
	fmt.Println()
	fmt.Println("* verified by brute force")

	if hash == "" {
		return
	}
	stats, err := store.PatternStats(hash)
	if err == nil {
		fmt.Printf("Runs: %d  Max rocks: %d  Max height: %d\n", stats.Runs, stats.MaxPieces, stats.MaxHeight)
	}
}
