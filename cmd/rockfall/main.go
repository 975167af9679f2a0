// rockfall computes how tall a tower of falling rocks grows in a narrow
// shaft while jets of gas push the rocks sideways.
//
// Usage:
//
//	rockfall solve [file]      - Tower heights for the configured targets
//	rockfall render [file]     - Draw the top of the shaft after some rocks
//	rockfall list              - List available height strategies
//	rockfall history [file]    - Show recorded runs
//
// The jet pattern is read from file, or from stdin when it is piped in.
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.rockfall/config.yaml, ./configs/rockfall.yaml)
//	--db <path>         - Run history database (default: ~/.rockfall/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/rockfall/internal/strategy"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockfall",
	Short: "Rockfall - tower heights of rocks pushed by jets",
	Long: `Rockfall simulates five rock shapes falling into a seven-column shaft
while a repeating pattern of jets pushes them left and right, and reports
the height of the resulting tower.

Available commands:
  solve    - Tower heights for the configured targets
  render   - Draw the top of the shaft
  list     - Show available height strategies
  history  - View recorded runs

Examples:
  rockfall solve input.txt
  cat input.txt | rockfall solve
  rockfall solve input.txt --pieces 2022 --strategy brute
  rockfall render input.txt --pieces 10
  rockfall history input.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
}
