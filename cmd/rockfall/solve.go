package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockfall/internal/registry"
	"github.com/vovakirdan/rockfall/internal/storage"
	"github.com/vovakirdan/rockfall/internal/strategy"
)

var (
	flagPieces   []int64
	flagStrategy string
	flagVerify   bool
	flagNoSave   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print tower heights for the configured targets",
	Long: `Read a jet pattern and print the tower height after each target
number of rocks, one decimal value per line.

By default the targets are 2022 and 1000000000000 rocks. Small targets
are cross-checked by brute force unless verification is disabled.

Examples:
  rockfall solve input.txt
  rockfall solve input.txt --pieces 2022 --pieces 5000
  rockfall solve input.txt --strategy brute --pieces 2022
  rockfall solve input.txt --verify=false --no-save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().Int64SliceVar(&flagPieces, "pieces", nil, "Rock counts to report (overrides config targets)")
	solveCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Height strategy (see 'rockfall list')")
	solveCmd.Flags().BoolVar(&flagVerify, "verify", true, "Cross-check small targets by brute force")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in history")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	logger := newLogger(cfg)

	if len(flagPieces) > 0 {
		cfg.Targets = flagPieces
	}
	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	if cmd.Flags().Changed("verify") {
		cfg.Verify.Enabled = flagVerify
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	solver, err := registry.Create(cfg.Strategy)
	if err != nil {
		fail(fmt.Errorf("%w (run 'rockfall list' to see available strategies)", err))
	}

	pattern, err := readPattern(args)
	if err != nil {
		fail(err)
	}
	logger.Debug("pattern loaded", "jets", len(pattern), "strategy", solver.ID())

	outcomes, err := strategy.Solve(solver, pattern, cfg.Targets, strategy.Verify{
		Enabled:   cfg.Verify.Enabled,
		MaxPieces: cfg.Verify.MaxPieces,
	})
	if err != nil {
		fail(err)
	}

	for _, out := range outcomes {
		res := out.Result
		if res.Cycle != nil {
			logger.Info("cycle found",
				"pieces", res.Pieces,
				"start", res.Cycle.Start,
				"length", res.Cycle.Length,
				"gain", res.Cycle.Gain,
				"repeats", res.Cycle.Repeats,
			)
		}
		logger.Debug("solved",
			"pieces", res.Pieces,
			"height", res.Height,
			"simulated", res.Simulated,
			"verified", out.Verified,
		)
		fmt.Println(res.Height)
	}

	if flagNoSave {
		return
	}
	store := openStore(cfg, logger)
	if store == nil {
		return
	}
	defer store.Close()

	hash := storage.HashPattern(pattern.String())
	for _, out := range outcomes {
		run := storage.Run{
			PatternHash: hash,
			PatternLen:  len(pattern),
			Strategy:    out.Solver,
			Pieces:      out.Result.Pieces,
			Height:      out.Result.Height,
			Simulated:   out.Result.Simulated,
			Verified:    out.Verified,
		}
		if c := out.Result.Cycle; c != nil {
			run.CycleStart = c.Start
			run.CycleLength = c.Length
			run.CycleGain = c.Gain
		}
		if _, err := store.SaveRun(run); err != nil {
			logger.Warn("could not record run", "pieces", run.Pieces, "error", err)
		}
	}
}
