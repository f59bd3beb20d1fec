package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.lepak.sg/avltree/stress"
)

type stressConfiguration struct {
	Base *baseConfiguration
	stress.Config
}

func newStressCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &stressConfiguration{Base: baseConfig, Config: stress.DefaultConfig()}

	var cmd = &cobra.Command{
		Use:   "stress",
		Short: "Run random insert/delete sequences against a reference and check every step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(cmd, config)
		},
	}

	cmd.Flags().IntVar(&config.Trials, "trials", config.Trials, "number of independent trees")
	cmd.Flags().IntVar(&config.Ops, "ops", config.Ops, "operations per tree")
	cmd.Flags().IntVar(&config.Span, "span", config.Span, "values are drawn from [0, span)")
	cmd.Flags().IntVar(&config.InsertPercent, "insert-percent", config.InsertPercent, "chance of an operation being an insert")
	cmd.Flags().IntVar(&config.Workers, "workers", config.Workers, "trials running at the same time")
	cmd.Flags().Int64Var(&config.Seed, "seed", config.Seed, "seed of the first trial, trial i uses seed+i")

	return cmd
}

func runStress(cmd *cobra.Command, config *stressConfiguration) error {
	log := config.Base.log
	log.Info().
		Int("trials", config.Trials).
		Int("ops", config.Ops).
		Int("workers", config.Workers).
		Int64("seed", config.Seed).
		Msg("starting stress run")

	results, err := stress.Run(cmd.Context(), config.Config, log)
	if err != nil {
		return fmt.Errorf("stress run failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), results)
	return nil
}

func printSummary(out io.Writer, results []stress.Result) {
	var inserts, deletes, misses, maxHeight int
	for _, r := range results {
		inserts += r.Inserts
		deletes += r.Deletes
		misses += r.Misses
		if r.MaxHeight > maxHeight {
			maxHeight = r.MaxHeight
		}
	}

	fmt.Fprintf(out, "%d trials passed\n", len(results))
	fmt.Fprintf(out, "inserts: %d deletes: %d missed deletes: %d\n", inserts, deletes, misses)
	fmt.Fprintf(out, "tallest tree: %d\n", maxHeight)
}
