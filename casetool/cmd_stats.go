package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unixpickle/llcases"
	"github.com/unixpickle/llcases/internal/logger"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize how consistent the case database is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return StatsCmd(config.Store())
		},
	}
}

func StatsCmd(store llcases.Store) error {
	log := logger.For("stats")

	records, err := store.Load()
	if err != nil {
		return err
	}

	var totalEntries int
	var parsedSolutions int
	var consistentPatterns int
	var lastLayerOnly int

	for _, rec := range records {
		totalEntries++
		fp, err := llcases.FingerprintOf(rec.Solution)
		if err != nil {
			log.Debugw("Unparsable solution", "id", rec.ID, "error", err)
			continue
		}
		parsedSolutions++
		if fp == rec.Fingerprint() {
			consistentPatterns++
		}
		check, err := llcases.CheckLastLayer(rec.Solution)
		if err != nil {
			log.Debugw("Cubie replay failed", "id", rec.ID, "error", err)
			continue
		}
		if check.F2LSolved {
			lastLayerOnly++
		}
	}

	fmt.Println("Processed", totalEntries, "cases:")
	fmt.Println("  Valid solutions:", parsedSolutions)
	fmt.Println("  Matching fingerprints:", consistentPatterns)
	fmt.Println("  Last-layer-only cases:", lastLayerOnly)

	return nil
}
