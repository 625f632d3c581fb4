package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unixpickle/llcases"
	"github.com/unixpickle/llcases/internal/logger"
)

var (
	repairDryRun      bool
	repairCheckLayers bool
)

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Recompute every case fingerprint and rewrite stale ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RepairCmd(config.Store(), repairDryRun, repairCheckLayers)
		},
	}
	cmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report changes without saving")
	cmd.Flags().BoolVar(&repairCheckLayers, "check-layers", true,
		"warn about solutions which disturb the first two layers")
	return cmd
}

func RepairCmd(store llcases.Store, dryRun, checkLayers bool) error {
	report, err := llcases.RepairStore(store, llcases.RepairOptions{
		DryRun:      dryRun,
		CheckLayers: checkLayers,
		Log:         logger.For("repair"),
	})
	if err != nil {
		return err
	}
	for _, c := range report.Changes {
		fmt.Printf("%s:\n  Old: %s\n  New: %s\n", c.ID, c.Old, c.New)
	}
	fmt.Printf("Updated %d of %d cases.\n", report.Changed, report.Total)
	return nil
}
