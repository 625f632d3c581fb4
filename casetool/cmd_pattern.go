package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unixpickle/llcases"
)

var patternNoInvert bool

func newPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern <algorithm>...",
		Short: "Print the top and ring fingerprint of the case an algorithm solves",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return PatternCmd(strings.Join(args, " "), !patternNoInvert)
		},
	}
	cmd.Flags().BoolVar(&patternNoInvert, "no-invert", false,
		"apply the algorithm itself instead of its inverse")
	return cmd
}

func PatternCmd(alg string, invert bool) error {
	state, err := llcases.Run(alg, invert)
	if err != nil {
		return err
	}
	fmt.Println(llcases.PatternOf(state))
	return nil
}
