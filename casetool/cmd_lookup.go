package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unixpickle/llcases"
)

var (
	lookupTop   string
	lookupRing  string
	lookupSetup string
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find the case matching a fingerprint in any orientation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := lookupFingerprint()
			if err != nil {
				return err
			}
			return LookupCmd(config.Store(), fp)
		},
	}
	cmd.Flags().StringVar(&lookupTop, "top", "", "8-bit top pattern")
	cmd.Flags().StringVar(&lookupRing, "ring", "", "12-bit ring pattern")
	cmd.Flags().StringVar(&lookupSetup, "setup", "", "algorithm which sets up the case from solved")
	return cmd
}

func lookupFingerprint() (llcases.Fingerprint, error) {
	if lookupSetup != "" {
		if lookupTop != "" || lookupRing != "" {
			return llcases.Fingerprint{}, errors.New("use either --setup or --top/--ring")
		}
		state, err := llcases.Run(lookupSetup, false)
		if err != nil {
			return llcases.Fingerprint{}, err
		}
		return llcases.PatternOf(state), nil
	}
	fp := llcases.Fingerprint{Top: lookupTop, Ring: lookupRing}
	if err := fp.Validate(); err != nil {
		return fp, fmt.Errorf("bad fingerprint %q: %w", fp.String(), err)
	}
	return fp, nil
}

var rotationMessages = [4]string{
	"Orientation matches the reference.",
	"Detected cube rotated 90 degrees clockwise.",
	"Detected cube rotated 180 degrees from reference.",
	"Detected cube rotated 90 degrees counterclockwise.",
}

func LookupCmd(store llcases.Store, fp llcases.Fingerprint) error {
	records, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Println("Pattern:", fp)
	if match, ok := llcases.Lookup(records, fp); ok {
		printMatch(match)
		return nil
	}

	match, agreement := llcases.Nearest(records, fp)
	if match == nil {
		return errors.New("no usable cases in database")
	}
	fmt.Printf("No exact match. Closest case agrees on %.0f%% of stickers.\n", agreement*100)
	printMatch(match)
	return nil
}

func printMatch(m *llcases.Match) {
	fmt.Println("Case:", m.Record.ID)
	fmt.Println(rotationMessages[m.Turns])
	fmt.Println("Solution:", m.Solution)
}
