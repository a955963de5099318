package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [model]",
	Short: "Verify that models are locally normalized",
	Long: `Checks that, for every non-terminal (state, top) pair with at least one
transition, the outgoing weights sum to 1. Pairs without transitions are not
checked and no reachability analysis is done.
Without arguments every registered model is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			for _, m := range env.Workspace.Models() {
				names = append(names, m.Name)
			}
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, name := range names {
			eng, err := env.Engine(name)
			if err != nil {
				return err
			}
			if err := eng.Check(); err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
				continue
			}
			fmt.Fprintf(out, "ok   %s\n", name)
		}
		if failed > 0 {
			return fmt.Errorf("%d model(s) not normalized", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
