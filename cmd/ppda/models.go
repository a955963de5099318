package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available models",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, m := range env.Workspace.Models() {
			eng, err := env.Engine(m.Name)
			if err != nil {
				return err
			}
			status := "normalized"
			if err := eng.Check(); err != nil {
				status = "not normalized"
			}

			symbols := make([]string, 0)
			for _, s := range eng.Model().Alphabet() {
				symbols = append(symbols, string(s))
			}
			fmt.Fprintf(out, "%-8s Σ={%s} %s\n", m.Name, strings.Join(symbols, ","), status)
			fmt.Fprintf(out, "         %s\n", m.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
