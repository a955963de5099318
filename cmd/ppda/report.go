package main

import (
	"fmt"

	"github.com/aretw0/ppda/internal/cli"
	"github.com/aretw0/ppda/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <model>",
	Short: "Sample a model and summarize the strings it produced",
	Long: `Draws --count samples and prints a markdown report comparing empirical
frequencies with exact weights. The report is rendered when stdout is a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		top, _ := cmd.Flags().GetInt("top")

		eng, err := env.Engine(args[0])
		if err != nil {
			return err
		}
		samples, err := eng.Batch(cmd.Context(), count, env.Config.Seed)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		render := tui.NewRenderer(!cli.IsTerminal(out))
		text, err := render(tui.Report(eng.Name(), eng.Model(), samples, top))
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntP("count", "n", 1000, "Number of samples")
	reportCmd.Flags().Int("top", tui.DefaultTopK, "Number of distinct strings to list")
}
