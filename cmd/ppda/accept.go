package main

import (
	"fmt"

	"github.com/aretw0/ppda/internal/cli"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <model> <string>",
	Short: "Print the exact probability of a string",
	Long: `Computes the probability that the model generates the string.
Without --sep every character is one symbol.`,
	Example: `  ppda accept anbn 'aabb$'
  ppda accept coin --sep ' ' 'a'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sep, _ := cmd.Flags().GetString("sep")

		eng, err := env.Engine(args[0])
		if err != nil {
			return err
		}

		w, err := eng.Accept(cmd.Context(), domain.Tokenize(args[1], sep))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		text := w.RatString()
		if cli.IsTerminal(out) {
			o := termenv.NewOutput(out)
			color := "#22c55e"
			if w.Sign() == 0 {
				color = "#ef4444"
			}
			f, _ := w.Float64()
			fmt.Fprintf(out, "%s %s\n", o.String(text).Foreground(o.Color(color)).Bold(), o.String(fmt.Sprintf("(%g)", f)).Faint())
			return nil
		}
		fmt.Fprintln(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(acceptCmd)
	acceptCmd.Flags().String("sep", "", "Symbol separator (empty: one symbol per character)")
}
