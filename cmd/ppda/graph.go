package main

import (
	"fmt"

	"github.com/aretw0/ppda/internal/presentation/graph"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <model>",
	Short: "Export the automaton as a Mermaid state diagram",
	Long: `Outputs a Mermaid diagram (stateDiagram-v2) of the model's transitions and weights.
With --trace the states visited while scoring the string are highlighted
and the state the run ended in is marked as current.`,
	Example: `  ppda graph anbn
  ppda graph anbn --trace 'ab'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := env.Engine(args[0])
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("trace") {
			text, _ := cmd.Flags().GetString("trace")
			sep, _ := cmd.Flags().GetString("sep")
			tr, err := eng.Trace(cmd.Context(), domain.Tokenize(text, sep))
			if err != nil {
				return err
			}
			overlay = graph.NewOverlay(tr.States, tr.Current)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(eng.Model(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("trace", "", "Highlight the path taken by this string")
	graphCmd.Flags().String("sep", "", "Symbol separator for --trace (empty: one symbol per character)")
}
