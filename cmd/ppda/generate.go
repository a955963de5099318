package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/ppda/pkg/domain"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <model>",
	Short: "Sample strings from a model",
	Long: `Samples strings from the model. The same --seed always yields the same strings.
With --count above 1 the samples are drawn concurrently from independent substreams.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")
		withWeight, _ := cmd.Flags().GetBool("weight")
		sep, _ := cmd.Flags().GetString("sep")

		eng, err := env.Engine(args[0])
		if err != nil {
			return err
		}

		seed := env.Config.Seed
		var samples []domain.Sample
		if count == 1 {
			s, err := eng.Generate(cmd.Context(), seed)
			if err != nil {
				return err
			}
			samples = []domain.Sample{*s}
		} else {
			samples, err = eng.Batch(cmd.Context(), count, seed)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		for _, s := range samples {
			switch {
			case asJSON:
				if err := enc.Encode(s); err != nil {
					return err
				}
			case withWeight:
				fmt.Fprintf(out, "%s\t%s\n", domain.NewString(s.Symbols...).Join(sep), s.Weight)
			default:
				fmt.Fprintln(out, domain.NewString(s.Symbols...).Join(sep))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("count", "n", 1, "Number of samples")
	generateCmd.Flags().Bool("json", false, "Print samples as JSON lines")
	generateCmd.Flags().BoolP("weight", "w", false, "Print the exact weight next to each string")
	generateCmd.Flags().String("sep", "", "Separator between symbols")
}
