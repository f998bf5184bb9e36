// cmd_builders.go - Command-Builder
// Hauptfunktionen: newTraitsCmd, newAccumCmd, newArgMaxCmd, newOneHotCmd
package cmd

import (
	"github.com/spf13/cobra"
)

func newTraitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "traits [DTYPE...]",
		Short:   "List numeric traits per element type",
		Aliases: []string{"ls"},
		RunE:    TraitsHandler,
	}
}

func newAccumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accum [DTYPE...]",
		Short: "List the sum accumulation type per element type",
		RunE:  AccumHandler,
	}
}

func newArgMaxCmd() *cobra.Command {
	argmaxCmd := &cobra.Command{
		Use:   "argmax",
		Short: "Lower argmax (or argmin) over a constant and print the result",
		Args:  cobra.NoArgs,
		RunE:  ArgMaxHandler,
	}

	argmaxCmd.Flags().Float64Slice("values", nil, "Input elements in row-major order (e.g. 3,5,5,1)")
	argmaxCmd.Flags().IntSlice("shape", nil, "Input shape (default: one axis holding all values)")
	argmaxCmd.Flags().Int("axis", 0, "Axis to reduce")
	argmaxCmd.Flags().String("dtype", "float32", "Input element type")
	argmaxCmd.Flags().String("output-type", "int32", "Index element type")
	argmaxCmd.Flags().Bool("min", false, "Lower argmin instead of argmax")
	argmaxCmd.Flags().Bool("graph", false, "Print the appended graph")
	argmaxCmd.Flags().Int("precision", -1, "Decimal places for float output (-1: shortest)")
	_ = argmaxCmd.MarkFlagRequired("values")

	return argmaxCmd
}

func newOneHotCmd() *cobra.Command {
	onehotCmd := &cobra.Command{
		Use:   "onehot",
		Short: "Lower a one-hot encoding of constant indices and print the result",
		Args:  cobra.NoArgs,
		RunE:  OneHotHandler,
	}

	onehotCmd.Flags().IntSlice("indices", nil, "Indices in row-major order (e.g. 2,0)")
	onehotCmd.Flags().IntSlice("shape", nil, "Indices shape (default: one axis holding all indices)")
	onehotCmd.Flags().Int("depth", 0, "Size of the new axis")
	onehotCmd.Flags().Int("axis", -1, "Position of the new axis (default: last)")
	onehotCmd.Flags().String("index-type", "int32", "Index element type")
	onehotCmd.Flags().String("dtype", "float32", "Output element type")
	onehotCmd.Flags().Float64("on", 1, "Value where the index matches")
	onehotCmd.Flags().Float64("off", 0, "Value everywhere else")
	onehotCmd.Flags().Bool("graph", false, "Print the appended graph")
	onehotCmd.Flags().Int("precision", -1, "Decimal places for float output (-1: shortest)")
	_ = onehotCmd.MarkFlagRequired("indices")
	_ = onehotCmd.MarkFlagRequired("depth")

	return onehotCmd
}
