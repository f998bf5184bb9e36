// cmd_list.go - Traits und Accum Commands
// Hauptfunktionen: TraitsHandler, AccumHandler
package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7blacky7/tensorlower/lowering"
	"github.com/7blacky7/tensorlower/ml"
)

// TraitsHandler - Listet die numerischen Eigenschaften der Elementtypen auf
func TraitsHandler(cmd *cobra.Command, args []string) error {
	dtypes, err := dtypesFromArgs(args)
	if err != nil {
		return err
	}

	var data [][]string

	for _, dtype := range dtypes {
		traits, err := lowering.TraitsOf(dtype)
		if err != nil {
			return err
		}

		row := []string{dtype.String(), dtype.Kind().String(), strconv.Itoa(dtype.BitSize())}
		for _, f := range lowering.Fields() {
			v, err := traits.Value(f)
			if err != nil {
				row = append(row, "-")
				continue
			}
			row = append(row, ml.FormatValue(dtype, v))
		}
		data = append(data, row)
	}

	header := []string{"TYPE", "KIND", "BITS"}
	for _, f := range lowering.Fields() {
		header = append(header, f.String())
	}

	table := newTable(cmd)
	table.SetHeader(header)
	table.AppendBulk(data)
	table.Render()

	return nil
}

// AccumHandler - Listet den Akkumulationstyp fuer Summen pro Elementtyp auf
func AccumHandler(cmd *cobra.Command, args []string) error {
	dtypes, err := dtypesFromArgs(args)
	if err != nil {
		return err
	}

	var data [][]string

	for _, dtype := range dtypes {
		acc := lowering.SumAccumulationType(dtype)
		widened := "no"
		if acc != dtype {
			widened = "yes"
		}
		data = append(data, []string{dtype.String(), acc.String(), widened})
	}

	table := newTable(cmd)
	table.SetHeader([]string{"TYPE", "ACCUMULATION", "WIDENED"})
	table.AppendBulk(data)
	table.Render()

	return nil
}

// newTable - Rahmenlose Tabelle auf die Command-Ausgabe
func newTable(cmd *cobra.Command) *tablewriter.Table {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	return table
}

// dtypesFromArgs - Parst Typnamen; ohne Argumente der ganze Katalog
func dtypesFromArgs(args []string) ([]ml.DType, error) {
	if len(args) == 0 {
		return ml.DTypes(), nil
	}

	dtypes := make([]ml.DType, 0, len(args))
	for _, arg := range args {
		dtype, err := ml.ParseDType(arg)
		if err != nil {
			return nil, err
		}
		dtypes = append(dtypes, dtype)
	}
	return dtypes, nil
}
