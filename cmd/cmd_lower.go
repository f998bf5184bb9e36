// cmd_lower.go - ArgMax und OneHot Commands
// Hauptfunktionen: ArgMaxHandler, OneHotHandler
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/7blacky7/tensorlower/envconfig"
	"github.com/7blacky7/tensorlower/lowering"
	"github.com/7blacky7/tensorlower/ml"
	_ "github.com/7blacky7/tensorlower/ml/backend"
)

// readback - Tensoren, deren Daten als Literal gelesen werden koennen
type readback interface {
	Literal() *ml.Literal
}

// kernel - Diagnoseziel fuer die CLI, protokolliert Fehler via slog
type kernel string

func (k kernel) OpName() string { return string(k) }

func (k kernel) SetStatus(err error) {
	slog.Debug("lowering failed", "kernel", string(k), "error", err)
}

// ArgMaxHandler - Fuehrt ArgMax/ArgMin auf einem konstanten Tensor aus
func ArgMaxHandler(cmd *cobra.Command, args []string) error {
	values, err := cmd.Flags().GetFloat64Slice("values")
	if err != nil {
		return err
	}
	axis, err := cmd.Flags().GetInt("axis")
	if err != nil {
		return err
	}
	useMin, err := cmd.Flags().GetBool("min")
	if err != nil {
		return err
	}

	inputType, err := dtypeFlag(cmd, "dtype")
	if err != nil {
		return err
	}
	outputType, err := dtypeFlag(cmd, "output-type")
	if err != nil {
		return err
	}
	shape, err := shapeFlag(cmd, len(values))
	if err != nil {
		return err
	}

	c, err := ml.NewContext(envconfig.Backend())
	if err != nil {
		return err
	}

	vs := make([]ml.Value, len(values))
	for i, v := range values {
		vs[i] = ml.FromFloat64(inputType, v)
	}
	input, err := constant(c, inputType, shape, vs)
	if err != nil {
		return err
	}

	lower, name := lowering.ArgMax, "ArgMax"
	if useMin {
		lower, name = lowering.ArgMin, "ArgMin"
	}

	out, err := lower(c, kernel(name), input, shape, inputType, outputType, axis)
	if err != nil {
		return err
	}

	return printResult(cmd, c, out)
}

// OneHotHandler - Fuehrt OneHot auf konstanten Indizes aus
func OneHotHandler(cmd *cobra.Command, args []string) error {
	indices, err := cmd.Flags().GetIntSlice("indices")
	if err != nil {
		return err
	}
	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return err
	}
	axis, err := cmd.Flags().GetInt("axis")
	if err != nil {
		return err
	}
	on, err := cmd.Flags().GetFloat64("on")
	if err != nil {
		return err
	}
	off, err := cmd.Flags().GetFloat64("off")
	if err != nil {
		return err
	}

	indexType, err := dtypeFlag(cmd, "index-type")
	if err != nil {
		return err
	}
	dtype, err := dtypeFlag(cmd, "dtype")
	if err != nil {
		return err
	}
	shape, err := shapeFlag(cmd, len(indices))
	if err != nil {
		return err
	}
	if axis == -1 {
		axis = shape.Rank()
	}

	c, err := ml.NewContext(envconfig.Backend())
	if err != nil {
		return err
	}

	vs := make([]ml.Value, len(indices))
	for i, idx := range indices {
		vs[i] = ml.FromInt64(indexType, int64(idx))
	}
	input, err := constant(c, indexType, shape, vs)
	if err != nil {
		return err
	}
	onValue, err := lowering.FloatLiteral(c, dtype, on)
	if err != nil {
		return err
	}
	offValue, err := lowering.FloatLiteral(c, dtype, off)
	if err != nil {
		return err
	}

	out, err := lowering.OneHot(c, depth, axis, indexType, shape, input, onValue, offValue)
	if err != nil {
		return errors.WithMessage(err, "lowering OneHot")
	}

	return printResult(cmd, c, out)
}

// dtypeFlag - Liest einen Typnamen aus einem Flag
func dtypeFlag(cmd *cobra.Command, name string) (ml.DType, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return 0, err
	}
	dtype, err := ml.ParseDType(s)
	if err != nil {
		return 0, errors.WithMessagef(err, "--%s", name)
	}
	return dtype, nil
}

// shapeFlag - Liest --shape; Default ist ein Vektor mit n Elementen
func shapeFlag(cmd *cobra.Command, n int) (ml.Shape, error) {
	dims, err := cmd.Flags().GetIntSlice("shape")
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return ml.Shape{n}, nil
	}

	shape := ml.Shape(dims)
	if !shape.Valid() || shape.NumElements() != n {
		return nil, fmt.Errorf("--shape %s does not hold %d elements", shape, n)
	}
	return shape, nil
}

func constant(c ml.Context, dtype ml.DType, shape ml.Shape, values []ml.Value) (ml.Tensor, error) {
	lit, err := ml.LiteralFromValues(dtype, shape, values)
	if err != nil {
		return nil, err
	}
	return c.Constant(lit)
}

// printResult - Gibt das Ergebnis und optional den Graphen aus
func printResult(cmd *cobra.Command, c ml.Context, out ml.Tensor) error {
	w := cmd.OutOrStdout()

	if graph, _ := cmd.Flags().GetBool("graph"); graph {
		if s, ok := c.(fmt.Stringer); ok {
			fmt.Fprintln(w, s.String())
		}
	}

	rb, ok := out.(readback)
	if !ok {
		fmt.Fprintf(w, "%s%s\n", out.DType(), out.Shape())
		return nil
	}

	precision, err := cmd.Flags().GetInt("precision")
	if err != nil {
		return err
	}

	lit := rb.Literal()
	fmt.Fprintln(w, lit)
	fmt.Fprintln(w, ml.Dump(lit, ml.DumpWithPrecision(precision)))
	return nil
}
