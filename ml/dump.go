// dump.go - Dump-Funktionen fuer Literal-Debugging und Visualisierung
// Dieses Modul stellt Hilfsfunktionen zum Ausgeben von Literal-Inhalten bereit.
package ml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func mul(s ...int) int {
	p := 1
	for _, v := range s {
		p *= v
	}

	return p
}

// DumpOptions configures literal dump output format.
type DumpOptions func(*dumpOptions)

// DumpWithPrecision sets the number of decimal places to print for float
// and complex elements. A negative precision prints the shortest
// representation that round-trips.
func DumpWithPrecision(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.Precision = n
	}
}

// DumpWithThreshold sets the threshold for printing the entire literal. If the number of elements
// is less than or equal to this value, the entire literal will be printed. Otherwise, only the
// beginning and end of each dimension will be printed.
func DumpWithThreshold(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.Threshold = n
	}
}

// DumpWithEdgeItems sets the number of elements to print at the beginning and end of each dimension.
func DumpWithEdgeItems(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.EdgeItems = n
	}
}

type dumpOptions struct {
	Precision, Threshold, EdgeItems int
}

// Dump converts a literal to a human-readable nested representation in
// row-major order.
func Dump(lit *Literal, optsFuncs ...DumpOptions) string {
	opts := dumpOptions{Precision: 4, Threshold: 1000, EdgeItems: 3}
	for _, optsFunc := range optsFuncs {
		optsFunc(&opts)
	}

	if lit.NumElements() <= opts.Threshold {
		opts.EdgeItems = math.MaxInt
	}

	dtype := lit.DType()
	// float16 und bfloat16 sind exakt als float32 darstellbar
	floatBits := 64
	if dtype.BitSize() <= 32 {
		floatBits = 32
	}
	format := func(v Value) string {
		switch dtype.Kind() {
		case KindFloat:
			return strconv.FormatFloat(v.Float, 'f', opts.Precision, floatBits)
		case KindComplex:
			return strconv.FormatComplex(v.Complex, 'f', opts.Precision, dtype.BitSize())
		default:
			return FormatValue(dtype, v)
		}
	}

	values := lit.Values()
	if lit.Shape().Rank() == 0 {
		return format(values[0])
	}
	return dump(values, lit.Shape(), opts.EdgeItems, format)
}

func dump(s []Value, shape Shape, items int, fn func(Value) string) string {
	var sb strings.Builder
	var f func([]int, int)
	f = func(dims []int, offset int) {
		prefix := strings.Repeat(" ", len(shape)-len(dims)+1)
		stride := mul(dims[1:]...)
		sb.WriteString("[")
		defer func() { sb.WriteString("]") }()
		for i := 0; i < dims[0]; i++ {
			if i >= items && i < dims[0]-items {
				sb.WriteString("..., ")
				// weiter beim naechsten ausgegebenen Element
				if len(dims) > 1 {
					fmt.Fprint(&sb, strings.Repeat("\n", len(dims)-1), prefix)
				}
				i = dims[0] - items - 1
			} else if len(dims) > 1 {
				f(dims[1:], offset+i*stride)
				if i < dims[0]-1 {
					fmt.Fprint(&sb, ",", strings.Repeat("\n", len(dims)-1), prefix)
				}
			} else {
				text := fn(s[offset+i])
				if len(text) > 0 && text[0] != '-' {
					sb.WriteString(" ")
				}

				sb.WriteString(text)
				if i < dims[0]-1 {
					sb.WriteString(", ")
				}
			}
		}
	}
	f(shape, 0)

	return sb.String()
}
