// Package ml - Context Interface
// Dieses Modul definiert das Context-Interface fuer den Graph-Aufbau
// (Konstanten, Iota, Broadcast, Vergleiche, Reduktionen) sowie Tensor-Handles.
package ml

// Tensor is a handle to a value produced inside a Context. It is owned by
// the Context that created it.
type Tensor interface {
	DType() DType
	Shape() Shape
}

// ComparisonDirection selects the predicate of Context.Compare.
type ComparisonDirection int

const (
	CompareEQ ComparisonDirection = iota
	CompareNE
	CompareLT
	CompareLE
	CompareGT
	CompareGE
)

func (d ComparisonDirection) String() string {
	switch d {
	case CompareEQ:
		return "EQ"
	case CompareNE:
		return "NE"
	case CompareLT:
		return "LT"
	case CompareLE:
		return "LE"
	case CompareGT:
		return "GT"
	case CompareGE:
		return "GE"
	default:
		return "??"
	}
}

// BinaryOp selects the elementwise operation of Context.Binary.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpMin
	OpMax
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMin:
		return "minimum"
	case OpMax:
		return "maximum"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "??"
	}
}

// ReduceFunc builds the body of a variadic reduction. lhs and rhs hold one
// rank-0 parameter per reduced operand (lhs is the accumulator). It must
// return one rank-0 tensor per operand, with matching types.
type ReduceFunc func(ctx Context, lhs, rhs []Tensor) ([]Tensor, error)

// Context is an append-only graph builder. Every method appends zero or
// more operations and returns handles to their results; shapes and types
// are inferred by the Context. A Context is not safe for concurrent use.
type Context interface {
	// Constant appends a constant holding lit.
	Constant(lit *Literal) (Tensor, error)

	// Iota creates a tensor whose elements are their coordinate along axis.
	Iota(dtype DType, shape Shape, axis int) (Tensor, error)

	// BroadcastInDim broadcasts t to shape; dims[i] is the output axis that
	// input axis i maps to.
	BroadcastInDim(t Tensor, shape Shape, dims []int) (Tensor, error)

	Reshape(t Tensor, shape Shape) (Tensor, error)

	// ConvertElementType converts every element of t to the physical type p.
	ConvertElementType(t Tensor, p PrimitiveType) (Tensor, error)

	// Compare returns a bool tensor. Operands must have identical shapes.
	Compare(lhs, rhs Tensor, direction ComparisonDirection) (Tensor, error)

	// Select picks onTrue where pred holds and onFalse elsewhere.
	Select(pred, onTrue, onFalse Tensor) (Tensor, error)

	Binary(op BinaryOp, lhs, rhs Tensor) (Tensor, error)

	// Reduce folds every input along axes with body, starting from inits.
	// All inputs share one shape; the result drops the reduced axes.
	Reduce(inputs, inits []Tensor, axes []int, body ReduceFunc) ([]Tensor, error)
}
