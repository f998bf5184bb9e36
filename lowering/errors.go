// Package lowering synthesizes typed constants and index operations on a
// graph builder: numeric traits per element type, scalar constants and
// literals, literal reshaping, accumulation types, element-type
// conversion, argmax/argmin and one-hot encoding.
//
// Every operation takes the builder as an explicit argument and only
// appends to it; nothing is retained between calls. A failed call does not
// remove operations it appended before failing.
package lowering

import "github.com/pkg/errors"

var (
	// ErrUnsupportedType is returned when a trait or operation is not
	// defined for the requested element type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidArgument is returned for out-of-range axes, depths and
	// literal values, and for element count mismatches.
	ErrInvalidArgument = errors.New("invalid argument")
)

// KernelContext is the diagnostic sink of the kernel being lowered.
type KernelContext interface {
	// OpName names the kernel in diagnostics.
	OpName() string

	// SetStatus records a failure of the current lowering attempt.
	SetStatus(err error)
}

// report annotates err with the kernel name and hands it to kctx.
func report(kctx KernelContext, err error) error {
	if err == nil || kctx == nil {
		return err
	}
	err = errors.WithMessagef(err, "lowering %s", kctx.OpName())
	kctx.SetStatus(err)
	return err
}
