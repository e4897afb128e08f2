package autodiff

import "fmt"

// MissingGradientError reports that a gradient maker was requested for a
// primitive and argument position with none registered. It surfaces from
// the gradient function returned by Grad; match it with errors.As.
type MissingGradientError struct {
	Primitive string // primitive name
	Argnum    int    // 1-based argument position

	// partial records whether some other position of the primitive does
	// have a maker, in which case the message names the missing position.
	partial bool
}

func (e *MissingGradientError) Error() string {
	if e.partial {
		return fmt.Sprintf("autodiff: gradient of %s not implemented for argument %d", e.Primitive, e.Argnum)
	}
	return fmt.Sprintf("autodiff: gradient of %s not implemented", e.Primitive)
}
