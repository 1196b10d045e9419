package core

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidArgument is the class of errors caused by inputs the engine cannot
// compute a meaningful result for. Compare with errors.Is.
const ErrInvalidArgument = constError("invalid argument")

// ErrInvalidEmployeeCount is returned by the carbon calculator when the employee
// count is zero or negative, which would make the per-employee figure undefined.
var ErrInvalidEmployeeCount = fmt.Errorf("%w: employee count must be greater than zero", ErrInvalidArgument)
