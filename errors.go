package tabnav

import "fmt"

// OutOfRangeError reports a selection index outside [0, Count). It is
// surfaced to the caller rather than silently clamped, since clamping
// would mask host logic errors.
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("tab index %d out of range [0, %d)", e.Index, e.Count)
}
