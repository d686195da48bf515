package layout

import (
	"errors"
	"fmt"
)

// ErrMeasureFailed is matched (via errors.Is) by the *MeasureError returned
// when a host MeasureFunc itself returns an error. Per spec.md §7 ("Host-signaled
// error"), this abandons the layout call entirely: no partial LayoutOutput
// is produced.
var ErrMeasureFailed = errors.New("flexlayout: measurement failed")

// MeasureError reports which child's measurement call failed and why.
type MeasureError struct {
	// Index is the position of the failing child in the input slice.
	Index int
	Err   error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("flexlayout: measure child %d: %v", e.Index, e.Err)
}

func (e *MeasureError) Unwrap() error { return e.Err }

func (e *MeasureError) Is(target error) bool {
	return target == ErrMeasureFailed
}
