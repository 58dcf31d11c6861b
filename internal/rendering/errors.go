// Package rendering produces the downloadable scan report (HTML and PDF) and
// the plain-text bullet export.
package rendering

import "fmt"

// RenderError indicates report rendering failed.
type RenderError struct {
	Stage string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering failed at %s: %v", e.Stage, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
