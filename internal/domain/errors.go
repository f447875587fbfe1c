package domain

import "strings"

// ValidationError carries every range violation found across both input
// points, Point 1 violations first. It is the only error category the
// solver produces: degenerate geometry and non-convergence are designed
// success paths, not failures.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid coordinates: " + strings.Join(e.Messages, "; ")
}
