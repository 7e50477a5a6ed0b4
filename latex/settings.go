// Package latex renders a bounded spreadsheet grid as the body of a LaTeX
// tabular environment.
package latex

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a sheet holds no values at all.
	ErrEmptyTable = errors.New("latex: table has no values")
	// ErrInvalidSettings is returned by Settings.Validate.
	ErrInvalidSettings = errors.New("latex: invalid settings")
)

// Settings controls rendering. It is never modified while rendering.
type Settings struct {
	RoundToDP bool `yaml:"round_to_dp"` // round numeric cells
	NumDP     int  `yaml:"num_dp"`      // decimal places when RoundToDP is set
	Booktabs  bool `yaml:"booktabs"`    // \toprule/\midrule/\cmidrule instead of \hline/\cline
}

// Validate checks the settings before any rendering happens.
func (s Settings) Validate() error {
	if s.NumDP < 0 {
		return fmt.Errorf("%w: num_dp must be >= 0, got %d", ErrInvalidSettings, s.NumDP)
	}
	return nil
}

// NumberError reports a numeric literal inside a cell that could not be
// converted while rounding.
type NumberError struct {
	Cell string // reference of the cell being rendered, when known
	Text string // the matched literal
	Err  error
}

func (e *NumberError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("latex: cell %s: cannot round %q: %v", e.Cell, e.Text, e.Err)
	}
	return fmt.Sprintf("latex: cannot round %q: %v", e.Text, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}
