package renda

import (
	"errors"
	"fmt"
)

// Validate checks the full input snapshot and returns every problem found
// as one joined error. No computation runs while this returns non-nil.
func (in ComparisonInput) Validate() error {
	var errs []error
	if err := in.A.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := in.B.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := in.Macro.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := in.macroCovers(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// macroCovers checks that the reference projection starts no later than the
// first settlement year. Later years are covered by the terminal regime,
// but a projection that begins after the analysis window cannot anchor the
// early months of the curve.
func (in ComparisonInput) macroCovers() error {
	if len(in.Macro.Reference) == 0 {
		return nil // already reported by Macro.Validate
	}
	first := MinDate(in.A.Settlement, in.B.Settlement).Year()
	lo := 0
	for y := range in.Macro.Reference {
		if lo == 0 || y < lo {
			lo = y
		}
	}
	if lo > first {
		return fmt.Errorf("macro projection starts in %d but the analysis starts in %d", lo, first)
	}
	return nil
}
