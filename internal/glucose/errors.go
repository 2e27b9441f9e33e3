package glucose

import (
	"errors"
	"fmt"
)

// Domain errors for simulation and schedule operations.
var (
	// ErrInvalidParameter indicates a configuration value outside its valid range.
	ErrInvalidParameter = errors.New("glucose: parameter out of valid bounds")

	// ErrInvalidDose indicates a rejected insulin-dose mutation.
	ErrInvalidDose = errors.New("glucose: invalid insulin dose")
)

// ParameterError wraps ErrInvalidParameter with the offending field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("glucose: %s=%g %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// DoseError wraps ErrInvalidDose with the rejected dose.
type DoseError struct {
	Dose   InsulinDose
	Reason string
}

func (e *DoseError) Error() string {
	return fmt.Sprintf("glucose: dose %s %.2fu at minute %d: %s", e.Dose.Kind, e.Dose.Amount, e.Dose.Time, e.Reason)
}

func (e *DoseError) Unwrap() error {
	return ErrInvalidDose
}
