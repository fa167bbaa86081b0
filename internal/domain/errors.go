package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies engine failures.
type Kind string

const (
	KindInvalidGeometry       Kind = "invalid_geometry"
	KindInvalidLoad           Kind = "invalid_load"
	KindInvalidMaterial       Kind = "invalid_material"
	KindInvalidStress         Kind = "invalid_stress"
	KindIncompatibleGeometry  Kind = "incompatible_geometry"
	KindBracketingFailure     Kind = "bracketing_failure"
	KindConvergenceFailure    Kind = "convergence_failure"
	KindNumericalError        Kind = "numerical_error"
	KindNegativeWallThickness Kind = "negative_wall_thickness"
	KindCompoundAnalysis      Kind = "compound_analysis_failure"
)

// Error is the single error type raised by the engine. Leaf functions fill
// Msg; orchestrators wrap an inner error in Err and name their stage in Op.
type Error struct {
	Op         string
	Kind       Kind
	Msg        string
	Iterations int // set for convergence failures
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{e.Op, string(e.Kind), e.Msg} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Errorf builds a leaf error of the given kind.
func Errorf(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap adds stage context to err. The wrapper keeps the inner kind.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: KindOf(err), Err: err}
}

// WrapKind adds stage context to err under a new aggregate kind.
func WrapKind(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf reports the outermost kind in err's chain, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Iterations reports the iteration count of the innermost convergence failure in err's chain.
func Iterations(err error) (int, bool) {
	n, ok := 0, false
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		if e.Kind == KindConvergenceFailure && e.Err == nil {
			n, ok = e.Iterations, true
		}
		err = e.Err
	}
	return n, ok
}
