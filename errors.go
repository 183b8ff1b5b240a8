package omegacalc

import "strconv"

// The three error kinds are disjoint: a formatting error never wraps a
// calculation error and so on. Callers distinguish them by type.

// FormattingError indicates a structural problem in the token sequence:
// an unknown symbol, a misplaced operator, an unclosed container.
type FormattingError struct {
	// Msg describes the problem.
	Msg string
	// Pos is the index of the offending token, or -1 when the error
	// applies to the whole expression.
	Pos int
}

func (err *FormattingError) Error() string {
	if err.Pos < 0 {
		return err.Msg
	}
	return "symbol " + strconv.Itoa(err.Pos) + ": " + err.Msg
}

// Position returns the index of the token that caused the error, or -1
// when the error is not localizable.
func (err *FormattingError) Position() int {
	return err.Pos
}

// CalculationError indicates that an operator was applied to arguments
// outside its domain, e.g. a division by zero or a negative factorial.
type CalculationError struct {
	Msg string
}

func (err *CalculationError) Error() string {
	return err.Msg
}

// SolvingError indicates a postfix sequence that is structurally
// inconsistent with evaluation: leftover operands, a starved operator,
// or an unrecognized item.
type SolvingError struct {
	Msg string
}

func (err *SolvingError) Error() string {
	return err.Msg
}
