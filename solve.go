package omegacalc

import (
	"math"
	"strconv"
)

// roundingDigits is the decimal precision of a solved result. Rounding
// suppresses float noise, so that -9.4+2.21 is -7.19 rather than
// -7.1899999999999995.
const roundingDigits = 12

// Solve evaluates a postfix item sequence to a single value. Structural
// problems (starved operators, leftover operands, invalid items, an
// unrepresentable result) are *SolvingError; operator domain violations
// are *CalculationError.
func Solve(items []Item) (float64, error) {
	var values stack[float64]
	for _, it := range items {
		switch it.kind {
		case itemNum:
			values.push(it.num)
		case itemOp:
			op := it.op
			args := make([]float64, op.Arity())
			for i := op.Arity() - 1; i >= 0; i-- {
				v, ok := values.pop()
				if !ok {
					return 0, &SolvingError{Msg: "not enough operands for " + strconv.Quote(op.symbol)}
				}
				args[i] = v
			}
			r, err := op.Apply(args)
			if err != nil {
				return 0, err
			}
			values.push(r)
		default:
			return 0, &SolvingError{Msg: "unrecognized item " + strconv.Quote(it.String())}
		}
	}
	r, ok := values.pop()
	if !ok {
		return 0, &SolvingError{Msg: "empty expression"}
	}
	if values.len() > 0 {
		return 0, &SolvingError{Msg: "too many operands: every value must be joined to the expression by an operator"}
	}
	if math.IsInf(r, 1) {
		return 0, &SolvingError{Msg: "result is too large to represent"}
	}
	if math.IsInf(r, -1) {
		return 0, &SolvingError{Msg: "result is too small to represent"}
	}
	return roundResult(r), nil
}

// roundResult rounds to roundingDigits decimal places. Magnitudes at or
// above 1e15 pass through unchanged; scaling them would lose integer
// precision instead of removing noise.
func roundResult(r float64) float64 {
	if math.Abs(r) >= 1e15 {
		return r
	}
	shift := math.Pow(10, roundingDigits)
	return math.Round(r*shift) / shift
}
