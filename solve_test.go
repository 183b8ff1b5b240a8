package omegacalc

import (
	"errors"
	"testing"
)

func TestSolve(t *testing.T) {
	n := Num
	add, sub, mul, pow, mod := Op(opAdd), Op(opSubtract), Op(opMultiply), Op(opPower), Op(opModulo)
	max, min, avg := Op(opMax), Op(opMin), Op(opAverage)
	neg, fac, dig := Op(opNegate), Op(opFactorial), Op(opDigitSum)
	minus, sign, br := Op(opMinus), Op(opSign), Op(opBrackets)
	cases := []struct {
		items []Item
		want  float64
	}{
		{[]Item{n(1), n(2), add}, 3},
		{[]Item{n(4), n(7), n(1), mul, add}, 11},
		{[]Item{n(8), n(3), n(5), mul, add}, 23},
		{[]Item{n(12), n(9), sub, n(4), add}, 7},
		{[]Item{n(6), n(2), mul, n(10), add}, 22},
		{[]Item{n(2), n(7), add, n(3), sub}, 6},
		{[]Item{n(4), n(3), pow, n(6), mul}, 384},
		{[]Item{n(2), n(9), n(2), pow, mul}, 162},
		{[]Item{n(15), n(4), mod}, 3},
		{[]Item{n(9), n(3), max}, 9},
		{[]Item{n(1), n(8), min}, 1},
		{[]Item{n(6), n(4), avg}, 5},
		{[]Item{n(7), neg}, -7},
		{[]Item{n(5), fac}, 120},
		{[]Item{n(3), minus}, -3},
		{[]Item{n(5), n(4), add, br}, 9},
		{[]Item{n(1.2), n(7.3), add, br, n(0.8), mul}, 6.8},
		{[]Item{n(3), n(8), n(2), mul, br, add, br}, 19},
		{[]Item{n(7), n(1), add, br, n(9), n(2), sub, br, mul}, 56},
		{[]Item{n(4), n(5), add, br, n(2), mul, br}, 18},
		{[]Item{n(2.7), n(6), add, br, minus}, -8.7},
		{[]Item{n(3), n(4), sign, add}, -1},
		{[]Item{n(9.4), minus, n(2.21), add}, -7.19},
		{[]Item{n(5), minus, br, minus}, 5},
		{[]Item{n(1), minus, minus}, 1},
		{[]Item{n(8), dig}, 8},
		{[]Item{n(4), n(3), dig, add}, 7},
		{[]Item{n(6), dig, minus}, -6},
		{[]Item{n(11), n(2), neg, add}, 9},
		{[]Item{n(13), fac, dig}, 27},
		{[]Item{n(2), n(6), add, br, fac}, 40320},
		{[]Item{n(5.8), n(3), fac, add, br}, 11.8},
		{[]Item{n(11), n(6), max, n(2), min, n(9), avg}, 5.5},
		{[]Item{n(12), n(8), max, br, n(3), n(7), avg, br, min}, 5},
	}
	for _, c := range cases {
		got, err := Solve(c.items)
		if err != nil {
			t.Errorf("Solve(%v) failed: %v", itemsString(c.items), err)
			continue
		}
		if got != c.want {
			t.Errorf("Solve(%v) = %v, want %v", itemsString(c.items), got, c.want)
		}
	}
}

func TestSolveErrors(t *testing.T) {
	n := Num
	seq := func(items ...Item) []Item { return items }
	cases := []struct {
		name  string
		items []Item
		calc  bool
	}{
		{"two-numbers", seq(n(1.3), n(346.264)), false},
		{"starved-add", seq(n(1), Op(opAdd)), false},
		{"starved-mul", seq(Op(opMultiply), n(2)), false},
		{"starved-factorial", seq(Op(opFactorial), n(5)), false},
		{"leftover-unary", seq(n(5), Op(opNegate), n(4)), false},
		{"leftover-binary", seq(n(1), n(2), Op(opAdd), n(3), n(4)), false},
		{"starved-brackets", seq(Op(opBrackets)), false},
		{"reversed", seq(Op(opAdd), n(1), n(2)), false},
		{"invalid-item", seq(n(1), n(2), Item{}), false},
		{"empty", nil, false},
		{"leftover-negate", seq(n(234.534), n(3.7), Op(opNegate)), false},
		{"divide-by-zero", seq(n(1), n(0), Op(opDivide)), true},
		{"negative-frac-power", seq(n(-1), n(0.5), Op(opPower)), true},
		{"zero-neg-power", seq(n(0), n(-1), Op(opPower)), true},
		{"zero-zero-power", seq(n(0), n(0), Op(opPower)), true},
		{"modulo-by-zero", seq(n(5), n(0), Op(opModulo)), true},
		{"negative-factorial", seq(n(-3), Op(opFactorial)), true},
		{"fractional-factorial", seq(n(3.2), Op(opFactorial)), true},
		{"huge-factorial", seq(n(1000000), Op(opFactorial), Op(opDigitSum)), true},
		{"negative-digit-sum", seq(n(-5), Op(opDigitSum)), true},
		{"endless-digit-sum", seq(n(1), n(3), Op(opDivide), Op(opBrackets), Op(opDigitSum)), true},
		{"huge-power", seq(n(1000), n(10000), Op(opPower)), true},
		{"huge-negative-power", seq(n(-1000), n(10000), Op(opPower)), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Solve(c.items)
			if err == nil {
				t.Fatalf("Solve(%v) = %v, want error", itemsString(c.items), got)
			}
			var cerr *CalculationError
			var serr *SolvingError
			switch {
			case c.calc && !errors.As(err, &cerr):
				t.Errorf("Solve(%v) gave %T (%v), want *CalculationError", itemsString(c.items), err, err)
			case !c.calc && !errors.As(err, &serr):
				t.Errorf("Solve(%v) gave %T (%v), want *SolvingError", itemsString(c.items), err, err)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	got, err := Solve([]Item{Num(0.1), Num(0.2), Op(opAdd)})
	if err != nil {
		t.Fatalf("0.1+0.2 failed: %v", err)
	}
	if got != 0.3 {
		t.Errorf("0.1+0.2 = %v, want exactly 0.3", got)
	}
	big := 123456789123456784.0
	if r := roundResult(big); r != big {
		t.Errorf("roundResult(%v) = %v, want the value unchanged", big, r)
	}
}

func TestDigitSumSignificantDigits(t *testing.T) {
	cases := []struct {
		n    float64
		want float64
		err  bool
	}{
		{81.24, 15, false},
		{0, 0, false},
		{0.5, 5, false},
		{123456789012345, 60, false},
		{1234567890123456, 0, true},
	}
	for _, c := range cases {
		got, err := applyDigitSum([]float64{c.n})
		if c.err {
			if err == nil {
				t.Errorf("digit sum of %v = %v, want error", c.n, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("digit sum of %v failed: %v", c.n, err)
			continue
		}
		if got != c.want {
			t.Errorf("digit sum of %v = %v, want %v", c.n, got, c.want)
		}
	}
}
