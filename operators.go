package omegacalc

import (
	"fmt"
	"math"
	"strconv"
)

// ArityClass tells how an operator takes its operands.
type ArityClass int8

const (
	// Binary operators take an operand on each side: a + b.
	Binary ArityClass = 1 + iota
	// UnaryBefore operators take one operand that precedes them: a!.
	UnaryBefore
	// UnaryAfter operators take one operand that follows them: ~a.
	UnaryAfter
	// Container operators enclose a subexpression between their symbol
	// and end symbol: (a).
	Container
)

func (c ArityClass) String() string {
	switch c {
	case Binary:
		return "binary"
	case UnaryBefore:
		return "unary-before"
	case UnaryAfter:
		return "unary-after"
	case Container:
		return "container"
	}
	return "invalid"
}

// HighestPriority is the priority of container operators. Every other
// operator has a lower priority, so nothing escapes a container before
// it closes.
const HighestPriority = 999

// Operator is an immutable operation descriptor. Operators are package
// singletons; two operators sharing a symbol (the overloads of "-") are
// distinguished by pointer identity.
type Operator struct {
	symbol   string
	end      string
	priority float64
	class    ArityClass
	apply    func(args []float64) (float64, error)
}

// Symbol returns the symbol that denotes the operator in an expression.
func (op *Operator) Symbol() string { return op.symbol }

// EndSymbol returns the closing symbol of a container operator. It is
// empty for every other class.
func (op *Operator) EndSymbol() string { return op.end }

// Priority returns the operator's binding priority. Higher binds
// tighter.
func (op *Operator) Priority() float64 { return op.priority }

// Class returns the operator's arity class.
func (op *Operator) Class() ArityClass { return op.class }

// Arity returns the number of operands the operator consumes.
func (op *Operator) Arity() int {
	if op.class == Binary {
		return 2
	}
	return 1
}

// Apply performs the operation. args has exactly Arity elements in
// expression order. A failed domain precondition yields a
// *CalculationError.
func (op *Operator) Apply(args []float64) (float64, error) {
	return op.apply(args)
}

func (op *Operator) String() string { return op.symbol }

// calcErr is a shortcut to create a *CalculationError.
func calcErr(format string, args ...interface{}) error {
	return &CalculationError{Msg: fmt.Sprintf(format, args...)}
}

const (
	// maxFactorial caps factorial input. 171! overflows float64, so the
	// multiply loop stops there and larger input is a calculation error.
	maxFactorial = 170
	// maxDigitSumDigits is the significant-digit budget of the digit sum
	// operator. float64 can't represent more digits exactly, so summing
	// them would report noise as if it were part of the number.
	maxDigitSumDigits = 15
)

var (
	opAdd = &Operator{symbol: "+", priority: 1, class: Binary,
		apply: func(args []float64) (float64, error) { return args[0] + args[1], nil },
	}
	opSubtract = &Operator{symbol: "-", priority: 1, class: Binary,
		apply: func(args []float64) (float64, error) { return args[0] - args[1], nil },
	}
	opMultiply = &Operator{symbol: "*", priority: 2, class: Binary,
		apply: func(args []float64) (float64, error) { return args[0] * args[1], nil },
	}
	opDivide = &Operator{symbol: "/", priority: 2, class: Binary,
		apply: func(args []float64) (float64, error) {
			if args[1] == 0 {
				return 0, calcErr("cannot divide by zero")
			}
			return args[0] / args[1], nil
		},
	}
	opPower = &Operator{symbol: "^", priority: 3, class: Binary,
		apply: applyPower,
	}
	opModulo = &Operator{symbol: "%", priority: 4, class: Binary,
		apply: func(args []float64) (float64, error) {
			if args[1] == 0 {
				return 0, calcErr("cannot take a modulo by zero")
			}
			return math.Mod(args[0], args[1]), nil
		},
	}
	opMax = &Operator{symbol: "$", priority: 5, class: Binary,
		apply: func(args []float64) (float64, error) { return math.Max(args[0], args[1]), nil },
	}
	opMin = &Operator{symbol: "&", priority: 5, class: Binary,
		apply: func(args []float64) (float64, error) { return math.Min(args[0], args[1]), nil },
	}
	opAverage = &Operator{symbol: "@", priority: 5, class: Binary,
		apply: func(args []float64) (float64, error) { return (args[0] + args[1]) / 2, nil },
	}
	opNegate = &Operator{symbol: "~", priority: 6, class: UnaryAfter,
		apply: func(args []float64) (float64, error) { return -args[0], nil },
	}
	opFactorial = &Operator{symbol: "!", priority: 6, class: UnaryBefore,
		apply: applyFactorial,
	}
	opDigitSum = &Operator{symbol: "#", priority: 6, class: UnaryBefore,
		apply: applyDigitSum,
	}
	// opMinus is the sign that starts an expression or continues a sign
	// chain. It binds loosely so that -5! negates the factorial.
	opMinus = &Operator{symbol: "-", priority: 3.5, class: UnaryAfter,
		apply: func(args []float64) (float64, error) { return -args[0], nil },
	}
	// opSign is the sign that follows another operator needing a value,
	// as in 3+-4. It binds tighter than any binary operator.
	opSign = &Operator{symbol: "-", priority: 10, class: UnaryAfter,
		apply: func(args []float64) (float64, error) { return -args[0], nil },
	}
	opBrackets = &Operator{symbol: "(", end: ")", priority: HighestPriority, class: Container,
		apply: func(args []float64) (float64, error) { return args[0], nil },
	}
)

func applyPower(args []float64) (float64, error) {
	base, exp := args[0], args[1]
	if base == 0 && exp <= 0 {
		return 0, calcErr("cannot raise zero to a non-positive power (%v^%v)", base, exp)
	}
	if base < 0 && exp != math.Trunc(exp) {
		return 0, calcErr("cannot raise a negative number to a fractional power (%v^%v)", base, exp)
	}
	r := math.Pow(base, exp)
	if math.IsInf(r, 0) {
		return 0, calcErr("%v^%v is too large to represent", base, exp)
	}
	return r, nil
}

func applyFactorial(args []float64) (float64, error) {
	n := args[0]
	if n < 0 {
		return 0, calcErr("cannot take the factorial of a negative number (%v! = ?)", n)
	}
	if n != math.Trunc(n) {
		return 0, calcErr("can only take the factorial of a whole number (%v! = ?)", n)
	}
	if n > maxFactorial {
		return 0, calcErr("factorial of %v is too large to calculate", n)
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r, nil
}

func applyDigitSum(args []float64) (float64, error) {
	n := args[0]
	if n < 0 {
		return 0, calcErr("cannot sum the digits of a negative number (%v)", n)
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	sig, sum := 0, 0.0
	seen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			continue
		}
		d := int(c - '0')
		if d != 0 {
			seen = true
		}
		if seen {
			sig++
		}
		sum += float64(d)
	}
	if sig > maxDigitSumDigits {
		return 0, calcErr("%v has too many significant digits to sum", n)
	}
	return sum, nil
}
