// Package omegacalc implements a fixed-precision infix calculator.
//
// Expressions are plain arithmetic text: "1+2*3", "(23+78)*1.5",
// "3+-4", "5!". Beyond the usual operators there are modulo (%),
// maximum ($), minimum (&), average (@), negation (~), factorial (!),
// and digit sum (#). A minus sign means subtraction, a sign on a
// number, or a sign on a whole subexpression, depending on where it
// appears.
//
// Evaluation happens in three stages: Tokenize splits the text into
// symbols, a formatter rewrites the symbols into postfix order, and
// Solve reduces the postfix sequence with a value stack. Each stage
// reports its own error kind; see FormattingError, CalculationError,
// and SolvingError.
package omegacalc
