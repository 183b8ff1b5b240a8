package omegacalc

// defaultCatalog backs the package-level entry points. It is built once
// and never mutated, so sharing it across goroutines is fine.
var defaultCatalog = DefaultCatalog()

// Default returns the catalog used by the package-level entry points.
func Default() *Catalog {
	return defaultCatalog
}

// Tokenize splits an expression into tokens using the default catalog.
func Tokenize(expression string) []string {
	return defaultCatalog.Tokenize(expression)
}

// Evaluate formats a token sequence with the default catalog and solves
// the resulting postfix sequence.
func Evaluate(tokens []string) (float64, error) {
	items, err := defaultCatalog.Format(tokens)
	if err != nil {
		return 0, err
	}
	return Solve(items)
}

// EvalString tokenizes and evaluates an expression in one call.
func EvalString(expression string) (float64, error) {
	return Evaluate(Tokenize(expression))
}
