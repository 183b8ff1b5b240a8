package omegacalc_test

import (
	"fmt"
	"strings"

	"github.com/omegacalc/omegacalc"
)

func ExampleEvalString() {
	v, _ := omegacalc.EvalString("(23+78)*1.5")
	fmt.Println(v)
	// Output:
	// 151.5
}

func ExampleCatalog_Format() {
	cat := omegacalc.DefaultCatalog()
	tokens := cat.Tokenize("-(2.7 + 6)")
	items, _ := cat.Format(tokens)
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	fmt.Println(strings.Join(parts, " "))
	v, _ := omegacalc.Solve(items)
	fmt.Println(v)
	// Output:
	// 2.7 6 + ( -
	// -8.7
}
