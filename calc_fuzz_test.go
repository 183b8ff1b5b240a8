//go:build go1.18
// +build go1.18

package omegacalc_test

import (
	"math"
	"testing"

	"github.com/omegacalc/omegacalc"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1+2")
	f.Add("-(2.7+6)*3!")
	f.Add("159 -2 *3 ^3!@62  #")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := omegacalc.EvalString(s)
		if err != nil {
			switch err.(type) {
			case *omegacalc.FormattingError, *omegacalc.CalculationError, *omegacalc.SolvingError:
			default:
				t.Errorf("EvalString(%q) gave foreign error %T (%v)", s, err, err)
			}
			return
		}
		if math.IsInf(v, 0) {
			t.Errorf("EvalString(%q) = %v without error", s, v)
		}
	})
}
