package omegacalc

import (
	"strconv"
	"strings"
)

type itemKind int8

const (
	itemNone itemKind = iota
	itemNum
	itemOp
)

// Item is one element of a postfix sequence: a numeric literal or a
// resolved operator reference. The zero Item is neither and is rejected
// by Solve.
type Item struct {
	kind itemKind
	num  float64
	op   *Operator
}

// Num returns an Item carrying a numeric literal.
func Num(v float64) Item {
	return Item{kind: itemNum, num: v}
}

// Op returns an Item referencing an operator.
func Op(op *Operator) Item {
	return Item{kind: itemOp, op: op}
}

func (it Item) String() string {
	switch it.kind {
	case itemNum:
		return strconv.FormatFloat(it.num, 'g', -1, 64)
	case itemOp:
		return it.op.symbol
	}
	return "<invalid>"
}

// itemsString formats a postfix sequence the way it would be written on
// paper, e.g. "3 4 - 2 *".
func itemsString(items []Item) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	return b.String()
}
