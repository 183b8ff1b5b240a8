package omegacalc

import (
	"errors"
	"sort"
)

// ErrUnknownSymbol is reported by Catalog.GetOperator when the token at
// the requested position is not a catalogued operator symbol.
var ErrUnknownSymbol = errors.New("symbol is not an operator")

// overloadGroup holds the operators sharing one textual symbol together
// with the rule that picks among them for a given occurrence. The rule
// is re-derived for every occurrence because it depends on the
// surrounding tokens.
type overloadGroup struct {
	candidates []*Operator
	resolve    func(c *Catalog, tokens []string, pos int) *Operator
}

// entry maps one symbol to either a single operator or an overload
// group; exactly one of the fields is set.
type entry struct {
	op    *Operator
	group *overloadGroup
}

// Catalog is the set of operators a calculator understands. It is built
// once, is immutable afterward, and is safe for concurrent readers.
type Catalog struct {
	entries map[string]entry
	ends    map[string]*Operator
	order   []*Operator
}

// DefaultCatalog returns the standard operator set: the arithmetic
// operators of the package documentation plus the three-way overload of
// the minus sign.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		entries: make(map[string]entry),
		ends:    make(map[string]*Operator),
	}
	for _, op := range []*Operator{
		opAdd, opSubtract, opMultiply, opDivide, opPower, opModulo,
		opMax, opMin, opAverage, opNegate, opFactorial, opBrackets,
		opMinus, opSign, opDigitSum,
	} {
		c.add(op)
	}
	c.setResolver("-", resolveMinus)
	return c
}

// add registers an operator, turning the entry into an overload group
// when the symbol is already taken. Container end symbols must not
// collide with operator symbols.
func (c *Catalog) add(op *Operator) {
	c.order = append(c.order, op)
	if op.class == Container {
		c.ends[op.end] = op
	}
	e, ok := c.entries[op.symbol]
	switch {
	case !ok:
		c.entries[op.symbol] = entry{op: op}
	case e.group != nil:
		e.group.candidates = append(e.group.candidates, op)
	default:
		c.entries[op.symbol] = entry{group: &overloadGroup{candidates: []*Operator{e.op, op}}}
	}
}

func (c *Catalog) setResolver(symbol string, fn func(*Catalog, []string, int) *Operator) {
	e := c.entries[symbol]
	if e.group == nil {
		panic("omegacalc: resolver for non-overloaded symbol " + symbol)
	}
	e.group.resolve = fn
}

// Symbols returns every operator symbol in the catalog, sorted.
func (c *Catalog) Symbols() []string {
	v := make([]string, 0, len(c.entries))
	for s := range c.entries {
		v = append(v, s)
	}
	sort.Strings(v)
	return v
}

// EndSymbols returns every container end symbol in the catalog, sorted.
func (c *Catalog) EndSymbols() []string {
	v := make([]string, 0, len(c.ends))
	for s := range c.ends {
		v = append(v, s)
	}
	sort.Strings(v)
	return v
}

// Operators returns the catalogued operators in registration order.
func (c *Catalog) Operators() []*Operator {
	return append([]*Operator(nil), c.order...)
}

// IsOperator reports whether the token at pos is a catalogued operator
// symbol. End symbols are not operator symbols.
func (c *Catalog) IsOperator(tokens []string, pos int) bool {
	_, ok := c.entries[tokens[pos]]
	return ok
}

// GetOperator returns the operator at pos, resolving overloaded symbols
// from the surrounding tokens. The error is ErrUnknownSymbol when the
// token is not catalogued.
func (c *Catalog) GetOperator(tokens []string, pos int) (*Operator, error) {
	e, ok := c.entries[tokens[pos]]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	if e.group != nil {
		return c.resolveOverloads(tokens, pos), nil
	}
	return e.op, nil
}

// resolveOverloads picks the operator meant by an overloaded symbol at
// pos. The token at pos must be an overloaded catalog symbol.
func (c *Catalog) resolveOverloads(tokens []string, pos int) *Operator {
	g := c.entries[tokens[pos]].group
	if g.resolve == nil {
		return g.candidates[0]
	}
	return g.resolve(c, tokens, pos)
}

// containerForEnd returns the container operator closed by an end
// symbol, or nil.
func (c *Catalog) containerForEnd(symbol string) *Operator {
	return c.ends[symbol]
}

// hasSymbol reports whether s is an operator symbol or a container end
// symbol.
func (c *Catalog) hasSymbol(s string) bool {
	if _, ok := c.entries[s]; ok {
		return true
	}
	_, ok := c.ends[s]
	return ok
}

// resolveMinus disambiguates the minus sign. A minus is subtraction
// after a completed value, the low-priority sign at an expression
// boundary or in a sign chain, and the high-priority sign after an
// operator that still needs a value to its right.
func resolveMinus(c *Catalog, tokens []string, pos int) *Operator {
	if pos <= 0 {
		return opMinus
	}
	prev, err := c.GetOperator(tokens, pos-1)
	if err != nil {
		// The previous token is a number, an end symbol, or opaque
		// text: a completed value.
		return opSubtract
	}
	switch {
	case prev.class == Container || prev == opMinus:
		return opMinus
	case prev.class == Binary || prev.class == UnaryAfter:
		return opSign
	default:
		// Previous operator already has its operand (factorial, digit
		// sum), so this minus subtracts from its result.
		return opSubtract
	}
}
