package omegacalc

import "strconv"

// formatter is the state of one Format call: the postfix output, the
// main operator stack, the left stack holding operators whose operand
// is still to the right (unary-after operators and container markers),
// and the count of open containers per container operator.
type formatter struct {
	cat  *Catalog
	out  []Item
	main stack[*Operator]
	left stack[*Operator]
	open map[*Operator]int
}

// Format rewrites an infix token sequence into postfix order. Overloads
// are resolved, each operator's placement is validated against its
// class, and container symbols must balance. Errors are of type
// *FormattingError and carry the index of the offending token.
func (c *Catalog) Format(tokens []string) ([]Item, error) {
	f := formatter{cat: c, open: make(map[*Operator]int)}
	for i, tok := range tokens {
		switch {
		case c.IsOperator(tokens, i):
			op, err := c.GetOperator(tokens, i)
			if err != nil {
				return nil, &FormattingError{Msg: err.Error(), Pos: i}
			}
			if err := f.checkPlacement(op, tokens, i); err != nil {
				return nil, err
			}
			switch op.class {
			case UnaryAfter:
				f.left.push(op)
			case Container:
				// A container sits on both stacks until its end symbol
				// arrives; HighestPriority keeps drains from crossing it.
				f.open[op]++
				f.main.push(op)
				f.left.push(op)
			default:
				f.pushOperator(op)
			}
		case c.containerForEnd(tok) != nil:
			if err := f.closeContainer(c.containerForEnd(tok), i); err != nil {
				return nil, err
			}
		case isNumeric(tok):
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &FormattingError{Msg: "invalid number " + strconv.Quote(tok), Pos: i}
			}
			f.out = append(f.out, Num(v))
		default:
			return nil, &FormattingError{Msg: "unrecognized symbol " + strconv.Quote(tok), Pos: i}
		}
	}
	if err := f.drain(); err != nil {
		return nil, err
	}
	return f.out, nil
}

func (f *formatter) emit(op *Operator) {
	f.out = append(f.out, Op(op))
}

// pushOperator places a binary or unary-before operator on the main
// stack, first emitting every stacked operator that binds at least as
// tightly. When both stack tops block, the tighter-binding one leaves
// first. Container markers never leave here.
func (f *formatter) pushOperator(op *Operator) {
	for {
		mt, mok := f.main.top()
		lt, lok := f.left.top()
		mBlock := mok && mt.class != Container && op.priority <= mt.priority
		lBlock := lok && lt.class != Container && op.priority <= lt.priority
		switch {
		case !mBlock && !lBlock:
			f.main.push(op)
			return
		case mBlock && (!lBlock || mt.priority >= lt.priority):
			f.main.pop()
			f.emit(mt)
		default:
			f.left.pop()
			f.emit(lt)
		}
	}
}

// closeContainer emits everything collected since the matching opener,
// then the opener itself, and removes the opener from both stacks.
func (f *formatter) closeContainer(op *Operator, pos int) error {
	if f.open[op] == 0 {
		return &FormattingError{Msg: "unmatched " + strconv.Quote(op.end), Pos: pos}
	}
	for {
		mt, mok := f.main.top()
		if !mok {
			return &FormattingError{Msg: "incorrect container or unary operator placement", Pos: pos}
		}
		lt, lok := f.left.top()
		if lok && lt != op && lt.class != Container && (mt == op || lt.priority >= mt.priority) {
			// A sign or negation pending inside the container leaves
			// before the container closes.
			f.left.pop()
			f.emit(lt)
			continue
		}
		if lok && lt != op && lt.class == Container {
			return &FormattingError{Msg: "incorrect container or unary operator placement", Pos: pos}
		}
		if mt == op {
			if !lok || lt != op {
				return &FormattingError{Msg: "incorrect container or unary operator placement", Pos: pos}
			}
			f.main.pop()
			f.left.pop()
			f.open[op]--
			f.emit(op)
			return nil
		}
		f.main.pop()
		f.emit(mt)
	}
}

// drain empties both stacks at the end of input, tightest-binding top
// first. A container still on a stack was never closed.
func (f *formatter) drain() error {
	for f.main.len() > 0 || f.left.len() > 0 {
		mt, mok := f.main.top()
		lt, lok := f.left.top()
		if mok && mt.class == Container {
			return &FormattingError{Msg: "unclosed " + strconv.Quote(mt.symbol) + ", expected " + strconv.Quote(mt.end), Pos: -1}
		}
		if lok && lt.class == Container {
			return &FormattingError{Msg: "unclosed " + strconv.Quote(lt.symbol) + ", expected " + strconv.Quote(lt.end), Pos: -1}
		}
		if mok && (!lok || mt.priority >= lt.priority) {
			f.main.pop()
			f.emit(mt)
		} else {
			f.left.pop()
			f.emit(lt)
		}
	}
	return nil
}

// checkPlacement validates an operator's position against its class
// before the operator is inserted.
func (f *formatter) checkPlacement(op *Operator, tokens []string, pos int) error {
	misplaced := func() error {
		return &FormattingError{Msg: "misplaced operator " + strconv.Quote(op.symbol), Pos: pos}
	}
	switch op.class {
	case Binary:
		if pos == 0 || pos == len(tokens)-1 {
			return misplaced()
		}
		if f.cat.containerForEnd(tokens[pos+1]) != nil {
			return misplaced()
		}
		if f.cat.IsOperator(tokens, pos-1) {
			prev, err := f.cat.GetOperator(tokens, pos-1)
			if err != nil || prev.class != UnaryBefore {
				return misplaced()
			}
		}
	case UnaryBefore:
		if pos == 0 {
			return misplaced()
		}
		if isNumeric(tokens[pos-1]) || f.cat.containerForEnd(tokens[pos-1]) != nil {
			return nil
		}
		if f.cat.IsOperator(tokens, pos-1) {
			prev, err := f.cat.GetOperator(tokens, pos-1)
			if err == nil && prev.class == UnaryBefore {
				return nil
			}
		}
		return misplaced()
	case UnaryAfter:
		// The operand must follow, possibly through a chain of further
		// unary-after operators.
		for j := pos + 1; j < len(tokens); j++ {
			if isNumeric(tokens[j]) {
				return nil
			}
			next, err := f.cat.GetOperator(tokens, j)
			if err != nil {
				break
			}
			if next.class == Container {
				return nil
			}
			if next.class != UnaryAfter {
				break
			}
		}
		return &FormattingError{Msg: "operator " + strconv.Quote(op.symbol) + " without an operand", Pos: pos}
	}
	return nil
}
