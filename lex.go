package omegacalc

import "strings"

// isNumeric reports whether s is a numeric literal: digits with at most
// one decimal point.
func isNumeric(s string) bool {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i] + s[i+1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Tokenize splits an expression into symbol tokens: numeric literals,
// operator symbols, container end symbols, and opaque runs of anything
// else. Runs of whitespace collapse to single separators; a separator
// ends any pending token except a numeric literal, so digit runs split
// by spaces join into one numeral. Tokenize never fails. Text it does
// not recognize is forwarded unchanged for the formatter to reject.
func (c *Catalog) Tokenize(expression string) []string {
	expr := strings.Join(strings.Fields(expression), " ")
	var tokens []string
	buf := ""
	flush := func() {
		if buf != "" {
			tokens = append(tokens, buf)
			buf = ""
		}
	}
	for _, r := range expr {
		s := string(r)
		switch {
		case r == ' ':
			if !isNumeric(buf) {
				flush()
			}
		case c.hasSymbol(buf + s):
			// The character completes a multi-character catalog symbol.
			tokens = append(tokens, buf+s)
			buf = ""
		case c.hasSymbol(s):
			flush()
			tokens = append(tokens, s)
		case isNumeric(buf) && !isNumeric(buf+s):
			// The character would spoil the pending numeric literal.
			flush()
			buf = s
		default:
			buf += s
		}
	}
	flush()
	return tokens
}
