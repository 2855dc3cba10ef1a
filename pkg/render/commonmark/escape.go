package commonmark

// escaping is the context a piece of text is written in.
type escaping uint8

const (
	escLiteral escaping = iota
	escNormal
	escTitle
	escURL
)

// needsEscaping decides whether r must be escaped in context esc. next is
// the raw byte following r in its source text, or 0 at the end.
func (s *renderState) needsEscaping(esc escaping, r rune, next byte) bool {
	switch esc {
	case escNormal:
		switch r {
		case '*', '_', '[', ']', '<', '>', '\\', '`':
			return true
		case '&':
			return isAlpha(next)
		case '!':
			return next == '['
		case '-', '+', '=', '~':
			return s.beginContent
		case '#':
			return s.beginContent || isSpace(rune(next)) || next == 0
		case '.', ')':
			return s.lastByteIsDigit()
		}
		return false

	case escTitle:
		switch r {
		case '`', '<', '>', '"', '\\':
			return true
		}
		return false

	case escURL:
		switch r {
		case '`', '<', '>', '\\', '(', ')':
			return true
		}
		return isSpace(r)

	default:
		return false
	}
}

// isSpace matches the ASCII whitespace set: space, tab, newline, vertical
// tab, form feed and carriage return.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
