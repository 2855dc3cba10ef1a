package commonmark

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

// noBreak marks the absence of a breakable point on the current line.
const noBreak = -1

// renderState is the mutable context of one Render call. It is created per
// call and never shared.
type renderState struct {
	buf    []byte
	prefix []byte

	// column is the width of the current line, prefix included.
	column int
	width  int

	// needCR is the pending newline level: 1 for a line break, 2 for a
	// blank line. Flushed by the next call to out.
	needCR int

	// lastBreakable is the buffer offset of the last space on the current
	// line at which it may be split, or noBreak.
	lastBreakable int

	// pendingBreak is the offset of a space written last. It becomes
	// breakable once the codepoint after it is known to be safe at the
	// start of a line.
	pendingBreak int

	beginLine     bool
	prefixWritten bool

	// beginContent holds from the start of a line, or from a list item
	// or block quote marker, until the first content codepoint.
	beginContent bool

	noWrap          bool
	inTightListItem bool

	// afterItemMarker is set right after a list item marker; the item's
	// first block then starts on the marker line.
	afterItemMarker bool

	hardBreaks   bool
	displayWidth bool
	policy       DecodePolicy

	// node is the node being emitted, for error reporting.
	node *mdast.Node

	err error
}

func newRenderState(opts Options) *renderState {
	return &renderState{
		width:         opts.effectiveWidth(),
		lastBreakable: noBreak,
		pendingBreak:  noBreak,
		beginLine:     true,
		beginContent:  true,
		hardBreaks:    opts.HardBreaks,
		displayWidth:  opts.DisplayWidth,
		policy:        opts.InvalidUTF8,
	}
}

// fail records the first error; later output calls become no-ops.
func (s *renderState) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// cr requests a line break before the next output.
func (s *renderState) cr() {
	if s.needCR < 1 {
		s.needCR = 1
	}
}

// blankLine requests a blank line before the next output.
func (s *renderState) blankLine() {
	if s.needCR < 2 {
		s.needCR = 2
	}
}

func (s *renderState) pushPrefix(p string) {
	s.prefix = append(s.prefix, p...)
}

func (s *renderState) popPrefix(n int) {
	if n > len(s.prefix) {
		s.fail(&InternalConsistencyError{Kind: s.node.Kind, Reason: "unbalanced line prefix"})
		n = len(s.prefix)
	}
	s.prefix = s.prefix[:len(s.prefix)-n]
}

// marker writes a container marker. What follows it starts the content.
func (s *renderState) marker(text string) {
	s.lit(text, false)
	if s.err == nil {
		s.beginContent = true
	}
}

// lit writes a constant string with literal escaping.
func (s *renderState) lit(text string, wrap bool) {
	s.out([]byte(text), wrap, escLiteral)
}

// out writes text to the buffer. Pending newlines are flushed first, the
// line prefix is written at the start of each line, each codepoint is
// escaped for esc, and wrap-eligible spaces become breakable points.
func (s *renderState) out(text []byte, wrap bool, esc escaping) {
	if s.err != nil {
		return
	}

	wrap = wrap && !s.noWrap

	if s.inTightListItem && s.needCR > 1 {
		s.needCR = 1
	}
	if s.afterItemMarker {
		s.needCR = 0
		s.afterItemMarker = false
	}
	s.flushNewlines()

	for i := 0; i < len(text); {
		if s.beginLine && !s.prefixWritten {
			s.writePrefix(text[i] == '\n')
		}

		r, size := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && size <= 1 {
			if s.policy == DecodeStrict {
				s.fail(&DecodeError{Kind: s.node.Kind, Offset: i})
				return
			}
			size = 1
		}

		var next byte
		if i+size < len(text) {
			next = text[i+size]
		}

		switch {
		case r == ' ' && wrap:
			if !s.beginLine {
				s.buf = append(s.buf, ' ')
				s.column++
				for i+1 < len(text) && text[i+1] == ' ' {
					i++
				}
				s.pendingBreak = len(s.buf) - 1
			}

		case r == '\n':
			s.buf = append(s.buf, '\n')
			s.startLine()

		case s.needsEscaping(esc, r, next):
			if isSpace(r) {
				s.settleBreak('%')
				s.buf = fmt.Appendf(s.buf, "%%%02x", r)
				s.column += 3
			} else {
				s.settleBreak('\\')
				s.buf = append(s.buf, '\\')
				s.buf = utf8.AppendRune(s.buf, r)
				s.column += 1 + s.runeWidth(r)
			}
			s.beginLine = false
			s.beginContent = false

		default:
			s.settleBreak(text[i])
			s.buf = utf8.AppendRune(s.buf, r)
			s.column += s.runeWidth(r)
			s.beginLine = false
			s.beginContent = false
		}

		s.wrapLine()
		i += size
	}
}

// settleBreak decides the pending space now that c follows it.
func (s *renderState) settleBreak(c byte) {
	if s.pendingBreak == noBreak {
		return
	}
	if !unsafeAtLineStart(c) {
		s.lastBreakable = s.pendingBreak
	}
	s.pendingBreak = noBreak
}

// flushNewlines turns the pending newline level into newlines. Newlines the
// buffer already ends with count toward the level, so blank lines never
// double up. Each blank line carries the line prefix.
func (s *renderState) flushNewlines() {
	k := len(s.buf) - 1
	for s.needCR > 0 {
		if k < 0 || s.buf[k] == '\n' {
			k--
		} else {
			if s.buf[len(s.buf)-1] == '\n' {
				s.buf = append(s.buf, trimTrailingSpaces(s.prefix)...)
			}
			s.buf = append(s.buf, '\n')
		}
		s.startLine()
		s.needCR--
	}
}

// startLine resets line state after a newline.
func (s *renderState) startLine() {
	s.column = 0
	s.beginLine = true
	s.beginContent = true
	s.prefixWritten = false
	s.lastBreakable = noBreak
	s.pendingBreak = noBreak
}

// writePrefix writes the active prefix at the start of a line. Lines that
// stay empty get the prefix without trailing spaces.
func (s *renderState) writePrefix(emptyLine bool) {
	p := s.prefix
	if emptyLine {
		p = trimTrailingSpaces(p)
	}
	s.buf = append(s.buf, p...)
	s.column = len(p)
	s.prefixWritten = true
}

// wrapLine splits the current line at the last breakable point once it is
// wider than the wrap width. A line with no breakable point is left alone.
func (s *renderState) wrapLine() {
	if s.width <= 0 || s.column <= s.width || s.beginLine || s.lastBreakable == noBreak {
		return
	}

	remainder := append([]byte(nil), s.buf[s.lastBreakable+1:]...)
	s.buf = append(s.buf[:s.lastBreakable], '\n')
	s.buf = append(s.buf, s.prefix...)
	s.buf = append(s.buf, remainder...)

	s.column = len(s.prefix) + s.textWidth(remainder)
	if s.pendingBreak > s.lastBreakable {
		s.pendingBreak += len(s.prefix)
	}
	s.lastBreakable = noBreak
	s.beginLine = false
	s.prefixWritten = true
}

// finishLine ends the output with exactly one newline.
func (s *renderState) finishLine() {
	if len(s.buf) == 0 || s.buf[len(s.buf)-1] != '\n' {
		s.buf = append(s.buf, '\n')
	}
	s.needCR = 0
}

func (s *renderState) runeWidth(r rune) int {
	if s.displayWidth {
		return runewidth.RuneWidth(r)
	}
	return 1
}

func (s *renderState) textWidth(b []byte) int {
	if s.displayWidth {
		return runewidth.StringWidth(string(b))
	}
	return utf8.RuneCount(b)
}

// lastByteIsDigit reports whether the buffer ends with an ASCII digit.
func (s *renderState) lastByteIsDigit() bool {
	return len(s.buf) > 0 && isDigit(s.buf[len(s.buf)-1])
}

// unsafeAtLineStart reports whether a line must not begin with c after a
// wrap, since the result would read as a block start: a list marker,
// heading, setext underline, fence or HTML block.
func unsafeAtLineStart(c byte) bool {
	switch c {
	case '-', '+', '#', '=', '~', '<':
		return true
	}
	return isDigit(c)
}

func trimTrailingSpaces(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == ' ' {
		end--
	}
	return b[:end]
}
