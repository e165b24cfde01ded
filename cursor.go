package tabulator

import (
	"strings"
	"unicode/utf8"
)

// tabStop is the padding step used when the fill character is a tab.
const tabStop = 8

// cursor tracks how far one column has been consumed and how many
// characters have been written to the current output line. Positions are
// byte offsets into the column text; each decoded unit, including an
// invalid UTF-8 byte, counts as one character.
type cursor struct {
	col  Column
	last int // byte offset of the unit most recently consumed
	pos  int // byte offset of the next unread unit
	line int // characters emitted on the current output line
}

func newCursor(c Column) *cursor {
	return &cursor{col: c}
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.col.Text)
}

// next consumes and returns the unit at the read position.
func (c *cursor) next() (rune, bool) {
	if c.exhausted() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.col.Text[c.pos:])
	c.last = c.pos
	c.pos += size
	return r, true
}

// breaks reports whether r ends the current line: r is a newline, or r is
// blank and the word after it does not fit in what is left of the line.
func (c *cursor) breaks(r rune) bool {
	return r == '\n' || (isBlank(r) && !c.nextWordFits())
}

// nextWordFits scans the word starting at the read position. The word fits
// when a blank or the end of text is reached before the line count hits
// the column width.
func (c *cursor) nextWordFits() bool {
	text := c.col.Text
	l := c.line
	for i := c.pos; i < len(text) && l < c.col.Width; l++ {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isBlank(r) {
			return true
		}
		i += size
	}
	return l < c.col.Width
}

// emit writes the unit most recently consumed, byte for byte.
func (c *cursor) emit(sb *strings.Builder) {
	sb.WriteString(c.col.Text[c.last:c.pos])
	c.line++
}

func (c *cursor) newLine() {
	c.line = 0
}

// segment writes as much of the column as fits on the current line. The
// unit that breaks the line is consumed and dropped.
func (c *cursor) segment(sb *strings.Builder) {
	for r, ok := c.next(); ok; r, ok = c.next() {
		if c.breaks(r) {
			return
		}
		c.emit(sb)
	}
}

// pad fills the rest of the current line up to the column width. A tab
// fill advances by a whole tab stop per character and may overshoot.
func (c *cursor) pad(sb *strings.Builder, fill rune) {
	step := 1
	if fill == '\t' {
		step = tabStop
	}
	for i := c.line; i < c.col.Width; i += step {
		sb.WriteRune(fill)
	}
}
