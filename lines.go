package tabulator

import (
	"iter"
	"strings"
)

// tabulator drives one cursor per column in lock-step, producing one
// output line per round.
type tabulator struct {
	sep     string
	fill    rune
	cursors []*cursor
	sb      strings.Builder
}

func newTabulator(sep string, fill rune, cols []Column) *tabulator {
	t := &tabulator{sep: sep, fill: fill, cursors: make([]*cursor, len(cols))}
	for i, c := range cols {
		t.cursors[i] = newCursor(c)
	}
	return t
}

// done reports whether every column has been fully consumed.
func (t *tabulator) done() bool {
	for _, c := range t.cursors {
		if !c.exhausted() {
			return false
		}
	}
	return true
}

// round renders the next output line, without its terminator. Exhausted
// columns still take part and contribute only fill.
func (t *tabulator) round() string {
	t.sb.Reset()
	last := len(t.cursors) - 1
	for i, c := range t.cursors {
		c.segment(&t.sb)
		if i < last {
			c.pad(&t.sb, t.fill)
			t.sb.WriteString(t.sep)
		}
		c.newLine()
	}
	return t.sb.String()
}

// Lines returns an iterator over the output lines for cols, without line
// terminators. Rendering is lazy: each line is produced when requested, and
// every range over the iterator starts from the beginning of the columns.
func Lines(sep string, fill rune, cols ...Column) iter.Seq[string] {
	return func(yield func(string) bool) {
		t := newTabulator(sep, fill, cols)
		for !t.done() {
			if !yield(t.round()) {
				return
			}
		}
	}
}
