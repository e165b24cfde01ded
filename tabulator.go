package tabulator

import (
	"bytes"
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidLayout = errors.New("invalid layout")
	ErrInvalidWidth  = errors.New("invalid column width")
	ErrInvalidFill   = errors.New("invalid fill character")
	ErrColumnCount   = errors.New("column count mismatch")
)

// Default separator and fill used by [Write] and [WriteSep].
const (
	DefaultSeparator      = " "
	DefaultFill      rune = ' '
)

// Column is a text rendered left-aligned and word-wrapped to Width
// characters. Width must be at least 1; each rune counts as one character.
type Column struct {
	Text  string
	Width int
}

// Col returns a Column for text with the given width.
func Col(text string, width int) Column {
	return Column{Text: text, Width: width}
}

// WriteFill renders cols side by side to w. Every column except the last is
// padded with fill up to its width and followed by sep. Each output line is
// terminated by a newline. A tab fill pads in steps of 8 characters.
//
// Calling it without columns writes nothing.
func WriteFill(w io.Writer, sep string, fill rune, cols ...Column) error {
	for line := range Lines(sep, fill, cols...) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteSep is [WriteFill] with a space fill.
func WriteSep(w io.Writer, sep string, cols ...Column) error {
	return WriteFill(w, sep, DefaultFill, cols...)
}

// Write is [WriteFill] with a single space as both separator and fill.
func Write(w io.Writer, cols ...Column) error {
	return WriteFill(w, DefaultSeparator, DefaultFill, cols...)
}

// Marshal renders cols and returns the bytes.
func Marshal(sep string, fill rune, cols ...Column) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteFill(&buf, sep, fill, cols...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
