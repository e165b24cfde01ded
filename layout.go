package tabulator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Layout is a reusable column arrangement: the separator, the fill
// character and one width per column.
type Layout struct {
	Separator string
	Fill      rune
	Widths    []int
}

// layoutYAML is the configuration file form of a Layout.
type layoutYAML struct {
	Separator string `yaml:"separator"`
	Fill      string `yaml:"fill"`
	Widths    []int  `yaml:"widths"`
}

// DefaultLayout returns a Layout with the default separator and fill.
func DefaultLayout(widths ...int) Layout {
	return Layout{Separator: DefaultSeparator, Fill: DefaultFill, Widths: widths}
}

// ParseLayout decodes a Layout from YAML:
//
//	separator: " | "
//	fill: "."
//	widths: [20, 40]
//
// Missing separator and fill keep their defaults. Unknown keys are
// rejected, as is more than one document. The result is validated before
// it is returned.
func ParseLayout(data []byte) (Layout, error) {
	raw := layoutYAML{Separator: DefaultSeparator, Fill: string(DefaultFill)}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return Layout{}, fmt.Errorf("%w: %s", ErrInvalidLayout, err)
	}
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("%w: expected a single document", ErrInvalidLayout)
	}
	if utf8.RuneCountInString(raw.Fill) != 1 {
		return Layout{}, fmt.Errorf("%w: %q must be exactly one character", ErrInvalidFill, raw.Fill)
	}
	fill, _ := utf8.DecodeRuneInString(raw.Fill)
	l := Layout{Separator: raw.Separator, Fill: fill, Widths: raw.Widths}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate reports whether l describes at least one column and every width
// is positive.
func (l Layout) Validate() error {
	if len(l.Widths) == 0 {
		return fmt.Errorf("%w: no column widths", ErrInvalidLayout)
	}
	for i, w := range l.Widths {
		if w < 1 {
			return fmt.Errorf("%w: column %d has width %d", ErrInvalidWidth, i, w)
		}
	}
	return nil
}

// Columns pairs texts with the layout widths, in order.
func (l Layout) Columns(texts ...string) ([]Column, error) {
	if len(texts) != len(l.Widths) {
		return nil, fmt.Errorf("%w: layout has %d columns, got %d texts", ErrColumnCount, len(l.Widths), len(texts))
	}
	cols := make([]Column, len(texts))
	for i, text := range texts {
		cols[i] = Col(text, l.Widths[i])
	}
	return cols, nil
}

// Write validates l and renders texts to w with it.
func (l Layout) Write(w io.Writer, texts ...string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	cols, err := l.Columns(texts...)
	if err != nil {
		return err
	}
	return WriteFill(w, l.Separator, l.Fill, cols...)
}
