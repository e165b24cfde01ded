// Package tabulator renders independent texts side by side as left-aligned,
// word-wrapped columns.
//
// Each [Column] pairs a text with a width. The central entry point is
// [WriteFill], which wraps every column to its width and writes the result
// line by line, padding each column but the last with a fill character and
// joining adjacent columns with a separator:
//
//	tabulator.WriteFill(os.Stdout, " | ", ' ',
//		tabulator.Col("abc def ghi", 6),
//		tabulator.Col("123 4432 17 8989", 4))
//
// prints
//
//	abc    | 123
//	def    | 4432
//	ghi    | 17
//	       | 8989
//
// [WriteSep] defaults the fill to a space, and [Write] also defaults the
// separator to a single space.
//
// # Wrapping
//
// Lines break on a newline, or on a space or tab when the following word
// would not fit in the rest of the line. The breaking character is dropped.
// Words are never split: a word longer than its column is written on a line
// of its own and overflows the width. Shorter columns keep contributing fill
// until the longest column is done.
//
// Widths count runes; a byte that is not valid UTF-8 counts as one and is
// copied to the output unchanged. Display width, graphemes and ANSI
// sequences are not taken into account.
//
// A tab fill is written once per 8 characters of missing width, emulating
// tab stops, so it can overshoot the column width by up to 7.
//
// # Streaming
//
// [Lines] returns an [iter.Seq] over the output lines, without terminators,
// rendering one line per step:
//
//	for line := range tabulator.Lines(" ", ' ', cols...) { ... }
//
// [Marshal] renders into a byte slice.
//
// # Layouts
//
// A [Layout] keeps a separator, fill and widths for reuse, and can be loaded
// from YAML with [ParseLayout]:
//
//	l, err := tabulator.ParseLayout([]byte("separator: \" | \"\nwidths: [6, 4]\n"))
//	err = l.Write(os.Stdout, "abc def ghi", "123 4432 17 8989")
//
// # Errors
//
// Write functions return the first error reported by the writer. Layouts
// report invalid configuration with sentinel errors:
//
//   - [ErrInvalidLayout] — undecodable YAML or no columns
//   - [ErrInvalidWidth] — a width below 1
//   - [ErrInvalidFill] — a fill that is not a single character
//   - [ErrColumnCount] — texts do not match the layout's columns
package tabulator
