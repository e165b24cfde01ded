package tabulator_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/tabulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabulator.Layout
		wantErr error
	}{
		"full": {
			input: "separator: \" | \"\nfill: \".\"\nwidths: [6, 4]\n",
			want:  tabulator.Layout{Separator: " | ", Fill: '.', Widths: []int{6, 4}},
		},
		"defaults": {
			input: "widths: [10]\n",
			want:  tabulator.DefaultLayout(10),
		},
		"empty separator": {
			input: "separator: \"\"\nwidths: [1, 2]\n",
			want:  tabulator.Layout{Separator: "", Fill: ' ', Widths: []int{1, 2}},
		},
		"tab fill": {
			input: "fill: \"\\t\"\nwidths: [8]\n",
			want:  tabulator.Layout{Separator: " ", Fill: '\t', Widths: []int{8}},
		},
		"multibyte fill": {
			input: "fill: \"·\"\nwidths: [3]\n",
			want:  tabulator.Layout{Separator: " ", Fill: '·', Widths: []int{3}},
		},
		"empty document": {input: "", wantErr: tabulator.ErrInvalidLayout},
		"no widths":      {input: "separator: \"|\"\n", wantErr: tabulator.ErrInvalidLayout},
		"unknown key":    {input: "widths: [3]\ncolor: red\n", wantErr: tabulator.ErrInvalidLayout},
		"bad width type": {input: "widths: [wide]\n", wantErr: tabulator.ErrInvalidLayout},
		"zero width":     {input: "widths: [3, 0]\n", wantErr: tabulator.ErrInvalidWidth},
		"negative width": {input: "widths: [-1]\n", wantErr: tabulator.ErrInvalidWidth},
		"long fill":      {input: "fill: \"ab\"\nwidths: [3]\n", wantErr: tabulator.ErrInvalidFill},
		"empty fill":     {input: "fill: \"\"\nwidths: [3]\n", wantErr: tabulator.ErrInvalidFill},
		"second document with unknown key": {
			input:   "widths: [3]\n---\nbogus: 1\n",
			wantErr: tabulator.ErrInvalidLayout,
		},
		"second document": {
			input:   "widths: [3]\n---\nwidths: [4]\n",
			wantErr: tabulator.ErrInvalidLayout,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulator.ParseLayout([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tabulator.Layout{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, tabulator.DefaultLayout(1, 2).Validate())
	assert.ErrorIs(t, tabulator.DefaultLayout().Validate(), tabulator.ErrInvalidLayout)
	assert.ErrorIs(t, tabulator.DefaultLayout(2, 0).Validate(), tabulator.ErrInvalidWidth)
}

func TestLayoutColumns(t *testing.T) {
	t.Parallel()
	l := tabulator.DefaultLayout(6, 4)
	cols, err := l.Columns("abc", "def")
	require.NoError(t, err)
	assert.Equal(t, []tabulator.Column{tabulator.Col("abc", 6), tabulator.Col("def", 4)}, cols)

	_, err = l.Columns("abc")
	require.ErrorIs(t, err, tabulator.ErrColumnCount)
	assert.Contains(t, err.Error(), "got 1 texts")
}

func TestLayoutWrite(t *testing.T) {
	t.Parallel()
	l, err := tabulator.ParseLayout([]byte("separator: \" | \"\nfill: \".\"\nwidths: [6, 4]\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf, "abc def ghi", "123 4432 17 8989"))
	assert.Equal(t, "abc... | 123\ndef... | 4432\nghi... | 17\n...... | 8989\n", buf.String())
}

func TestLayoutWriteErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.ErrorIs(t, tabulator.DefaultLayout(0).Write(&buf, "a"), tabulator.ErrInvalidWidth)
	assert.ErrorIs(t, tabulator.DefaultLayout(3).Write(&buf, "a", "b"), tabulator.ErrColumnCount)
	assert.Empty(t, buf.String())
	assert.ErrorIs(t, tabulator.DefaultLayout(3).Write(&errWriter{}, "a"), errWriteFailed)
}
