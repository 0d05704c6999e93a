package bwdraw

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// String renders the Canvas. Every Row is one line of glyphs terminated by a
// newline. An empty Canvas renders as the empty string
func (c *Canvas) String() string {
	sb := strings.Builder{}
	for _, row := range c.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered Canvas to w
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// String renders the Row without a trailing newline
func (r Row) String() string {
	sb := strings.Builder{}
	sb.Grow(len(r) * 3)
	for _, p := range r {
		sb.WriteRune(p.Rune())
	}
	return sb.String()
}

// Columns returns the number of terminal columns the widest rendered line
// occupies. The block glyphs have ambiguous East Asian width: terminals
// configured for East Asian locales draw them two columns wide
func (c *Canvas) Columns(eastAsian bool) int {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	cols := 0
	for _, row := range c.rows {
		if w := cond.StringWidth(row.String()); w > cols {
			cols = w
		}
	}
	return cols
}
