package bwdraw

import (
	"strings"

	"github.com/rivo/uniseg"
)

// lines splits s into lines. A trailing newline does not start a new line
// and a carriage return before a newline is dropped
func lines(s string) []string {
	if s == "" {
		return nil
	}
	ls := strings.Split(s, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}

// Parse creates a Canvas from a text picture, one line per logical row. A
// rune equal to active is an on pixel and a rune equal to inactive is an off
// pixel. Any other rune is interpreted as on.
func Parse(s string, active rune, inactive rune) *Canvas {
	ls := lines(s)
	m := make([][]bool, 0, len(ls))
	for _, l := range ls {
		row := make([]bool, 0, len(l))
		for _, r := range l {
			switch r {
			case active:
				row = append(row, true)
			case inactive:
				row = append(row, false)
			default:
				row = append(row, true)
			}
		}
		m = append(m, row)
	}
	return FromMatrix(m)
}

// ParseGlyphs creates a Canvas from the output of [Canvas.String]. Each
// grapheme cluster of a line is one DuoPixel. Clusters which are not one of
// the block glyphs are read as Empty
func ParseGlyphs(s string) *Canvas {
	ls := lines(s)
	m := make([][]bool, 0, 2*len(ls))
	for _, l := range ls {
		upper := make([]bool, 0, len(l))
		lower := make([]bool, 0, len(l))
		state := -1
		cluster := ""
		for l != "" {
			cluster, l, _, state = uniseg.FirstGraphemeClusterInString(l, state)
			var p DuoPixel
			if r := []rune(cluster); len(r) == 1 {
				var ok bool
				p, ok = DecodeRune(r[0])
				if !ok {
					log.Debug("unknown glyph", "glyph", cluster)
				}
			}
			upper = append(upper, p.Upper)
			lower = append(lower, p.Lower)
		}
		m = append(m, upper, lower)
	}
	return FromMatrix(m)
}
