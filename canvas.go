// Package bwdraw draws black and white pictures in the terminal. A Canvas is
// a grid of logical pixels stored as rows of DuoPixels: every text line of
// the rendered Canvas carries two logical rows using the half block glyphs,
// so pixels come out square instead of stretched vertically.
package bwdraw

// Row is a single line of DuoPixels, ordered left to right
type Row []DuoPixel

// Canvas is a black and white drawing surface. The zero value is an empty
// Canvas.
//
// Coordinates are always logical: x is the column, y the logical pixel row.
// The logical height of a Canvas is always even; a Canvas built from an odd
// number of rows carries one extra row of off pixels at the bottom.
type Canvas struct {
	rows []Row
}

// New creates a Canvas with all pixels off
func New(width int, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m := make([][]bool, height)
	for i := range m {
		m[i] = make([]bool, width)
	}
	return FromMatrix(m)
}

// FromMatrix creates a Canvas from a matrix of logical pixels, indexed
// [y][x]. Rows shorter than the widest row are padded with off pixels. The
// matrix is not retained.
func FromMatrix(m [][]bool) *Canvas {
	width := 0
	ragged := false
	for i, row := range m {
		if i > 0 && len(row) != width {
			ragged = true
		}
		if len(row) > width {
			width = len(row)
		}
	}
	if ragged {
		log.Debug("padding ragged matrix", "rows", len(m), "width", width)
	}

	c := &Canvas{
		rows: make([]Row, (len(m)+1)/2),
	}
	for i := range c.rows {
		upper := m[2*i]
		var lower []bool
		if 2*i+1 < len(m) {
			lower = m[2*i+1]
		}
		row := make(Row, width)
		for x := range row {
			row[x] = DuoPixel{
				Upper: x < len(upper) && upper[x],
				Lower: x < len(lower) && lower[x],
			}
		}
		c.rows[i] = row
	}
	return c
}

// Matrix returns the logical pixels of the Canvas, indexed [y][x]. The
// returned matrix has Height() rows and is safe to modify
func (c *Canvas) Matrix() [][]bool {
	m := make([][]bool, 0, c.Height())
	for _, row := range c.rows {
		upper := make([]bool, len(row))
		lower := make([]bool, len(row))
		for x, p := range row {
			upper[x] = p.Upper
			lower[x] = p.Lower
		}
		m = append(m, upper, lower)
	}
	return m
}

// Width is the number of logical pixel columns
func (c *Canvas) Width() int {
	if len(c.rows) == 0 {
		return 0
	}
	return len(c.rows[0])
}

// Height is the number of logical pixel rows, which is twice the number of
// rendered lines
func (c *Canvas) Height() int {
	return 2 * len(c.rows)
}

// Rows returns a copy of the physical rows of the Canvas
func (c *Canvas) Rows() []Row {
	rows := make([]Row, len(c.rows))
	for i, row := range c.rows {
		rows[i] = append(Row(nil), row...)
	}
	return rows
}

func (c *Canvas) inBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width() && y < c.Height()
}

// Get returns the state of the logical pixel at x, y. ok is false if the
// coordinates are outside of the Canvas
func (c *Canvas) Get(x int, y int) (state bool, ok bool) {
	if !c.inBounds(x, y) {
		return false, false
	}
	p := c.rows[y/2][x]
	if y%2 == 0 {
		return p.Upper, true
	}
	return p.Lower, true
}

// Pixel returns the DuoPixel holding the logical pixel at x, y
func (c *Canvas) Pixel(x int, y int) (DuoPixel, bool) {
	if !c.inBounds(x, y) {
		return DuoPixel{}, false
	}
	return c.rows[y/2][x], true
}

// SetPixel replaces the DuoPixel holding the logical pixel at x, y and returns
// the DuoPixel it replaced. Both logical pixels of the cell are replaced
func (c *Canvas) SetPixel(x int, y int, p DuoPixel) (DuoPixel, bool) {
	if !c.inBounds(x, y) {
		return DuoPixel{}, false
	}
	prev := c.rows[y/2][x]
	c.rows[y/2][x] = p
	return prev, true
}

// Set sets the state of the logical pixel at x, y. It returns false without
// modifying the Canvas if the coordinates are outside of the Canvas
func (c *Canvas) Set(x int, y int, state bool) bool {
	if !c.inBounds(x, y) {
		return false
	}
	p := c.rows[y/2][x]
	if y%2 == 0 {
		p.Upper = state
	} else {
		p.Lower = state
	}
	c.rows[y/2][x] = p
	return true
}

// WithSet returns a copy of the Canvas with the logical pixel at x, y set to
// state. The receiver is not modified. If the coordinates are outside of the
// Canvas, WithSet returns nil and false
func (c *Canvas) WithSet(x int, y int, state bool) (*Canvas, bool) {
	if !c.inBounds(x, y) {
		return nil, false
	}
	cp := c.Clone()
	cp.Set(x, y, state)
	return cp, true
}

// InvertAt flips the logical pixel at x, y
func (c *Canvas) InvertAt(x int, y int) bool {
	state, ok := c.Get(x, y)
	if !ok {
		return false
	}
	return c.Set(x, y, !state)
}

// WithInvertedAt returns a copy of the Canvas with the logical pixel at x, y
// flipped
func (c *Canvas) WithInvertedAt(x int, y int) (*Canvas, bool) {
	if !c.inBounds(x, y) {
		return nil, false
	}
	cp := c.Clone()
	cp.InvertAt(x, y)
	return cp, true
}

// Invert flips every logical pixel of the Canvas, including the padding row
// of a Canvas built from an odd number of rows
func (c *Canvas) Invert() {
	for _, row := range c.rows {
		for x, p := range row {
			row[x] = p.inverted()
		}
	}
}

// Inverted returns an inverted copy of the Canvas
func (c *Canvas) Inverted() *Canvas {
	cp := c.Clone()
	cp.Invert()
	return cp
}

// Clone returns a deep copy of the Canvas
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		rows: c.Rows(),
	}
}

// Equal reports whether both Canvases hold the same DuoPixels in the same
// layout
func (c *Canvas) Equal(other *Canvas) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.rows) != len(other.rows) {
		return false
	}
	for i, row := range c.rows {
		if len(row) != len(other.rows[i]) {
			return false
		}
		for x, p := range row {
			if other.rows[i][x] != p {
				return false
			}
		}
	}
	return true
}
