package bwdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMatrix(t *testing.T) {
	tests := []struct {
		name     string
		input    [][]bool
		expected []Row
	}{
		{
			name: "even",
			input: [][]bool{
				{true, true, false, false},
				{true, false, true, false},
			},
			expected: []Row{
				{
					{Upper: true, Lower: true},
					{Upper: true, Lower: false},
					{Upper: false, Lower: true},
					{Upper: false, Lower: false},
				},
			},
		},
		{
			name: "odd",
			input: [][]bool{
				{true, false, true, false},
				{false, true, false, true},
				{true, false, true, false},
			},
			expected: []Row{
				{
					{Upper: true, Lower: false},
					{Upper: false, Lower: true},
					{Upper: true, Lower: false},
					{Upper: false, Lower: true},
				},
				{
					{Upper: true, Lower: false},
					{Upper: false, Lower: false},
					{Upper: true, Lower: false},
					{Upper: false, Lower: false},
				},
			},
		},
		{
			name:     "empty",
			input:    [][]bool{},
			expected: []Row{},
		},
		{
			name: "ragged",
			input: [][]bool{
				{true},
				{true, true},
			},
			expected: []Row{
				{
					{Upper: true, Lower: true},
					{Upper: false, Lower: true},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := FromMatrix(test.input)
			assert.Equal(t, test.expected, c.Rows())
		})
	}
}

func TestFromMatrixRoundTrip(t *testing.T) {
	m := [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	c := FromMatrix(m)
	assert.Equal(t, m, c.Matrix())
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 4, c.Height())
}

func TestFromMatrixOddPadding(t *testing.T) {
	m := [][]bool{
		{true, true},
		{false, true},
		{true, true},
	}
	padded := append(m, []bool{false, false})
	c := FromMatrix(m)
	assert.True(t, c.Equal(FromMatrix(padded)))
	rows := c.Rows()
	for _, p := range rows[len(rows)-1] {
		assert.False(t, p.Lower)
	}
}

func TestFromMatrixDoesNotRetainInput(t *testing.T) {
	m := [][]bool{{false, false}, {false, false}}
	c := FromMatrix(m)
	m[0][0] = true
	state, ok := c.Get(0, 0)
	assert.True(t, ok)
	assert.False(t, state)
}

func TestNew(t *testing.T) {
	c := New(3, 5)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 6, c.Height())
	assert.Equal(t, "   \n   \n   \n", c.String())

	empty := New(-1, -1)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, "", empty.String())
}

func TestGet(t *testing.T) {
	c := FromMatrix([][]bool{
		{true, false},
		{false, true},
	})
	tests := []struct {
		name  string
		x     int
		y     int
		state bool
		ok    bool
	}{
		{name: "upper on", x: 0, y: 0, state: true, ok: true},
		{name: "upper off", x: 1, y: 0, state: false, ok: true},
		{name: "lower off", x: 0, y: 1, state: false, ok: true},
		{name: "lower on", x: 1, y: 1, state: true, ok: true},
		{name: "x too large", x: 2, y: 0},
		{name: "y too large", x: 0, y: 2},
		{name: "negative x", x: -1, y: 0},
		{name: "negative y", x: 0, y: -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state, ok := c.Get(test.x, test.y)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.state, state)
		})
	}
}

func TestSet(t *testing.T) {
	c := New(4, 4)
	assert.True(t, c.Set(1, 3, true))
	state, ok := c.Get(1, 3)
	assert.True(t, ok)
	assert.True(t, state)
	assert.Equal(t, "    \n ▄  \n", c.String())

	assert.True(t, c.Set(1, 2, true))
	assert.Equal(t, "    \n █  \n", c.String())

	assert.True(t, c.Set(1, 3, false))
	assert.Equal(t, "    \n ▀  \n", c.String())
}

func TestSetOutOfBounds(t *testing.T) {
	c := New(2, 2)
	before := c.Clone()
	assert.False(t, c.Set(2, 0, true))
	assert.False(t, c.Set(0, 2, true))
	assert.True(t, c.Equal(before))

	cp, ok := c.WithSet(5, 5, true)
	assert.False(t, ok)
	assert.Nil(t, cp)
}

func TestWithSet(t *testing.T) {
	c := New(2, 2)
	cp, ok := c.WithSet(0, 1, true)
	require.True(t, ok)
	assert.Equal(t, "▄ \n", cp.String())
	assert.Equal(t, "  \n", c.String())
}

func TestPixel(t *testing.T) {
	c := FromMatrix([][]bool{
		{true, false},
		{true, true},
	})
	p, ok := c.Pixel(1, 1)
	assert.True(t, ok)
	assert.Equal(t, DuoPixel{Lower: true}, p)

	// Both logical rows of a line address the same DuoPixel
	q, ok := c.Pixel(1, 0)
	assert.True(t, ok)
	assert.Equal(t, p, q)

	_, ok = c.Pixel(0, 2)
	assert.False(t, ok)
}

func TestSetPixel(t *testing.T) {
	c := New(2, 4)
	prev, ok := c.SetPixel(1, 3, DuoPixel{Upper: true})
	assert.True(t, ok)
	assert.Equal(t, DuoPixel{}, prev)
	assert.Equal(t, "  \n ▀\n", c.String())

	prev, ok = c.SetPixel(1, 2, DuoPixel{Upper: true, Lower: true})
	assert.True(t, ok)
	assert.Equal(t, DuoPixel{Upper: true}, prev)
	assert.Equal(t, "  \n █\n", c.String())

	before := c.Clone()
	_, ok = c.SetPixel(2, 0, DuoPixel{Upper: true})
	assert.False(t, ok)
	assert.True(t, c.Equal(before))
}

func TestInvertAt(t *testing.T) {
	c := FromMatrix([][]bool{
		{true, false},
		{false, false},
	})
	original := c.Clone()

	assert.True(t, c.InvertAt(1, 1))
	state, _ := c.Get(1, 1)
	assert.True(t, state)
	assert.True(t, c.InvertAt(1, 1))
	assert.True(t, c.Equal(original))

	assert.False(t, c.InvertAt(2, 0))
	assert.True(t, c.Equal(original))

	cp, ok := c.WithInvertedAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, "  \n", cp.String())
	assert.True(t, c.Equal(original))

	back, ok := cp.WithInvertedAt(0, 0)
	require.True(t, ok)
	assert.True(t, back.Equal(original))

	cp, ok = c.WithInvertedAt(0, -1)
	assert.False(t, ok)
	assert.Nil(t, cp)
}

func TestInvert(t *testing.T) {
	c := FromMatrix([][]bool{
		{true, true, false, false},
		{true, false, true, false},
	})
	inv := c.Inverted()
	assert.Equal(t, " ▄▀█\n", inv.String())
	assert.Equal(t, "█▀▄ \n", c.String())
	assert.True(t, inv.Inverted().Equal(c))

	c.Invert()
	assert.True(t, c.Equal(inv))

	empty := FromMatrix(nil)
	empty.Invert()
	assert.Equal(t, "", empty.String())
	assert.Equal(t, "", empty.Inverted().String())
}

func TestEqual(t *testing.T) {
	a := New(2, 2)
	assert.True(t, a.Equal(New(2, 2)))
	assert.True(t, a.Equal(New(2, 1)))
	assert.False(t, a.Equal(New(3, 2)))
	assert.False(t, a.Equal(New(2, 4)))
	assert.False(t, FromMatrix(nil).Equal(New(0, 2)))
	assert.True(t, (&Canvas{}).Equal(FromMatrix(nil)))

	b := New(2, 2)
	b.Set(0, 0, true)
	assert.False(t, a.Equal(b))

	var nilCanvas *Canvas
	assert.False(t, a.Equal(nil))
	assert.False(t, nilCanvas.Equal(a))
	assert.True(t, nilCanvas.Equal(nil))
}

func TestCloneIsDeep(t *testing.T) {
	c := New(2, 2)
	cp := c.Clone()
	cp.Set(0, 0, true)
	state, _ := c.Get(0, 0)
	assert.False(t, state)

	rows := c.Rows()
	rows[0][0] = DuoPixel{Upper: true}
	state, _ = c.Get(0, 0)
	assert.False(t, state)
}
