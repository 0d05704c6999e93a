package bwdraw

// Glyphs used to render a DuoPixel
const (
	Full  rune = '█' // FULL BLOCK
	Upper rune = '▀' // UPPER HALF BLOCK
	Lower rune = '▄' // LOWER HALF BLOCK
	Empty rune = ' ' // SPACE
)

// DuoPixel is a single terminal cell. It carries the state of two vertically
// stacked logical pixels: Upper is the pixel on the even logical row, Lower
// the pixel on the odd row below it.
type DuoPixel struct {
	Upper bool
	Lower bool
}

// Rune returns the glyph which draws the DuoPixel
func (p DuoPixel) Rune() rune {
	switch {
	case p.Upper && p.Lower:
		return Full
	case p.Upper:
		return Upper
	case p.Lower:
		return Lower
	default:
		return Empty
	}
}

func (p DuoPixel) String() string {
	return string(p.Rune())
}

// inverted returns the DuoPixel with both halves flipped
func (p DuoPixel) inverted() DuoPixel {
	return DuoPixel{Upper: !p.Upper, Lower: !p.Lower}
}

// DecodeRune returns the DuoPixel drawn by r. ok is false if r is not one of
// Full, Upper, Lower or Empty, in which case the returned DuoPixel has both
// halves off.
func DecodeRune(r rune) (p DuoPixel, ok bool) {
	switch r {
	case Full:
		return DuoPixel{Upper: true, Lower: true}, true
	case Upper:
		return DuoPixel{Upper: true}, true
	case Lower:
		return DuoPixel{Lower: true}, true
	case Empty:
		return DuoPixel{}, true
	default:
		return DuoPixel{}, false
	}
}
