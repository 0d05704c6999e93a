package bwdraw

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	// Alpha value that we consider to be transparent enough to leave a pixel
	// off
	transparentEnough = 50

	defaultThreshold = 128
)

// ImageOptions control how an image is turned into a Canvas
type ImageOptions struct {
	// Columns and Lines bound the size of the Canvas in terminal cells. The
	// image is scaled down to fit, keeping its aspect ratio. It is never
	// scaled up. A value <= 0 leaves that dimension unbounded
	Columns int
	Lines   int

	// Pixels at least this bright are on. nil means 128
	Threshold *uint8
	// Invert lights the pixels darker than Threshold instead
	Invert bool
}

// FromImage creates a Canvas from img. Each cell of the Canvas covers 1x2
// pixels of the (possibly scaled) image
func FromImage(img image.Image, opts ImageOptions) *Canvas {
	threshold := uint8(defaultThreshold)
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}
	img = resizeImage(img, opts.Columns, opts.Lines)
	b := img.Bounds()
	m := make([][]bool, b.Dy())
	for y := range m {
		m[y] = make([]bool, b.Dx())
		for x := range m[y] {
			m[y][x] = lit(img.At(b.Min.X+x, b.Min.Y+y), threshold, opts.Invert)
		}
	}
	return FromMatrix(m)
}

func lit(c color.Color, threshold uint8, invert bool) bool {
	_, _, _, a := c.RGBA()
	if a>>8 < transparentEnough {
		return false
	}
	y := color.GrayModel.Convert(c).(color.Gray).Y
	if invert {
		return y < threshold
	}
	return y >= threshold
}

// resizeImage scales img down to fit within w x h cells, where a cell is one
// pixel wide and two pixels tall
func resizeImage(img image.Image, w int, h int) image.Image {
	wPix := img.Bounds().Dx()
	hPix := img.Bounds().Dy()
	columns := wPix
	lines := hPix / 2
	if hPix%2 != 0 {
		lines += 1
	}
	if w <= 0 {
		w = columns
	}
	if h <= 0 {
		h = lines
	}
	if columns <= w && lines <= h {
		return img
	}
	log.Debug("resizing image", "columns", columns, "lines", lines, "w", w, "h", h)
	// calculate scale factors
	sfX := float64(w) / float64(columns)
	sfY := float64(h) / float64(lines)
	sf := sfX
	if sfY < sfX {
		sf = sfY
	}
	newPixelWidth := int(sf * float64(wPix))
	newPixelHeight := int(sf * float64(hPix))
	if newPixelWidth < 1 {
		newPixelWidth = 1
	}
	if newPixelHeight < 1 {
		newPixelHeight = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newPixelWidth, newPixelHeight))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)
	return dst
}
