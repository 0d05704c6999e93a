package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/bwdraw"
)

var imageCmd = &cobra.Command{
	Use:   "image FILE",
	Short: "Draw an image",
	Long: `Draw a PNG, JPEG, GIF, BMP or WebP image. Pixels at least as bright as
--threshold are on. When stdout is a terminal the image is scaled down to fit
it unless --columns or --lines are given.`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

var (
	flagColumns   int
	flagLines     int
	flagThreshold int
)

func init() {
	imageCmd.Flags().IntVar(&flagColumns, "columns", 0, "maximum width in cells")
	imageCmd.Flags().IntVar(&flagLines, "lines", 0, "maximum height in lines")
	imageCmd.Flags().IntVar(&flagThreshold, "threshold", -1, "brightness (0-255) of an on pixel (overrides config)")
}

// terminalSize returns the size of the terminal on stdout, leaving a line for
// the prompt
func terminalSize() (int, int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		log.Debug("couldn't get terminal size", "error", err)
		return 0, 0, false
	}
	if runewidth.IsEastAsian() {
		cols /= 2
	}
	return cols, rows - 1, true
}

func runImage(cmd *cobra.Command, args []string) error {
	threshold := cfg.Threshold
	if flagThreshold >= 0 {
		threshold = flagThreshold
	}
	if threshold > 255 {
		return fmt.Errorf("threshold: %d is not within 0..255", threshold)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}
	log.Debug("decoded image", "format", format, "bounds", img.Bounds())

	t := uint8(threshold)
	opts := bwdraw.ImageOptions{
		Columns:   flagColumns,
		Lines:     flagLines,
		Threshold: &t,
	}
	if opts.Columns <= 0 && opts.Lines <= 0 {
		if cols, lines, ok := terminalSize(); ok {
			opts.Columns = cols
			opts.Lines = lines
		}
	}
	return draw(cmd, bwdraw.FromImage(img, opts))
}
