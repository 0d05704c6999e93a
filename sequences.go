package bwdraw

import "io"

const (
	// Erase in Display, entire screen
	eraseDisplay = "\x1b[2J"
	// Cursor position, top left corner
	cursorHome = "\x1b[1;1H"
)

// Clear erases the screen of the terminal w is connected to and moves the
// cursor to the top left corner. Call it between renders to redraw a Canvas
// in place
func Clear(w io.Writer) error {
	if _, err := io.WriteString(w, eraseDisplay); err != nil {
		return err
	}
	_, err := io.WriteString(w, eraseDisplay+cursorHome)
	return err
}
