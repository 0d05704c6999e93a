package bwdraw

import (
	"io"

	"golang.org/x/exp/slog"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger sets the logger bwdraw writes to. bwdraw logs nothing by
// default. Passing nil restores the default
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = l
}
