package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/bwdraw"
)

var boxCmd = &cobra.Command{
	Use:   "box WIDTH HEIGHT",
	Short: "Draw the outline of a rectangle",
	Args:  cobra.ExactArgs(2),
	RunE:  runBox,
}

func runBox(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("box dimensions must not be negative")
	}
	c := bwdraw.New(width, height)
	for y := 0; y < height; y += 1 {
		for x := 0; x < width; x += 1 {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				c.Set(x, y, true)
			}
		}
	}
	return draw(cmd, c)
}
