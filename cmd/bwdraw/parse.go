package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/bwdraw"
	"git.sr.ht/~rockorager/bwdraw/internal/config"
)

var parseCmd = &cobra.Command{
	Use:   "parse [FILE]",
	Short: "Draw a text picture",
	Long: `Draw a text picture read from FILE, or stdin when FILE is omitted or "-".
Every character equal to --active is an on pixel, every character equal to
--inactive is an off pixel. Any other character is drawn as on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var glyphsCmd = &cobra.Command{
	Use:   "glyphs [FILE]",
	Short: "Redraw half block text",
	Long:  `Read text previously drawn by bwdraw from FILE, or stdin, and draw it again.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGlyphs,
}

var (
	flagActive   string
	flagInactive string
)

func init() {
	parseCmd.Flags().StringVar(&flagActive, "active", "", "character of an on pixel (overrides config)")
	parseCmd.Flags().StringVar(&flagInactive, "inactive", "", "character of an off pixel (overrides config)")
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	activeStr := cfg.Active
	if flagActive != "" {
		activeStr = flagActive
	}
	inactiveStr := cfg.Inactive
	if flagInactive != "" {
		inactiveStr = flagInactive
	}
	active, err := config.SingleRune(activeStr)
	if err != nil {
		return fmt.Errorf("active: %w", err)
	}
	inactive, err := config.SingleRune(inactiveStr)
	if err != nil {
		return fmt.Errorf("inactive: %w", err)
	}
	s, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	return draw(cmd, bwdraw.Parse(s, active, inactive))
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	s, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	return draw(cmd, bwdraw.ParseGlyphs(s))
}
