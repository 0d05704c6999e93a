package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"rsc.io/qr"

	"git.sr.ht/~rockorager/bwdraw"
)

// Modules of light border around the code, as required by the QR standard
const quietZone = 4

var qrCmd = &cobra.Command{
	Use:   "qr TEXT",
	Short: "Draw a QR code",
	Long: `Draw TEXT as a QR code. Light modules are on, which scans on terminals with
a dark background. Use --invert for light backgrounds.`,
	Args: cobra.ExactArgs(1),
	RunE: runQR,
}

var flagLevel string

func init() {
	qrCmd.Flags().StringVar(&flagLevel, "level", "M", "error correction level: L, M, Q or H")
}

func parseQRLevel(s string) (qr.Level, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qr.L, nil
	case "M":
		return qr.M, nil
	case "Q":
		return qr.Q, nil
	case "H":
		return qr.H, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}

// qrCanvas draws code with a quiet zone. Light modules are on
func qrCanvas(code *qr.Code) *bwdraw.Canvas {
	size := code.Size + 2*quietZone
	m := make([][]bool, size)
	for y := range m {
		m[y] = make([]bool, size)
		for x := range m[y] {
			m[y][x] = !code.Black(x-quietZone, y-quietZone)
		}
	}
	return bwdraw.FromMatrix(m)
}

func runQR(cmd *cobra.Command, args []string) error {
	level, err := parseQRLevel(flagLevel)
	if err != nil {
		return err
	}
	code, err := qr.Encode(args[0], level)
	if err != nil {
		return fmt.Errorf("encoding qr code: %w", err)
	}
	log.Debug("encoded qr code", "size", code.Size, "level", flagLevel)
	return draw(cmd, qrCanvas(code))
}
