package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/bwdraw"
	"git.sr.ht/~rockorager/bwdraw/internal/config"
)

var (
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg = config.Defaults()

	flagConfig   string
	flagLogLevel string
	flagClear    bool
	flagInvert   bool
)

var rootCmd = &cobra.Command{
	Use:               "bwdraw",
	Short:             "Draw black and white pictures in the terminal",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $XDG_CONFIG_HOME/bwdraw/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagClear, "clear", false, "clear the screen before drawing")
	rootCmd.PersistentFlags().BoolVar(&flagInvert, "invert", false, "invert the picture before drawing")

	rootCmd.AddCommand(boxCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05.000",
	}))
	bwdraw.SetLogger(log)
	return nil
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		c, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return c, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Defaults(), nil
	}
	c, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config.Defaults(), nil
	case err != nil:
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

// draw writes c to the command output, applying the global flags
func draw(cmd *cobra.Command, c *bwdraw.Canvas) error {
	out := cmd.OutOrStdout()
	if flagInvert {
		c.Invert()
	}
	if runewidth.IsEastAsian() {
		log.Warn("block glyphs are drawn double width in this locale", "columns", c.Columns(true))
	}
	if flagClear || cfg.Clear {
		if err := bwdraw.Clear(out); err != nil {
			return err
		}
	}
	log.Debug("drawing canvas", "width", c.Width(), "height", c.Height())
	_, err := c.WriteTo(out)
	return err
}
