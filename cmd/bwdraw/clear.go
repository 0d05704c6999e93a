package main

import (
	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/bwdraw"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bwdraw.Clear(cmd.OutOrStdout())
	},
}
