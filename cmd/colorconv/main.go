// Command colorconv prints a color in the RGB, CMYK and HLS models.
package main

import (
	"fmt"
	"os"

	"color-picker/internal/version"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "colorconv",
		Short:         "Show a color in the RGB, CMYK and HLS models",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("format", "f", "text", "Output format (text, json, yaml)")

	root.AddCommand(newRGBCmd(), newHexCmd(), newImageCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
