package main

import (
	"fmt"
	"strconv"
	"strings"

	"color-picker/internal/app"
	"color-picker/internal/sample"
	"color-picker/pkg/colorutil"

	"github.com/spf13/cobra"
)

func newRGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgb [-f FORMAT] R G B",
		Short: "Convert an RGB triple (channels are clamped to 0-255)",
		Long: "Convert an RGB triple (channels are clamped to 0-255).\n\n" +
			"Negative channels such as -5 are taken as values, not flags.",
		// Flags are parsed in runRGB so that "-5" is a channel, not a shorthand.
		DisableFlagParsing: true,
		RunE:               runRGB,
	}
}

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex COLOR",
		Short: "Convert a #rrggbb or #rgb color",
		Args:  cobra.ExactArgs(1),
		RunE:  runHex,
	}
}

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image PATH",
		Short: "Convert the average color of an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runImage,
	}
	cmd.Flags().Int("region", 0, "Side of the centered square to average (0 = whole image)")
	return cmd
}

// parseRGBArgs splits args into channels and the output format.
// Anything that parses as an integer is a channel, even with a leading '-'.
func parseRGBArgs(args []string) (channels []string, format string, help bool, err error) {
	format = "text"
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			channels = append(channels, args[i+1:]...)
			i = len(args)
		case arg == "-h" || arg == "--help":
			return nil, "", true, nil
		case arg == "-f" || arg == "--format":
			if i+1 >= len(args) {
				return nil, "", false, fmt.Errorf("flag needs an argument: %s", arg)
			}
			i++
			format = args[i]
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "-f="):
			format = strings.TrimPrefix(arg, "-f=")
		case strings.HasPrefix(arg, "-") && !isInteger(arg):
			return nil, "", false, fmt.Errorf("unknown flag: %s", arg)
		default:
			channels = append(channels, arg)
		}
	}
	if len(channels) != 3 {
		return nil, "", false, fmt.Errorf("accepts 3 arg(s), received %d", len(channels))
	}
	return channels, format, false, nil
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func runRGB(cmd *cobra.Command, args []string) error {
	channels, format, help, err := parseRGBArgs(args)
	if err != nil {
		return err
	}
	if help {
		return cmd.Help()
	}

	var ch [3]int
	for i, arg := range channels {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("invalid channel %q: must be an integer", arg)
		}
		ch[i] = v
	}
	snap := app.NewSnapshot(colorutil.RGB{R: ch[0], G: ch[1], B: ch[2]})
	return writeSnapshot(cmd.OutOrStdout(), format, snap)
}

func runHex(cmd *cobra.Command, args []string) error {
	rgb, err := colorutil.ParseHex(args[0])
	if err != nil {
		return err
	}
	return printSnapshot(cmd, app.NewSnapshot(rgb))
}

func runImage(cmd *cobra.Command, args []string) error {
	region, _ := cmd.Flags().GetInt("region")

	c, err := sample.MeanFile(args[0], region)
	if err != nil {
		return err
	}
	return printSnapshot(cmd, app.NewSnapshot(colorutil.FromColor(c)))
}
