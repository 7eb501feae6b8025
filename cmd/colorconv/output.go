package main

import (
	"encoding/json"
	"fmt"
	"io"

	"color-picker/internal/app"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type report struct {
	Hex  string     `json:"hex" yaml:"hex"`
	RGB  rgbReport  `json:"rgb" yaml:"rgb"`
	CMYK cmykReport `json:"cmyk" yaml:"cmyk"`
	HLS  hlsReport  `json:"hls" yaml:"hls"`
}

type rgbReport struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

type cmykReport struct {
	C float64 `json:"c" yaml:"c"`
	M float64 `json:"m" yaml:"m"`
	Y float64 `json:"y" yaml:"y"`
	K float64 `json:"k" yaml:"k"`
}

type hlsReport struct {
	H float64 `json:"h" yaml:"h"`
	L float64 `json:"l" yaml:"l"`
	S float64 `json:"s" yaml:"s"`
}

func newReport(s app.Snapshot) report {
	return report{
		Hex:  s.RGB.Hex(),
		RGB:  rgbReport{s.RGB.R, s.RGB.G, s.RGB.B},
		CMYK: cmykReport{s.CMYK.C, s.CMYK.M, s.CMYK.Y, s.CMYK.K},
		HLS:  hlsReport{s.HLS.H, s.HLS.L, s.HLS.S},
	}
}

func printSnapshot(cmd *cobra.Command, s app.Snapshot) error {
	format, _ := cmd.Flags().GetString("format")
	return writeSnapshot(cmd.OutOrStdout(), format, s)
}

func writeSnapshot(out io.Writer, format string, s app.Snapshot) error {
	switch format {
	case "text", "":
		d := s.Display()
		fmt.Fprintf(out, "RGB:  %s %s %s\n", d.R, d.G, d.B)
		fmt.Fprintf(out, "Hex:  %s\n", d.Hex)
		fmt.Fprintf(out, "CMYK: %s %s %s %s\n", d.C, d.M, d.Y, d.K)
		fmt.Fprintf(out, "HLS:  %s %s %s\n", d.H, d.L, d.S)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(s))
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(newReport(s))
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}
