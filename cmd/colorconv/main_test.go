package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRGBText(t *testing.T) {
	out, err := run(t, "rgb", "255", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "RGB:  255 0 0\n"+
		"Hex:  #ff0000\n"+
		"CMYK: 0.00 1.00 1.00 0.00\n"+
		"HLS:  0.00 50.00 100.00\n", out)
}

func TestRGBClampsAndRejects(t *testing.T) {
	out, err := run(t, "rgb", "300", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "RGB:  255 0 0\n")

	_, err = run(t, "rgb", "abc", "0", "0")
	assert.ErrorContains(t, err, `invalid channel "abc"`)

	_, err = run(t, "rgb", "1", "2")
	assert.Error(t, err)
}

func TestRGBNegativeChannel(t *testing.T) {
	out, err := run(t, "rgb", "300", "-5", "128")
	require.NoError(t, err)
	assert.Contains(t, out, "RGB:  255 0 128\n")

	out, err = run(t, "rgb", "-5", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "RGB:  0 0 0\n")

	out, err = run(t, "rgb", "--", "-1", "-2", "-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Hex:  #000000\n")
}

func TestRGBFlags(t *testing.T) {
	out, err := run(t, "rgb", "-f", "json", "0", "-9", "255")
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, rgbReport{0, 0, 255}, r.RGB)

	out, err = run(t, "rgb", "1", "2", "3", "--format=yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, rgbReport{1, 2, 3}, r.RGB)

	_, err = run(t, "rgb", "1", "2", "3", "-x")
	assert.ErrorContains(t, err, "unknown flag: -x")

	_, err = run(t, "rgb", "1", "2", "3", "--format")
	assert.ErrorContains(t, err, "flag needs an argument")

	out, err = run(t, "rgb", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "rgb [-f FORMAT] R G B")
}

func TestHexJSON(t *testing.T) {
	out, err := run(t, "hex", "#00ff00", "--format", "json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "#00ff00", r.Hex)
	assert.Equal(t, rgbReport{0, 255, 0}, r.RGB)
	assert.InDelta(t, 120, r.HLS.H, 1e-9)
	assert.Equal(t, cmykReport{1, 0, 1, 0}, r.CMYK)
}

func TestHexYAML(t *testing.T) {
	out, err := run(t, "hex", "00f", "-f", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, rgbReport{0, 0, 255}, r.RGB)
	assert.InDelta(t, 240, r.HLS.H, 1e-9)
}

func TestHexInvalid(t *testing.T) {
	_, err := run(t, "hex", "#nothex")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "rgb", "1", "2", "3", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "gray.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out, err := run(t, "image", path, "--region", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Hex:  #808080\n")
	assert.Contains(t, out, "HLS:  0.00 50.20 0.00\n")
}
