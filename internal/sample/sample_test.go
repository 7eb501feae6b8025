package sample

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestMeanUniform(t *testing.T) {
	want := color.NRGBA{R: 12, G: 200, B: 77, A: 255}
	got, err := Mean(uniform(8, 5, want), image.Rect(0, 0, 8, 5))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMeanHalfAndHalf(t *testing.T) {
	img := uniform(4, 4, color.Black)
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	got, err := Mean(img, img.Bounds())
	require.NoError(t, err)
	// 127.5 rounds up
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, got)

	left, err := Mean(img, image.Rect(0, 0, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, left)
}

func TestMeanEmptyRegion(t *testing.T) {
	_, err := Mean(uniform(2, 2, color.White), image.Rect(10, 10, 20, 20))
	assert.ErrorIs(t, err, ErrEmptyRegion)
}

func TestCenterRegion(t *testing.T) {
	b := image.Rect(0, 0, 100, 50)
	assert.Equal(t, b, CenterRegion(b, 0))
	assert.Equal(t, image.Rect(45, 20, 55, 30), CenterRegion(b, 10))
	assert.Equal(t, image.Rect(0, 0, 100, 50), CenterRegion(b, 500))
}

func TestMeanFileFormats(t *testing.T) {
	want := color.NRGBA{R: 40, G: 80, B: 160, A: 255}
	img := uniform(6, 6, want)
	dir := t.TempDir()

	encoders := map[string]func(*os.File) error{
		"swatch.png":  func(f *os.File) error { return png.Encode(f, img) },
		"swatch.bmp":  func(f *os.File) error { return bmp.Encode(f, img) },
		"swatch.tiff": func(f *os.File) error { return tiff.Encode(f, img, nil) },
	}
	for name, enc := range encoders {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, enc(f))
		require.NoError(t, f.Close())

		assert.True(t, Supported(path), name)
		got, err := MeanFile(path, 4)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = MeanFile(path, 0)
	assert.Error(t, err)

	assert.False(t, Supported("notes.txt"))
	assert.True(t, Supported("PHOTO.JPG"))
}
