// Package sample derives a single color from an image file.
package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyRegion is returned when the sample region does not overlap the image.
var ErrEmptyRegion = errors.New("sample region is empty")

// Extensions lists the file extensions Load can decode.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Supported reports whether path has an extension Load can decode.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load decodes the image at path and returns it with its format name.
func Load(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}
	return img, format, nil
}

// CenterRegion returns a size x size square centered in bounds.
// A size <= 0 selects the whole image.
func CenterRegion(bounds image.Rectangle, size int) image.Rectangle {
	if size <= 0 {
		return bounds
	}
	cx := bounds.Min.X + bounds.Dx()/2
	cy := bounds.Min.Y + bounds.Dy()/2
	half := size / 2
	r := image.Rect(cx-half, cy-half, cx-half+size, cy-half+size)
	return r.Intersect(bounds)
}

// Mean returns the average color of img over region, as opaque NRGBA.
// Pixels are un-premultiplied before averaging; alpha is ignored.
func Mean(img image.Image, region image.Rectangle) (color.NRGBA, error) {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return color.NRGBA{}, ErrEmptyRegion
	}

	n := region.Dx() * region.Dy()
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rs = append(rs, float64(c.R))
			gs = append(gs, float64(c.G))
			bs = append(bs, float64(c.B))
		}
	}

	return color.NRGBA{
		R: toUint8(stat.Mean(rs, nil)),
		G: toUint8(stat.Mean(gs, nil)),
		B: toUint8(stat.Mean(bs, nil)),
		A: 0xFF,
	}, nil
}

// MeanFile loads path and averages a centered square of the given size.
func MeanFile(path string, size int) (color.NRGBA, error) {
	img, _, err := Load(path)
	if err != nil {
		return color.NRGBA{}, err
	}
	c, err := Mean(img, CenterRegion(img.Bounds(), size))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("sampling %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

func toUint8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
