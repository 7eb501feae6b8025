package dialogs

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"color-picker/internal/app"
	"color-picker/internal/sample"
	"color-picker/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// DefaultSampleSize is the side of the centered square averaged from an image.
// Zero would average the whole image.
const DefaultSampleSize = 32

// SampleDialog lets the user pick an image whose average color becomes the current color.
type SampleDialog struct {
	state  *app.State
	prefs  *prefs.Prefs
	window fyne.Window
}

// NewSampleDialog creates a sample dialog.
func NewSampleDialog(state *app.State, p *prefs.Prefs, window fyne.Window) *SampleDialog {
	return &SampleDialog{state: state, prefs: p, window: window}
}

// Show opens a file picker filtered to supported image types.
func (d *SampleDialog) Show() {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		if err := d.SampleFile(path); err != nil {
			log.Printf("Sample: %v", err)
			dialog.ShowError(err, d.window)
		}
	}, d.window)

	dlg.SetFilter(storage.NewExtensionFileFilter(sample.Extensions))
	if dir := d.prefs.String(prefs.KeySampleDir); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			dlg.SetLocation(lister)
		}
	}
	dlg.Resize(fyne.NewSize(700, 500))
	dlg.Show()
}

// RegionSize returns the side of the averaged square, 0 for the whole image.
func (d *SampleDialog) RegionSize() int {
	return d.prefs.IntWithFallback(prefs.KeySampleSize, DefaultSampleSize)
}

// SetRegionSize parses text as a non-negative pixel count and stores it.
func (d *SampleDialog) SetRegionSize(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return fmt.Errorf("invalid region size %q: must be a whole number of pixels, 0 for the whole image", text)
	}
	d.prefs.SetInt(prefs.KeySampleSize, n)
	return nil
}

// ShowRegionSize asks for the side of the square averaged by SampleFile.
func (d *SampleDialog) ShowRegionSize() {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(d.RegionSize()))
	entry.Validator = func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return errors.New("enter 0 or more pixels")
		}
		return nil
	}

	form := widget.NewForm(
		widget.NewFormItem("Region (px)", entry),
		widget.NewFormItem("", widget.NewLabel("0 averages the whole image")),
	)
	dlg := dialog.NewCustomConfirm("Sample Region Size", "Set", "Cancel", form,
		func(set bool) {
			if !set {
				return
			}
			if err := d.SetRegionSize(entry.Text); err != nil {
				dialog.ShowError(err, d.window)
			}
		},
		d.window,
	)
	dlg.Show()
}

// SampleFile averages the image at path and stores the result as the current color.
func (d *SampleDialog) SampleFile(path string) error {
	if !sample.Supported(path) {
		return fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	c, err := sample.MeanFile(path, d.RegionSize())
	if err != nil {
		return err
	}

	d.prefs.SetString(prefs.KeySampleDir, filepath.Dir(path))
	snap := d.state.SetColorFromSample(c)
	log.Printf("Sample: %s -> %s", filepath.Base(path), snap.RGB.Hex())
	return nil
}
