package panels

import (
	"color-picker/internal/app"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Swatch is a solid panel filled with the current color, captioned with its hex code.
type Swatch struct {
	rect    *fynecanvas.Rectangle
	hex     *widget.Label
	content fyne.CanvasObject
}

// NewSwatch creates a swatch that tracks the state's color.
func NewSwatch(state *app.State) *Swatch {
	sw := &Swatch{}

	sw.rect = fynecanvas.NewRectangle(state.Color().NRGBA())
	sw.rect.SetMinSize(fyne.NewSize(400, 100))
	sw.hex = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	sw.content = container.NewBorder(nil, sw.hex, nil, nil, sw.rect)

	sw.refresh(state.Snapshot())
	state.OnColorChanged(sw.refresh)

	return sw
}

// Container returns the swatch for embedding.
func (sw *Swatch) Container() fyne.CanvasObject {
	return sw.content
}

func (sw *Swatch) refresh(snap app.Snapshot) {
	sw.rect.FillColor = snap.RGB.NRGBA()
	sw.rect.Refresh()
	sw.hex.SetText(snap.Display().Hex)
}
