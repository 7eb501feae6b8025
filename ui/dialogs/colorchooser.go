// Package dialogs provides application dialogs.
package dialogs

import (
	"image/color"

	"color-picker/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ColorChooser wraps fyne's modal color picker around the canonical state.
type ColorChooser struct {
	state  *app.State
	window fyne.Window
}

// NewColorChooser creates a chooser bound to state.
func NewColorChooser(state *app.State, window fyne.Window) *ColorChooser {
	return &ColorChooser{state: state, window: window}
}

// Show opens the dialog seeded with the current color. Confirming a color
// stores it; cancelling leaves the state untouched.
func (c *ColorChooser) Show() {
	dlg := dialog.NewColorPicker("Choose a Color", "", c.onSelected, c.window)
	dlg.Advanced = true
	dlg.SetColor(c.state.Color().NRGBA())
	dlg.Show()
}

func (c *ColorChooser) onSelected(selected color.Color) {
	if selected == nil {
		return
	}
	c.state.SetColorFromDialog(selected)
}
